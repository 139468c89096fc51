// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assess

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// longAbstract pads text past the insufficient-data threshold without
// introducing any classification keywords.
func longAbstract(text string) string {
	return text + " " + strings.Repeat("The findings are described below. ", 6)
}

func TestClassifyDesign(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  types.StudyType
	}{
		{"meta-analysis", "A meta-analysis of statin therapy", types.StudyMetaAnalysis},
		{"systematic review", "Systematic review of exercise interventions", types.StudySystematicReview},
		{"randomized trial", "A randomized controlled trial of aspirin", types.StudyRandomizedTrial},
		{"double blind", "A double-blind study of drug X", types.StudyRandomizedTrial},
		{"cohort", "A prospective cohort of nurses", types.StudyCohort},
		{"case-control", "A case-control study of lung cancer", types.StudyCaseControl},
		{"cross-sectional", "A cross-sectional survey of clinicians", types.StudyCrossSectional},
		{"case report", "Case report: rare presentation of measles", types.StudyCaseReport},
		{"unclassified", "Biomarkers in chronic disease", types.StudyUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDesign(tt.title, "")
			if got != tt.want {
				t.Errorf("ClassifyDesign(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

// A meta-analysis of randomized trials must classify as meta-analysis: the
// decision table is ordered by precedence and the first hit wins.
func TestClassifyDesignPrecedence(t *testing.T) {
	title := "Meta-analysis of randomized controlled trials of statins"
	if got := ClassifyDesign(title, ""); got != types.StudyMetaAnalysis {
		t.Errorf("ClassifyDesign = %q, want meta-analysis", got)
	}

	title = "Systematic review of cohort studies"
	if got := ClassifyDesign(title, ""); got != types.StudySystematicReview {
		t.Errorf("ClassifyDesign = %q, want systematic-review", got)
	}
}

func TestEvidenceLevel(t *testing.T) {
	tests := []struct {
		design types.StudyType
		want   int
	}{
		{types.StudyMetaAnalysis, 1},
		{types.StudySystematicReview, 1},
		{types.StudyRandomizedTrial, 2},
		{types.StudyCohort, 3},
		{types.StudyCaseControl, 3},
		{types.StudyCrossSectional, 4},
		{types.StudyCaseReport, 4},
		{types.StudyUnclassified, 4},
	}
	for _, tt := range tests {
		if got := EvidenceLevel(tt.design); got != tt.want {
			t.Errorf("EvidenceLevel(%q) = %d, want %d", tt.design, got, tt.want)
		}
	}
}

func TestAssessBias(t *testing.T) {
	abstract := "Patients were recruited by convenience sampling from a volunteer registry. " +
		"Outcomes were compared against a placebo. Dropout was low."

	flags := AssessBias("", abstract)
	if len(flags) != 4 {
		t.Fatalf("AssessBias returned %d flags, want 4", len(flags))
	}

	// Fixed category order: selection, detection, performance, attrition.
	wantOrder := []string{"selection", "detection", "performance", "attrition"}
	for i, f := range flags {
		if f.Category != wantOrder[i] {
			t.Errorf("flag %d category = %q, want %q", i, f.Category, wantOrder[i])
		}
	}

	byCat := map[string]types.BiasFlag{}
	for _, f := range flags {
		byCat[f.Category] = f
	}

	// Two selection indicators (convenience, volunteer) grade high risk.
	if sel := byCat["selection"]; sel.Risk != types.RiskHigh || len(sel.Indicators) != 2 {
		t.Errorf("selection = %+v, want high risk with 2 indicators", sel)
	}
	// One performance indicator (placebo) grades medium.
	if perf := byCat["performance"]; perf.Risk != types.RiskMedium {
		t.Errorf("performance risk = %q, want medium", perf.Risk)
	}
	// One attrition indicator (dropout) grades medium.
	if att := byCat["attrition"]; att.Risk != types.RiskMedium {
		t.Errorf("attrition risk = %q, want medium", att.Risk)
	}
	// No detection indicators grade low.
	if det := byCat["detection"]; det.Risk != types.RiskLow || det.Score != 0 {
		t.Errorf("detection = %+v, want low risk, score 0", det)
	}
}

func TestAssessInsufficientAbstract(t *testing.T) {
	qa := Assess("A randomized trial", "Too short.", 2024, types.AssessConfig{MinAbstractLen: 120})
	if !qa.Insufficient {
		t.Fatal("expected insufficient assessment for a short abstract")
	}
	if qa.QualityScore != 0 || qa.Design != types.StudyUnclassified {
		t.Errorf("insufficient assessment carries score %v design %q, want zero and unclassified", qa.QualityScore, qa.Design)
	}
	if qa.EvidenceLevel != 4 {
		t.Errorf("EvidenceLevel = %d, want 4", qa.EvidenceLevel)
	}
}

func TestAssessDeterministic(t *testing.T) {
	title := "A randomized controlled trial of exercise therapy"
	abstract := longAbstract("240 patients with chronic low back pain were randomized to exercise therapy or usual care. " +
		"The primary outcome was pain intensity at 12 weeks.")

	a := Assess(title, abstract, 2023, types.AssessConfig{})
	b := Assess(title, abstract, 2023, types.AssessConfig{})

	if a.QualityScore != b.QualityScore || a.Design != b.Design {
		t.Errorf("identical input produced different assessments: %+v vs %+v", a, b)
	}
	if len(a.Bias) != len(b.Bias) {
		t.Fatalf("bias flag counts differ: %d vs %d", len(a.Bias), len(b.Bias))
	}
	for i := range a.Bias {
		if a.Bias[i].Category != b.Bias[i].Category || a.Bias[i].Score != b.Bias[i].Score {
			t.Errorf("bias flag %d differs: %+v vs %+v", i, a.Bias[i], b.Bias[i])
		}
	}
}

func TestAssessDesignOrdering(t *testing.T) {
	abstract := longAbstract("Patients received treatment and outcomes were measured at 12 weeks.")

	rct := Assess("A randomized controlled trial", abstract, 0, types.AssessConfig{})
	caseReport := Assess("Case report of a rare condition", abstract, 0, types.AssessConfig{})

	if rct.QualityScore <= caseReport.QualityScore {
		t.Errorf("RCT score %.1f should exceed case report score %.1f", rct.QualityScore, caseReport.QualityScore)
	}
	if rct.QualityScore < 0 || rct.QualityScore > 100 {
		t.Errorf("quality score %.1f out of range", rct.QualityScore)
	}
}

func TestAssessRecencyBoost(t *testing.T) {
	title := "A randomized controlled trial of drug X"
	abstract := longAbstract("Patients were randomized to drug X or placebo. The primary outcome was mortality.")

	recent := Assess(title, abstract, time.Now().Year(), types.AssessConfig{})
	old := Assess(title, abstract, 1995, types.AssessConfig{})

	if recent.QualityScore != old.QualityScore {
		t.Errorf("recency changed quality score: %.1f vs %.1f", recent.QualityScore, old.QualityScore)
	}
	if recent.ClinicalRelevance <= old.ClinicalRelevance {
		t.Errorf("recent relevance %.1f should exceed old relevance %.1f", recent.ClinicalRelevance, old.ClinicalRelevance)
	}
}

func TestAssessRecommendations(t *testing.T) {
	title := "A randomized controlled trial of exercise"
	abstract := longAbstract("Patients were randomized to exercise or usual care. The primary outcome was pain.")

	qa := Assess(title, abstract, 2024, types.AssessConfig{})
	found := false
	for _, r := range qa.Recommendations {
		if strings.Contains(r, "clinical decision-making") {
			found = true
		}
	}
	if !found {
		t.Errorf("RCT recommendations missing decision-making note: %v", qa.Recommendations)
	}
}
