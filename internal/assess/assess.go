// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assess derives quality signals from an article's title and
// abstract using rule-based text heuristics: a fixed study-design decision
// table, bias indicator words, PICO sentence extraction, and weighted
// arithmetic scoring. Nothing here is probabilistic inference; identical
// input always produces an identical assessment.
package assess

import (
	"math"
	"strings"
	"time"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// Assess scores one article. pubYear may be 0 when unknown; it only feeds
// the recency boost. Abstracts shorter than cfg.MinAbstractLen are marked
// insufficient and carry no numeric score.
func Assess(title, abstract string, pubYear int, cfg types.AssessConfig) types.QualityAssessment {
	minLen := cfg.MinAbstractLen
	if minLen <= 0 {
		minLen = types.Defaults().Assess.MinAbstractLen
	}

	if len(strings.TrimSpace(abstract)) < minLen {
		return types.QualityAssessment{
			Insufficient:  true,
			Design:        types.StudyUnclassified,
			EvidenceLevel: EvidenceLevel(types.StudyUnclassified),
		}
	}

	design := ClassifyDesign(title, abstract)
	bias := AssessBias(title, abstract)
	pico := ExtractPICO(title + " " + abstract)

	quality := qualityScore(design, bias, pico)
	recent := pubYear > 0 && time.Now().Year()-pubYear <= 5
	relevance := clinicalRelevance(quality, design, recent)

	return types.QualityAssessment{
		Design:            design,
		EvidenceLevel:     EvidenceLevel(design),
		QualityScore:      quality,
		ClinicalRelevance: relevance,
		Bias:              bias,
		PICO:              pico,
		Recommendations:   recommendations(quality, design, bias),
	}
}

// qualityScore assembles the 0..100 score: base 70, design bonus, PICO
// completeness bonus, bias penalties.
func qualityScore(design types.StudyType, bias []types.BiasFlag, pico types.PICOSummary) float64 {
	score := 70.0 + designBonus[design]

	avgConfidence := (pico.Population.Confidence + pico.Intervention.Confidence + pico.Outcome.Confidence) / 3.0
	score += avgConfidence * 15

	for _, f := range bias {
		switch f.Risk {
		case types.RiskHigh:
			score -= 10
		case types.RiskMedium:
			score -= 5
		}
	}

	score = math.Max(0, math.Min(100, score))
	return math.Round(score*10) / 10
}

// clinicalRelevance derives the applicability score from quality, design,
// and publication recency.
func clinicalRelevance(quality float64, design types.StudyType, recent bool) float64 {
	relevance := quality * 0.7
	switch design {
	case types.StudyMetaAnalysis, types.StudySystematicReview, types.StudyRandomizedTrial:
		relevance += 15
	}
	if recent {
		relevance += 10
	}
	relevance = math.Min(100, relevance)
	return math.Round(relevance*10) / 10
}

// recommendations derives short caveats from the assessment.
func recommendations(quality float64, design types.StudyType, bias []types.BiasFlag) []string {
	var recs []string
	if quality < 60 {
		recs = append(recs, "Consider findings cautiously due to study quality concerns")
	}
	for _, f := range bias {
		if f.Category == "selection" && f.Risk == types.RiskHigh {
			recs = append(recs, "Potential selection bias may affect generalizability")
			break
		}
	}
	if design == types.StudyRandomizedTrial {
		recs = append(recs, "High-quality evidence suitable for clinical decision-making")
	}
	return recs
}
