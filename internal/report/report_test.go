// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"
	"testing"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

func sampleRecord() types.ArticleRecord {
	return types.ArticleRecord{
		PMID:    "38912345",
		Title:   "Exercise therapy for chronic low back pain.",
		Journal: "Lancet",
		PubDate: "2023 Mar 14",
		PubYear: 2023,
		DOI:     "10.1016/S0140-6736(23)00123-4",
		Authors: []types.Author{{Name: "Garcia ML"}, {Name: "Chen W"}},
	}
}

func TestWriteSearchResults(t *testing.T) {
	var b strings.Builder
	WriteSearchResults(&b, "statins", []string{"38912345", "38911111"}, 2456)
	out := b.String()

	if !strings.Contains(out, "2456 articles") {
		t.Errorf("missing total count: %q", out)
	}
	if !strings.Contains(out, "38912345") || !strings.Contains(out, "pubmed.ncbi.nlm.nih.gov/38912345/") {
		t.Errorf("missing PMID with record link: %q", out)
	}
	if !strings.Contains(out, "2454 more articles") {
		t.Errorf("missing truncation note: %q", out)
	}
}

func TestWriteSearchResultsEmpty(t *testing.T) {
	var b strings.Builder
	WriteSearchResults(&b, "zxqjw", nil, 0)
	if !strings.Contains(b.String(), "No articles found") {
		t.Errorf("missing empty-result message: %q", b.String())
	}
}

func TestWriteArticle(t *testing.T) {
	var b strings.Builder
	WriteArticle(&b, sampleRecord())
	out := b.String()

	for _, want := range []string{"Garcia ML, Chen W", "Lancet", "2023 Mar 14", "38912345", "10.1016/S0140-6736(23)00123-4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteArticlePlaceholders(t *testing.T) {
	var b strings.Builder
	WriteArticle(&b, types.ArticleRecord{PMID: "123"})
	out := b.String()

	if !strings.Contains(out, "(no title)") || !strings.Contains(out, "(no authors listed)") {
		t.Errorf("missing placeholders: %q", out)
	}

	b.Reset()
	WriteArticle(&b, types.ArticleRecord{})
	if !strings.Contains(b.String(), "No article details available") {
		t.Errorf("empty record should render a notice: %q", b.String())
	}
}

func TestWriteAbstract(t *testing.T) {
	rec := sampleRecord()
	rec.Abstract = "BACKGROUND: Pain is common.\nMETHODS: Patients were randomized."
	rec.AbstractSections = []types.AbstractSection{
		{Label: "BACKGROUND", Text: "Pain is common."},
		{Label: "METHODS", Text: "Patients were randomized."},
	}

	var b strings.Builder
	WriteAbstract(&b, rec)
	out := b.String()

	if !strings.Contains(out, "BACKGROUND: Pain is common.") {
		t.Errorf("missing labeled section: %q", out)
	}

	b.Reset()
	rec.Abstract = ""
	rec.AbstractSections = nil
	WriteAbstract(&b, rec)
	if !strings.Contains(b.String(), "No abstract available") {
		t.Errorf("missing no-abstract notice: %q", b.String())
	}
}

func TestWriteAssessment(t *testing.T) {
	qa := types.QualityAssessment{
		Design:            types.StudyRandomizedTrial,
		EvidenceLevel:     2,
		QualityScore:      84.5,
		ClinicalRelevance: 90.2,
		Bias: []types.BiasFlag{
			{Category: "selection", Score: 0.67, Risk: types.RiskHigh, Indicators: []string{"convenience", "volunteer"}},
			{Category: "detection", Score: 0, Risk: types.RiskLow},
		},
		Recommendations: []string{"High-quality evidence suitable for clinical decision-making"},
	}

	var b strings.Builder
	WriteAssessment(&b, sampleRecord(), qa)
	out := b.String()

	for _, want := range []string{"84.5/100", "high risk", "convenience, volunteer", "decision-making"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteAssessmentInsufficient(t *testing.T) {
	var b strings.Builder
	WriteAssessment(&b, sampleRecord(), types.QualityAssessment{Insufficient: true})
	if !strings.Contains(b.String(), "insufficient data") {
		t.Errorf("missing insufficient-data notice: %q", b.String())
	}
}

func TestWritePICOReport(t *testing.T) {
	qa := types.QualityAssessment{
		Design:       types.StudyRandomizedTrial,
		QualityScore: 80,
		PICO: types.PICOSummary{
			Population:   types.PICOField{Text: "240 patients with back pain", Confidence: 0.7},
			Intervention: types.PICOField{Text: "exercise therapy", Confidence: 0.7},
			Outcome:      types.PICOField{Text: "pain intensity at 12 weeks", Confidence: 0.95},
		},
	}

	var b strings.Builder
	WritePICOReport(&b, sampleRecord(), qa, "Does exercise help back pain?")
	out := b.String()

	if !strings.Contains(out, "Does exercise help back pain?") {
		t.Errorf("missing clinical question: %q", out)
	}
	if !strings.Contains(out, "240 patients") || !strings.Contains(out, "70% confidence") {
		t.Errorf("missing population with confidence: %q", out)
	}
	// Comparison was not identified.
	if !strings.Contains(out, "(not identified)") {
		t.Errorf("missing not-identified marker: %q", out)
	}
}

func TestWriteAuthorProfile(t *testing.T) {
	p := types.AuthorProfile{
		Name:               "Garcia ML",
		Publications:       120,
		EstimatedCitations: 900,
		EstimatedHIndex:    9.0,
		ExperienceYears:    15,
		CredibilityScore:   86.5,
		Band:               types.BandEstablished,
	}

	var b strings.Builder
	WriteAuthorProfile(&b, p)
	out := b.String()

	if !strings.Contains(out, "estimated") && !strings.Contains(out, "estimates") {
		t.Errorf("profile must present figures as estimates: %q", out)
	}
	if !strings.Contains(out, "86.5/100") || !strings.Contains(out, string(types.BandEstablished)) {
		t.Errorf("missing score or band: %q", out)
	}
}

func TestWriteCitationReport(t *testing.T) {
	cr := types.CitationReport{
		PMID:               "38912345",
		EstimatedCitations: 90,
		CitationsPerYear:   9,
		NetworkInfluence:   81,
		Trend:              "high-impact",
	}

	var b strings.Builder
	WriteCitationReport(&b, sampleRecord(), cr)
	out := b.String()

	if !strings.Contains(out, "estimated") {
		t.Errorf("citation figures must be presented as estimates: %q", out)
	}
	if !strings.Contains(out, "high-impact") || !strings.Contains(out, "9.00") {
		t.Errorf("missing trend or rate: %q", out)
	}
	if !strings.Contains(out, "linkname=pubmed_pubmed&from_uid=38912345") {
		t.Errorf("missing related-records link: %q", out)
	}
}

func TestWriteLinks(t *testing.T) {
	l := types.ArticleLinks{
		Record: "https://pubmed.ncbi.nlm.nih.gov/38912345/",
		DOI:    "https://doi.org/10.1000/xyz123",
		PDF:    "https://doi.org/10.1000/xyz123",
	}

	var b strings.Builder
	WriteLinks(&b, sampleRecord(), l)
	out := b.String()

	if !strings.Contains(out, "10.1000/xyz123") {
		t.Errorf("missing DOI link: %q", out)
	}
	if !strings.Contains(out, "best-effort") {
		t.Errorf("PDF link must carry the unverified marker: %q", out)
	}

	b.Reset()
	WriteLinks(&b, types.ArticleRecord{}, types.ArticleLinks{})
	if !strings.Contains(b.String(), "No links available") {
		t.Errorf("missing empty notice: %q", b.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	long := strings.Repeat("x", 100)
	got := truncate(long, 20)
	if len(got) != 20 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate = %q (len %d), want 20 chars ending in ellipsis", got, len(got))
	}
}
