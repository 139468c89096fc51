// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StudyType is the categorical study-design label assigned by the scorer.
type StudyType string

const (
	StudyMetaAnalysis     StudyType = "meta-analysis"
	StudySystematicReview StudyType = "systematic-review"
	StudyRandomizedTrial  StudyType = "randomized-trial"
	StudyCohort           StudyType = "cohort"
	StudyCaseControl      StudyType = "case-control"
	StudyCrossSectional   StudyType = "cross-sectional"
	StudyCaseReport       StudyType = "case-report"
	StudyUnclassified     StudyType = "unclassified"
)

// Display returns the human-readable name for the study type.
func (t StudyType) Display() string {
	switch t {
	case StudyMetaAnalysis:
		return "Meta-Analysis"
	case StudySystematicReview:
		return "Systematic Review"
	case StudyRandomizedTrial:
		return "Randomized Controlled Trial"
	case StudyCohort:
		return "Cohort Study"
	case StudyCaseControl:
		return "Case-Control Study"
	case StudyCrossSectional:
		return "Cross-Sectional Study"
	case StudyCaseReport:
		return "Case Report"
	default:
		return "Unclassified"
	}
}

// RiskLevel grades a bias score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// BiasFlag is one flagged bias category with its matched indicator words.
type BiasFlag struct {
	// Category is the bias family: "selection", "detection", "performance",
	// or "attrition".
	Category string `json:"category" yaml:"category"`

	// Score is the normalized indicator density in 0..1.
	Score float64 `json:"score" yaml:"score"`

	// Risk grades the score: low, medium, high.
	Risk RiskLevel `json:"risk" yaml:"risk"`

	// Indicators lists the keyword hits that produced the score.
	Indicators []string `json:"indicators,omitempty" yaml:"indicators,omitempty"`
}

// PICOField is one extracted PICO element with its match confidence.
type PICOField struct {
	Text       string  `json:"text" yaml:"text"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// PICOSummary holds the four PICO fields. Comparison is extracted
// best-effort and is usually empty.
type PICOSummary struct {
	Population   PICOField `json:"population" yaml:"population"`
	Intervention PICOField `json:"intervention" yaml:"intervention"`
	Comparison   PICOField `json:"comparison" yaml:"comparison"`
	Outcome      PICOField `json:"outcome" yaml:"outcome"`
}

// QualityAssessment is the scorer's output for one article. Computed fresh
// per request from the title and abstract; never cached.
type QualityAssessment struct {
	// Insufficient is set when the abstract is too short to score. No other
	// numeric field is meaningful when it is true.
	Insufficient bool `json:"insufficient" yaml:"insufficient"`

	// Design is the study-type classification.
	Design StudyType `json:"design" yaml:"design"`

	// EvidenceLevel is the evidence-hierarchy level, 1 (highest) to 4.
	EvidenceLevel int `json:"evidence_level" yaml:"evidence_level"`

	// QualityScore is the overall score in 0..100.
	QualityScore float64 `json:"quality_score" yaml:"quality_score"`

	// ClinicalRelevance is the applicability score in 0..100.
	ClinicalRelevance float64 `json:"clinical_relevance" yaml:"clinical_relevance"`

	// Bias holds one flag per bias category, in fixed category order.
	Bias []BiasFlag `json:"bias" yaml:"bias"`

	// PICO is the extracted Population/Intervention/Comparison/Outcome summary.
	PICO PICOSummary `json:"pico" yaml:"pico"`

	// Recommendations are short caveats derived from the scores.
	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}
