// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CredibilityBand buckets an author profile's aggregate metrics.
type CredibilityBand string

const (
	BandEstablished CredibilityBand = "established"
	BandEmerging    CredibilityBand = "emerging"
	BandEarlyCareer CredibilityBand = "early-career"
)

// AuthorProfile is a best-effort aggregate over the records matching an
// author name string. Name matching does not disambiguate distinct people
// sharing a name; every figure here is an estimate.
type AuthorProfile struct {
	// Name is the author name string the profile was built for.
	Name string `json:"name" yaml:"name"`

	// Publications is the number of matching records found.
	Publications int `json:"publications" yaml:"publications"`

	// EstimatedCitations is a heuristic citation total over the sampled records.
	EstimatedCitations int `json:"estimated_citations" yaml:"estimated_citations"`

	// EstimatedHIndex is derived from EstimatedCitations, capped at 50.
	EstimatedHIndex float64 `json:"estimated_h_index" yaml:"estimated_h_index"`

	// ExperienceYears is the span from the earliest sampled publication year.
	ExperienceYears int `json:"experience_years" yaml:"experience_years"`

	// Affiliation is the most recent affiliation seen, if any.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`

	// CredibilityScore is the aggregate score in 0..100.
	CredibilityScore float64 `json:"credibility_score" yaml:"credibility_score"`

	// Band buckets the score: established, emerging, early-career.
	Band CredibilityBand `json:"band" yaml:"band"`
}

// CitationReport holds estimated citation-impact figures for one article.
// E-utilities exposes no citation counts, so everything here is derived from
// article age and title cues.
type CitationReport struct {
	PMID string `json:"pmid" yaml:"pmid"`

	// EstimatedCitations is the heuristic citation count.
	EstimatedCitations int `json:"estimated_citations" yaml:"estimated_citations"`

	// CitationsPerYear is EstimatedCitations over the article age.
	CitationsPerYear float64 `json:"citations_per_year" yaml:"citations_per_year"`

	// NetworkInfluence is a 0..100 composite of count and rate.
	NetworkInfluence float64 `json:"network_influence" yaml:"network_influence"`

	// Trend is a categorical label: "rapidly-emerging", "high-impact",
	// "steady", "moderate", or "limited".
	Trend string `json:"trend" yaml:"trend"`
}
