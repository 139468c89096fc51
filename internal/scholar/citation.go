// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"math"
	"strings"
	"time"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// EstimateCitations guesses a citation count for one record. E-utilities
// exposes no citation data, so the estimate is built from article age with
// multipliers for high-evidence title cues. Callers must present the result
// as an estimate.
func EstimateCitations(rec types.ArticleRecord) int {
	age := articleAge(rec.PubYear)
	base := float64(max(1, age*3))

	title := strings.ToLower(rec.Title)
	switch {
	case strings.Contains(title, "meta-analysis"), strings.Contains(title, "systematic review"):
		base *= 3
	case strings.Contains(title, "randomized"), strings.Contains(title, "randomised"), strings.Contains(title, "rct"):
		base *= 2
	case strings.Contains(title, "clinical trial"):
		base *= 1.5
	}
	return int(base)
}

// AnalyzeCitations builds the citation-impact report for one record.
func AnalyzeCitations(rec types.ArticleRecord) types.CitationReport {
	citations := EstimateCitations(rec)
	age := articleAge(rec.PubYear)

	perYear := float64(citations) / float64(max(age, 1))
	influence := math.Min(100, float64(citations)*perYear/10)

	return types.CitationReport{
		PMID:               rec.PMID,
		EstimatedCitations: citations,
		CitationsPerYear:   math.Round(perYear*100) / 100,
		NetworkInfluence:   math.Round(influence*10) / 10,
		Trend:              trend(citations, age),
	}
}

// trend buckets the estimate into a categorical label.
func trend(citations, age int) string {
	switch {
	case age < 3 && citations > 10:
		return "rapidly-emerging"
	case citations > 50:
		return "high-impact"
	case citations > 20:
		return "steady"
	case citations > 5:
		return "moderate"
	default:
		return "limited"
	}
}

// articleAge returns whole years since publication, at least 1 so rate
// arithmetic stays defined. Unknown years count as 1.
func articleAge(pubYear int) int {
	if pubYear <= 0 {
		return 1
	}
	return max(1, time.Now().Year()-pubYear)
}
