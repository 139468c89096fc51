// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"math"
	"strings"
	"time"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// Journals and institutions whose presence in a record's metadata nudges
// the credibility score upward.
var (
	highImpactJournals = []string{
		"nature", "science", "cell", "lancet", "nejm",
		"new england journal", "bmj", "jama",
	}
	topInstitutions = []string{
		"harvard", "mit", "stanford", "oxford", "cambridge",
		"johns hopkins", "mayo clinic", "cleveland clinic",
		"massachusetts general",
	}
)

// BuildProfile aggregates the records matching name into an AuthorProfile.
// totalPublications is the service-reported match count, which can exceed
// len(records) when only a sample was fetched. Every figure is an estimate.
func BuildProfile(name string, totalPublications int, records []types.ArticleRecord, m Matcher) types.AuthorProfile {
	if m == nil {
		m = SubstringMatcher{}
	}

	citations := 0
	earliestYear := 0
	affiliation := ""
	for _, rec := range records {
		// Records arrive from an author-field search, so all of them count
		// toward the citation tally; the matcher only refines affiliation.
		for _, a := range rec.Authors {
			if m.Match(name, a) {
				if affiliation == "" && a.Affiliation != "" {
					affiliation = a.Affiliation
				}
				break
			}
		}

		citations += EstimateCitations(rec)
		if rec.PubYear > 0 && (earliestYear == 0 || rec.PubYear < earliestYear) {
			earliestYear = rec.PubYear
		}
	}

	experience := 0
	if earliestYear > 0 {
		experience = max(0, time.Now().Year()-earliestYear)
	}

	hIndex := math.Min(50, math.Sqrt(float64(citations))*0.3)
	score := credibilityScore(totalPublications, citations, hIndex, experience, affiliation, records)

	return types.AuthorProfile{
		Name:               name,
		Publications:       totalPublications,
		EstimatedCitations: citations,
		EstimatedHIndex:    math.Round(hIndex*10) / 10,
		ExperienceYears:    experience,
		Affiliation:        affiliation,
		CredibilityScore:   score,
		Band:               band(score),
	}
}

// credibilityScore assembles the 0..100 score from stepped publication,
// citation, h-index, experience, and venue bonuses.
func credibilityScore(pubs, citations int, hIndex float64, experience int, affiliation string, records []types.ArticleRecord) float64 {
	score := 50.0

	switch {
	case pubs > 100:
		score += 20
	case pubs > 50:
		score += 15
	case pubs > 20:
		score += 10
	case pubs > 10:
		score += 5
	}

	switch {
	case citations > 1000:
		score += 15
	case citations > 500:
		score += 10
	case citations > 100:
		score += 5
	}

	score += math.Min(hIndex, 20)
	score += math.Min(float64(experience)*0.5, 10)

	if publishedInHighImpactJournal(records) {
		score += 10
	}
	if atTopInstitution(affiliation) {
		score += 8
	}

	score = math.Min(100, score)
	return math.Round(score*10) / 10
}

func publishedInHighImpactJournal(records []types.ArticleRecord) bool {
	for _, rec := range records {
		journal := strings.ToLower(rec.Journal)
		for _, j := range highImpactJournals {
			if strings.Contains(journal, j) {
				return true
			}
		}
	}
	return false
}

func atTopInstitution(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)
	for _, inst := range topInstitutions {
		if strings.Contains(lower, inst) {
			return true
		}
	}
	return false
}

func band(score float64) types.CredibilityBand {
	switch {
	case score >= 80:
		return types.BandEstablished
	case score >= 60:
		return types.BandEmerging
	default:
		return types.BandEarlyCareer
	}
}
