// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders pipeline results as human-readable text blocks.
// Every function is a pure transform to an io.Writer; malformed or empty
// input renders placeholder text, never an error.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pubmed-engine/internal/links"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

const (
	ruleHeavy = "======================================================================"
	ruleLight = "----------------------------------------------------------------------"
)

// WriteSearchResults renders a PMID list with record links. total is the
// service-reported match count, which can exceed len(pmids).
func WriteSearchResults(w io.Writer, term string, pmids []string, total int) {
	if len(pmids) == 0 {
		fmt.Fprintf(w, "No articles found matching %q.\n", term)
		return
	}

	fmt.Fprintf(w, "Found %d articles for %q:\n\n", total, term)
	for i, pmid := range pmids {
		l := links.Compose(pmid, "")
		fmt.Fprintf(w, "%2d. PMID %s  %s\n", i+1, pmid, l.Record)
	}
	if total > len(pmids) {
		fmt.Fprintf(w, "\n... and %d more articles.\n", total-len(pmids))
	}
}

// WriteArticle renders the bibliographic details for one record.
func WriteArticle(w io.Writer, rec types.ArticleRecord) {
	if rec.PMID == "" {
		fmt.Fprintln(w, "No article details available.")
		return
	}

	fmt.Fprintf(w, "Title:    %s\n", orPlaceholder(rec.Title, "(no title)"))
	fmt.Fprintf(w, "Authors:  %s\n", orPlaceholder(joinAuthors(rec.Authors), "(no authors listed)"))
	fmt.Fprintf(w, "Journal:  %s\n", orPlaceholder(rec.Journal, "(unknown)"))
	fmt.Fprintf(w, "Date:     %s\n", orPlaceholder(rec.PubDate, "(unknown)"))
	fmt.Fprintf(w, "PMID:     %s\n", rec.PMID)
	if rec.DOI != "" {
		fmt.Fprintf(w, "DOI:      %s\n", rec.DOI)
	}

	l := links.Compose(rec.PMID, rec.DOI)
	fmt.Fprintf(w, "\nLinks:\n")
	fmt.Fprintf(w, "  PubMed: %s\n", l.Record)
	if l.DOI != "" {
		fmt.Fprintf(w, "  DOI:    %s\n", l.DOI)
	}
}

// WriteAbstract renders title, PMID, and abstract text, keeping structured
// section labels when present.
func WriteAbstract(w io.Writer, rec types.ArticleRecord) {
	fmt.Fprintf(w, "Title: %s\n", orPlaceholder(rec.Title, "(no title)"))
	fmt.Fprintf(w, "PMID:  %s\n\n", orPlaceholder(rec.PMID, "(unknown)"))

	if !rec.HasAbstract() {
		fmt.Fprintln(w, "No abstract available.")
		return
	}
	fmt.Fprintln(w, "Abstract:")
	if len(rec.AbstractSections) > 1 {
		for _, sec := range rec.AbstractSections {
			if sec.Label != "" {
				fmt.Fprintf(w, "%s: %s\n", sec.Label, sec.Text)
			} else {
				fmt.Fprintln(w, sec.Text)
			}
		}
		return
	}
	fmt.Fprintln(w, rec.Abstract)
}

// WriteAssessment renders a quality assessment.
func WriteAssessment(w io.Writer, rec types.ArticleRecord, qa types.QualityAssessment) {
	fmt.Fprintln(w, "QUALITY ASSESSMENT")
	fmt.Fprintln(w, ruleHeavy)

	if qa.Insufficient {
		fmt.Fprintf(w, "PMID %s: abstract too short to score (insufficient data).\n", rec.PMID)
		return
	}

	fmt.Fprintf(w, "Quality score:      %.1f/100\n", qa.QualityScore)
	fmt.Fprintf(w, "Study design:       %s\n", qa.Design.Display())
	fmt.Fprintf(w, "Evidence level:     %d\n", qa.EvidenceLevel)
	fmt.Fprintf(w, "Clinical relevance: %.1f/100\n", qa.ClinicalRelevance)

	fmt.Fprintf(w, "\nBias assessment:\n")
	for _, f := range qa.Bias {
		fmt.Fprintf(w, "  %-12s %s risk (%.0f%%)", f.Category, f.Risk, f.Score*100)
		if len(f.Indicators) > 0 {
			fmt.Fprintf(w, "  indicators: %s", strings.Join(f.Indicators, ", "))
		}
		fmt.Fprintln(w)
	}

	if len(qa.Recommendations) > 0 {
		fmt.Fprintf(w, "\nRecommendations:\n")
		for _, r := range qa.Recommendations {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
}

// WritePICOReport renders the PICO extraction with confidence markers.
func WritePICOReport(w io.Writer, rec types.ArticleRecord, qa types.QualityAssessment, question string) {
	fmt.Fprintln(w, "PICO ANALYSIS")
	fmt.Fprintln(w, ruleHeavy)
	if question != "" {
		fmt.Fprintf(w, "Clinical question: %s\n", question)
	}
	fmt.Fprintf(w, "PMID:  %s\n", rec.PMID)
	fmt.Fprintf(w, "Title: %s\n\n", orPlaceholder(rec.Title, "(no title)"))

	if qa.Insufficient {
		fmt.Fprintln(w, "Abstract too short to analyze (insufficient data).")
		return
	}

	writePICOField(w, "Population", qa.PICO.Population)
	writePICOField(w, "Intervention", qa.PICO.Intervention)
	writePICOField(w, "Comparison", qa.PICO.Comparison)
	writePICOField(w, "Outcome", qa.PICO.Outcome)

	fmt.Fprintf(w, "\nQuality score: %.1f/100  Design: %s\n", qa.QualityScore, qa.Design.Display())
}

func writePICOField(w io.Writer, name string, f types.PICOField) {
	if f.Text == "" {
		fmt.Fprintf(w, "%-13s (not identified)\n", name+":")
		return
	}
	fmt.Fprintf(w, "%-13s [%.0f%% confidence]\n", name+":", f.Confidence*100)
	fmt.Fprintf(w, "  %s\n", truncate(f.Text, 300))
}

// WriteEvidenceReport renders the full evidence-quality assessment.
func WriteEvidenceReport(w io.Writer, rec types.ArticleRecord, qa types.QualityAssessment) {
	fmt.Fprintln(w, "EVIDENCE QUALITY ASSESSMENT")
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintf(w, "Title: %s\n", orPlaceholder(rec.Title, "(no title)"))
	fmt.Fprintf(w, "PMID:  %s", rec.PMID)
	if rec.PubYear > 0 {
		fmt.Fprintf(w, "  (%d)", rec.PubYear)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, ruleLight)

	if qa.Insufficient {
		fmt.Fprintln(w, "Abstract too short to assess (insufficient data).")
		return
	}

	WriteAssessment(w, rec, qa)

	fmt.Fprintf(w, "\nOverall: %s\n", evidenceVerdict(qa))
}

// evidenceVerdict summarizes the assessment in one line.
func evidenceVerdict(qa types.QualityAssessment) string {
	switch {
	case qa.QualityScore >= 80:
		return "strong evidence; high confidence in findings"
	case qa.QualityScore >= 70:
		return "moderate evidence; good quality with minor limitations"
	case qa.QualityScore >= 60:
		return "moderate evidence; consider as part of a broader evidence base"
	default:
		return "weak evidence; significant quality concerns, interpret cautiously"
	}
}

// WriteAuthorProfile renders an author credibility profile. All counts are
// presented as estimates.
func WriteAuthorProfile(w io.Writer, p types.AuthorProfile) {
	fmt.Fprintln(w, "AUTHOR CREDIBILITY (estimated)")
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintf(w, "Author:               %s\n", orPlaceholder(p.Name, "(unknown)"))
	fmt.Fprintf(w, "Publications found:   %d\n", p.Publications)
	fmt.Fprintf(w, "Estimated citations:  %d\n", p.EstimatedCitations)
	fmt.Fprintf(w, "Estimated h-index:    %.1f\n", p.EstimatedHIndex)
	fmt.Fprintf(w, "Experience:           %d years\n", p.ExperienceYears)
	if p.Affiliation != "" {
		fmt.Fprintf(w, "Affiliation:          %s\n", p.Affiliation)
	}
	fmt.Fprintf(w, "Credibility score:    %.1f/100 (%s)\n", p.CredibilityScore, p.Band)
	fmt.Fprintln(w, "\nNote: citation and h-index figures are heuristic estimates; author")
	fmt.Fprintln(w, "name matching does not disambiguate people sharing a name.")
}

// WriteCitationReport renders estimated citation impact for one record.
func WriteCitationReport(w io.Writer, rec types.ArticleRecord, cr types.CitationReport) {
	fmt.Fprintln(w, "CITATION IMPACT (estimated)")
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintf(w, "Title: %s\n", orPlaceholder(rec.Title, "(no title)"))
	fmt.Fprintf(w, "PMID:  %s", cr.PMID)
	if rec.PubYear > 0 {
		fmt.Fprintf(w, "  (%d)", rec.PubYear)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, ruleLight)
	fmt.Fprintf(w, "Estimated citations: %d\n", cr.EstimatedCitations)
	fmt.Fprintf(w, "Citations per year:  %.2f\n", cr.CitationsPerYear)
	fmt.Fprintf(w, "Network influence:   %.1f/100\n", cr.NetworkInfluence)
	fmt.Fprintf(w, "Trend:               %s\n", cr.Trend)

	if l := links.Compose(cr.PMID, rec.DOI); l.Record != "" {
		fmt.Fprintf(w, "\nRelated records:     %s\n", relatedRecordsURL(cr.PMID))
		fmt.Fprintf(w, "Record:              %s\n", l.Record)
	}
}

// relatedRecordsURL is PubMed's similar-articles listing for a record.
func relatedRecordsURL(pmid string) string {
	return "https://pubmed.ncbi.nlm.nih.gov/?linkname=pubmed_pubmed&from_uid=" + pmid
}

// WriteLinks renders the composed link set for one record.
func WriteLinks(w io.Writer, rec types.ArticleRecord, l types.ArticleLinks) {
	if l.Record == "" {
		fmt.Fprintln(w, "No links available.")
		return
	}
	fmt.Fprintf(w, "Links for PMID %s", rec.PMID)
	if rec.Title != "" {
		fmt.Fprintf(w, " (%s)", truncate(rec.Title, 60))
	}
	fmt.Fprintln(w, ":")
	fmt.Fprintf(w, "  Record: %s\n", l.Record)
	if l.DOI != "" {
		fmt.Fprintf(w, "  DOI:    %s\n", l.DOI)
	}
	if l.PDF != "" {
		fmt.Fprintf(w, "  PDF:    %s  (best-effort, not verified)\n", l.PDF)
	}
}

func joinAuthors(authors []types.Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
