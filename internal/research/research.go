// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research composes the entrez, assess, scholar, links, and report
// components into the operations the tool surfaces expose. Every operation
// is a stateless request/response transform returning one text block;
// failures come back as error values, never as panics.
package research

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/pubmed-engine/internal/assess"
	"github.com/pdiddy/pubmed-engine/internal/entrez"
	"github.com/pdiddy/pubmed-engine/internal/links"
	"github.com/pdiddy/pubmed-engine/internal/report"
	"github.com/pdiddy/pubmed-engine/internal/scholar"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// Bounds for the composite operations, matching the upstream limits the
// single-call operations inherit from the client.
const (
	maxClinicalResults   = 20
	maxCredibilityPapers = 50
	credibilitySample    = 5
)

// Service wires the pipeline components. Construct with NewService.
type Service struct {
	entrez  *entrez.Client
	assess  types.AssessConfig
	matcher scholar.Matcher
}

// NewService builds a Service. matcher may be nil, in which case substring
// matching is used.
func NewService(client *entrez.Client, assessCfg types.AssessConfig, matcher scholar.Matcher) *Service {
	if matcher == nil {
		matcher = scholar.SubstringMatcher{}
	}
	return &Service{entrez: client, assess: assessCfg, matcher: matcher}
}

// SearchArticles runs a free-text search and renders the PMID list.
func (s *Service) SearchArticles(ctx context.Context, term string, maxResults int) (string, error) {
	out, err := s.entrez.Search(ctx, term, entrez.SearchOptions{MaxResults: maxResults})
	if err != nil {
		return "", fmt.Errorf("search unavailable: %w", err)
	}
	var b strings.Builder
	report.WriteSearchResults(&b, term, out.PMIDs, out.Total)
	return b.String(), nil
}

// SearchAuthor runs an author-field search and renders the PMID list.
func (s *Service) SearchAuthor(ctx context.Context, author string, maxResults int) (string, error) {
	out, err := s.entrez.SearchByAuthor(ctx, author, entrez.SearchOptions{MaxResults: maxResults})
	if err != nil {
		return "", fmt.Errorf("search unavailable: %w", err)
	}
	var b strings.Builder
	report.WriteSearchResults(&b, author, out.PMIDs, out.Total)
	return b.String(), nil
}

// RecentPapers searches for articles on topic published in the last days
// days and renders the PMID list, newest first.
func (s *Service) RecentPapers(ctx context.Context, topic string, days, maxResults int) (string, error) {
	out, err := s.entrez.SearchRecent(ctx, topic, days, entrez.SearchOptions{MaxResults: maxResults})
	if err != nil {
		return "", fmt.Errorf("search unavailable: %w", err)
	}
	var b strings.Builder
	report.WriteSearchResults(&b, topic, out.PMIDs, out.Total)
	return b.String(), nil
}

// ArticleDetails fetches and renders the bibliographic record for one PMID.
func (s *Service) ArticleDetails(ctx context.Context, pmid string) (string, error) {
	rec, err := s.entrez.Summary(ctx, pmid)
	if err != nil {
		if errors.Is(err, entrez.ErrNotFound) {
			return fmt.Sprintf("No record found for PMID %s.\n", pmid), nil
		}
		return "", err
	}
	var b strings.Builder
	report.WriteArticle(&b, rec)
	return b.String(), nil
}

// ArticleAbstract fetches and renders the abstract for one PMID.
func (s *Service) ArticleAbstract(ctx context.Context, pmid string) (string, error) {
	rec, err := s.entrez.Fetch(ctx, pmid)
	if err != nil {
		if errors.Is(err, entrez.ErrNotFound) {
			return fmt.Sprintf("No record found for PMID %s.\n", pmid), nil
		}
		return "", err
	}
	var b strings.Builder
	report.WriteAbstract(&b, rec)
	return b.String(), nil
}

// ClinicalSearch searches, then fetches and assesses each hit, rendering
// one combined report. The bound is clamped to 20 because each hit costs
// two further upstream requests.
func (s *Service) ClinicalSearch(ctx context.Context, term string, maxResults int) (string, error) {
	if maxResults > maxClinicalResults {
		maxResults = maxClinicalResults
	}
	out, err := s.entrez.Search(ctx, term, entrez.SearchOptions{MaxResults: maxResults})
	if err != nil {
		return "", fmt.Errorf("search unavailable: %w", err)
	}
	if len(out.PMIDs) == 0 {
		return fmt.Sprintf("No articles found matching %q.\n", term), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CLINICAL SEARCH: %q — %d articles analyzed\n\n", term, len(out.PMIDs))

	for i, pmid := range out.PMIDs {
		fmt.Fprintf(&b, "--- Article %d of %d ---\n", i+1, len(out.PMIDs))
		rec, err := s.entrez.Fetch(ctx, pmid)
		if err != nil {
			// One bad record does not abort the batch.
			fmt.Fprintf(&b, "PMID %s: unavailable (%v)\n\n", pmid, err)
			continue
		}
		report.WriteArticle(&b, rec)
		qa := assess.Assess(rec.Title, rec.Abstract, rec.PubYear, s.assess)
		fmt.Fprintln(&b)
		report.WriteAssessment(&b, rec, qa)
		fmt.Fprintln(&b)
	}
	return b.String(), nil
}

// PICOAnalysis fetches one article and renders its PICO extraction.
// question is optional context echoed into the report.
func (s *Service) PICOAnalysis(ctx context.Context, pmid, question string) (string, error) {
	rec, err := s.entrez.Fetch(ctx, pmid)
	if err != nil {
		if errors.Is(err, entrez.ErrNotFound) {
			return fmt.Sprintf("No record found for PMID %s.\n", pmid), nil
		}
		return "", err
	}
	qa := assess.Assess(rec.Title, rec.Abstract, rec.PubYear, s.assess)
	var b strings.Builder
	report.WritePICOReport(&b, rec, qa, question)
	return b.String(), nil
}

// EvidenceAssessment fetches one article and renders the full
// evidence-quality report.
func (s *Service) EvidenceAssessment(ctx context.Context, pmid string) (string, error) {
	rec, err := s.entrez.Fetch(ctx, pmid)
	if err != nil {
		if errors.Is(err, entrez.ErrNotFound) {
			return fmt.Sprintf("No record found for PMID %s.\n", pmid), nil
		}
		return "", err
	}
	qa := assess.Assess(rec.Title, rec.Abstract, rec.PubYear, s.assess)
	var b strings.Builder
	report.WriteEvidenceReport(&b, rec, qa)
	return b.String(), nil
}

// AuthorCredibility searches for the author's publications, fetches a
// sample, and renders the aggregated profile. maxResults is clamped to 50.
func (s *Service) AuthorCredibility(ctx context.Context, author string, maxResults int) (string, error) {
	if maxResults > maxCredibilityPapers {
		maxResults = maxCredibilityPapers
	}
	out, err := s.entrez.SearchByAuthor(ctx, author, entrez.SearchOptions{MaxResults: maxResults})
	if err != nil {
		return "", fmt.Errorf("search unavailable: %w", err)
	}
	if len(out.PMIDs) == 0 {
		return fmt.Sprintf("No publications found for author %q.\n", author), nil
	}

	sample := out.PMIDs
	if len(sample) > credibilitySample {
		sample = sample[:credibilitySample]
	}
	var records []types.ArticleRecord
	for _, pmid := range sample {
		rec, err := s.entrez.Summary(ctx, pmid)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("could not fetch any records for author %q", author)
	}

	profile := scholar.BuildProfile(author, out.Total, records, s.matcher)
	var b strings.Builder
	report.WriteAuthorProfile(&b, profile)
	return b.String(), nil
}

// CitationAnalysis fetches one article and renders its estimated citation
// impact.
func (s *Service) CitationAnalysis(ctx context.Context, pmid string) (string, error) {
	rec, err := s.entrez.Summary(ctx, pmid)
	if err != nil {
		if errors.Is(err, entrez.ErrNotFound) {
			return fmt.Sprintf("No record found for PMID %s.\n", pmid), nil
		}
		return "", err
	}
	cr := scholar.AnalyzeCitations(rec)
	var b strings.Builder
	report.WriteCitationReport(&b, rec, cr)
	return b.String(), nil
}

// ArticleLinks fetches one record's metadata and renders its composed
// link set.
func (s *Service) ArticleLinks(ctx context.Context, pmid string) (string, error) {
	rec, err := s.entrez.Summary(ctx, pmid)
	if err != nil {
		if errors.Is(err, entrez.ErrNotFound) {
			return fmt.Sprintf("No record found for PMID %s.\n", pmid), nil
		}
		return "", err
	}
	l := links.Compose(rec.PMID, rec.DOI)
	var b strings.Builder
	report.WriteLinks(&b, rec, l)
	return b.String(), nil
}
