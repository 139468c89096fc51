// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links composes canonical URLs for a PubMed record. Composition is
// pure string templating over the PMID and DOI; nothing verifies that a
// composed link resolves.
package links

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// Base URLs for link composition. Declared as vars so tests can pin them.
var (
	recordBase = "https://pubmed.ncbi.nlm.nih.gov/"
	doiBase    = "https://doi.org/"
	pmcBase    = "https://www.ncbi.nlm.nih.gov/pmc/"
)

// doiPattern matches bare DOIs: "10.1000/xyz123".
var doiPattern = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)

// NormalizeDOI strips "doi:" and resolver-URL prefixes and validates the
// remainder against the DOI pattern. Returns "" for anything that does not
// look like a DOI.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	if rest, ok := strings.CutPrefix(doi, "doi:"); ok {
		doi = strings.TrimSpace(rest)
	}
	if !doiPattern.MatchString(doi) {
		return ""
	}
	return doi
}

// Compose returns the canonical link set for a record. The PDF link is the
// DOI resolver when a DOI exists (the publisher page is the closest thing
// to a full-text URL that can be templated without dereferencing), and the
// PubMed Central article page otherwise, as a best-effort guess.
func Compose(pmid, doi string) types.ArticleLinks {
	pmid = strings.TrimSpace(pmid)
	l := types.ArticleLinks{}
	if pmid == "" {
		return l
	}
	l.Record = recordBase + pmid + "/"

	if norm := NormalizeDOI(doi); norm != "" {
		l.DOI = doiBase + norm
		l.PDF = doiBase + norm
	} else {
		l.PDF = pmcBase + "?term=" + pmid
	}
	return l
}
