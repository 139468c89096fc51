// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ArticleLinks holds the canonical URLs composed for one record. The URLs
// are string templates over the PMID and DOI; nothing is verified to resolve.
type ArticleLinks struct {
	// Record is the PubMed record page.
	Record string `json:"record" yaml:"record"`

	// DOI is the doi.org resolver link, empty when the record has no DOI.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// PDF is a best-effort full-text link; only a guess when no DOI exists.
	PDF string `json:"pdf,omitempty" yaml:"pdf,omitempty"`
}
