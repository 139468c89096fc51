// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-engine pipeline.
package types

// ArticleRecord is the bibliographic record for one PubMed article. It is
// populated entirely from the E-utilities responses for a single request and
// never mutated afterwards.
type ArticleRecord struct {
	// PMID is PubMed's unique key for the record.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title as returned by the service.
	Title string `json:"title" yaml:"title"`

	// Authors lists the article authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Journal is the journal or source name.
	Journal string `json:"journal" yaml:"journal"`

	// PubDate is the publication date string as reported by esummary
	// (e.g. "2023 Mar 14"); PubYear is the parsed year, 0 if unknown.
	PubDate string `json:"pub_date" yaml:"pub_date"`
	PubYear int    `json:"pub_year" yaml:"pub_year"`

	// Abstract is the full abstract text. Structured abstracts keep their
	// section labels in AbstractSections; Abstract joins them.
	Abstract         string            `json:"abstract" yaml:"abstract"`
	AbstractSections []AbstractSection `json:"abstract_sections,omitempty" yaml:"abstract_sections,omitempty"`

	// DOI is the bare DOI ("10.1000/xyz123"), empty when the record has none.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// AbstractSection is one labeled section of a structured abstract
// (e.g. "METHODS", "RESULTS"). Label is empty for unstructured abstracts.
type AbstractSection struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Text  string `json:"text" yaml:"text"`
}

// Author is one article author.
type Author struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// HasAbstract reports whether the record carries any abstract text.
func (r ArticleRecord) HasAbstract() bool {
	return r.Abstract != ""
}
