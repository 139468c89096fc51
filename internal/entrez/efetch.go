// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// AbstractResult is the parsed efetch payload for one article.
type AbstractResult struct {
	PMID     string
	Title    string
	Text     string
	Sections []types.AbstractSection
}

// Abstract fetches and parses the abstract for one PMID via efetch XML.
// Structured abstracts keep their section labels; Text joins all sections
// in document order. A record that exists without an abstract yields an
// AbstractResult with empty Text, not an error.
func (c *Client) Abstract(ctx context.Context, pmid string) (AbstractResult, error) {
	pmid = strings.TrimSpace(pmid)
	if pmid == "" {
		return AbstractResult{}, fmt.Errorf("pmid is empty")
	}

	params := url.Values{
		"id":      {pmid},
		"rettype": {"abstract"},
		"retmode": {"xml"},
	}

	resp, err := c.get(ctx, efetchBase, params)
	if err != nil {
		return AbstractResult{}, err
	}
	defer resp.Body.Close()

	var set pubmedArticleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return AbstractResult{}, fmt.Errorf("parsing efetch response: %w", err)
	}

	if len(set.Articles) == 0 {
		return AbstractResult{}, fmt.Errorf("pmid %s: %w", pmid, ErrNotFound)
	}

	art := set.Articles[0].Article
	res := AbstractResult{
		PMID:  pmid,
		Title: strings.TrimSpace(art.Title),
	}

	var parts []string
	for _, sec := range art.Abstract.Sections {
		text := strings.TrimSpace(sec.Text)
		if text == "" {
			continue
		}
		label := strings.TrimSpace(sec.Label)
		res.Sections = append(res.Sections, types.AbstractSection{Label: label, Text: text})
		if label != "" {
			parts = append(parts, label+": "+text)
		} else {
			parts = append(parts, text)
		}
	}
	res.Text = strings.Join(parts, "\n")
	return res, nil
}

// efetch XML structures, reduced to the fields the pipeline reads.
type pubmedArticleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Article citationArticle `xml:"MedlineCitation>Article"`
}

type citationArticle struct {
	Title    string          `xml:"ArticleTitle"`
	Abstract abstractElement `xml:"Abstract"`
}

type abstractElement struct {
	Sections []abstractText `xml:"AbstractText"`
}

type abstractText struct {
	Label string `xml:"Label,attr"`
	// ,innerxml would keep markup; chardata drops inline tags like <i>,
	// which is what the text heuristics want.
	Text string `xml:",chardata"`
}
