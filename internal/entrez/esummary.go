// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// Summary fetches the bibliographic metadata for one PMID via esummary.
// The returned record has no abstract; Fetch combines Summary and Abstract.
func (c *Client) Summary(ctx context.Context, pmid string) (types.ArticleRecord, error) {
	pmid = strings.TrimSpace(pmid)
	if pmid == "" {
		return types.ArticleRecord{}, fmt.Errorf("pmid is empty")
	}

	params := url.Values{
		"id":      {pmid},
		"retmode": {"json"},
	}

	resp, err := c.get(ctx, esummaryBase, params)
	if err != nil {
		return types.ArticleRecord{}, err
	}
	defer resp.Body.Close()

	var sr esummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return types.ArticleRecord{}, fmt.Errorf("parsing esummary response: %w", err)
	}

	raw, ok := sr.Result[pmid]
	if !ok {
		return types.ArticleRecord{}, fmt.Errorf("pmid %s: %w", pmid, ErrNotFound)
	}

	var doc esummaryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return types.ArticleRecord{}, fmt.Errorf("parsing esummary document: %w", err)
	}
	// A bad UID still gets an entry in the result map, with an error field
	// instead of a document.
	if doc.Error != "" {
		return types.ArticleRecord{}, fmt.Errorf("pmid %s: %w", pmid, ErrNotFound)
	}

	rec := types.ArticleRecord{
		PMID:    pmid,
		Title:   strings.TrimSpace(doc.Title),
		Journal: doc.Source,
		PubDate: doc.PubDate,
		PubYear: parseYear(doc.PubDate),
		DOI:     doc.doi(),
	}
	for _, a := range doc.Authors {
		if a.Name != "" {
			rec.Authors = append(rec.Authors, types.Author{Name: a.Name})
		}
	}
	return rec, nil
}

// Fetch retrieves the full ArticleRecord for one PMID: esummary metadata
// plus the efetch abstract. A record that exists but has no abstract is
// still returned, with empty abstract fields.
func (c *Client) Fetch(ctx context.Context, pmid string) (types.ArticleRecord, error) {
	rec, err := c.Summary(ctx, pmid)
	if err != nil {
		return types.ArticleRecord{}, err
	}

	abs, err := c.Abstract(ctx, pmid)
	if err != nil {
		return types.ArticleRecord{}, err
	}
	rec.Abstract = abs.Text
	rec.AbstractSections = abs.Sections
	if rec.Title == "" {
		rec.Title = abs.Title
	}
	return rec, nil
}

// yearPattern matches a plausible publication year inside a pubdate string
// like "2023 Mar 14" or "2019 Nov-Dec".
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

func parseYear(pubdate string) int {
	m := yearPattern.FindString(pubdate)
	if m == "" {
		return 0
	}
	y, _ := strconv.Atoi(m)
	return y
}

// esummary JSON structures. The result object maps each UID to its document
// alongside a "uids" list, so the documents are kept raw and unmarshaled per
// requested PMID.
type esummaryResponse struct {
	Result esummaryResult `json:"result"`
}

type esummaryResult map[string]json.RawMessage

type esummaryDoc struct {
	Title       string            `json:"title"`
	Authors     []esummaryAuthor  `json:"authors"`
	Source      string            `json:"source"`
	PubDate     string            `json:"pubdate"`
	ELocationID string            `json:"elocationid"`
	ArticleIDs  []esummaryArticle `json:"articleids"`
	Error       string            `json:"error"`
}

type esummaryAuthor struct {
	Name     string `json:"name"`
	AuthType string `json:"authtype"`
}

type esummaryArticle struct {
	IDType string `json:"idtype"`
	Value  string `json:"value"`
}

// doi returns the bare DOI from the articleids list, falling back to the
// elocationid field ("doi: 10.1000/xyz123").
func (d esummaryDoc) doi() string {
	for _, id := range d.ArticleIDs {
		if id.IDType == "doi" && id.Value != "" {
			return id.Value
		}
	}
	loc := strings.TrimSpace(d.ELocationID)
	if rest, ok := strings.CutPrefix(loc, "doi:"); ok {
		return strings.TrimSpace(rest)
	}
	return ""
}
