// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SearchOptions bounds and orders a search.
type SearchOptions struct {
	// MaxResults is the result bound. It must be positive; values above
	// MaxResultBound are clamped.
	MaxResults int

	// Sort orders the ID list: "relevance" (default) or "date".
	Sort string
}

// SearchOutput holds the matching PMIDs and the total match count reported
// by the service, which can exceed len(PMIDs).
type SearchOutput struct {
	PMIDs []string
	Total int
}

// Search queries PubMed for term and returns at most opts.MaxResults PMIDs,
// most relevant first. An empty ID list is a valid outcome. A non-positive
// bound is rejected before any network call.
func (c *Client) Search(ctx context.Context, term string, opts SearchOptions) (SearchOutput, error) {
	if strings.TrimSpace(term) == "" {
		return SearchOutput{}, fmt.Errorf("search term is empty")
	}
	if opts.MaxResults <= 0 {
		return SearchOutput{}, fmt.Errorf("result bound must be positive, got %d", opts.MaxResults)
	}
	if opts.MaxResults > MaxResultBound {
		opts.MaxResults = MaxResultBound
	}
	sort := opts.Sort
	if sort == "" {
		sort = "relevance"
	}

	params := url.Values{
		"term":    {term},
		"retmax":  {strconv.Itoa(opts.MaxResults)},
		"retmode": {"json"},
		"sort":    {sort},
	}

	resp, err := c.get(ctx, esearchBase, params)
	if err != nil {
		return SearchOutput{}, err
	}
	defer resp.Body.Close()

	var er esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return SearchOutput{}, fmt.Errorf("parsing esearch response: %w", err)
	}

	total, _ := strconv.Atoi(er.Result.Count)
	return SearchOutput{PMIDs: er.Result.IDList, Total: total}, nil
}

// SearchByAuthor queries PubMed for publications by the named author using
// the [Author] field tag. Matching is the service's own best-effort name
// match; homonymous authors are not disambiguated.
func (c *Client) SearchByAuthor(ctx context.Context, author string, opts SearchOptions) (SearchOutput, error) {
	if strings.TrimSpace(author) == "" {
		return SearchOutput{}, fmt.Errorf("author name is empty")
	}
	return c.Search(ctx, author+"[Author]", opts)
}

// SearchRecent queries PubMed for articles on topic published within the
// last days days, newest first. days is clamped to 365.
func (c *Client) SearchRecent(ctx context.Context, topic string, days int, opts SearchOptions) (SearchOutput, error) {
	if strings.TrimSpace(topic) == "" {
		return SearchOutput{}, fmt.Errorf("search topic is empty")
	}
	if days <= 0 {
		return SearchOutput{}, fmt.Errorf("day window must be positive, got %d", days)
	}
	if days > 365 {
		days = 365
	}

	const dateFmt = "2006/01/02"
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	term := fmt.Sprintf("%s AND (%s[PDAT] : %s[PDAT])",
		topic, start.Format(dateFmt), end.Format(dateFmt))

	opts.Sort = "date"
	return c.Search(ctx, term, opts)
}

// esearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
