// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entrez queries the NCBI E-utilities API for PubMed records.
// It covers the three endpoints the pipeline needs: esearch (query to PMID
// list), esummary (PMID to bibliographic metadata), and efetch (PMID to
// abstract text). Outbound requests are paced client-side because NCBI
// enforces its rate limit server-side: 3 requests per second without an API
// key, 10 with one.
package entrez

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pubmed-engine/internal/httputil"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	esummaryBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
	efetchBase   = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// ErrNotFound reports that PubMed has no record for the requested PMID.
var ErrNotFound = errors.New("record not found")

// MaxResultBound is the largest result bound a search accepts; larger
// requests are clamped down to it.
const MaxResultBound = 100

// Client is a paced E-utilities client. The zero value is not usable;
// construct with NewClient.
type Client struct {
	http    *http.Client
	cfg     types.EntrezConfig
	limiter *rate.Limiter
}

// NewClient builds a Client from cfg. The request rate is 3/s, or 10/s when
// cfg.APIKey is set.
func NewClient(cfg types.EntrezConfig) *Client {
	rps := rate.Limit(3)
	if cfg.APIKey != "" {
		rps = 10
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rps, 1),
	}
}

// get performs one paced GET against base with the common identification
// parameters added. The caller owns the response body.
func (c *Client) get(ctx context.Context, base string, params url.Values) (*http.Response, error) {
	params.Set("db", "pubmed")
	if c.cfg.Tool != "" {
		params.Set("tool", c.cfg.Tool)
	}
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0)
	if err != nil {
		return nil, fmt.Errorf("E-utilities request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return resp, nil
}
