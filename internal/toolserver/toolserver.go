// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolserver exposes the pipeline operations as MCP tools over a
// stdio transport. Each tool is independently invocable, takes a fixed
// parameter list, returns a single text block, and holds no state across
// invocations. Tool failures are returned as error results; nothing here
// can crash the host runtime.
package toolserver

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/pdiddy/pubmed-engine/internal/research"
)

// Server registers the pubmed tools on an MCP server.
type Server struct {
	svc *research.Service
	log zerolog.Logger
}

// NewServer builds a Server around the research service. Logs go to the
// given logger (stderr in practice, since stdout carries the transport).
func NewServer(svc *research.Service, log zerolog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context, version string) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "pubmed",
		Version: version,
	}, nil)
	s.register(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

// Tool argument structs. Pointer fields are optional parameters.

type searchArgs struct {
	Query      string `json:"query" jsonschema:"the search term, e.g. 'exercise therapy chronic pain'"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"maximum number of articles to return (default 10, max 100)"`
}

type pmidArgs struct {
	PMID string `json:"pmid" jsonschema:"PubMed ID of the article"`
}

type authorArgs struct {
	Author     string `json:"author" jsonschema:"author name, e.g. 'Smith J'"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"maximum number of articles to consider (default 10)"`
}

type recentArgs struct {
	Topic string `json:"topic" jsonschema:"the search topic"`
	Days  *int   `json:"days,omitempty" jsonschema:"number of days to look back (default 30, max 365)"`
}

type picoArgs struct {
	PMID     string `json:"pmid" jsonschema:"PubMed ID of the article to analyze"`
	Question string `json:"clinical_question,omitempty" jsonschema:"optional clinical question for context"`
}

func (s *Server) register(server *mcp.Server) {
	run := func(ctx context.Context, name string, call func(context.Context) (string, error)) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		text, err := call(ctx)
		evt := s.log.Info().Str("tool", name).Dur("elapsed", time.Since(start))
		if err != nil {
			evt.Err(err).Msg("tool call failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil, nil
		}
		evt.Msg("tool call completed")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_pubmed",
		Description: "Search PubMed for articles matching a query; returns PMIDs with record links.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in searchArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "search_pubmed", func(ctx context.Context) (string, error) {
			return s.svc.SearchArticles(ctx, in.Query, bound(in.MaxResults, 10))
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_article_details",
		Description: "Get bibliographic details (title, authors, journal, date, DOI, links) for a PMID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pmidArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "get_article_details", func(ctx context.Context) (string, error) {
			return s.svc.ArticleDetails(ctx, in.PMID)
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_article_abstract",
		Description: "Get the abstract text of an article by PMID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pmidArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "get_article_abstract", func(ctx context.Context) (string, error) {
			return s.svc.ArticleAbstract(ctx, in.PMID)
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_by_author",
		Description: "Search PubMed articles by author name (best-effort name matching).",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in authorArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "search_by_author", func(ctx context.Context) (string, error) {
			return s.svc.SearchAuthor(ctx, in.Author, bound(in.MaxResults, 10))
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_papers",
		Description: "Search for papers on a topic published within the last N days, newest first.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in recentArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "recent_papers", func(ctx context.Context) (string, error) {
			return s.svc.RecentPapers(ctx, in.Topic, bound(in.Days, 30), 20)
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clinical_search",
		Description: "Search PubMed and attach a heuristic quality assessment (study design, bias flags, PICO) to each hit.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in searchArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "clinical_search", func(ctx context.Context) (string, error) {
			return s.svc.ClinicalSearch(ctx, in.Query, bound(in.MaxResults, 5))
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pico_analysis",
		Description: "Extract Population, Intervention, Comparison, and Outcome summaries from an article's abstract.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in picoArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "pico_analysis", func(ctx context.Context) (string, error) {
			return s.svc.PICOAnalysis(ctx, in.PMID, in.Question)
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "evidence_quality_assessment",
		Description: "Score an article's evidence quality with rule-based heuristics: design classification, bias indicators, evidence level.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pmidArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "evidence_quality_assessment", func(ctx context.Context) (string, error) {
			return s.svc.EvidenceAssessment(ctx, in.PMID)
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "author_credibility",
		Description: "Build an estimated credibility profile for an author name from their PubMed record sample.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in authorArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "author_credibility", func(ctx context.Context) (string, error) {
			return s.svc.AuthorCredibility(ctx, in.Author, bound(in.MaxResults, 10))
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "citation_analysis",
		Description: "Estimate citation impact for an article from its age and title cues (heuristic, not real citation data).",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pmidArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "citation_analysis", func(ctx context.Context) (string, error) {
			return s.svc.CitationAnalysis(ctx, in.PMID)
		})
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "article_links",
		Description: "Compose canonical links (record page, DOI resolver, best-effort PDF) for a PMID.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in pmidArgs) (*mcp.CallToolResult, any, error) {
		return run(ctx, "article_links", func(ctx context.Context) (string, error) {
			return s.svc.ArticleLinks(ctx, in.PMID)
		})
	})
}

// bound dereferences an optional numeric argument with a default.
func bound(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
