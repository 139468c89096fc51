// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EntrezConfig holds settings for the NCBI E-utilities client.
type EntrezConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is the contact address NCBI asks every client to identify
	// itself with. Required for polite use.
	Email string `json:"email" yaml:"email"`

	// APIKey raises the permitted request rate from 3 to 10 requests per
	// second. Optional.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Tool is the tool name sent with every request (default "pubmed-engine").
	Tool string `json:"tool" yaml:"tool"`

	// MaxResults is the default result bound for searches (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// AssessConfig holds settings for the heuristic scorer.
type AssessConfig struct {
	// MinAbstractLen is the minimum abstract length in characters below
	// which an article is marked insufficient rather than scored
	// (default 120).
	MinAbstractLen int `json:"min_abstract_len" yaml:"min_abstract_len"`
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	Entrez EntrezConfig `json:"entrez" yaml:"entrez"`
	Assess AssessConfig `json:"assess" yaml:"assess"`
}

// Defaults returns a PipelineConfig with every default filled in.
func Defaults() PipelineConfig {
	return PipelineConfig{
		Entrez: EntrezConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "pubmed-engine/0.1",
			},
			Tool:       "pubmed-engine",
			MaxResults: 10,
		},
		Assess: AssessConfig{
			MinAbstractLen: 120,
		},
	}
}
