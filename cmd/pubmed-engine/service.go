package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-engine/internal/entrez"
	"github.com/pdiddy/pubmed-engine/internal/research"
	"github.com/pdiddy/pubmed-engine/internal/secrets"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// pipelineConfig resolves the pipeline configuration: defaults, overridden by
// the config file / environment, with credentials from .secrets/ filling any
// gaps.
func pipelineConfig() types.PipelineConfig {
	cfg := types.Defaults()

	if v := viper.GetDuration("entrez.timeout"); v > 0 {
		cfg.Entrez.Timeout = v
	}
	if v := viper.GetString("entrez.email"); v != "" {
		cfg.Entrez.Email = v
	}
	if v := viper.GetString("entrez.api_key"); v != "" {
		cfg.Entrez.APIKey = v
	}
	if v := viper.GetString("entrez.tool"); v != "" {
		cfg.Entrez.Tool = v
	}
	if v := viper.GetInt("entrez.max_results"); v > 0 {
		cfg.Entrez.MaxResults = v
	}
	if v := viper.GetInt("assess.min_abstract_len"); v > 0 {
		cfg.Assess.MinAbstractLen = v
	}

	cfg.Entrez.Email = secretDefault(secrets.KeyEmail, cfg.Entrez.Email)
	cfg.Entrez.APIKey = secretDefault(secrets.KeyAPIKey, cfg.Entrez.APIKey)
	return cfg
}

// newService builds the research service from the resolved configuration.
func newService() (*research.Service, types.PipelineConfig) {
	cfg := pipelineConfig()
	client := entrez.NewClient(cfg.Entrez)
	return research.NewService(client, cfg.Assess, nil), cfg
}
