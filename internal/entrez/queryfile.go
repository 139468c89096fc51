// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// QueryFile is the on-disk representation of a search and the records it
// returned. A search can be saved to a file and reviewed later without
// re-querying the API.
type QueryFile struct {
	Term    string                `yaml:"term"`
	Options QueryFileOptions      `yaml:"options"`
	PMIDs   []string              `yaml:"pmids"`
	Records []types.ArticleRecord `yaml:"records,omitempty"`
	Summary QueryFileSummary      `yaml:"summary"`
}

// QueryFileOptions stores the search options that produced the results.
type QueryFileOptions struct {
	MaxResults int    `yaml:"max_results"`
	Sort       string `yaml:"sort,omitempty"`
}

// QueryFileSummary stores result statistics and a timestamp.
type QueryFileSummary struct {
	Total     int       `yaml:"total"`
	Returned  int       `yaml:"returned"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves a search term, its options, and its results to a
// YAML file. records may be nil when only PMIDs were gathered.
func WriteQueryFile(path, term string, opts SearchOptions, out SearchOutput, records []types.ArticleRecord) error {
	qf := QueryFile{
		Term: term,
		Options: QueryFileOptions{
			MaxResults: opts.MaxResults,
			Sort:       opts.Sort,
		},
		PMIDs:   out.PMIDs,
		Records: records,
		Summary: QueryFileSummary{
			Total:     out.Total,
			Returned:  len(out.PMIDs),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
