package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-engine/internal/entrez"
	"github.com/pdiddy/pubmed-engine/internal/report"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search PubMed for articles matching a query",
	Long: `Search queries PubMed through the E-utilities esearch endpoint and prints
the matching PMIDs with record links, most relevant first.

A search can be saved to a YAML query file with --save (including the fetched
records) and replayed later with --load without touching the network.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of results to return (default 10, max 100)")
	searchCmd.Flags().String("sort", "", "result order: relevance (default) or date")
	searchCmd.Flags().String("save", "", "save the search and its records to a YAML query file")
	searchCmd.Flags().String("load", "", "render a previously saved query file instead of searching")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	loadPath, _ := cmd.Flags().GetString("load")
	if loadPath != "" {
		return renderQueryFile(loadPath)
	}

	if len(args) == 0 {
		return fmt.Errorf("provide a search term")
	}
	term := args[0]

	cfg := pipelineConfig()
	client := entrez.NewClient(cfg.Entrez)

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = cfg.Entrez.MaxResults
	}
	sortOrder, _ := cmd.Flags().GetString("sort")
	opts := entrez.SearchOptions{MaxResults: maxResults, Sort: sortOrder}

	out, err := client.Search(cmd.Context(), term, opts)
	if err != nil {
		return err
	}
	report.WriteSearchResults(os.Stdout, term, out.PMIDs, out.Total)

	savePath, _ := cmd.Flags().GetString("save")
	if savePath == "" {
		return nil
	}

	var records []types.ArticleRecord
	for _, pmid := range out.PMIDs {
		rec, err := client.Summary(cmd.Context(), pmid)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not fetch PMID %s: %v\n", pmid, err)
			continue
		}
		records = append(records, rec)
	}
	if err := entrez.WriteQueryFile(savePath, term, opts, out, records); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved query to %s\n", savePath)
	return nil
}

// renderQueryFile replays a saved search from disk.
func renderQueryFile(path string) error {
	qf, err := entrez.ReadQueryFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("Saved query %q (%s)\n\n", qf.Term, qf.Summary.Timestamp.Format("2006-01-02 15:04"))
	report.WriteSearchResults(os.Stdout, qf.Term, qf.PMIDs, qf.Summary.Total)
	for _, rec := range qf.Records {
		fmt.Println()
		report.WriteArticle(os.Stdout, rec)
	}
	return nil
}
