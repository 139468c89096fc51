package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var authorCmd = &cobra.Command{
	Use:   "author [name]",
	Short: "Search PubMed articles by author name",
	Long: `Author searches the PubMed [Author] field for the given name and prints
matching PMIDs. Matching is the service's best-effort name match; authors
sharing a name are not disambiguated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("provide an author name, e.g. \"Smith J\"")
		}
		maxResults, _ := cmd.Flags().GetInt("max-results")
		svc, cfg := newService()
		if maxResults == 0 {
			maxResults = cfg.Entrez.MaxResults
		}
		text, err := svc.SearchAuthor(cmd.Context(), args[0], maxResults)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

var credibilityCmd = &cobra.Command{
	Use:   "credibility [name]",
	Short: "Build an estimated credibility profile for an author",
	Long: `Credibility searches for the author's publications, samples their recent
records, and prints an aggregated profile: estimated citations, estimated
h-index, experience, and a credibility score. All figures are heuristic
estimates, not real citation data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("provide an author name, e.g. \"Smith J\"")
		}
		maxResults, _ := cmd.Flags().GetInt("max-results")
		svc, cfg := newService()
		if maxResults == 0 {
			maxResults = cfg.Entrez.MaxResults
		}
		text, err := svc.AuthorCredibility(cmd.Context(), args[0], maxResults)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

func init() {
	authorCmd.Flags().Int("max-results", 0, "maximum number of results to return (default 10)")
	credibilityCmd.Flags().Int("max-results", 0, "maximum number of publications to consider (default 10, max 50)")

	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(credibilityCmd)
}
