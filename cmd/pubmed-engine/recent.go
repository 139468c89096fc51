package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent [topic]",
	Short: "Search for recently published papers on a topic",
	Long: `Recent searches PubMed for papers on a topic published within the last N
days, newest first. The window is capped at 365 days.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("provide a search topic")
		}
		days, _ := cmd.Flags().GetInt("days")
		maxResults, _ := cmd.Flags().GetInt("max-results")
		svc, _ := newService()
		text, err := svc.RecentPapers(cmd.Context(), args[0], days, maxResults)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

var citationCmd = &cobra.Command{
	Use:   "citations [pmid]",
	Short: "Estimate citation impact for an article",
	Long: `Citations estimates an article's citation impact from its age and title
cues. The figures are heuristics, not real citation counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("provide exactly one PMID")
		}
		svc, _ := newService()
		text, err := svc.CitationAnalysis(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

func init() {
	recentCmd.Flags().Int("days", 30, "number of days to look back (max 365)")
	recentCmd.Flags().Int("max-results", 20, "maximum number of results to return")

	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(citationCmd)
}
