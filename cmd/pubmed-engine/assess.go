package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clinicalCmd = &cobra.Command{
	Use:   "clinical [term]",
	Short: "Search PubMed with a quality assessment per hit",
	Long: `Clinical searches PubMed and attaches a heuristic quality assessment to
each hit: study design classification, bias flags, evidence level, and a
quality score. Each hit costs two extra E-utilities requests, so the result
bound is capped at 20.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("provide a search term")
		}
		maxResults, _ := cmd.Flags().GetInt("max-results")
		svc, _ := newService()
		text, err := svc.ClinicalSearch(cmd.Context(), args[0], maxResults)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

var picoCmd = &cobra.Command{
	Use:   "pico [pmid]",
	Short: "Extract PICO elements from an article's abstract",
	Long: `Pico extracts Population, Intervention, Comparison, and Outcome summaries
from an article's abstract using keyword heuristics, with a confidence marker
per element.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("provide exactly one PMID")
		}
		question, _ := cmd.Flags().GetString("question")
		svc, _ := newService()
		text, err := svc.PICOAnalysis(cmd.Context(), args[0], question)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

var evidenceCmd = &cobra.Command{
	Use:   "evidence [pmid]",
	Short: "Assess an article's evidence quality",
	Long: `Evidence scores one article with rule-based heuristics: study design,
evidence level, bias indicators, clinical relevance, and an overall verdict.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("provide exactly one PMID")
		}
		svc, _ := newService()
		text, err := svc.EvidenceAssessment(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

func init() {
	clinicalCmd.Flags().Int("max-results", 5, "maximum number of articles to analyze (max 20)")
	picoCmd.Flags().String("question", "", "clinical question for context")

	rootCmd.AddCommand(clinicalCmd)
	rootCmd.AddCommand(picoCmd)
	rootCmd.AddCommand(evidenceCmd)
}
