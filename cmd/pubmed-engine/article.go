package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var articleCmd = &cobra.Command{
	Use:   "article [pmid]",
	Short: "Show bibliographic details for a PMID",
	Long: `Article fetches the bibliographic record for one PMID: title, authors,
journal, publication date, DOI, and composed links.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("provide exactly one PMID")
		}
		svc, _ := newService()
		text, err := svc.ArticleDetails(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

var abstractCmd = &cobra.Command{
	Use:   "abstract [pmid]",
	Short: "Show the abstract for a PMID",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("provide exactly one PMID")
		}
		svc, _ := newService()
		text, err := svc.ArticleAbstract(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

var linksCmd = &cobra.Command{
	Use:   "links [pmid]",
	Short: "Compose record, DOI, and full-text links for a PMID",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("provide exactly one PMID")
		}
		svc, _ := newService()
		text, err := svc.ArticleLinks(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(articleCmd)
	rootCmd.AddCommand(abstractCmd)
	rootCmd.AddCommand(linksCmd)
}
