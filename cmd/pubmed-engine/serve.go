package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-engine/internal/toolserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pubmed tools over MCP stdio",
	Long: `Serve exposes every operation as an MCP tool on stdin/stdout for agent
runtimes. Logs go to stderr; stdout carries the protocol.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _ := newService()
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		srv := toolserver.NewServer(svc, logger)
		return srv.Run(cmd.Context(), version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
