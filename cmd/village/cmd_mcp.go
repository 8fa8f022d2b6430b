package main

import (
	"github.com/spf13/cobra"

	"github.com/depilcher/WWVillage/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve simulations over MCP (stdio)",
		Long: `Start a Model Context Protocol server on stdin/stdout.

Tools:     village_simulate
Resources: village://rules

Setup defaults and rules come from the configuration. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			server := mcp.NewServer(&mcp.Config{
				Name:    "village",
				Version: version,
				Village: cfg,
				Logger:  newLogger(cmd, cfg),
			})
			return server.Run(cmd.Context())
		},
	}
}
