package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "resprune/internal/adapters/mcp"
	"resprune/internal/bootstrap"
	"resprune/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "resprune-mcp",
	Short:         "Serve resprune tools over MCP on stdio",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd, cfgFile)
		if err != nil {
			return err
		}
		// stdout carries the protocol
		logger := bootstrap.NewLogger(os.Stderr, cfg.Verbose)

		mcpServer := server.NewMCPServer(
			"resprune-mcp",
			"0.1.0",
			server.WithToolCapabilities(true),
		)
		mcpadapter.RegisterTools(mcpServer, func() (*bootstrap.Workspace, error) {
			return bootstrap.Open(cfg, logger)
		})

		return server.ServeStdio(mcpServer)
	},
}

func init() {
	config.InitFlags(rootCmd, &cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "resprune-mcp: %v\n", err)
		os.Exit(1)
	}
}
