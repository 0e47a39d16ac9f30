package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/captvty-nav/internal/platform"
	"github.com/mj1618/captvty-nav/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing captvty-nav tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the Captvty
navigation commands as tools. Calls are serialized; the mode-button cache and
the catch-up channel selection persist between calls.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  captvty-nav serve
  captvty-nav serve --transport streamable-http --port 8080
  captvty-nav serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Window tree cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	provider, err := platform.NewProvider()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	session := server.NewSession(provider, cfg.Layout, time.Duration(cacheTTLMs)*time.Millisecond)

	return server.New(session).Serve(server.Config{
		Transport: transport,
		Port:      port,
	})
}
