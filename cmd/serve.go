package cmd

import (
	"fmt"

	"github.com/mj1618/a11ytree/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the accessibility client contract",
	Long: `Start a Model Context Protocol (MCP) server over one described scene. Agents
call tools to read the tree, navigate, read properties, hit-test, move focus,
invoke buttons and work with text ranges. Ranges live on the server and are
addressed by handle strings until released.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  a11ytree serve
  a11ytree serve --scene todo --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http (default from config)")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	srvCfg := server.Config{
		Transport: cfg.Server.Transport,
		Port:      cfg.Server.Port,
	}
	if transport != "" {
		srvCfg.Transport = transport
	}
	if port != 0 {
		srvCfg.Port = port
	}

	session, err := openSession(true)
	if err != nil {
		return err
	}
	srv := server.New(session)
	if err := srv.Serve(srvCfg); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
