package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driven/config/file"
	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driven/watch"
	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driving/mcp"
	"github.com/recipeml-labs/recipeml-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Use --watch to rebuild the model automatically when the corpus changes.

Examples:
  # Stdio mode (default, for Claude Desktop)
  recipeml mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  recipeml mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "recipeml": {
        "command": "/path/to/recipeml",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", false, "rebuild the model on corpus changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watchFlag, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	if err := ensureServices(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := matchingService.Build(ctx); err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	if !watchFlag && configStore != nil {
		watchFlag = configStore.GetBool(file.KeyWatch)
	}
	if watchFlag && matchingImpl != nil && corpusStore != nil {
		watcher, err := watch.NewWatcher(corpusStore.Path())
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer watcher.Close() //nolint:errcheck
		matchingImpl.SetWatcher(watcher)
		go func() {
			if err := matchingImpl.Watch(ctx); err != nil {
				logger.Debug("Watch loop ended: %v", err)
			}
		}()
	}

	ports := &mcp.Ports{
		Matching: matchingService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
