// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "habits": {
        "command": "habits",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_habit          Create a habit or event tracker
  list_trackers      List trackers for a date, grouped by category
  toggle_completion  Toggle a tracker's completion for a date
  search_trackers    Search trackers by name
  pin_tracker        Pin or unpin a tracker
  delete_tracker     Delete a tracker and its history
  get_statistics     Aggregate completion statistics

AVAILABLE RESOURCES:

  habits://today        Today's trackers with completion state
  habits://statistics   Totals, perfect days, best streak, average
  habits://categories   Every category with its trackers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
