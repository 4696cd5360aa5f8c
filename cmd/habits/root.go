// ABOUTME: Root Cobra command for habits CLI.
// ABOUTME: Handles config load and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/config"
	"github.com/harperreed/habits/internal/storage"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "habits",
	Short: "Personal habit and event tracker",
	Long: `Habits is a CLI tool for tracking daily habits and one-off events.

TRACKERS:

  A habit repeats on a weekly schedule (e.g. mon,wed,fri or every day).
  An event is tied to the weekday it was created on.
  Trackers live in categories, and pinned trackers float to the top.

QUICK START:

  $ habits add "Meditate"                        # Every-day habit
  $ habits add "Run" -c Fitness -d mon,wed,fri   # Scheduled habit
  $ habits add "Dentist" --event                 # One-off event
  $ habits list                                  # Today's trackers
  $ habits done abc12345                         # Toggle completion
  $ habits stats                                 # Streaks and totals

FILTERING:

  $ habits list --date 2025-06-02          # Another day's view
  $ habits list --filter uncompleted       # Only what's left to do
  $ habits list --search guitar            # Find by name, any schedule

MCP INTEGRATION:

  Run 'habits mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "habits": { "command": "habits", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/habits/habits.db by
  default. Set "backend": "badger" in the config file to use Badger
  instead. The config lives at ~/.config/habits/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		setupLogging(cfg.GetDataDir())

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// setupLogging routes zerolog to a file in the data directory so log
// output never mixes with command output on stdout.
func setupLogging(dataDir string) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		log.Logger = zerolog.Nop()
		return
	}

	logPath := filepath.Join(dataDir, "habits.log")
	logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(0o600))
	if err != nil {
		log.Logger = zerolog.Nop()
		return
	}

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
