// ABOUTME: CLI command for pinning and unpinning trackers.
// ABOUTME: Pinned trackers float to a leading Pinned section in list output.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/storage"
)

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Pin or unpin a tracker",
	Long: `Toggle a tracker's pinned state. Pinned trackers appear first in
'habits list' output under a Pinned heading, pulled out of their home
category. Running pin again unpins the tracker.

EXAMPLES:

  habits pin abc12345      # Pin (or unpin) a tracker`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveTrackerID(repo, args[0])
		if err != nil {
			return err
		}

		if err := repo.TogglePin(id); err != nil {
			return fmt.Errorf("failed to toggle pin: %w", err)
		}

		trackers, err := repo.AllTrackers()
		if err != nil {
			return fmt.Errorf("failed to load trackers: %w", err)
		}

		for _, t := range trackers {
			if t.ID != id {
				continue
			}
			if t.IsPinned {
				color.Green("✓ Pinned %s", t.Name)
			} else {
				color.Yellow("✗ Unpinned %s", t.Name)
			}
			fmt.Printf("  %s\n", color.New(color.Faint).Sprint(t.ID.String()[:8]))
			return nil
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
