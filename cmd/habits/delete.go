// ABOUTME: CLI command for deleting trackers.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/storage"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a tracker",
	Long: `Delete a tracker by its ID or ID prefix. The tracker's completion
history is deleted with it.

You can use either the full UUID or just the first few characters
(prefix). The ID prefix is shown in 'habits list' output.

CAUTION:

  This permanently deletes the tracker and its history. There is no
  undo. If the prefix matches multiple trackers, an error is returned.

EXAMPLES:

  habits delete abc12345      # Delete by 8-char prefix
  habits rm abc1              # Short prefix (if unique)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveTrackerID(repo, args[0])
		if err != nil {
			return err
		}

		// Look up the tracker first to show what is being deleted
		tracker, _, err := findTracker(id)
		if err != nil {
			return err
		}

		if err := repo.DeleteTracker(id); err != nil {
			return fmt.Errorf("failed to delete tracker: %w", err)
		}

		color.Yellow("✗ Deleted %s", tracker.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(tracker.ID.String()[:8]))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
