// ABOUTME: CLI command for toggling tracker completion.
// ABOUTME: Supports completing on past dates, rejects future dates.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/engine"
	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/storage"
)

var doneDate string

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle", "d"},
	Short:   "Toggle a tracker's completion",
	Long: `Toggle a tracker's completion for a day. Toggling a completed tracker
removes the completion again, so the command is safe to repeat.

Use the 8-character ID prefix from 'habits list' output, or the full
UUID. Completions can be recorded for today or any past date, but not
for future dates.

EXAMPLES:

  habits done abc12345                      # Toggle for today
  habits done abc12345 --date 2025-06-01    # Toggle for a past day`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveTrackerID(repo, args[0])
		if err != nil {
			return err
		}

		date := models.StartOfDay(time.Now())
		if doneDate != "" {
			date, err = parseDate(doneDate)
			if err != nil {
				return err
			}
		}

		if date.After(models.StartOfDay(time.Now())) {
			color.Yellow("Cannot complete a tracker on a future date (%s)", date.Format("2006-01-02"))
			return nil
		}

		ledger, err := engine.NewLedger(repo)
		if err != nil {
			return fmt.Errorf("failed to load completions: %w", err)
		}

		completed, err := ledger.Toggle(id, date)
		if err != nil {
			return fmt.Errorf("failed to toggle completion: %w", err)
		}

		if completed {
			color.Green("✓ Completed on %s", date.Format("2006-01-02"))
		} else {
			color.Yellow("✗ Uncompleted on %s", date.Format("2006-01-02"))
		}
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(id.String()[:8]),
			color.New(color.Faint).Sprint(models.DaysDeclension(ledger.CompletedCount(id))))

		return nil
	},
}

func init() {
	doneCmd.Flags().StringVar(&doneDate, "date", "", "date to toggle (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(doneCmd)
}
