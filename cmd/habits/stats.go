// ABOUTME: CLI command for showing completion statistics.
// ABOUTME: Prints totals, perfect days, best streak, and daily average.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/engine"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
	Long: `Show aggregate statistics over the full completion history:

  Completed      total number of recorded completions
  Perfect days   days where every scheduled tracker was completed
  Best streak    longest run of consecutive completed days
  Daily average  completions per day, first record to most recent

EXAMPLES:

  habits stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := repo.AllCompletionRecords()
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}
		trackers, err := repo.AllTrackers()
		if err != nil {
			return fmt.Errorf("failed to load trackers: %w", err)
		}

		stats := engine.Compute(records, trackers)
		if !stats.HasData() {
			fmt.Println("No data yet. Complete a tracker with 'habits done'.")
			return nil
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println("Statistics")
		fmt.Printf("  Completed      %d\n", stats.TotalCompleted)
		fmt.Printf("  Perfect days   %d\n", stats.PerfectDays)
		fmt.Printf("  Best streak    %d\n", stats.BestStreak)
		fmt.Printf("  Daily average  %.1f\n", stats.AveragePerDay)
		faint.Printf("  as of %s\n", stats.UpdatedAt.Format("2006-01-02 15:04"))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
