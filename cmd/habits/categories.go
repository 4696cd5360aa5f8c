// ABOUTME: CLI command for listing categories.
// ABOUTME: Shows every category with its tracker count and trackers.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/models"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List all categories",
	Long: `List every category with its trackers, regardless of weekday
schedules. Useful for seeing everything you track at once.

EXAMPLES:

  habits categories`,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := repo.AllCategories()
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}

		if len(categories) == 0 {
			fmt.Println("No categories yet. Add a tracker with 'habits add'.")
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)

		for i, c := range categories {
			if i > 0 {
				fmt.Println()
			}
			bold.Printf("%s", c.Title)
			faint.Printf(" (%d)\n", len(c.Trackers))
			for _, t := range c.Trackers {
				schedule := models.EncodeSchedule(t.Schedule)
				fmt.Printf("  %s %s %s %s\n",
					faint.Sprint(t.ID.String()[:8]),
					t.Emoji.Glyph(),
					t.Name,
					faint.Sprint(schedule))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
