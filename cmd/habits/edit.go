// ABOUTME: CLI command for editing an existing tracker.
// ABOUTME: Supports renaming, restyling, rescheduling, and moving categories.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/storage"
)

var (
	editName     string
	editCategory string
	editEmoji    string
	editColor    string
	editDays     string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a tracker",
	Long: `Edit a tracker's name, emoji, color, schedule, or category. Only the
flags you pass are changed; everything else keeps its current value.

Moving a tracker to a new category creates the category if it does not
exist yet, and the tracker is appended at the end.

EXAMPLES:

  habits edit abc12345 --name "Morning run"     # Rename
  habits edit abc12345 --days mon,tue,thu       # Reschedule
  habits edit abc12345 --category Fitness       # Move category
  habits edit abc12345 --emoji medal --color mint`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveTrackerID(repo, args[0])
		if err != nil {
			return err
		}

		tracker, categoryTitle, err := findTracker(id)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("name") {
			name := strings.TrimSpace(editName)
			if name == "" {
				return fmt.Errorf("tracker name cannot be empty")
			}
			tracker.Name = name
		}
		if cmd.Flags().Changed("emoji") {
			e, err := models.ParseEmoji(editEmoji)
			if err != nil {
				return fmt.Errorf("unknown emoji: %s", editEmoji)
			}
			tracker.Emoji = e
		}
		if cmd.Flags().Changed("color") {
			c, err := models.ParseColor(editColor)
			if err != nil {
				return fmt.Errorf("unknown color: %s", editColor)
			}
			tracker.Color = c
		}
		if cmd.Flags().Changed("days") {
			days, err := parseDays(editDays)
			if err != nil {
				return err
			}
			tracker.Schedule = days
		}
		if cmd.Flags().Changed("category") {
			categoryTitle = editCategory
		}

		if err := repo.UpdateTracker(tracker, categoryTitle); err != nil {
			return fmt.Errorf("failed to update tracker: %w", err)
		}

		color.Green("✓ Updated %s", tracker.Name)
		fmt.Printf("  %s %s %s\n",
			color.New(color.Faint).Sprint(tracker.ID.String()[:8]),
			tracker.Emoji.Glyph(),
			models.EncodeSchedule(tracker.Schedule))

		return nil
	},
}

// findTracker locates a tracker and its home category title.
func findTracker(id uuid.UUID) (models.Tracker, string, error) {
	categories, err := repo.AllCategories()
	if err != nil {
		return models.Tracker{}, "", fmt.Errorf("failed to load categories: %w", err)
	}

	for _, c := range categories {
		for _, t := range c.Trackers {
			if t.ID == id {
				return t, c.Title, nil
			}
		}
	}
	return models.Tracker{}, "", fmt.Errorf("%w: %s", storage.ErrNotFound, id.String()[:8])
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "new tracker name")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "move to category")
	editCmd.Flags().StringVar(&editEmoji, "emoji", "", "new emoji name")
	editCmd.Flags().StringVar(&editColor, "color", "", "new color name")
	editCmd.Flags().StringVarP(&editDays, "days", "d", "", "new weekday schedule (mon,wed,fri)")
	rootCmd.AddCommand(editCmd)
}
