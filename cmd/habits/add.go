// ABOUTME: CLI command for creating habit and event trackers.
// ABOUTME: Handles schedule, emoji, color, and category flags.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/models"
)

var (
	addCategory string
	addEmoji    string
	addColor    string
	addDays     string
	addEvent    bool
)

var addCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Add a habit or event tracker",
	Long: `Add a new tracker. By default this creates a habit scheduled every day.
Use --days to restrict it to specific weekdays, or --event to create a
one-off event tied to the weekday it was created on.

EMOJI AND COLORS:

  Emoji:  smile, cat, flowers, dog, heart, scream, angel, angry, cold,
          thinking, hands, burger, broccoli, tennis, medal, guitar,
          island, sleepy
  Colors: red, orange, blue, purple, green, pink, light_pink, light_blue,
          mint, dark_blue, coral, baby_pink, peach, periwinkle, violet,
          lavender, light_purple, lime

EXAMPLES:

  habits add "Meditate"                            # Every-day habit
  habits add "Run" -c Fitness -d mon,wed,fri       # Scheduled habit
  habits add "Read" --emoji thinking --color blue  # Styled habit
  habits add "Dentist appointment" --event         # One-off event`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("tracker name cannot be empty")
		}

		emoji := models.EmojiSmile
		if addEmoji != "" {
			e, err := models.ParseEmoji(addEmoji)
			if err != nil {
				return fmt.Errorf("unknown emoji: %s", addEmoji)
			}
			emoji = e
		}

		clr := models.ColorGreen
		if addColor != "" {
			c, err := models.ParseColor(addColor)
			if err != nil {
				return fmt.Errorf("unknown color: %s", addColor)
			}
			clr = c
		}

		var tracker models.Tracker
		if addEvent {
			if addDays != "" {
				return fmt.Errorf("--days cannot be combined with --event")
			}
			tracker = models.NewEvent(name, clr, emoji, time.Now())
		} else {
			schedule := models.AllWeekDays
			if addDays != "" {
				days, err := parseDays(addDays)
				if err != nil {
					return err
				}
				schedule = days
			}
			tracker = models.NewHabit(name, clr, emoji, schedule)
		}

		if err := repo.CreateTracker(tracker, addCategory); err != nil {
			return fmt.Errorf("failed to create tracker: %w", err)
		}

		color.Green("✓ Added %s", tracker.Name)
		fmt.Printf("  %s %s %s\n",
			color.New(color.Faint).Sprint(tracker.ID.String()[:8]),
			tracker.Emoji.Glyph(),
			models.EncodeSchedule(tracker.Schedule))

		return nil
	},
}

// parseDays parses a comma-separated weekday list like "mon,wed,fri".
func parseDays(s string) ([]models.WeekDay, error) {
	days, err := models.DecodeSchedule(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return nil, fmt.Errorf("invalid days %q: use three-letter names like mon,wed,fri", s)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("empty schedule: use three-letter names like mon,wed,fri")
	}
	return days, nil
}

func init() {
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "General", "category for the tracker")
	addCmd.Flags().StringVar(&addEmoji, "emoji", "", "emoji name (see help for the palette)")
	addCmd.Flags().StringVar(&addColor, "color", "", "color name (see help for the palette)")
	addCmd.Flags().StringVarP(&addDays, "days", "d", "", "weekday schedule (mon,wed,fri)")
	addCmd.Flags().BoolVar(&addEvent, "event", false, "create a one-off event instead of a habit")
	rootCmd.AddCommand(addCmd)
}
