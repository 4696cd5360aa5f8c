// ABOUTME: CLI command for listing trackers by category.
// ABOUTME: Supports date, filter mode, and name search.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/habits/internal/engine"
	"github.com/harperreed/habits/internal/models"
)

var (
	listDate   string
	listFilter string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List trackers for a day",
	Long: `List trackers scheduled for a day, grouped by category.

Pinned trackers appear first under a Pinned heading. Each line shows a
completion mark, an 8-character ID prefix usable with other commands,
the tracker's emoji, and its name. The footer under each tracker shows
how many days it has been completed in total.

FILTER MODES:

  all           every tracker scheduled for the day (default)
  today         today's trackers, regardless of --date
  completed     only trackers already completed on the day
  uncompleted   only trackers still to do on the day

SEARCH:

  --search matches tracker names case-insensitively and ignores
  schedules and the filter mode entirely.

EXAMPLES:

  habits list                           # Today's trackers
  habits list --date 2025-06-02         # Another day's view
  habits list -f uncompleted            # What's left to do
  habits list -s guitar                 # Find by name`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.StartOfDay(time.Now())
		if listDate != "" {
			parsed, err := parseDate(listDate)
			if err != nil {
				return err
			}
			date = parsed
		}

		mode := engine.FilterAll
		if listFilter != "" {
			parsed, err := engine.ParseFilterMode(listFilter)
			if err != nil {
				return err
			}
			mode = parsed
		}
		// "today" pins the view to the current day regardless of --date.
		if mode == engine.FilterToday {
			date = models.StartOfDay(time.Now())
		}

		categories, err := repo.AllCategories()
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}

		ledger, err := engine.NewLedger(repo)
		if err != nil {
			return fmt.Errorf("failed to load completions: %w", err)
		}

		view := engine.BuildView(categories, models.WeekDayFromTime(date), date, mode, listSearch, ledger)

		if len(view) == 0 {
			fmt.Println("No trackers found.")
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		green := color.New(color.FgGreen)

		fmt.Printf("%s\n\n", faint.Sprint(date.Format("Monday, 2006-01-02")))
		for i, c := range view {
			if i > 0 {
				fmt.Println()
			}
			bold.Println(c.Title)
			for _, t := range c.Trackers {
				mark := " "
				if ledger.IsCompleted(t.ID, date) {
					mark = green.Sprint("✓")
				}
				pin := ""
				if t.IsPinned {
					pin = faint.Sprint(" (pinned)")
				}
				fmt.Printf("  %s %s %s %s%s %s\n",
					mark,
					faint.Sprint(t.ID.String()[:8]),
					t.Emoji.Glyph(),
					t.Name,
					pin,
					faint.Sprintf("· %s", models.DaysDeclension(ledger.CompletedCount(t.ID))))
			}
		}

		return nil
	},
}

// parseDate parses a YYYY-MM-DD date in the local timezone.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "date to list (YYYY-MM-DD, default today)")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "filter mode: all, today, completed, uncompleted")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "search trackers by name")
	rootCmd.AddCommand(listCmd)
}
