// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseDate, parseDays, findTracker, and command wiring.
package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/storage"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid date",
			input:   "2025-06-02",
			wantErr: false,
		},
		{
			name:    "day first",
			input:   "02-06-2025",
			wantErr: true,
		},
		{
			name:    "with time",
			input:   "2025-06-02 08:30",
			wantErr: true,
		},
		{
			name:    "random string",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) failed: %v", tt.input, err)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("parseDate(%q) = %v, want local midnight", tt.input, got)
			}
			if got.Location() != time.Local {
				t.Errorf("parseDate(%q) not in local timezone", tt.input)
			}
		})
	}
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []models.WeekDay
		wantErr bool
	}{
		{
			name:  "single day",
			input: "mon",
			want:  []models.WeekDay{models.Monday},
		},
		{
			name:  "multiple days",
			input: "mon,wed,fri",
			want:  []models.WeekDay{models.Monday, models.Wednesday, models.Friday},
		},
		{
			name:  "mixed case with spaces",
			input: " MON,Wed ",
			want:  []models.WeekDay{models.Monday, models.Wednesday},
		},
		{
			name:    "unknown day",
			input:   "mon,funday",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDays(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDays(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDays(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseDays(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseDays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindTracker(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "habits.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// findTracker reads through the package-level repo
	origRepo := repo
	repo = db
	t.Cleanup(func() { repo = origRepo })

	tracker := models.NewHabit("Meditate", models.ColorGreen, models.EmojiSmile, models.AllWeekDays)
	if err := db.CreateTracker(tracker, "Mind"); err != nil {
		t.Fatalf("CreateTracker failed: %v", err)
	}

	got, category, err := findTracker(tracker.ID)
	if err != nil {
		t.Fatalf("findTracker failed: %v", err)
	}
	if got.Name != "Meditate" {
		t.Errorf("Name = %q, want %q", got.Name, "Meditate")
	}
	if category != "Mind" {
		t.Errorf("Category = %q, want %q", category, "Mind")
	}

	_, _, err = findTracker(models.NewHabit("x", models.ColorGreen, models.EmojiSmile, nil).ID)
	if err == nil {
		t.Error("Expected error for unknown tracker id")
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"add", "list", "done", "pin", "edit", "delete",
		"categories", "stats", "export", "import", "mcp", "version",
	} {
		if !names[want] {
			t.Errorf("Command %q not registered", want)
		}
	}
}
