// ABOUTME: Tests for WeekDay conversion, parsing, and schedule encoding.
// ABOUTME: Covers the Sunday remap and corrupt schedule input.
package models

import (
	"errors"
	"testing"
	"time"
)

func TestWeekDayFromTime(t *testing.T) {
	tests := []struct {
		date time.Time
		want WeekDay
	}{
		{time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local), Monday},
		{time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local), Tuesday},
		{time.Date(2025, 6, 4, 23, 59, 0, 0, time.Local), Wednesday},
		{time.Date(2025, 6, 5, 8, 0, 0, 0, time.Local), Thursday},
		{time.Date(2025, 6, 6, 8, 0, 0, 0, time.Local), Friday},
		{time.Date(2025, 6, 7, 8, 0, 0, 0, time.Local), Saturday},
		// Go puts Sunday at ordinal 0; it must map to 7, not 1
		{time.Date(2025, 6, 8, 8, 0, 0, 0, time.Local), Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := WeekDayFromTime(tt.date)
			if got != tt.want {
				t.Errorf("WeekDayFromTime(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekDayOrdinals(t *testing.T) {
	if len(AllWeekDays) != 7 {
		t.Fatalf("expected 7 weekdays, got %d", len(AllWeekDays))
	}
	if Monday != 1 || Sunday != 7 {
		t.Errorf("ordinals off: Monday=%d Sunday=%d", Monday, Sunday)
	}
}

func TestParseWeekDay(t *testing.T) {
	tests := []struct {
		in      string
		want    WeekDay
		wantErr bool
	}{
		{"monday", Monday, false},
		{"mon", Monday, false},
		{"SUN", Sunday, false},
		{" fri ", Friday, false},
		{"funday", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseWeekDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekDay(%q) expected error", tt.in)
			} else if !errors.Is(err, ErrCorruptData) {
				t.Errorf("ParseWeekDay(%q) error = %v, want ErrCorruptData", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekDay(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeekDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEncodeScheduleCanonical(t *testing.T) {
	// Encoding sorts by ordinal regardless of input order
	got := EncodeSchedule([]WeekDay{Friday, Monday, Wednesday})
	if got != "mon,wed,fri" {
		t.Errorf("EncodeSchedule = %q, want mon,wed,fri", got)
	}

	if got := EncodeSchedule(nil); got != "" {
		t.Errorf("EncodeSchedule(nil) = %q, want empty", got)
	}
}

func TestDecodeScheduleRoundTrip(t *testing.T) {
	schedule, err := DecodeSchedule("mon,wed,fri")
	if err != nil {
		t.Fatalf("DecodeSchedule failed: %v", err)
	}
	if len(schedule) != 3 {
		t.Fatalf("expected 3 days, got %d", len(schedule))
	}
	if !ScheduleContains(schedule, Wednesday) {
		t.Error("decoded schedule missing wednesday")
	}
	if ScheduleContains(schedule, Sunday) {
		t.Error("decoded schedule should not contain sunday")
	}
}

func TestDecodeScheduleCorrupt(t *testing.T) {
	_, err := DecodeSchedule("mon,notaday")
	if !errors.Is(err, ErrCorruptData) {
		t.Errorf("expected ErrCorruptData, got %v", err)
	}
}

func TestDecodeScheduleEmpty(t *testing.T) {
	schedule, err := DecodeSchedule("")
	if err != nil {
		t.Fatalf("DecodeSchedule(\"\") failed: %v", err)
	}
	if len(schedule) != 0 {
		t.Errorf("expected empty schedule, got %v", schedule)
	}
}
