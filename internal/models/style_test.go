// ABOUTME: Tests for Emoji and Color style tag mapping.
// ABOUTME: Verifies exhaustive two-way mapping and corrupt input handling.
package models

import (
	"errors"
	"testing"
)

func TestEmojiPalette(t *testing.T) {
	if len(AllEmojis) != 18 {
		t.Fatalf("expected 18 emojis, got %d", len(AllEmojis))
	}

	for _, e := range AllEmojis {
		if e.Glyph() == "" {
			t.Errorf("emoji %q has no glyph", e)
		}
		got, err := ParseEmoji(string(e))
		if err != nil {
			t.Errorf("ParseEmoji(%q) failed: %v", e, err)
		}
		if got != e {
			t.Errorf("ParseEmoji(%q) = %q, round trip broken", e, got)
		}
	}
}

func TestColorPalette(t *testing.T) {
	if len(AllColors) != 18 {
		t.Fatalf("expected 18 colors, got %d", len(AllColors))
	}

	for _, c := range AllColors {
		got, err := ParseColor(string(c))
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseColor(%q) = %q, round trip broken", c, got)
		}
	}
}

func TestParseStyleCorrupt(t *testing.T) {
	if _, err := ParseEmoji("rocket"); !errors.Is(err, ErrCorruptData) {
		t.Errorf("ParseEmoji corrupt: got %v, want ErrCorruptData", err)
	}
	if _, err := ParseColor("chartreuse"); !errors.Is(err, ErrCorruptData) {
		t.Errorf("ParseColor corrupt: got %v, want ErrCorruptData", err)
	}
}
