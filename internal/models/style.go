// ABOUTME: Emoji and Color style tags for trackers.
// ABOUTME: Closed enums with exhaustive two-way string mapping.
package models

import (
	"errors"
	"fmt"
)

// ErrCorruptData marks stored values that no longer decode to a known
// enum or schedule. Callers skip the offending record rather than fail
// the whole listing.
var ErrCorruptData = errors.New("corrupt data")

// Emoji is a tracker's emoji style tag. Stored by name, rendered as a glyph.
type Emoji string

const (
	EmojiSmile    Emoji = "smile"
	EmojiCat      Emoji = "cat"
	EmojiFlowers  Emoji = "flowers"
	EmojiDog      Emoji = "dog"
	EmojiHeart    Emoji = "heart"
	EmojiScream   Emoji = "scream"
	EmojiAngel    Emoji = "angel"
	EmojiAngry    Emoji = "angry"
	EmojiCold     Emoji = "cold"
	EmojiThinking Emoji = "thinking"
	EmojiHands    Emoji = "hands"
	EmojiBurger   Emoji = "burger"
	EmojiBroccoli Emoji = "broccoli"
	EmojiTennis   Emoji = "tennis"
	EmojiMedal    Emoji = "medal"
	EmojiGuitar   Emoji = "guitar"
	EmojiIsland   Emoji = "island"
	EmojiSleepy   Emoji = "sleepy"
)

var emojiGlyphs = map[Emoji]string{
	EmojiSmile:    "\U0001F642",
	EmojiCat:      "\U0001F63B",
	EmojiFlowers:  "\U0001F33A",
	EmojiDog:      "\U0001F436",
	EmojiHeart:    "❤️",
	EmojiScream:   "\U0001F631",
	EmojiAngel:    "\U0001F607",
	EmojiAngry:    "\U0001F620",
	EmojiCold:     "\U0001F976",
	EmojiThinking: "\U0001F914",
	EmojiHands:    "\U0001F64C",
	EmojiBurger:   "\U0001F354",
	EmojiBroccoli: "\U0001F966",
	EmojiTennis:   "\U0001F3D3",
	EmojiMedal:    "\U0001F947",
	EmojiGuitar:   "\U0001F3B8",
	EmojiIsland:   "\U0001F3DD",
	EmojiSleepy:   "\U0001F634",
}

// AllEmojis lists every valid emoji tag in palette order.
var AllEmojis = []Emoji{
	EmojiSmile, EmojiCat, EmojiFlowers, EmojiDog, EmojiHeart, EmojiScream,
	EmojiAngel, EmojiAngry, EmojiCold, EmojiThinking, EmojiHands, EmojiBurger,
	EmojiBroccoli, EmojiTennis, EmojiMedal, EmojiGuitar, EmojiIsland, EmojiSleepy,
}

// Glyph returns the renderable emoji character for the tag.
func (e Emoji) Glyph() string {
	return emojiGlyphs[e]
}

// IsValid reports whether the tag is part of the palette.
func (e Emoji) IsValid() bool {
	_, ok := emojiGlyphs[e]
	return ok
}

// ParseEmoji maps a stored name back to an Emoji tag.
func ParseEmoji(s string) (Emoji, error) {
	e := Emoji(s)
	if !e.IsValid() {
		return "", fmt.Errorf("%w: unknown emoji %q", ErrCorruptData, s)
	}
	return e, nil
}

// Color is a tracker's color style tag. Opaque to the core; the UI layer
// owns the actual swatches.
type Color string

const (
	ColorRed         Color = "red"
	ColorOrange      Color = "orange"
	ColorBlue        Color = "blue"
	ColorPurple      Color = "purple"
	ColorGreen       Color = "green"
	ColorPink        Color = "pink"
	ColorLightPink   Color = "light_pink"
	ColorLightBlue   Color = "light_blue"
	ColorMint        Color = "mint"
	ColorDarkBlue    Color = "dark_blue"
	ColorCoral       Color = "coral"
	ColorBabyPink    Color = "baby_pink"
	ColorPeach       Color = "peach"
	ColorPeriwinkle  Color = "periwinkle"
	ColorViolet      Color = "violet"
	ColorLavender    Color = "lavender"
	ColorLightPurple Color = "light_purple"
	ColorLime        Color = "lime"
)

// AllColors lists every valid color tag in palette order.
var AllColors = []Color{
	ColorRed, ColorOrange, ColorBlue, ColorPurple, ColorGreen, ColorPink,
	ColorLightPink, ColorLightBlue, ColorMint, ColorDarkBlue, ColorCoral,
	ColorBabyPink, ColorPeach, ColorPeriwinkle, ColorViolet, ColorLavender,
	ColorLightPurple, ColorLime,
}

var validColors = func() map[Color]bool {
	m := make(map[Color]bool, len(AllColors))
	for _, c := range AllColors {
		m[c] = true
	}
	return m
}()

// IsValid reports whether the tag is part of the palette.
func (c Color) IsValid() bool {
	return validColors[c]
}

// ParseColor maps a stored name back to a Color tag.
func ParseColor(s string) (Color, error) {
	c := Color(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown color %q", ErrCorruptData, s)
	}
	return c, nil
}
