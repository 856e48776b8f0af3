package atlas

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphatlas/text"
)

// Sentinel errors for atlas package.
var (
	// ErrAtlasOverflow is returned when the glyph range does not fit even
	// at the maximum atlas height.
	ErrAtlasOverflow = errors.New("atlas: glyphs do not fit under the maximum atlas height")

	// ErrAtlasNotReady is returned when quads are requested before an
	// atlas was generated.
	ErrAtlasNotReady = errors.New("atlas: atlas not generated")

	// ErrGlyphOutOfRange is returned when a codepoint outside the packed
	// character range is requested.
	ErrGlyphOutOfRange = errors.New("atlas: glyph outside packed range")

	// ErrMultiplePages is returned when a BMFont descriptor spreads its
	// glyphs over more than one texture page.
	ErrMultiplePages = errors.New("atlas: bmfont with more than one page")
)

// OverflowError reports the last atlas size that was tried before packing
// gave up.
type OverflowError struct {
	Width     int
	Height    int
	MaxHeight int
	Attempts  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("atlas: %dx%d atlas too small after %d attempts, next size exceeds max height %d",
		e.Width, e.Height, e.Attempts, e.MaxHeight)
}

// Is reports whether target is ErrAtlasOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrAtlasOverflow
}

// GlyphRangeError reports a codepoint requested outside the packed range.
type GlyphRangeError struct {
	Rune  rune
	Range text.CharacterRange
}

func (e *GlyphRangeError) Error() string {
	return fmt.Sprintf("atlas: glyph %q outside packed range %s", e.Rune, e.Range)
}

// Is reports whether target is ErrGlyphOutOfRange.
func (e *GlyphRangeError) Is(target error) bool {
	return target == ErrGlyphOutOfRange
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
