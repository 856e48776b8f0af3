package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrInvalidFontFormat is returned when font data cannot be recognized
	// as a TrueType or OpenType font.
	ErrInvalidFontFormat = errors.New("text: invalid font format")

	// ErrUninitializedFont is returned by every glyph operation on a
	// FontSource that was never parsed successfully or has been closed.
	ErrUninitializedFont = errors.New("text: font source is not initialized")

	// ErrEmptyAlphabet is returned when a character range is requested
	// for an alphabet with no characters.
	ErrEmptyAlphabet = errors.New("text: empty alphabet")

	// ErrUnknownParser is returned when WithParser names a parser that
	// was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrInvalidPixelHeight is returned when a Line is requested with a
	// pixel height that is not positive.
	ErrInvalidPixelHeight = errors.New("text: pixel height must be positive")
)

// FontError describes a font operation failure for a specific glyph.
type FontError struct {
	Rune   rune
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	msg := "text: glyph " + quoteRune(e.Rune) + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *FontError) Unwrap() error {
	return e.Err
}

func quoteRune(r rune) string {
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("%q", r)
}
