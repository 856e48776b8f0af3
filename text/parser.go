package text

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/sfnt or github.com/go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
//
// Metric methods report unscaled values in font units with the y axis
// pointing up, the way they are stored in the font tables. Outlines are
// returned already scaled to pixels with the y axis pointing down.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 (.notdef) if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// VerticalMetrics returns the ascent, descent and line gap in font units.
	// Descent is negative for glyphs that extend below the baseline.
	VerticalMetrics() (ascent, descent, lineGap int)

	// HorizontalMetrics returns the advance width and left side bearing of
	// a glyph in font units.
	HorizontalMetrics(gid GlyphID) (advance, leftBearing int)

	// Kern returns the kerning adjustment between two runes in font units.
	// Fonts without kerning data return 0.
	Kern(r0, r1 rune) int

	// GlyphOutline returns the glyph outline scaled to ppem pixels per em.
	// Glyphs without contours (such as space) return an empty outline.
	GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error)
}

// Parser names understood by WithParser.
const (
	ParserXImage = "ximage"
	ParserGoText = "gotext"
)

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		ParserXImage: &ximageParser{},
		ParserGoText: &gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserXImage

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
