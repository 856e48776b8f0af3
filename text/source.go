package text

import (
	"fmt"
	"image"
	"math"
	"os"
	"sync"

	"github.com/google/uuid"
)

// FontSource represents a loaded font file.
// It owns a private copy of the font bytes and the parsed handle, and is
// the single entry point for metrics, kerning and glyph rasterization.
//
// FontSource is safe for concurrent use: the parser backends keep scratch
// buffers, so every glyph operation runs under the source's lock.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	name string
	id   uuid.UUID

	// mu guards parsed and data.
	mu sync.RWMutex

	// Configuration
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Data that is not a recognizable font, including empty data, yields an
// error wrapping ErrInvalidFontFormat.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", ErrInvalidFontFormat)
	}

	// Apply options first to get parser name
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}

	// Copy the data before parsing so the parsed handle never aliases
	// caller memory.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		id:     uuid.New(),
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	s.name = extractFontName(parsed)

	slogger().Debug("font source parsed",
		"name", s.name,
		"parser", config.parserName,
		"bytes", len(dataCopy),
		"unitsPerEm", parsed.UnitsPerEm())

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// ID returns the identity assigned to this source when it was created.
// Two sources parsed from the same bytes have different IDs.
func (s *FontSource) ID() uuid.UUID {
	s.copyCheck()
	return s.id
}

// Parsed returns the parsed font for advanced operations.
// It returns nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// DecodeByte maps a byte of a legacy single-byte string to a codepoint
// using the source's byte decoder.
func (s *FontSource) DecodeByte(b byte) rune {
	s.copyCheck()
	return s.config.decoder.DecodeByte(b)
}

// Close releases the font data and the parsed handle.
// Every glyph operation returns ErrUninitializedFont after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil

	return nil
}

// withFont runs fn under the source lock, or returns ErrUninitializedFont
// when the source was never parsed or has been closed.
func (s *FontSource) withFont(fn func(p ParsedFont) error) error {
	if s == nil || s.addr == nil {
		return ErrUninitializedFont
	}
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.parsed == nil {
		return ErrUninitializedFont
	}
	return fn(s.parsed)
}

// UnitsPerEm returns the design units per em of the font.
func (s *FontSource) UnitsPerEm() (int, error) {
	var upem int
	err := s.withFont(func(p ParsedFont) error {
		upem = p.UnitsPerEm()
		return nil
	})
	return upem, err
}

// VerticalMetrics returns the font ascent, descent and line gap in font
// units. Descent is negative (y-up); callers scale and round.
func (s *FontSource) VerticalMetrics() (ascent, descent, lineGap int, err error) {
	err = s.withFont(func(p ParsedFont) error {
		ascent, descent, lineGap = p.VerticalMetrics()
		return nil
	})
	return ascent, descent, lineGap, err
}

// ScaleForPixelHeight returns the scale factor that maps the distance from
// the highest ascender to the lowest descender onto pixelHeight pixels.
func (s *FontSource) ScaleForPixelHeight(pixelHeight float64) (float64, error) {
	ascent, descent, _, err := s.VerticalMetrics()
	if err != nil {
		return 0, err
	}
	fontHeight := ascent - descent
	if fontHeight <= 0 {
		return 0, fmt.Errorf("%w: ascent %d and descent %d span no height", ErrInvalidFontFormat, ascent, descent)
	}
	return pixelHeight / float64(fontHeight), nil
}

// ScaleForMappingEmToPixels returns the scale factor that maps one em onto
// pixels pixels.
func (s *FontSource) ScaleForMappingEmToPixels(pixels float64) (float64, error) {
	upem, err := s.UnitsPerEm()
	if err != nil {
		return 0, err
	}
	return pixels / float64(upem), nil
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
func (s *FontSource) HasGlyph(r rune) bool {
	found := false
	_ = s.withFont(func(p ParsedFont) error {
		found = p.GlyphIndex(r) != 0
		return nil
	})
	return found
}

// HorizontalMetrics returns the advance width and left side bearing of r
// in font units.
func (s *FontSource) HorizontalMetrics(r rune) (advance, leftBearing int, err error) {
	err = s.withFont(func(p ParsedFont) error {
		advance, leftBearing = p.HorizontalMetrics(p.GlyphIndex(r))
		return nil
	})
	return advance, leftBearing, err
}

// Kern returns the kerning adjustment in font units applied between r0 and
// a following r1.
func (s *FontSource) Kern(r0, r1 rune) (int, error) {
	var k int
	err := s.withFont(func(p ParsedFont) error {
		k = p.Kern(r0, r1)
		return nil
	})
	return k, err
}

// GlyphOutline returns the outline of r scaled to ppem pixels per em.
func (s *FontSource) GlyphOutline(r rune, ppem float64) (*GlyphOutline, error) {
	var outline *GlyphOutline
	err := s.withFont(func(p ParsedFont) error {
		var err error
		outline, err = p.GlyphOutline(p.GlyphIndex(r), ppem)
		if err != nil {
			return &FontError{Rune: r, Reason: "outline unavailable", Err: err}
		}
		return nil
	})
	return outline, err
}

// outlineAtScale loads the outline of r for a scale in pixels per font unit.
func (s *FontSource) outlineAtScale(r rune, scale float64) (*GlyphOutline, error) {
	upem, err := s.UnitsPerEm()
	if err != nil {
		return nil, err
	}
	return s.GlyphOutline(r, scale*float64(upem))
}

// GlyphBox returns the integer pixel box of r at the given scale, relative
// to the pen position on the baseline with the y axis pointing down.
// Glyphs without contours return an empty box.
func (s *FontSource) GlyphBox(r rune, scale float64) (x0, y0, x1, y1 int, err error) {
	outline, err := s.outlineAtScale(r, scale)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	box := outline.PixelBox()
	return box.Min.X, box.Min.Y, box.Max.X, box.Max.Y, nil
}

// RasterizeGlyph renders r at the given scale into an alpha mask sized to
// its GlyphBox.
func (s *FontSource) RasterizeGlyph(r rune, scale float64) (*GlyphImage, error) {
	outline, err := s.outlineAtScale(r, scale)
	if err != nil {
		return nil, err
	}
	advance, _, err := s.HorizontalMetrics(r)
	if err != nil {
		return nil, err
	}

	box := outline.PixelBox()
	return &GlyphImage{
		Mask:    RasterizeOutline(outline, box),
		Bounds:  box,
		Advance: float64(advance) * scale,
	}, nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	return "Unknown Font"
}

// roundHalfAway rounds x to the nearest integer, halves away from zero.
func roundHalfAway(x float64) int {
	return int(math.Round(x))
}

// glyphRect returns the box of a GlyphImage placed with its top-left
// corner at (x, y).
func glyphRect(g *GlyphImage, x, y int) image.Rectangle {
	return image.Rect(x, y, x+g.Bounds.Dx(), y+g.Bounds.Dy())
}
