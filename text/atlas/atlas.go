package atlas

import (
	"github.com/gogpu/glyphatlas/text"
	"github.com/google/uuid"
)

// GlyphRecord is the atlas entry of one codepoint.
// Records are created during packing and never modified afterwards.
type GlyphRecord struct {
	// Rune is the codepoint this record describes.
	Rune rune

	// Pixel rectangle of the glyph in the atlas bitmap, max exclusive.
	X0, Y0, X1, Y1 int

	// Offsets of the quad corners from the pen position on the baseline,
	// in output pixels with the y axis pointing down.
	XOff, YOff, XOff2, YOff2 float32

	// XAdvance is the pen advance in output pixels.
	XAdvance float32

	// UV rectangle of the glyph, normalized to the atlas size.
	S0, T0, S1, T1 float32
}

// Width returns the width of the glyph rectangle in atlas pixels.
func (g GlyphRecord) Width() int {
	return g.X1 - g.X0
}

// Height returns the height of the glyph rectangle in atlas pixels.
func (g GlyphRecord) Height() int {
	return g.Y1 - g.Y0
}

// Empty reports whether the glyph has no pixels (e.g. space).
func (g GlyphRecord) Empty() bool {
	return g.X1 <= g.X0 || g.Y1 <= g.Y0
}

// Atlas is a frozen single-channel texture holding every glyph of a
// character range, plus the per-glyph table describing where each glyph
// lives. An Atlas is immutable and safe for concurrent reads.
type Atlas struct {
	bitmap  *text.Bitmap
	records []GlyphRecord
	rng     text.CharacterRange

	pixelSize    float64
	scale        float64
	oversampling int
	attempts     int

	fontID   uuid.UUID
	fontName string

	// kerning holds pair adjustments in output pixels for atlases that
	// carry their own kerning table (BMFont imports).
	kerning map[[2]rune]float32
}

// Bitmap returns the atlas pixels. The bitmap must not be modified.
func (a *Atlas) Bitmap() *text.Bitmap {
	return a.bitmap
}

// Width returns the atlas width in pixels.
func (a *Atlas) Width() int {
	return a.bitmap.Width
}

// Height returns the atlas height in pixels.
func (a *Atlas) Height() int {
	return a.bitmap.Height
}

// Range returns the packed character range.
func (a *Atlas) Range() text.CharacterRange {
	return a.rng
}

// PixelSize returns the line height the atlas was packed for.
func (a *Atlas) PixelSize() float64 {
	return a.pixelSize
}

// Scale returns the font-units-to-pixels scale used for packing.
func (a *Atlas) Scale() float64 {
	return a.scale
}

// Oversampling returns the oversampling factor used for packing.
func (a *Atlas) Oversampling() int {
	return a.oversampling
}

// Attempts returns how many bitmap sizes were tried before the glyphs fit.
func (a *Atlas) Attempts() int {
	return a.attempts
}

// FontID returns the ID of the FontSource the atlas was packed from.
// Imported atlases have the nil UUID.
func (a *Atlas) FontID() uuid.UUID {
	return a.fontID
}

// FontName returns the name of the packed font.
func (a *Atlas) FontName() string {
	return a.fontName
}

// Len returns the number of glyph records.
func (a *Atlas) Len() int {
	return len(a.records)
}

// Glyph returns the record for r, or a *GlyphRangeError if r is outside
// the packed range.
func (a *Atlas) Glyph(r rune) (GlyphRecord, error) {
	i := a.rng.Index(r)
	if i < 0 || i >= len(a.records) {
		return GlyphRecord{}, &GlyphRangeError{Rune: r, Range: a.rng}
	}
	return a.records[i], nil
}

// Records returns a copy of the glyph table, indexed by codepoint minus
// the range minimum.
func (a *Atlas) Records() []GlyphRecord {
	out := make([]GlyphRecord, len(a.records))
	copy(out, a.records)
	return out
}

// Kerning returns the stored pair adjustment between r0 and r1 in output
// pixels, and whether the atlas carries a kerning table at all.
func (a *Atlas) Kerning(r0, r1 rune) (float32, bool) {
	if a.kerning == nil {
		return 0, false
	}
	return a.kerning[[2]rune{r0, r1}], true
}

// uvRect fills the normalized UV rectangle of every record.
func (a *Atlas) uvRect() {
	ipw := 1 / float32(a.bitmap.Width)
	iph := 1 / float32(a.bitmap.Height)
	for i := range a.records {
		g := &a.records[i]
		g.S0 = float32(g.X0) * ipw
		g.T0 = float32(g.Y0) * iph
		g.S1 = float32(g.X1) * ipw
		g.T1 = float32(g.Y1) * iph
	}
}
