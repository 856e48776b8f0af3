package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFontFormat, err)
	}
	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		return nil, fmt.Errorf("%w: units per em is %d", ErrInvalidFontFormat, upem)
	}
	return &ximageParsedFont{font: f, unitsPerEm: upem}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// Unscaled metrics are read by asking sfnt for values at a ppem of
// unitsPerEm/64 pixels: sfnt scales by ppem/unitsPerEm, so the raw 26.6
// value it returns is exactly the value in font units.
type ximageParsedFont struct {
	font       *opentype.Font
	unitsPerEm int

	// buf is reused for sfnt operations. ParsedFont is not safe for
	// concurrent use through the same buffer.
	buf sfnt.Buffer
}

// unitsPPEM returns the ppem that makes sfnt report values in font units.
func (f *ximageParsedFont) unitsPPEM() fixed.Int26_6 {
	return fixed.Int26_6(f.unitsPerEm)
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return f.unitsPerEm
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// VerticalMetrics implements ParsedFont.VerticalMetrics.
func (f *ximageParsedFont) VerticalMetrics() (ascent, descent, lineGap int) {
	m, err := f.font.Metrics(&f.buf, f.unitsPPEM(), font.HintingNone)
	if err != nil {
		return 0, 0, 0
	}
	// sfnt reports Descent as a positive distance below the baseline.
	ascent = int(m.Ascent)
	descent = -int(m.Descent)
	lineGap = int(m.Height) - ascent + descent
	return ascent, descent, lineGap
}

// HorizontalMetrics implements ParsedFont.HorizontalMetrics.
func (f *ximageParsedFont) HorizontalMetrics(gid GlyphID) (advance, leftBearing int) {
	bounds, adv, err := f.font.GlyphBounds(&f.buf, sfnt.GlyphIndex(gid), f.unitsPPEM(), font.HintingNone)
	if err != nil {
		return 0, 0
	}
	return int(adv), int(bounds.Min.X)
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(r0, r1 rune) int {
	x0 := sfnt.GlyphIndex(f.GlyphIndex(r0))
	x1 := sfnt.GlyphIndex(f.GlyphIndex(r1))
	k, err := f.font.Kern(&f.buf, x0, x1, f.unitsPPEM(), font.HintingNone)
	if err != nil {
		return 0
	}
	return int(k)
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *ximageParsedFont) GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), fixed.Int26_6(ppem*64), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return &GlyphOutline{GID: gid}, nil
		}
		return nil, err
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		GID:      gid,
	}
	for _, seg := range segments {
		out := OutlineSegment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		}
		for i := 0; i < out.Op.pointCount(); i++ {
			out.Points[i] = fixedPointToOutline(seg.Args[i])
		}
		outline.Segments = append(outline.Segments, out)
	}
	outline.computeBounds()
	return outline, nil
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}
