package text

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// Select it with WithParser(ParserGoText).
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFontFormat, err)
	}
	upem := int(face.Upem())
	if upem <= 0 {
		return nil, fmt.Errorf("%w: units per em is %d", ErrInvalidFontFormat, upem)
	}
	return &gotextParsedFont{face: face, unitsPerEm: upem}, nil
}

// gotextParsedFont implements ParsedFont using a go-text font.Face.
//
// Kerning is not read from tables directly: a two-rune run is shaped with
// HarfBuzz at a size of unitsPerEm, and the difference between the shaped
// and the nominal advance of the first glyph is the pair adjustment. This
// covers both GPOS and legacy kern tables.
type gotextParsedFont struct {
	face       *font.Face
	unitsPerEm int

	// shaper has internal mutable state and is not safe for concurrent use.
	shaper shaping.HarfbuzzShaper
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.face.Describe().Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return f.unitsPerEm
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) GlyphID {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid > math.MaxUint16 {
		return 0
	}
	return GlyphID(gid)
}

// VerticalMetrics implements ParsedFont.VerticalMetrics.
func (f *gotextParsedFont) VerticalMetrics() (ascent, descent, lineGap int) {
	ext, _ := f.face.FontHExtents()
	return roundUnits(ext.Ascender), roundUnits(ext.Descender), roundUnits(ext.LineGap)
}

// HorizontalMetrics implements ParsedFont.HorizontalMetrics.
func (f *gotextParsedFont) HorizontalMetrics(gid GlyphID) (advance, leftBearing int) {
	advance = roundUnits(f.face.HorizontalAdvance(font.GID(gid)))
	if ext, ok := f.face.GlyphExtents(font.GID(gid)); ok {
		leftBearing = roundUnits(ext.XBearing)
	}
	return advance, leftBearing
}

// Kern implements ParsedFont.Kern.
func (f *gotextParsedFont) Kern(r0, r1 rune) int {
	out := f.shaper.Shape(shaping.Input{
		Text:      []rune{r0, r1},
		RunStart:  0,
		RunEnd:    2,
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      fixed.I(f.unitsPerEm),
		Script:    language.LookupScript(r0),
		Language:  language.NewLanguage("en"),
	})
	// Ligatures collapse the pair into one glyph; there is nothing to kern.
	if len(out.Glyphs) != 2 {
		return 0
	}
	first := out.Glyphs[0]
	nominal := f.face.HorizontalAdvance(first.GlyphID)
	return first.XAdvance.Round() - roundUnits(nominal)
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	outline := &GlyphOutline{GID: gid}

	data, ok := f.face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok {
		// Bitmap, SVG and color glyphs have no vector outline to rasterize.
		return outline, nil
	}

	// Font units are y-up; outlines are y-down pixels.
	scale := float32(ppem / float64(f.unitsPerEm))
	outline.Segments = make([]OutlineSegment, 0, len(data.Segments))
	for _, seg := range data.Segments {
		out := OutlineSegment{}
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		}
		for i := 0; i < out.Op.pointCount(); i++ {
			out.Points[i] = OutlinePoint{
				X: seg.Args[i].X * scale,
				Y: -seg.Args[i].Y * scale,
			}
		}
		outline.Segments = append(outline.Segments, out)
	}
	outline.computeBounds()
	return outline, nil
}

func roundUnits(v float32) int {
	return int(math.Round(float64(v)))
}
