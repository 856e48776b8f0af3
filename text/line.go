package text

import "fmt"

// Line lays out a single-line byte string from a FontSource into a Bitmap.
//
// A Line walks its text byte by byte; each byte is mapped to a codepoint
// through the source's byte decoder. Per-character metrics are computed on
// first use and cached by byte value for the lifetime of the Line.
//
// Kerning depends on the following character but is cached with the
// current one: a byte that occurs again before a different successor
// reuses the kerning of its first occurrence.
//
// Line is not safe for concurrent use.
type Line struct {
	src         *FontSource
	text        string
	pixelHeight int

	scale   float64
	ascent  int
	descent int

	cache    map[byte]CharacterCoordinates
	advances []int
}

// NewLine prepares the layout of s at pixelHeight pixels.
// The scale maps the font's ascender-to-descender range onto pixelHeight;
// the ascent and descent are rounded to whole pixels.
func NewLine(src *FontSource, pixelHeight int, s string) (*Line, error) {
	if pixelHeight <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPixelHeight, pixelHeight)
	}
	scale, err := src.ScaleForPixelHeight(float64(pixelHeight))
	if err != nil {
		return nil, err
	}
	ascent, descent, _, err := src.VerticalMetrics()
	if err != nil {
		return nil, err
	}

	slogger().Debug("selected scale",
		"font", src.Name(),
		"pixelHeight", pixelHeight,
		"scale", scale)

	return &Line{
		src:         src,
		text:        s,
		pixelHeight: pixelHeight,
		scale:       scale,
		ascent:      roundHalfAway(float64(ascent) * scale),
		descent:     roundHalfAway(float64(descent) * scale),
		cache:       make(map[byte]CharacterCoordinates),
	}, nil
}

// Text returns the string laid out by the line.
func (l *Line) Text() string { return l.text }

// PixelHeight returns the requested line height in pixels.
func (l *Line) PixelHeight() int { return l.pixelHeight }

// Scale returns the font-units-to-pixels scale factor.
func (l *Line) Scale() float64 { return l.scale }

// Ascent returns the scaled, rounded ascent in pixels.
func (l *Line) Ascent() int { return l.ascent }

// Descent returns the scaled, rounded descent in pixels (negative).
func (l *Line) Descent() int { return l.descent }

// BoundingBox returns the metrics of the character at byte index i,
// computing and caching them on first use of that byte value.
func (l *Line) BoundingBox(i int) (CharacterCoordinates, error) {
	if i < 0 || i >= len(l.text) {
		return CharacterCoordinates{}, fmt.Errorf("text: index %d out of range [0, %d)", i, len(l.text))
	}
	c := l.text[i]
	if cc, ok := l.cache[c]; ok {
		return cc, nil
	}

	r := l.src.DecodeByte(c)
	advance, lsb, err := l.src.HorizontalMetrics(r)
	if err != nil {
		return CharacterCoordinates{}, err
	}
	x0, y0, x1, y1, err := l.src.GlyphBox(r, l.scale)
	if err != nil {
		return CharacterCoordinates{}, err
	}

	cc := CharacterCoordinates{
		X1:          x0,
		Y1:          y0,
		X2:          x1,
		Y2:          y1,
		Width:       roundHalfAway(float64(advance) * l.scale),
		LeftBearing: lsb,
	}
	if i+1 < len(l.text) {
		k, err := l.src.Kern(r, l.src.DecodeByte(l.text[i+1]))
		if err != nil {
			return CharacterCoordinates{}, err
		}
		cc.KerningOffset = roundHalfAway(float64(k) * l.scale)
	}

	l.cache[c] = cc
	return cc, nil
}

// TotalWidth returns the bitmap width needed for the line: the sum of each
// character's rounded advance plus one pixel, left to right.
func (l *Line) TotalWidth() (int, error) {
	total := 0
	for i := 0; i < len(l.text); i++ {
		cc, err := l.BoundingBox(i)
		if err != nil {
			return 0, err
		}
		total += cc.Width + 1
	}
	return total, nil
}

// Layout renders the line into a new TotalWidth x PixelHeight bitmap.
//
// Each glyph is placed with its box at the pen position plus the scaled
// left bearing horizontally, and at the ascent plus the box top vertically.
// The pen then advances by the character width plus its kerning offset.
// Glyph pixels that fall outside the bitmap are clipped.
func (l *Line) Layout() (*Bitmap, error) {
	width, err := l.TotalWidth()
	if err != nil {
		return nil, err
	}
	bmp := NewBitmap(width, l.pixelHeight)

	slogger().Debug("line bitmap allocated",
		"width", width,
		"height", l.pixelHeight,
		"chars", len(l.text))

	l.advances = l.advances[:0]
	cursor := 0
	for i := 0; i < len(l.text); i++ {
		cc, err := l.BoundingBox(i)
		if err != nil {
			return nil, err
		}
		glyph, err := l.src.RasterizeGlyph(l.src.DecodeByte(l.text[i]), l.scale)
		if err != nil {
			return nil, err
		}

		x := cursor + roundHalfAway(float64(cc.LeftBearing)*l.scale)
		y := l.ascent + cc.Y1
		DrawGlyph(bmp, glyph, x, y)

		step := cc.Width + cc.KerningOffset
		l.advances = append(l.advances, step)
		cursor += step
	}

	return bmp, nil
}

// Advances returns the per-character pen advances consumed by the last
// Layout call.
func (l *Line) Advances() []int {
	out := make([]int, len(l.advances))
	copy(out, l.advances)
	return out
}
