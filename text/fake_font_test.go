package text

import (
	"errors"
	"testing"
)

// fakeParserName is registered once for the package tests.
const fakeParserName = "fake"

func init() {
	RegisterParser(fakeParserName, fakeParser{})
}

// fakeParser returns a fakeFont whatever the data is, so tests can pin
// metrics and kerning to known values.
type fakeParser struct{}

func (fakeParser) Parse(data []byte) (ParsedFont, error) {
	if string(data) == "broken" {
		return nil, errors.New("fake: broken font")
	}
	return newFakeFont(), nil
}

// fakeFont has 1024 units per em, ascent 768, descent -256 and a 384x640
// box sitting on the baseline for every glyph, with a left bearing of 64
// and an advance of 512. At 64 pixels every metric scales to a whole
// number. Rune 0x01 is missing and maps to .notdef.
type fakeFont struct {
	kern map[[2]rune]int
}

func newFakeFont() *fakeFont {
	return &fakeFont{kern: map[[2]rune]int{
		{'A', 'V'}: -128,
		{'A', 'B'}: -64,
		{'T', 'o'}: -96,
	}}
}

func (f *fakeFont) Name() string    { return "Fake Sans" }
func (f *fakeFont) UnitsPerEm() int { return 1024 }

func (f *fakeFont) GlyphIndex(r rune) GlyphID {
	if r == 0x01 {
		return 0
	}
	return GlyphID(r)
}

func (f *fakeFont) VerticalMetrics() (ascent, descent, lineGap int) {
	return 768, -256, 0
}

func (f *fakeFont) HorizontalMetrics(GlyphID) (advance, leftBearing int) {
	return 512, 64
}

func (f *fakeFont) Kern(r0, r1 rune) int {
	return f.kern[[2]rune{r0, r1}]
}

func (f *fakeFont) GlyphOutline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	if gid == ' ' {
		return &GlyphOutline{GID: gid}, nil
	}
	s := float32(ppem / 1024)
	x0, x1 := 64*s, 448*s
	y0, y1 := -640*s, float32(0)
	o := &GlyphOutline{
		GID: gid,
		Segments: []OutlineSegment{
			{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{X: x0, Y: y0}}},
			{Op: OutlineOpLineTo, Points: [3]OutlinePoint{{X: x1, Y: y0}}},
			{Op: OutlineOpLineTo, Points: [3]OutlinePoint{{X: x1, Y: y1}}},
			{Op: OutlineOpLineTo, Points: [3]OutlinePoint{{X: x0, Y: y1}}},
		},
	}
	o.computeBounds()
	return o, nil
}

// newFakeSource returns a FontSource backed by fakeFont.
func newFakeSource(t *testing.T) *FontSource {
	t.Helper()
	src, err := NewFontSource([]byte("fake font data"), WithParser(fakeParserName))
	if err != nil {
		t.Fatalf("NewFontSource(fake) failed: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}
