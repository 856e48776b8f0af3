package text

import (
	"image"
	"testing"
)

func squareOutline(x0, y0, x1, y1 float32) *GlyphOutline {
	o := &GlyphOutline{
		Segments: []OutlineSegment{
			{Op: OutlineOpMoveTo, Points: [3]OutlinePoint{{X: x0, Y: y0}}},
			{Op: OutlineOpLineTo, Points: [3]OutlinePoint{{X: x1, Y: y0}}},
			{Op: OutlineOpLineTo, Points: [3]OutlinePoint{{X: x1, Y: y1}}},
			{Op: OutlineOpLineTo, Points: [3]OutlinePoint{{X: x0, Y: y1}}},
		},
	}
	o.computeBounds()
	return o
}

func TestOutlineOpString(t *testing.T) {
	tests := []struct {
		op   OutlineOp
		want string
	}{
		{OutlineOpMoveTo, "MoveTo"},
		{OutlineOpLineTo, "LineTo"},
		{OutlineOpQuadTo, "QuadTo"},
		{OutlineOpCubicTo, "CubicTo"},
		{OutlineOp(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestOutlinePixelBox(t *testing.T) {
	o := squareOutline(1.5, -10.2, 7.1, 0.4)
	want := image.Rect(1, -11, 8, 1)
	if got := o.PixelBox(); got != want {
		t.Errorf("PixelBox = %v, want %v", got, want)
	}

	var empty *GlyphOutline
	if !empty.IsEmpty() || !empty.PixelBox().Empty() {
		t.Error("nil outline should be empty")
	}
}

func TestOutlineTranslate(t *testing.T) {
	o := squareOutline(0, 0, 4, 4).Translate(2, -1)
	if o.Bounds != (Rect{MinX: 2, MinY: -1, MaxX: 6, MaxY: 3}) {
		t.Errorf("Bounds = %+v", o.Bounds)
	}
	if p := o.Segments[2].Points[0]; p.X != 6 || p.Y != 3 {
		t.Errorf("translated point = %+v, want {6 3}", p)
	}
}

func TestRasterizeOutline(t *testing.T) {
	o := squareOutline(2, 2, 8, 6)
	mask := RasterizeOutline(o, o.PixelBox())
	if mask.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Fatalf("mask bounds = %v", mask.Bounds())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if a := mask.AlphaAt(x, y).A; a != 0xff {
				t.Errorf("pixel (%d,%d) = %d, want full coverage", x, y, a)
			}
		}
	}

	if m := RasterizeOutline(&GlyphOutline{}, image.Rectangle{}); len(m.Pix) != 0 {
		t.Error("empty outline should give an empty mask")
	}
}

func TestDrawGlyphClips(t *testing.T) {
	o := squareOutline(0, 0, 4, 4)
	g := &GlyphImage{Mask: RasterizeOutline(o, o.PixelBox()), Bounds: o.PixelBox()}

	dst := NewBitmap(5, 5)
	DrawGlyph(dst, g, 3, -2) // overhangs the right and top edges

	want := map[image.Point]bool{
		{3, 0}: true, {4, 0}: true, {3, 1}: true, {4, 1}: true,
		{2, 0}: false, {3, 2}: false,
	}
	for p, ink := range want {
		if got := dst.Value(p.X, p.Y) != 0; got != ink {
			t.Errorf("pixel %v ink = %v, want %v", p, got, ink)
		}
	}
}
