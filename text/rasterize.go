package text

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// GlyphImage represents a rasterized glyph.
// This contains the alpha mask and positioning information.
type GlyphImage struct {
	// Mask is the alpha mask with its top-left pixel at (0, 0).
	Mask *image.Alpha

	// Bounds is the pixel box of the glyph relative to the pen position
	// on the baseline (y down). Mask has the same size as Bounds.
	Bounds image.Rectangle

	// Advance width in pixels.
	// This is how far the cursor should move after drawing this glyph.
	Advance float64
}

// RasterizeOutline renders outline into a new alpha mask covering box.
// The outline is translated by -box.Min, so the mask's (0, 0) pixel is the
// top-left corner of box. Empty outlines and empty boxes yield an empty mask.
func RasterizeOutline(outline *GlyphOutline, box image.Rectangle) *image.Alpha {
	w, h := box.Dx(), box.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if outline.IsEmpty() || w <= 0 || h <= 0 {
		return mask
	}

	dx, dy := -float32(box.Min.X), -float32(box.Min.Y)
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	for _, seg := range outline.Segments {
		p := seg.Points
		switch seg.Op {
		case OutlineOpMoveTo:
			z.ClosePath()
			z.MoveTo(p[0].X+dx, p[0].Y+dy)
		case OutlineOpLineTo:
			z.LineTo(p[0].X+dx, p[0].Y+dy)
		case OutlineOpQuadTo:
			z.QuadTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy)
		case OutlineOpCubicTo:
			z.CubeTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy, p[2].X+dx, p[2].Y+dy)
		}
	}
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// DrawGlyph composites g onto dst with the top-left corner of its mask at
// (x, y). Pixels falling outside dst are clipped.
func DrawGlyph(dst draw.Image, g *GlyphImage, x, y int) {
	if g == nil || g.Mask == nil {
		return
	}
	r := glyphRect(g, x, y)
	draw.DrawMask(dst, r, image.Opaque, image.Point{}, g.Mask, image.Point{}, draw.Over)
}
