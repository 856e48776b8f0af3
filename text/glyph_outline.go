package text

import (
	"image"
	"math"
)

// OutlinePoint represents a point in a glyph outline.
// Coordinates are in pixels with the y axis pointing down.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// pointCount returns how many entries of OutlineSegment.Points op uses.
func (op OutlineOp) pointCount() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// GlyphOutline represents the vector outline of a glyph at a given size.
// The outline consists of zero or more closed contours.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Bounds is the bounding box of every on- and off-curve point.
	Bounds Rect

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// PixelBox returns the integer pixel box enclosing the outline: the floor
// of its minimum corner and the ceiling of its maximum corner. Empty
// outlines return the zero rectangle.
func (o *GlyphOutline) PixelBox() image.Rectangle {
	if o.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(o.Bounds.MinX)),
		int(math.Floor(o.Bounds.MinY)),
		int(math.Ceil(o.Bounds.MaxX)),
		int(math.Ceil(o.Bounds.MaxY)),
	)
}

// Translate returns a new outline with all coordinates translated by (dx, dy).
func (o *GlyphOutline) Translate(dx, dy float32) *GlyphOutline {
	if o == nil {
		return nil
	}

	translated := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Bounds: Rect{
			MinX: o.Bounds.MinX + float64(dx),
			MinY: o.Bounds.MinY + float64(dy),
			MaxX: o.Bounds.MaxX + float64(dx),
			MaxY: o.Bounds.MaxY + float64(dy),
		},
		GID: o.GID,
	}

	for i, seg := range o.Segments {
		out := OutlineSegment{Op: seg.Op}
		for j := 0; j < seg.Op.pointCount(); j++ {
			out.Points[j] = OutlinePoint{X: seg.Points[j].X + dx, Y: seg.Points[j].Y + dy}
		}
		translated.Segments[i] = out
	}

	return translated
}

// computeBounds recomputes Bounds from the segment points.
func (o *GlyphOutline) computeBounds() {
	if len(o.Segments) == 0 {
		o.Bounds = Rect{}
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range o.Segments {
		for j := 0; j < seg.Op.pointCount(); j++ {
			x, y := float64(seg.Points[j].X), float64(seg.Points[j].Y)
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
	}
	o.Bounds = Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}
