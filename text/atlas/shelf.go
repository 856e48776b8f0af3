package atlas

// ShelfAllocator implements shelf-based rectangle packing.
//
// Rectangles are placed left-to-right on horizontal "shelves". A shelf is
// as tall as the first rectangle placed on it; a new shelf is opened below
// the last one when no existing shelf has room. Fed with rectangles sorted
// by decreasing height this is first-fit decreasing height packing.
//
// Padding is reserved after each rectangle, to the right and below.
type ShelfAllocator struct {
	width   int     // Total width of the area
	height  int     // Total height of the area
	padding int     // Padding between rectangles
	shelves []shelf // List of shelves

	// Tracking for utilization
	usedArea int
}

// shelf represents a horizontal strip in the area.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// NewShelfAllocator creates a new allocator for the given dimensions.
func NewShelfAllocator(width, height, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate finds space for a rectangle of the given size.
// Returns x, y position and true if space was found, or -1, -1, false if not.
//
// The algorithm:
// 1. Try to fit on an existing shelf with enough height
// 2. If no shelf fits, create a new shelf
// 3. If no space for new shelf, allocation fails
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	if paddedW > a.width {
		return -1, -1, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]

		if s.x+paddedW > a.width {
			continue
		}

		if h > s.height {
			// Only the last shelf can grow, and only into free space below.
			if i != len(a.shelves)-1 || s.y+paddedH > a.height {
				continue
			}
			s.height = h
		}

		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}

	if newY+paddedH > a.height {
		return -1, -1, false
	}

	a.shelves = append(a.shelves, shelf{
		y:      newY,
		height: h,
		x:      paddedW,
	})
	a.usedArea += w * h

	return 0, newY, true
}

// Reset clears all allocations and resizes the area to width x height,
// allowing the allocator to be reused for the next packing attempt.
func (a *ShelfAllocator) Reset(width, height int) {
	a.width = width
	a.height = height
	a.shelves = a.shelves[:0] // Keep capacity
	a.usedArea = 0
}

// Utilization returns the fraction of the area used (0.0 to 1.0).
func (a *ShelfAllocator) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}

// UsedArea returns the total area used by allocations.
func (a *ShelfAllocator) UsedArea() int {
	return a.usedArea
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}

// RemainingHeight returns the vertical space remaining for new shelves.
func (a *ShelfAllocator) RemainingHeight() int {
	if len(a.shelves) == 0 {
		return a.height
	}

	last := a.shelves[len(a.shelves)-1]
	used := last.y + last.height + a.padding
	if used >= a.height {
		return 0
	}
	return a.height - used
}
