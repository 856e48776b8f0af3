package atlas

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/glyphatlas/text"
)

// packGlyph is a glyph rasterized once and placed on every attempt.
type packGlyph struct {
	r     rune
	image *text.GlyphImage // at the oversampled scale

	// Slot size in atlas pixels: glyph box plus oversampling - 1.
	w, h int

	advance float32 // in output pixels
}

// Pack rasterizes every codepoint of cfg.Range into a single-channel
// atlas.
//
// Packing starts at cfg.InitialWidth x cfg.InitialHeight. When a glyph
// does not fit, both dimensions grow by cfg.GrowthFactor and packing
// restarts with a new bitmap. If the next height would exceed
// cfg.MaxHeight, Pack returns an *OverflowError; it never drops glyphs.
// A glyph too large for the biggest reachable atlas fails with an
// *OverflowError reporting zero attempts.
//
// Codepoints the font does not map are packed as the font's .notdef glyph.
func Pack(src *text.FontSource, cfg Config) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scale, err := src.ScaleForPixelHeight(cfg.PixelSize)
	if err != nil {
		return nil, err
	}

	glyphs, err := rasterizeRange(src, cfg, scale)
	if err != nil {
		return nil, err
	}

	// First-fit decreasing height: tallest glyphs first, ties by codepoint.
	order := make([]int, len(glyphs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(glyphs[b].h, glyphs[a].h); c != 0 {
			return c
		}
		return cmp.Compare(glyphs[a].r, glyphs[b].r)
	})

	// A glyph that cannot fit the largest reachable atlas fails before any
	// bitmap is allocated.
	maxW, maxH := maxSize(cfg)
	tallest, widest := 0, 0
	for _, g := range glyphs {
		tallest = max(tallest, g.h)
		widest = max(widest, g.w)
	}
	if tallest+2*cfg.Padding > maxH || widest+2*cfg.Padding > maxW {
		slogger().Debug("glyph larger than max atlas",
			"glyphWidth", widest,
			"glyphHeight", tallest,
			"maxWidth", maxW,
			"maxHeight", maxH)
		return nil, &OverflowError{
			Width:     maxW,
			Height:    maxH,
			MaxHeight: cfg.MaxHeight,
		}
	}

	w, h := cfg.InitialWidth, cfg.InitialHeight
	alloc := NewShelfAllocator(w-cfg.Padding, h-cfg.Padding, cfg.Padding)
	for attempt := 1; ; attempt++ {
		slogger().Debug("atlas packing attempt",
			"attempt", attempt,
			"width", w,
			"height", h,
			"glyphs", len(glyphs))

		bmp, records, ok := packAttempt(alloc, glyphs, order, w, h, cfg)
		if ok {
			a := &Atlas{
				bitmap:       bmp,
				records:      records,
				rng:          cfg.Range,
				pixelSize:    cfg.PixelSize,
				scale:        scale,
				oversampling: cfg.Oversampling,
				attempts:     attempt,
				fontID:       src.ID(),
				fontName:     src.Name(),
			}
			a.uvRect()

			slogger().Info("atlas packed",
				"font", a.fontName,
				"range", cfg.Range.String(),
				"width", w,
				"height", h,
				"attempts", attempt,
				"usedPixels", alloc.UsedArea(),
				"utilization", fmt.Sprintf("%.2f", alloc.Utilization()))
			return a, nil
		}

		nw, nh := grow(w, cfg.GrowthFactor), grow(h, cfg.GrowthFactor)
		if nh > cfg.MaxHeight {
			return nil, &OverflowError{
				Width:     w,
				Height:    h,
				MaxHeight: cfg.MaxHeight,
				Attempts:  attempt,
			}
		}
		w, h = nw, nh
	}
}

// maxSize returns the dimensions of the last attempt the grow loop can
// make before the height exceeds cfg.MaxHeight.
func maxSize(cfg Config) (w, h int) {
	w, h = cfg.InitialWidth, cfg.InitialHeight
	for grow(h, cfg.GrowthFactor) <= cfg.MaxHeight {
		w, h = grow(w, cfg.GrowthFactor), grow(h, cfg.GrowthFactor)
	}
	return w, h
}

// rasterizeRange renders every codepoint of cfg.Range at the oversampled
// scale, in range order.
func rasterizeRange(src *text.FontSource, cfg Config, scale float64) ([]packGlyph, error) {
	o := cfg.Oversampling
	glyphs := make([]packGlyph, 0, cfg.Range.Len())
	for r := cfg.Range.Min; r <= cfg.Range.Max; r++ {
		if !src.HasGlyph(r) {
			slogger().Warn("glyph missing from font, packing .notdef",
				"font", src.Name(),
				"rune", fmt.Sprintf("%U", r))
		}

		img, err := src.RasterizeGlyph(r, scale*float64(o))
		if err != nil {
			return nil, fmt.Errorf("atlas: rasterize %U: %w", r, err)
		}
		advance, _, err := src.HorizontalMetrics(r)
		if err != nil {
			return nil, err
		}

		glyphs = append(glyphs, packGlyph{
			r:       r,
			image:   img,
			w:       img.Bounds.Dx() + o - 1,
			h:       img.Bounds.Dy() + o - 1,
			advance: float32(scale * float64(advance)),
		})
	}
	return glyphs, nil
}

// packAttempt places every glyph into a fresh w x h bitmap, reusing alloc.
// It reports false as soon as one glyph does not fit.
func packAttempt(alloc *ShelfAllocator, glyphs []packGlyph, order []int, w, h int, cfg Config) (*text.Bitmap, []GlyphRecord, bool) {
	pad := cfg.Padding
	o := cfg.Oversampling
	shift := oversampleShift(o)

	// The allocator area is inset by the padding so glyphs keep a border
	// of pad pixels on all four sides of the atlas.
	alloc.Reset(w-pad, h-pad)
	bmp := text.NewBitmap(w, h)
	records := make([]GlyphRecord, len(glyphs))

	for _, i := range order {
		g := &glyphs[i]
		x, y, ok := alloc.Allocate(g.w, g.h)
		if !ok {
			slogger().Debug("atlas too small",
				"width", w,
				"height", h,
				"rune", fmt.Sprintf("%U", g.r),
				"shelves", alloc.ShelfCount(),
				"remainingHeight", alloc.RemainingHeight())
			return nil, nil, false
		}
		x += pad
		y += pad

		text.DrawGlyph(bmp, g.image, x, y)
		prefilter(bmp, x, y, g.w, g.h, o)

		box := g.image.Bounds
		records[i] = GlyphRecord{
			Rune:     g.r,
			X0:       x,
			Y0:       y,
			X1:       x + g.w,
			Y1:       y + g.h,
			XOff:     float32(box.Min.X)/float32(o) + shift,
			YOff:     float32(box.Min.Y)/float32(o) + shift,
			XOff2:    float32(box.Min.X+g.w)/float32(o) + shift,
			YOff2:    float32(box.Min.Y+g.h)/float32(o) + shift,
			XAdvance: g.advance,
		}
	}
	return bmp, records, true
}

// grow scales n by factor, adding at least one pixel.
func grow(n int, factor float64) int {
	next := int(math.Floor(float64(n) * factor))
	if next <= n {
		next = n + 1
	}
	return next
}
