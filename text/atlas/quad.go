package atlas

import (
	"errors"
	"math"

	"github.com/gogpu/glyphatlas/text"
)

// QuadIndices draws a Quad as two counter-clockwise triangles.
var QuadIndices = [6]uint16{0, 1, 2, 2, 3, 0}

// Quad is the geometry of one glyph: four corners in the order
// bottom-left, bottom-right, top-right, top-left.
type Quad struct {
	// TexCoords holds an (s, t) pair per corner.
	TexCoords [8]float32

	// Positions holds an (x, y, z) triple per corner, normalized by the
	// atlas pixel size with the y axis pointing up. z is always 0.
	Positions [12]float32
}

// newQuad builds a quad from a pixel-space rectangle (y down) and a UV
// rectangle, dividing positions by div and flipping y.
func newQuad(x0, y0, x1, y1, div float32, g GlyphRecord) Quad {
	nx0, nx1 := x0/div, x1/div
	top, bottom := -y0/div, -y1/div
	return Quad{
		TexCoords: [8]float32{
			g.S0, g.T1,
			g.S1, g.T1,
			g.S1, g.T0,
			g.S0, g.T0,
		},
		Positions: [12]float32{
			nx0, bottom, 0,
			nx1, bottom, 0,
			nx1, top, 0,
			nx0, top, 0,
		},
	}
}

// Renderer turns characters into quads against an atlas generated from a
// FontSource.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	src   *text.FontSource
	cfg   Config
	atlas *Atlas
}

// NewRenderer creates a renderer for src. No atlas exists until Generate
// succeeds.
func NewRenderer(src *text.FontSource, cfg Config) *Renderer {
	return &Renderer{src: src, cfg: cfg}
}

// NewRendererForAtlas creates a renderer for an existing atlas, such as
// one returned by LoadBMFont. Kerning comes from the atlas.
func NewRendererForAtlas(a *Atlas, cfg Config) *Renderer {
	return &Renderer{cfg: cfg, atlas: a}
}

// Generate packs the character range spanned by alphabet and makes the
// result the renderer's atlas. On failure the previous atlas is kept.
func (r *Renderer) Generate(alphabet string) error {
	rng, err := text.RangeFromAlphabet(alphabet)
	if err != nil {
		return err
	}
	cfg := r.cfg
	cfg.Range = rng

	a, err := Pack(r.src, cfg)
	if err != nil {
		return err
	}
	r.atlas = a
	return nil
}

// Atlas returns the current atlas, or nil before Generate.
func (r *Renderer) Atlas() *Atlas {
	return r.atlas
}

// RenderChar returns the quad for c with its pen position at (*x, *y) and
// advances *x by the glyph's advance. No kerning is applied: a single
// character has no successor to kern against.
//
// It returns ErrAtlasNotReady before an atlas exists and a
// *GlyphRangeError when c lies outside the packed range; the cursor is
// left untouched in both cases.
func (r *Renderer) RenderChar(c rune, x, y *float32) (Quad, error) {
	if r.atlas == nil {
		return Quad{}, ErrAtlasNotReady
	}
	g, err := r.atlas.Glyph(c)
	if err != nil {
		return Quad{}, err
	}

	var x0, y0, x1, y1 float32
	if r.cfg.AlignToInteger {
		ax := float32(math.Floor(float64(*x+g.XOff) + 0.5))
		ay := float32(math.Floor(float64(*y+g.YOff) + 0.5))
		x0, y0 = ax, ay
		x1, y1 = ax+g.XOff2-g.XOff, ay+g.YOff2-g.YOff
	} else {
		x0, y0 = *x+g.XOff, *y+g.YOff
		x1, y1 = *x+g.XOff2, *y+g.YOff2
	}

	*x += g.XAdvance
	return newQuad(x0, y0, x1, y1, float32(r.atlas.pixelSize), g), nil
}

// RenderString returns the quads of s with the pen starting at the origin.
//
// Like RangeFromAlphabet, RenderString walks s byte by byte and takes each
// byte value as a codepoint, so a string renders with the same characters
// its alphabet packed.
//
// Unlike RenderChar it sees the whole string, so the kerning between each
// character and the next one is added to the pen after every glyph.
// Characters outside the packed range are skipped without moving the pen;
// their errors are joined and returned with the quads of the rest.
func (r *Renderer) RenderString(s string) ([]Quad, error) {
	if r.atlas == nil {
		return nil, ErrAtlasNotReady
	}

	quads := make([]Quad, 0, len(s))
	var skipped []error
	var x, y float32
	for i := 0; i < len(s); i++ {
		c := rune(s[i])
		q, err := r.RenderChar(c, &x, &y)
		if err != nil {
			var rangeErr *GlyphRangeError
			if errors.As(err, &rangeErr) {
				skipped = append(skipped, err)
				continue
			}
			return nil, err
		}
		quads = append(quads, q)

		if i+1 < len(s) {
			k, err := r.kern(c, rune(s[i+1]))
			if err != nil {
				return nil, err
			}
			x += k
		}
	}
	return quads, errors.Join(skipped...)
}

// kern returns the kerning between c0 and c1 in output pixels.
func (r *Renderer) kern(c0, c1 rune) (float32, error) {
	if k, ok := r.atlas.Kerning(c0, c1); ok {
		return k, nil
	}
	if r.src == nil {
		return 0, nil
	}
	k, err := r.src.Kern(c0, c1)
	if err != nil {
		return 0, err
	}
	return float32(float64(k) * r.atlas.scale), nil
}
