package atlas

import (
	"fmt"
	"image"
	_ "image/png" // BMFont pages are PNG files
	"os"
	"path/filepath"

	"github.com/fzipp/bmfont"
	"golang.org/x/image/draw"

	"github.com/gogpu/glyphatlas/text"
)

// LoadBMFont imports a pre-baked AngelCode BMFont (.fnt plus one PNG page)
// as an Atlas, so renderers can draw text without rasterizing a font.
//
// The page image is converted to single-channel coverage: the alpha channel
// for translucent pages, luminance for opaque ones. The packed range spans
// the smallest to the largest character ID; IDs in between that the font
// does not define get empty records.
func LoadBMFont(path string) (*Atlas, error) {
	font, err := bmfont.Load(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: load bmfont: %w", err)
	}
	desc := font.Descriptor

	if len(desc.Pages) != 1 {
		return nil, fmt.Errorf("%w: %d pages", ErrMultiplePages, len(desc.Pages))
	}
	if len(desc.Chars) == 0 {
		return nil, fmt.Errorf("atlas: bmfont %s: %w", path, text.ErrEmptyAlphabet)
	}

	var pageFile string
	for _, p := range desc.Pages {
		pageFile = p.File
	}
	bmp, err := loadPage(filepath.Join(filepath.Dir(path), pageFile))
	if err != nil {
		return nil, err
	}

	rng := text.CharacterRange{Min: -1}
	for _, g := range desc.Chars {
		id := rune(g.ID)
		if rng.Min < 0 || id < rng.Min {
			rng.Min = id
		}
		if id > rng.Max {
			rng.Max = id
		}
	}

	base := int(desc.Common.Base)
	records := make([]GlyphRecord, rng.Len())
	for i := range records {
		records[i].Rune = rng.Min + rune(i)
	}
	for _, g := range desc.Chars {
		x, y := int(g.X), int(g.Y)
		w, h := int(g.Width), int(g.Height)
		xoff := float32(int(g.XOffset))
		yoff := float32(int(g.YOffset) - base)
		records[rng.Index(rune(g.ID))] = GlyphRecord{
			Rune:     rune(g.ID),
			X0:       x,
			Y0:       y,
			X1:       x + w,
			Y1:       y + h,
			XOff:     xoff,
			YOff:     yoff,
			XOff2:    xoff + float32(w),
			YOff2:    yoff + float32(h),
			XAdvance: float32(int(g.XAdvance)),
		}
	}

	kerning := make(map[[2]rune]float32, len(desc.Kerning))
	for p, k := range desc.Kerning {
		kerning[[2]rune{rune(p.First), rune(p.Second)}] = float32(int(k.Amount))
	}

	size := float64(int(desc.Info.Size))
	if size < 0 {
		size = -size
	}
	if size == 0 {
		size = float64(int(desc.Common.LineHeight))
	}

	a := &Atlas{
		bitmap:       bmp,
		records:      records,
		rng:          rng,
		pixelSize:    size,
		oversampling: 1,
		attempts:     1,
		fontName:     desc.Info.Face,
		kerning:      kerning,
	}
	a.uvRect()

	slogger().Info("bmfont imported",
		"font", a.fontName,
		"range", rng.String(),
		"width", bmp.Width,
		"height", bmp.Height,
		"kerningPairs", len(kerning))
	return a, nil
}

// loadPage decodes a page image into a coverage bitmap.
func loadPage(path string) (*text.Bitmap, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the font descriptor
	if err != nil {
		return nil, fmt.Errorf("atlas: open bmfont page: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("atlas: decode bmfont page %s: %w", path, err)
	}

	b := img.Bounds()
	bmp := text.NewBitmap(b.Dx(), b.Dy())
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		draw.Draw(bmp.Gray(), bmp.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.Draw(bmp.Alpha(), bmp.Bounds(), img, b.Min, draw.Src)
	}
	return bmp, nil
}
