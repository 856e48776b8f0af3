package glyphatlas

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/glyphatlas/internal/cache"
	"github.com/gogpu/glyphatlas/text"
	"github.com/gogpu/glyphatlas/text/atlas"
)

// lineKey identifies a laid-out line by pixel size and text.
type lineKey struct {
	pixelSize int
	text      string
}

// atlasKey identifies a packed atlas by font and packing parameters.
type atlasKey struct {
	font uuid.UUID
	cfg  atlas.Config
}

// Font bundles a FontSource with the lines and atlases generated from it.
//
// A Font keeps one text.Line per (pixel size, text) pair so repeated
// renders of the same line reuse its metrics cache, and one atlas per
// packing configuration. Both caches are bounded LRUs (see
// WithCacheSize). Font is safe for concurrent use; the lines it hands out
// are not.
type Font struct {
	src  *text.FontSource
	opts fontOptions

	// mu serializes layouts, which mutate the cached lines.
	mu      sync.Mutex
	lines   *cache.Cache[lineKey, *text.Line]
	atlases *cache.Cache[atlasKey, *atlas.Atlas]
}

// New parses font data and returns a Font ready to render.
func New(data []byte, opts ...FontOption) (*Font, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src, err := text.NewFontSource(data, o.sourceOpts...)
	if err != nil {
		return nil, err
	}
	return newFont(src, o), nil
}

// NewFromFile loads a font file and returns a Font ready to render.
func NewFromFile(path string, opts ...FontOption) (*Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("glyphatlas: read font: %w", err)
	}
	return New(data, opts...)
}

func newFont(src *text.FontSource, o fontOptions) *Font {
	return &Font{
		src:     src,
		opts:    o,
		lines:   cache.New[lineKey, *text.Line](o.cacheSize),
		atlases: cache.New[atlasKey, *atlas.Atlas](o.cacheSize),
	}
}

// Source returns the underlying font source.
func (f *Font) Source() *text.FontSource {
	return f.src
}

// Name returns the font family name.
func (f *Font) Name() string {
	return f.src.Name()
}

// Line returns the layout of s at pixelSize, creating it on first use.
func (f *Font) Line(pixelSize int, s string) (*text.Line, error) {
	return f.lines.GetOrCreate(lineKey{pixelSize: pixelSize, text: s}, func() (*text.Line, error) {
		return text.NewLine(f.src, pixelSize, s)
	})
}

// GenerateBitmap lays out s on a single line pixelSize pixels tall.
func (f *Font) GenerateBitmap(pixelSize int, s string) (*text.Bitmap, error) {
	l, err := f.Line(pixelSize, s)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return l.Layout()
}

// GenerateImage lays out s like GenerateBitmap and writes the result as a
// grayscale PNG to the configured image path (out.png by default).
func (f *Font) GenerateImage(pixelSize int, s string) error {
	bmp, err := f.GenerateBitmap(pixelSize, s)
	if err != nil {
		return err
	}
	if err := bmp.SavePNG(f.opts.imagePath); err != nil {
		return err
	}
	Logger().Debug("line image written",
		"path", f.opts.imagePath,
		"width", bmp.Width,
		"height", bmp.Height)
	return nil
}

// ImagePath returns the file GenerateImage writes to.
func (f *Font) ImagePath() string {
	return f.opts.imagePath
}

// GenerateAtlas packs the character range spanned by alphabet with cfg.
// cfg.Range is replaced by that range. Atlases are cached per packing
// configuration, so asking twice returns the same *atlas.Atlas.
func (f *Font) GenerateAtlas(cfg atlas.Config, alphabet string) (*atlas.Atlas, error) {
	rng, err := text.RangeFromAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	cfg.Range = rng
	// Alignment only affects quads, not the packed atlas.
	cfg.AlignToInteger = false

	return f.atlases.GetOrCreate(atlasKey{font: f.src.ID(), cfg: cfg}, func() (*atlas.Atlas, error) {
		return atlas.Pack(f.src, cfg)
	})
}

// CacheStats returns hit and eviction counts of the line and atlas caches.
func (f *Font) CacheStats() (lines, atlases cache.Stats) {
	return f.lines.Stats(), f.atlases.Stats()
}

// NewRenderer returns a quad renderer for the font. See atlas.Renderer.
func (f *Font) NewRenderer(cfg atlas.Config) *atlas.Renderer {
	return atlas.NewRenderer(f.src, cfg)
}

// Close releases the font and drops every cached line and atlas.
func (f *Font) Close() error {
	f.lines.Clear()
	f.atlases.Clear()
	return f.src.Close()
}
