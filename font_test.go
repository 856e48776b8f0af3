package glyphatlas

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas/text"
	"github.com/gogpu/glyphatlas/text/atlas"
)

func newGoRegularFont(t *testing.T, opts ...FontOption) *Font {
	t.Helper()
	f, err := New(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestNew(t *testing.T) {
	f := newGoRegularFont(t)
	if f.Name() == "" {
		t.Error("Name is empty")
	}
	if f.ImagePath() != DefaultImagePath {
		t.Errorf("ImagePath = %q, want %q", f.ImagePath(), DefaultImagePath)
	}

	if _, err := New([]byte("not a font")); !errors.Is(err, text.ErrInvalidFontFormat) {
		t.Errorf("New(garbage): err = %v, want ErrInvalidFontFormat", err)
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := NewFromFile(path, WithSourceOptions(text.WithParser(text.ParserGoText)))
	if err != nil {
		t.Fatalf("NewFromFile failed: %v", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := NewFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestFont_GenerateBitmap(t *testing.T) {
	f := newGoRegularFont(t)
	const s = "The quick brown fox"

	bmp, err := f.GenerateBitmap(60, s)
	if err != nil {
		t.Fatal(err)
	}
	l, err := f.Line(60, s)
	if err != nil {
		t.Fatal(err)
	}
	width, err := l.TotalWidth()
	if err != nil {
		t.Fatal(err)
	}
	if bmp.Width != width || bmp.Height != 60 {
		t.Errorf("bitmap = %dx%d, want %dx60", bmp.Width, bmp.Height, width)
	}
}

func TestFont_LineCache(t *testing.T) {
	f := newGoRegularFont(t)

	a, err := f.Line(32, "abc")
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.Line(32, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same size and text should reuse the line")
	}
	c, err := f.Line(48, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if c == a {
		t.Error("different size should create a new line")
	}

	if _, err := f.Line(0, "abc"); !errors.Is(err, text.ErrInvalidPixelHeight) {
		t.Errorf("Line(0): err = %v, want ErrInvalidPixelHeight", err)
	}
}

func TestFont_GenerateImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.png")
	f := newGoRegularFont(t, WithImagePath(path))

	if err := f.GenerateImage(40, "Hello"); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = file.Close() }()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dy() != 40 {
		t.Errorf("image height = %d, want 40", img.Bounds().Dy())
	}
}

func TestFont_GenerateAtlas(t *testing.T) {
	f := newGoRegularFont(t)
	cfg := atlas.DefaultConfig()

	a, err := f.GenerateAtlas(cfg, "![a-zA-Z]~")
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 94 {
		t.Errorf("Len = %d, want 94", a.Len())
	}

	cfg.AlignToInteger = true
	b, err := f.GenerateAtlas(cfg, "~!")
	if err != nil {
		t.Fatal(err)
	}
	if b != a {
		t.Error("same range and packing parameters should reuse the atlas")
	}

	cfg.Oversampling = 2
	c, err := f.GenerateAtlas(cfg, "~!")
	if err != nil {
		t.Fatal(err)
	}
	if c == a {
		t.Error("different oversampling should pack a new atlas")
	}

	if _, err := f.GenerateAtlas(cfg, ""); !errors.Is(err, text.ErrEmptyAlphabet) {
		t.Errorf("empty alphabet: err = %v, want ErrEmptyAlphabet", err)
	}
}

func TestFont_NewRenderer(t *testing.T) {
	f := newGoRegularFont(t)
	r := f.NewRenderer(atlas.DefaultConfig())
	if err := r.Generate("AZ"); err != nil {
		t.Fatal(err)
	}
	quads, err := r.RenderString("HELLO")
	if err != nil {
		t.Fatal(err)
	}
	if len(quads) != 5 {
		t.Errorf("len(quads) = %d, want 5", len(quads))
	}
}

func TestFont_Close(t *testing.T) {
	f, err := New(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := f.GenerateBitmap(20, "x"); !errors.Is(err, text.ErrUninitializedFont) {
		t.Errorf("after Close: err = %v, want ErrUninitializedFont", err)
	}
}

func TestFont_CacheEviction(t *testing.T) {
	f := newGoRegularFont(t, WithCacheSize(1))

	a, err := f.Line(20, "a")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Line(20, "b"); err != nil {
		t.Fatal(err)
	}
	again, err := f.Line(20, "a")
	if err != nil {
		t.Fatal(err)
	}
	if again == a {
		t.Error("expected the first line to be evicted by the second")
	}

	lines, _ := f.CacheStats()
	if lines.Evictions != 2 || lines.Len != 1 {
		t.Errorf("line cache stats = %+v, want 2 evictions and 1 entry", lines)
	}
}
