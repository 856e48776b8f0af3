package atlas

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const testFNT = `info face="Test Sans" size=-32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1 outline=0
common lineHeight=36 base=29 scaleW=64 scaleH=32 pages=1 packed=0 alphaChnl=0 redChnl=4 greenChnl=4 blueChnl=4
page id=0 file="test_0.png"
chars count=2
char id=65   x=0     y=0     width=10    height=20    xoffset=1     yoffset=9     xadvance=12    page=0  chnl=15
char id=67   x=16    y=0     width=8     height=20    xoffset=2     yoffset=9     xadvance=11    page=0  chnl=15
kernings count=1
kerning first=65  second=67  amount=-2
`

// writeBMFont writes testFNT and a 64x32 page whose 'A' cell is fully
// covered into a temporary directory.
func writeBMFont(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	page := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			page.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, "test_0.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, page); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "test.fnt")
	if err := os.WriteFile(path, []byte(testFNT), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBMFont(t *testing.T) {
	a, err := LoadBMFont(writeBMFont(t))
	if err != nil {
		t.Fatalf("LoadBMFont failed: %v", err)
	}

	if a.FontName() != "Test Sans" {
		t.Errorf("FontName = %q", a.FontName())
	}
	if a.PixelSize() != 32 {
		t.Errorf("PixelSize = %v, want 32", a.PixelSize())
	}
	if a.Width() != 64 || a.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", a.Width(), a.Height())
	}
	if a.Len() != 3 {
		t.Fatalf("Len = %d, want 3 ('A'..'C')", a.Len())
	}

	g, err := a.Glyph('A')
	if err != nil {
		t.Fatal(err)
	}
	want := GlyphRecord{
		Rune: 'A',
		X0:   0, Y0: 0, X1: 10, Y1: 20,
		XOff: 1, YOff: -20, XOff2: 11, YOff2: 0,
		XAdvance: 12,
		S0:       0, T0: 0, S1: 10.0 / 64, T1: 20.0 / 32,
	}
	if g != want {
		t.Errorf("record A = %+v\nwant %+v", g, want)
	}

	// 'B' is inside the range but undefined.
	b, err := a.Glyph('B')
	if err != nil {
		t.Fatal(err)
	}
	if !b.Empty() || b.XAdvance != 0 {
		t.Errorf("record B = %+v, want empty", b)
	}

	if k, ok := a.Kerning('A', 'C'); !ok || k != -2 {
		t.Errorf("Kerning(A, C) = %v, %v, want -2, true", k, ok)
	}
	if k, _ := a.Kerning('C', 'A'); k != 0 {
		t.Errorf("Kerning(C, A) = %v, want 0", k)
	}

	if v := a.Bitmap().Value(5, 5); v != 255 {
		t.Errorf("coverage inside A = %d, want 255", v)
	}
	if v := a.Bitmap().Value(20, 5); v != 0 {
		t.Errorf("coverage inside C = %d, want 0", v)
	}
}

func TestLoadBMFont_RenderString(t *testing.T) {
	a, err := LoadBMFont(writeBMFont(t))
	if err != nil {
		t.Fatal(err)
	}
	r := NewRendererForAtlas(a, DefaultConfig())

	quads, err := r.RenderString("AC")
	if err != nil {
		t.Fatal(err)
	}
	if len(quads) != 2 {
		t.Fatalf("len(quads) = %d, want 2", len(quads))
	}
	// 'C' starts after A's advance (12) and the -2 kerning pair, plus its
	// own x offset of 2.
	if want := float32(12-2+2) / 32; quads[1].Positions[0] != want {
		t.Errorf("C x0 = %v, want %v", quads[1].Positions[0], want)
	}
}

func TestLoadBMFont_Errors(t *testing.T) {
	if _, err := LoadBMFont(filepath.Join(t.TempDir(), "missing.fnt")); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.fnt")
	if err := os.WriteFile(path, []byte(testFNT), 0o600); err != nil {
		t.Fatal(err)
	}
	// The page image is missing.
	if _, err := LoadBMFont(path); err == nil {
		t.Error("expected error for missing page")
	} else if errors.Is(err, ErrMultiplePages) {
		t.Errorf("unexpected ErrMultiplePages: %v", err)
	}
}
