package text

import (
	"errors"
	"testing"
)

func TestNewLineScale(t *testing.T) {
	src := newFakeSource(t)

	line, err := NewLine(src, 64, "AV")
	if err != nil {
		t.Fatal(err)
	}
	// 64 / (768 - -256)
	if line.Scale() != 0.0625 {
		t.Errorf("Scale = %v, want 0.0625", line.Scale())
	}
	if line.Ascent() != 48 {
		t.Errorf("Ascent = %d, want 48", line.Ascent())
	}
	if line.Descent() != -16 {
		t.Errorf("Descent = %d, want -16", line.Descent())
	}
}

func TestNewLineInvalid(t *testing.T) {
	src := newFakeSource(t)
	for _, h := range []int{0, -5} {
		if _, err := NewLine(src, h, "x"); !errors.Is(err, ErrInvalidPixelHeight) {
			t.Errorf("NewLine(height %d): err = %v, want ErrInvalidPixelHeight", h, err)
		}
	}

	closed := newFakeSource(t)
	_ = closed.Close()
	if _, err := NewLine(closed, 60, "x"); !errors.Is(err, ErrUninitializedFont) {
		t.Errorf("NewLine(closed): err = %v, want ErrUninitializedFont", err)
	}
}

func TestLineBoundingBox(t *testing.T) {
	src := newFakeSource(t)
	line, err := NewLine(src, 64, "AV")
	if err != nil {
		t.Fatal(err)
	}

	a, err := line.BoundingBox(0)
	if err != nil {
		t.Fatal(err)
	}
	want := CharacterCoordinates{
		X1: 4, Y1: -40, X2: 28, Y2: 0,
		Width:         32,
		LeftBearing:   64,
		KerningOffset: -8,
	}
	if a != want {
		t.Errorf("BoundingBox(0) = %+v, want %+v", a, want)
	}

	v, err := line.BoundingBox(1)
	if err != nil {
		t.Fatal(err)
	}
	if v.KerningOffset != 0 {
		t.Errorf("last character KerningOffset = %d, want 0", v.KerningOffset)
	}

	for _, i := range []int{-1, 2} {
		if _, err := line.BoundingBox(i); err == nil {
			t.Errorf("BoundingBox(%d): expected error", i)
		}
	}
}

func TestLineKerningCachedByCharacter(t *testing.T) {
	src := newFakeSource(t)
	// 'A' is followed by 'V' (kern -128) and later by 'B' (kern -64).
	line, err := NewLine(src, 64, "AVAB")
	if err != nil {
		t.Fatal(err)
	}

	first, err := line.BoundingBox(0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := line.BoundingBox(2)
	if err != nil {
		t.Fatal(err)
	}
	if first.KerningOffset != -8 {
		t.Errorf("first 'A' KerningOffset = %d, want -8", first.KerningOffset)
	}
	if second.KerningOffset != first.KerningOffset {
		t.Errorf("second 'A' KerningOffset = %d, want cached %d", second.KerningOffset, first.KerningOffset)
	}

	// A fresh line that meets "AB" first caches the other value, even
	// for a later 'A' followed by 'V'.
	other, err := NewLine(src, 64, "ABAV")
	if err != nil {
		t.Fatal(err)
	}
	if cc, _ := other.BoundingBox(0); cc.KerningOffset != -4 {
		t.Errorf("first 'A' in ABAV KerningOffset = %d, want -4", cc.KerningOffset)
	}
	if cc, _ := other.BoundingBox(2); cc.KerningOffset != -4 {
		t.Errorf("second 'A' in ABAV KerningOffset = %d, want cached -4", cc.KerningOffset)
	}
}

func TestLineTotalWidth(t *testing.T) {
	src := newFakeSource(t)
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"A", 33},
		{"AV", 66},
		{"hello", 165},
	}
	for _, tt := range tests {
		line, err := NewLine(src, 64, tt.text)
		if err != nil {
			t.Fatal(err)
		}
		got, err := line.TotalWidth()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("TotalWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestLineLayoutPlacement(t *testing.T) {
	src := newFakeSource(t)
	line, err := NewLine(src, 64, "AV")
	if err != nil {
		t.Fatal(err)
	}
	bmp, err := line.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if bmp.Width != 66 || bmp.Height != 64 {
		t.Fatalf("bitmap = %dx%d, want 66x64", bmp.Width, bmp.Height)
	}

	// 'A' is placed at x = 0 + 64*0.0625 = 4, y = 48 - 40 = 8.
	// 'V' starts at cursor 32 - 8 = 24, so x = 28.
	tests := []struct {
		x, y int
		ink  bool
	}{
		{10, 20, true},
		{4, 8, true},
		{3, 20, false},
		{10, 7, false},
		{10, 48, false},
		{40, 20, true},
		{55, 20, false},
	}
	for _, tt := range tests {
		v := bmp.Value(tt.x, tt.y)
		if tt.ink && v == 0 {
			t.Errorf("pixel (%d,%d) = 0, want ink", tt.x, tt.y)
		}
		if !tt.ink && v != 0 {
			t.Errorf("pixel (%d,%d) = %d, want empty", tt.x, tt.y, v)
		}
	}

	adv := line.Advances()
	if len(adv) != 2 || adv[0] != 24 || adv[1] != 32 {
		t.Errorf("Advances = %v, want [24 32]", adv)
	}
}

func TestLineLayoutRepeatable(t *testing.T) {
	src := newFakeSource(t)
	line, err := NewLine(src, 40, "To To")
	if err != nil {
		t.Fatal(err)
	}
	first, err := line.Layout()
	if err != nil {
		t.Fatal(err)
	}
	second, err := line.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if string(first.Pix) != string(second.Pix) {
		t.Error("second layout differs from the first; cursor was not reset")
	}
}

func TestLineLayoutGoRegular(t *testing.T) {
	for _, parser := range parsers {
		t.Run(parser, func(t *testing.T) {
			src := newGoRegular(t, parser)
			line, err := NewLine(src, 60, "The quick brown fox")
			if err != nil {
				t.Fatal(err)
			}
			width, err := line.TotalWidth()
			if err != nil {
				t.Fatal(err)
			}
			bmp, err := line.Layout()
			if err != nil {
				t.Fatal(err)
			}
			if bmp.Height != 60 {
				t.Errorf("Height = %d, want 60", bmp.Height)
			}
			if bmp.Width != width {
				t.Errorf("Width = %d, want TotalWidth %d", bmp.Width, width)
			}
			if countInk(bmp.Pix) == 0 {
				t.Error("layout produced an empty bitmap")
			}

			sum := 0
			for _, a := range line.Advances() {
				sum += a
			}
			if sum > width {
				t.Errorf("consumed advances %d exceed TotalWidth %d", sum, width)
			}
		})
	}
}
