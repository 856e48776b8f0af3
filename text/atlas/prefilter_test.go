package atlas

import (
	"testing"

	"github.com/gogpu/glyphatlas/text"
)

func TestOversampleShift(t *testing.T) {
	tests := []struct {
		o    int
		want float32
	}{
		{1, 0},
		{2, -0.25},
		{4, -0.375},
	}
	for _, tt := range tests {
		if got := oversampleShift(tt.o); got != tt.want {
			t.Errorf("oversampleShift(%d) = %v, want %v", tt.o, got, tt.want)
		}
	}
}

func TestBoxFilter(t *testing.T) {
	pix := []byte{240, 0, 0, 120, 0}
	buf := make([]byte, len(pix))
	boxFilter(pix, 0, 1, len(pix), 2, buf)

	want := []byte{120, 120, 0, 60, 60}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pix = %v, want %v", pix, want)
			break
		}
	}
}

func TestPrefilterRegion(t *testing.T) {
	bmp := text.NewBitmap(6, 6)
	// A single full pixel at the region origin (1,1).
	bmp.Pix[1*6+1] = 255

	prefilter(bmp, 1, 1, 3, 3, 2)

	// The 2x2 box spreads it over (1,1), (2,1), (1,2), (2,2).
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			v := bmp.Value(x, y)
			inside := (x == 1 || x == 2) && (y == 1 || y == 2)
			if inside && v == 0 {
				t.Errorf("pixel (%d,%d) = 0, want coverage", x, y)
			}
			if !inside && v != 0 {
				t.Errorf("pixel (%d,%d) = %d, want 0", x, y, v)
			}
		}
	}
	if got := bmp.Value(1, 1); got != 63 { // 255/2 = 127, then 127/2 = 63
		t.Errorf("pixel (1,1) = %d, want 63", got)
	}
}
