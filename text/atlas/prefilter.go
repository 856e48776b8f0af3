package atlas

import "github.com/gogpu/glyphatlas/text"

// oversampleShift returns the offset that recenters a glyph box-filtered
// with the given kernel width.
func oversampleShift(oversample int) float32 {
	if oversample <= 1 {
		return 0
	}
	return -float32(oversample-1) / (2 * float32(oversample))
}

// prefilter box-filters the w x h region at (x, y) of bmp horizontally and
// then vertically with a kernel of the given width. Each output pixel is
// the mean of itself and the kernel-1 pixels before it; pixels before the
// region count as zero.
func prefilter(bmp *text.Bitmap, x, y, w, h, kernel int) {
	if kernel <= 1 || w <= 0 || h <= 0 {
		return
	}
	stride := bmp.Stride()
	buf := make([]byte, max(w, h))

	for row := 0; row < h; row++ {
		off := (y+row)*stride + x
		boxFilter(bmp.Pix, off, 1, w, kernel, buf)
	}
	for col := 0; col < w; col++ {
		off := y*stride + x + col
		boxFilter(bmp.Pix, off, stride, h, kernel, buf)
	}
}

// boxFilter filters n samples of pix starting at off with the given step.
// buf holds a copy of the unfiltered samples.
func boxFilter(pix []byte, off, step, n, kernel int, buf []byte) {
	for i := 0; i < n; i++ {
		buf[i] = pix[off+i*step]
	}
	total := 0
	for i := 0; i < n; i++ {
		total += int(buf[i])
		if i >= kernel {
			total -= int(buf[i-kernel])
		}
		pix[off+i*step] = byte(total / kernel)
	}
}
