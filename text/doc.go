// Package text loads TrueType and OpenType fonts and turns their glyphs into
// pixels.
//
// # Font loading
//
// FontSource owns a private copy of the font bytes and a parsed handle
// produced by a pluggable FontParser. Two backends are registered:
//
//   - "ximage" (default): golang.org/x/image/font/sfnt
//   - "gotext": github.com/go-text/typesetting
//
// Every glyph operation on a closed or never-parsed source returns
// ErrUninitializedFont.
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    return err
//	}
//	defer source.Close()
//
// # Metrics
//
// Metrics are reported in font units (y up) and scaled by the caller.
// ScaleForPixelHeight maps the ascender-to-descender range of the font onto
// a pixel height; GlyphBox reports the integer pixel box of a glyph at a
// scale with the y axis pointing down.
//
// # Single-line layout
//
// Line renders a byte string into a Bitmap one glyph after another:
//
//	line, err := text.NewLine(source, 60, "The quick brown fox")
//	if err != nil {
//	    return err
//	}
//	bmp, err := line.Layout()
//	if err != nil {
//	    return err
//	}
//	_ = bmp.SavePNG("out.png")
//
// Packing many glyphs into a texture atlas lives in the atlas subpackage.
package text
