// Package atlas packs the glyphs of a character range into a single-channel
// texture and turns characters into textured quads.
//
// # Packing
//
// Pack rasterizes every codepoint of a CharacterRange and places the glyphs
// with first-fit decreasing height shelf packing. When they do not fit, the
// atlas grows by 25% in both directions and packing restarts, up to a
// height of 32768 pixels:
//
//	cfg := atlas.DefaultConfig()
//	cfg.Range = text.CharacterRange{Min: '!', Max: '~'}
//	a, err := atlas.Pack(source, cfg)
//	if err != nil {
//	    return err
//	}
//	upload(a.Bitmap().Pix, a.Width(), a.Height())
//
// # Quads
//
// Renderer owns an atlas and emits one Quad per character. RenderChar
// threads a caller-owned cursor through successive calls:
//
//	r := atlas.NewRenderer(source, atlas.DefaultConfig())
//	if err := r.Generate("![a-zA-Z]~"); err != nil {
//	    return err
//	}
//	var x, y float32
//	for _, c := range "Hello" {
//	    q, err := r.RenderChar(c, &x, &y)
//	    if err != nil {
//	        return err
//	    }
//	    draw(q.Positions[:], q.TexCoords[:], atlas.QuadIndices[:])
//	}
//
// RenderString does the same with kerning between neighbors applied.
//
// Pre-baked BMFont atlases can be imported with LoadBMFont.
package atlas
