// Package glyphatlas builds glyph atlases and single-line text bitmaps
// from TrueType and OpenType fonts.
//
// # Overview
//
// glyphatlas turns font files into data a renderer can upload: a
// single-channel texture holding every glyph of a character range, plus
// per-character quads (texture coordinates and positions) to draw them.
// It never talks to a GPU itself.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphatlas"
//
//	f, err := glyphatlas.New(ttfBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	// Render one line into a bitmap and dump it as out.png.
//	if err := f.GenerateImage(60, "The quick brown fox"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Pack printable ASCII into an atlas.
//	a, err := f.GenerateAtlas(atlas.DefaultConfig(), "![a-zA-Z]~")
//
// # Architecture
//
// The library is organized into:
//   - glyphatlas: Font facade with per-size line and atlas caches
//   - text: FontSource, parser backends, metrics, rasterization, Line layout
//   - text/atlas: shelf packing, oversampling, quad generation, BMFont import
//
// # Coordinate System
//
// Bitmaps and glyph offsets use image coordinates: origin at the top-left,
// y increasing downward, baseline at y = 0 for glyph offsets. Quad
// positions are normalized by the atlas pixel size and flipped so that y
// increases upward.
package glyphatlas

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
