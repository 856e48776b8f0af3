package glyphatlas

import "github.com/gogpu/glyphatlas/text"

const (
	// DefaultImagePath is where GenerateImage writes unless WithImagePath
	// is given.
	DefaultImagePath = "out.png"

	// DefaultCacheSize is the number of lines, and separately of atlases,
	// a Font keeps.
	DefaultCacheSize = 32
)

// FontOption configures a Font during creation.
//
// Example:
//
//	f, err := glyphatlas.New(ttf,
//	    glyphatlas.WithImagePath("line.png"),
//	    glyphatlas.WithSourceOptions(text.WithParser(text.ParserGoText)),
//	)
type FontOption func(*fontOptions)

// fontOptions holds optional configuration for Font creation.
type fontOptions struct {
	imagePath  string
	cacheSize  int
	sourceOpts []text.SourceOption
}

// defaultOptions returns the default font options.
func defaultOptions() fontOptions {
	return fontOptions{
		imagePath: DefaultImagePath,
		cacheSize: DefaultCacheSize,
	}
}

// WithImagePath sets the PNG file written by GenerateImage.
// An empty path keeps the default.
func WithImagePath(path string) FontOption {
	return func(o *fontOptions) {
		if path != "" {
			o.imagePath = path
		}
	}
}

// WithSourceOptions passes options to the underlying text.FontSource,
// such as the parser backend or the byte decoder.
func WithSourceOptions(opts ...text.SourceOption) FontOption {
	return func(o *fontOptions) {
		o.sourceOpts = append(o.sourceOpts, opts...)
	}
}

// WithCacheSize bounds how many lines and how many atlases a Font keeps.
// The least recently used entry is dropped when a cache is full.
// Non-positive values keep the default.
func WithCacheSize(n int) FontOption {
	return func(o *fontOptions) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}
