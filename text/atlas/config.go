package atlas

import "github.com/gogpu/glyphatlas/text"

// Packing limits.
const (
	// DefaultInitialSize is the starting width and height of an atlas.
	DefaultInitialSize = 256

	// DefaultGrowthFactor is applied to both dimensions after a failed attempt.
	DefaultGrowthFactor = 1.25

	// DefaultMaxHeight is the largest atlas height Pack will try.
	DefaultMaxHeight = 32768

	// MaxOversampling is the largest supported oversampling factor.
	MaxOversampling = 8
)

// Config holds atlas packing parameters.
type Config struct {
	// Range is the inclusive codepoint range to pack.
	// Renderer.Generate derives it from an alphabet.
	Range text.CharacterRange `toml:"-"`

	// PixelSize is the line height in pixels. The font is scaled so its
	// ascender-to-descender range spans PixelSize, and quad positions are
	// divided by it.
	// Default: 60
	PixelSize float64 `toml:"pixel_size"`

	// Oversampling rasterizes each glyph this many times larger in both
	// directions and box-filters it back, which improves quality for
	// glyphs drawn at sub-pixel positions.
	// Default: 1
	Oversampling int `toml:"oversampling"`

	// Padding between glyphs and around the atlas border.
	// Default: 1
	Padding int `toml:"padding"`

	// InitialWidth and InitialHeight size the first packing attempt.
	// Default: 256x256
	InitialWidth  int `toml:"initial_width"`
	InitialHeight int `toml:"initial_height"`

	// GrowthFactor multiplies both dimensions after a failed attempt.
	// Each dimension grows by at least one pixel.
	// Default: 1.25
	GrowthFactor float64 `toml:"growth_factor"`

	// MaxHeight bounds the atlas height; packing fails with
	// ErrAtlasOverflow rather than grow past it.
	// Default: 32768
	MaxHeight int `toml:"max_height"`

	// AlignToInteger snaps the top-left corner of each quad to whole
	// pixels before normalization.
	AlignToInteger bool `toml:"align_to_integer"`
}

// DefaultConfig returns the default packing configuration for the
// printable ASCII range.
func DefaultConfig() Config {
	return Config{
		Range:         text.CharacterRange{Min: ' ', Max: '~'},
		PixelSize:     60,
		Oversampling:  1,
		Padding:       1,
		InitialWidth:  DefaultInitialSize,
		InitialHeight: DefaultInitialSize,
		GrowthFactor:  DefaultGrowthFactor,
		MaxHeight:     DefaultMaxHeight,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Range.Min < 0 || c.Range.Max < c.Range.Min {
		return &ConfigError{Field: "Range", Reason: "must satisfy 0 <= Min <= Max"}
	}
	if c.PixelSize <= 0 {
		return &ConfigError{Field: "PixelSize", Reason: "must be positive"}
	}
	if c.Oversampling < 1 || c.Oversampling > MaxOversampling {
		return &ConfigError{Field: "Oversampling", Reason: "must be in [1, 8]"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.InitialWidth < 1 || c.InitialHeight < 1 {
		return &ConfigError{Field: "InitialWidth", Reason: "initial size must be positive"}
	}
	if 2*c.Padding >= c.InitialWidth || 2*c.Padding >= c.InitialHeight {
		return &ConfigError{Field: "Padding", Reason: "must be less than half the initial size"}
	}
	if c.GrowthFactor <= 1 {
		return &ConfigError{Field: "GrowthFactor", Reason: "must be greater than 1"}
	}
	if c.MaxHeight < c.InitialHeight {
		return &ConfigError{Field: "MaxHeight", Reason: "must be at least InitialHeight"}
	}
	return nil
}
