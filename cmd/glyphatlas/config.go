package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/text"
	"github.com/gogpu/glyphatlas/text/atlas"
)

// options is everything one generation run needs. It is layered from
// defaults, then the TOML file given by --config, then explicit flags.
type options struct {
	// Font is a font file path; empty selects the built-in Go Regular.
	Font   string `toml:"font"`
	Parser string `toml:"parser"`

	// Size is the pixel height of the rendered line and, unless
	// [atlas] pixel_size is set, of the atlas.
	Size int    `toml:"size"`
	Text string `toml:"text"`
	Out  string `toml:"out"`

	Alphabet string `toml:"alphabet"`
	AtlasOut string `toml:"atlas_out"`

	LogLevel string `toml:"log_level"`

	Atlas atlas.Config `toml:"atlas"`
}

func defaultOptions() options {
	cfg := atlas.DefaultConfig()
	cfg.PixelSize = 0 // follows Size
	return options{
		Parser:   text.ParserXImage,
		Size:     60,
		Text:     "The quick brown fox",
		Out:      glyphatlas.DefaultImagePath,
		Alphabet: "![a-zA-Z]~",
		LogLevel: "info",
		Atlas:    cfg,
	}
}

// flagValues receives parsed flags before they are layered over the
// config file.
type flagValues struct {
	options

	config  string
	watch   bool
	version bool
	help    bool
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	d := defaultOptions()
	fs := pflag.NewFlagSet("glyphatlas", pflag.ContinueOnError)

	fs.StringVarP(&v.config, "config", "c", "", "TOML config file")
	fs.StringVarP(&v.Font, "font", "f", "", "Path to a TrueType/OpenType font (default: built-in Go Regular)")
	fs.StringVarP(&v.Parser, "parser", "p", d.Parser, "Font parser backend (ximage, gotext)")
	fs.IntVarP(&v.Size, "size", "s", d.Size, "Line height in pixels")
	fs.StringVarP(&v.Text, "text", "t", d.Text, "Text rendered to the line image (empty to skip)")
	fs.StringVarP(&v.Out, "out", "o", d.Out, "Output PNG for the line image")
	fs.StringVarP(&v.Alphabet, "alphabet", "a", d.Alphabet, "Characters whose byte range is packed into the atlas")
	fs.StringVar(&v.AtlasOut, "atlas-out", "", "Output PNG for the atlas (empty to skip)")
	fs.IntVar(&v.Atlas.Oversampling, "oversampling", d.Atlas.Oversampling, "Atlas oversampling factor (1-8)")
	fs.IntVar(&v.Atlas.Padding, "padding", d.Atlas.Padding, "Atlas padding in pixels")
	fs.StringVar(&v.LogLevel, "log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVarP(&v.watch, "watch", "w", false, "Regenerate when the font or config file changes")
	fs.BoolVarP(&v.version, "version", "v", false, "Show version information")
	fs.BoolVarP(&v.help, "help", "h", false, "Show help message")
	return fs
}

// resolveOptions layers defaults, the config file and the flags that were
// set explicitly on the command line.
func resolveOptions(fs *pflag.FlagSet, v *flagValues) (options, error) {
	o := defaultOptions()
	if v.config != "" {
		if err := loadConfigFile(v.config, &o); err != nil {
			return options{}, err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "font":
			o.Font = v.Font
		case "parser":
			o.Parser = v.Parser
		case "size":
			o.Size = v.Size
		case "text":
			o.Text = v.Text
		case "out":
			o.Out = v.Out
		case "alphabet":
			o.Alphabet = v.Alphabet
		case "atlas-out":
			o.AtlasOut = v.AtlasOut
		case "oversampling":
			o.Atlas.Oversampling = v.Atlas.Oversampling
		case "padding":
			o.Atlas.Padding = v.Atlas.Padding
		case "log-level":
			o.LogLevel = v.LogLevel
		}
	})

	if o.Atlas.PixelSize == 0 {
		o.Atlas.PixelSize = float64(o.Size)
	}
	if o.Size <= 0 {
		return options{}, fmt.Errorf("size must be positive, got %d", o.Size)
	}
	if o.AtlasOut != "" {
		if err := o.Atlas.Validate(); err != nil {
			return options{}, err
		}
	}
	return o, nil
}

// loadConfigFile decodes a TOML file over o. Unknown keys are rejected so
// typos do not go unnoticed.
func loadConfigFile(path string, o *options) error {
	f, err := os.Open(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(o); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("config %s: %s", path, strict.String())
		}
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}
