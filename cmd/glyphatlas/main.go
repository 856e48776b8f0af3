// Command glyphatlas renders a line of text and packs glyph atlases from a
// TrueType or OpenType font.
//
// Usage:
//
//	glyphatlas [flags]
//
// By default it renders "The quick brown fox" at 60 pixels with the
// built-in Go Regular font and writes out.png. With --atlas-out it also
// packs the byte range of --alphabet into an atlas image. With --watch it
// keeps running and regenerates whenever the font or config file changes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/text"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var v flagValues
	fs := newFlagSet(&v)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if v.help {
		printHelp(stdout, fs)
		return 0
	}
	if v.version {
		_, _ = fmt.Fprintf(stdout, "glyphatlas version %s\n", glyphatlas.Version)
		return 0
	}

	o, err := resolveOptions(fs, &v)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := newLogger(stderr, o.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	glyphatlas.SetLogger(logger)
	defer glyphatlas.SetLogger(nil)

	if err := generate(o, logger); err != nil {
		logger.Error("generation failed", "err", err)
		return 1
	}

	if v.watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := watch(ctx, v.config, &v, fs, logger); err != nil {
			logger.Error("watch failed", "err", err)
			return 1
		}
	}
	return 0
}

// generate writes the line image and, if requested, the atlas image.
func generate(o options, logger *slog.Logger) error {
	f, err := openFont(o)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if o.Text != "" {
		if err := f.GenerateImage(o.Size, o.Text); err != nil {
			return err
		}
		logger.Info("line written", "path", f.ImagePath(), "font", f.Name(), "size", o.Size)
	}

	if o.AtlasOut != "" {
		a, err := f.GenerateAtlas(o.Atlas, o.Alphabet)
		if err != nil {
			return err
		}
		if err := a.Bitmap().SavePNG(o.AtlasOut); err != nil {
			return err
		}
		logger.Info("atlas written",
			"path", o.AtlasOut,
			"range", a.Range().String(),
			"glyphs", a.Len(),
			"width", a.Width(),
			"height", a.Height())
	}
	return nil
}

func openFont(o options) (*glyphatlas.Font, error) {
	opts := []glyphatlas.FontOption{
		glyphatlas.WithImagePath(o.Out),
		glyphatlas.WithSourceOptions(text.WithParser(o.Parser)),
	}
	if o.Font == "" {
		return glyphatlas.New(goregular.TTF, opts...)
	}
	return glyphatlas.NewFromFile(o.Font, opts...)
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	_, _ = fmt.Fprintln(w, "glyphatlas - font atlas and text line generator")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  glyphatlas [flags]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Flags:")
	_, _ = fmt.Fprint(w, fs.FlagUsages())
}
