package main

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
)

// watch regenerates the outputs whenever the font file or the config file
// is written, until ctx is done. Options are resolved again on every
// change so config edits take effect.
func watch(ctx context.Context, configPath string, v *flagValues, fs *pflag.FlagSet, logger *slog.Logger) error {
	o, err := resolveOptions(fs, v)
	if err != nil {
		return err
	}
	if o.Font == "" && configPath == "" {
		return errors.New("--watch needs --font or --config")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()

	watched := make(map[string]bool)
	for _, p := range []string{o.Font, configPath} {
		if err := watchFile(w, watched, p); err != nil {
			return err
		}
	}
	logger.Info("watching for changes", "files", len(watched))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(e.Name)
			if err != nil || !watched[abs] {
				continue
			}
			logger.Debug("change detected", "file", e.Name, "op", e.Op.String())

			o, err := resolveOptions(fs, v)
			if err != nil {
				logger.Error("reload options", "err", err)
				continue
			}
			// The config file may point at a different font.
			if err := watchFile(w, watched, o.Font); err != nil {
				logger.Warn("watch font", "font", o.Font, "err", err)
			}
			if err := generate(o, logger); err != nil {
				logger.Error("generation failed", "err", err)
			}
		}
	}
}

// watchFile adds the directory of path to w and records path in watched.
// Directories are watched because editors often replace files instead of
// writing them in place. An empty or already watched path is a no-op.
func watchFile(w *fsnotify.Watcher, watched map[string]bool, path string) error {
	if path == "" {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if watched[abs] {
		return nil
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	watched[abs] = true
	return nil
}
