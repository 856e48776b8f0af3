package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestWatchFile(t *testing.T) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = w.Close()
	}()

	configDir, fontDir := t.TempDir(), t.TempDir()
	config := filepath.Join(configDir, "glyphatlas.toml")
	font := filepath.Join(fontDir, "other.ttf")
	for _, p := range []string{config, font} {
		if err := os.WriteFile(p, nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	watched := make(map[string]bool)
	for _, p := range []string{"", config, config} {
		if err := watchFile(w, watched, p); err != nil {
			t.Fatalf("watchFile(%q) failed: %v", p, err)
		}
	}
	if len(watched) != 1 {
		t.Errorf("watched = %v, want only the config file", watched)
	}

	// A font named by a reloaded config joins the watch set.
	if err := watchFile(w, watched, font); err != nil {
		t.Fatal(err)
	}
	if !watched[font] || len(watched) != 2 {
		t.Errorf("watched = %v, want config and font", watched)
	}
	if !slices.Contains(w.WatchList(), fontDir) {
		t.Errorf("WatchList = %v, want %s", w.WatchList(), fontDir)
	}
}
