package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/matzehuels/circlegrid/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	home := t.TempDir()
	xdg := t.TempDir()

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"home fallback", "", filepath.Join(home, ".cache", "circlegrid")},
		{"XDG_CACHE_HOME wins", xdg, filepath.Join(xdg, "circlegrid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", home)
			t.Setenv("XDG_CACHE_HOME", tt.xdg)

			got, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenCacheBackends(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	tests := []struct {
		name     string
		spec     string
		noCache  bool
		location string
	}{
		{"file default", cache.BackendFile, false, filepath.Join(xdg, "circlegrid")},
		{"explicit none", cache.BackendNone, false, cache.BackendNone},
		{"--no-cache overrides file", cache.BackendFile, true, cache.BackendNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			c.cacheSpec = tt.spec

			store, err := c.openCache(t.Context(), tt.noCache)
			if err != nil {
				t.Fatalf("openCache() error: %v", err)
			}
			defer store.Close()

			got := store.(cache.Clearer).Location()
			if got != tt.location {
				t.Errorf("Location() = %q, want %q", got, tt.location)
			}
		})
	}
}

func TestOpenCacheWithoutHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "")

	c := New(io.Discard, LogInfo)
	c.cacheSpec = cache.BackendFile
	store, err := c.openCache(t.Context(), false)
	if err != nil {
		t.Fatalf("openCache() error: %v", err)
	}
	if loc := store.(cache.Clearer).Location(); loc != cache.BackendNone {
		t.Errorf("Location() = %q, want caching disabled", loc)
	}
}
