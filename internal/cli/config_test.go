package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/pipeline"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"toml", "circlegrid.toml", `
key_fields = ["region", "groupid"]
clusters = 3
width = 400.0
palette = "mono"
grid = true
`},
		{"yaml", "circlegrid.yaml", `
key_fields: [region, groupid]
clusters: 3
width: 400
palette: mono
grid: true
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := loadConfig(writeTemp(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("loadConfig() error: %v", err)
			}
			if len(opts.KeyFields) != 2 || opts.KeyFields[0] != "region" {
				t.Errorf("KeyFields = %v", opts.KeyFields)
			}
			if opts.Clusters != 3 || opts.Width != 400 {
				t.Errorf("Clusters, Width = %d, %v", opts.Clusters, opts.Width)
			}
			if opts.Palette != pipeline.PaletteMono || !opts.Grid {
				t.Errorf("Palette, Grid = %q, %v", opts.Palette, opts.Grid)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code errors.Code
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.toml") }, errors.ErrCodeFileNotFound},
		{"extension", func(t *testing.T) string { return writeTemp(t, "c.ini", "width=1") }, errors.ErrCodeConfiguration},
		{"malformed", func(t *testing.T) string { return writeTemp(t, "c.toml", "width = [") }, errors.ErrCodeConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path(t))
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestApplyConfigRespectsFlags(t *testing.T) {
	dst := newOptions()
	dst.Width = 1000

	file := pipeline.Options{
		Width:    400,
		Height:   300,
		Clusters: 4,
		Labels:   true,
	}
	changed := func(flag string) bool { return flag == "width" }

	applyConfig(&dst, file, changed)

	if dst.Width != 1000 {
		t.Errorf("Width = %v, explicit flag should win", dst.Width)
	}
	if dst.Height != 300 || dst.Clusters != 4 || !dst.Labels {
		t.Errorf("Height, Clusters, Labels = %v, %d, %v", dst.Height, dst.Clusters, dst.Labels)
	}
	if dst.Palette != pipeline.PaletteDefault {
		t.Errorf("Palette = %q, unset file values must not clear defaults", dst.Palette)
	}
}
