package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/circlegrid/pkg/errors"
)

// captureOutput redirects user-facing output to a buffer for the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "data.csv", "data"},
		{"", "dir/data.csv", "dir/data"},
		{"out.svg", "data.csv", "out"},
		{"out.png", "data.csv", "out"},
		{"out", "data.csv", "out"},
		{"out.v2", "data.csv", "out.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, input, format string
		single                bool
		want                  string
	}{
		{"", "data.csv", "svg", true, "data.svg"},
		{"chart.svg", "data.csv", "svg", true, "chart.svg"},
		{"chart.svg", "data.csv", "png", false, "chart.png"},
		{"chart", "data.csv", "pdf", false, "chart.pdf"},
		{"", "data.csv", "json", false, "data.json"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.output, tt.input, tt.format, tt.single); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q",
				tt.output, tt.input, tt.format, tt.single, got, tt.want)
		}
	}
}

func TestTrimLayoutSuffix(t *testing.T) {
	if got := basePath("", trimLayoutSuffix("dir/data.layout.json")); got != "dir/data" {
		t.Errorf("got %q, want dir/data", got)
	}
	if got := basePath("", trimLayoutSuffix("layout.json")); got != "layout" {
		t.Errorf("got %q, want layout", got)
	}
}

func TestWriteArtifacts(t *testing.T) {
	out := captureOutput(t)
	dir := t.TempDir()

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>"), "json": []byte("{}")},
		formats:   []string{"svg", "json"},
		input:     filepath.Join(dir, "data.csv"),
		cacheHit:  true,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for _, name := range []string{"data.svg", "data.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "2 files") || !strings.Contains(out.String(), iconCached) {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestWriteArtifactsMissingFormat(t *testing.T) {
	captureOutput(t)
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{},
		formats:   []string{"png"},
		input:     filepath.Join(t.TempDir(), "data.csv"),
	})
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("error = %v, want INTERNAL_ERROR", err)
	}
}

func TestPrintStats(t *testing.T) {
	out := captureOutput(t)
	printStats(1, 5, false)
	got := out.String()
	for _, want := range []string{"1 cluster", "5 circles", iconFresh} {
		if !strings.Contains(got, want) {
			t.Errorf("printStats output %q missing %q", got, want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "file"); got != "1 file" {
		t.Errorf("pluralize(1) = %q", got)
	}
	if got := pluralize(3, "file"); got != "3 files" {
		t.Errorf("pluralize(3) = %q", got)
	}
}
