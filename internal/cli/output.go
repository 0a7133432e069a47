package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/pipeline"
)

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where one format is written. A single format with an
// explicit output path is written there verbatim.
func outputPath(output, input, format string, single bool) string {
	if single && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// writeFile validates path and writes data to it.
func writeFile(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// artifactWriteParams groups what writeArtifacts needs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
}

// writeArtifacts writes every artifact in format order and reports the files.
func writeArtifacts(p artifactWriteParams) error {
	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return errors.New(errors.ErrCodeInternal, "renderer produced no %s output", format)
		}
		path := outputPath(p.output, p.input, format, len(p.formats) == 1)
		if err := writeFile(path, data); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", pluralize(len(paths), "file"))
	for _, path := range paths {
		printFile(path)
	}
	printCacheStatus(p.cacheHit)
	return nil
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
