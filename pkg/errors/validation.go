package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateArea checks a width/height pair for a layout region.
//
// Both values zero means the area was never configured and yields
// ErrCodeConfiguration. Any other non-positive or non-finite value describes
// a degenerate region and yields ErrCodeInvalidInput.
func ValidateArea(what string, width, height float64) error {
	if width == 0 && height == 0 {
		return Configuration("missing width and height in %s", what)
	}
	if !finite(width) || !finite(height) {
		return InvalidInput("%s size must be finite (got %gx%g)", what, width, height)
	}
	if width <= 0 || height <= 0 {
		return InvalidInput("%s size must be positive (got %gx%g)", what, width, height)
	}
	return nil
}

// ValidateNonNegative checks that v is a finite number >= 0.
func ValidateNonNegative(what string, v float64) error {
	if !finite(v) || v < 0 {
		return InvalidInput("%s must be a non-negative number (got %g)", what, v)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidatePath validates an output file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(strings.ReplaceAll(path, "\\", "/"), "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

// ValidateFieldName validates a CSV column name used for grouping or sizing.
func ValidateFieldName(name string) error {
	if strings.TrimSpace(name) == "" {
		return InvalidInput("field name cannot be empty")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return InvalidInput("field name %q contains control characters", name)
		}
	}
	return nil
}
