package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxNameLength bounds series and theme names.
const MaxNameLength = 256

// ValidateSeriesName validates a series name for display in legends.
//
// Names must be non-empty, at most [MaxNameLength] bytes and free of
// control characters (a newline would break the one-line legend entry).
func ValidateSeriesName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidSeries, "series name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidSeries, "series name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSeries, "series name contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a destination path for a saved plot.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must name a file, not a directory
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	base := filepath.Base(path)
	if base == "." || base == ".." {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}
