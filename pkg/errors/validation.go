package errors

import (
	"strings"
	"unicode"
)

// MinFontSize is the smallest font size accepted for lifeline and message text.
const MinFontSize = 12

// ValidateOutputPath validates the path a diagram document is written to.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator)
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}

	return nil
}

// ValidateColor validates a color override. Blank values mean "not set" and
// are accepted. Any other value is passed to draw.io as written ("#336699",
// "red", "none", "default"), so only characters that would break the
// "key=value;" style syntax are rejected.
func ValidateColor(key, color string) error {
	if strings.TrimSpace(color) == "" {
		return nil
	}
	for _, r := range color {
		if r == ';' || r == '=' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "%s: invalid color %q (must not contain ';', '=' or control characters)", key, color)
		}
	}
	return nil
}

// ValidateFontSize validates an optional font size override.
func ValidateFontSize(key string, size *int) error {
	if size == nil {
		return nil
	}
	if *size < MinFontSize {
		return New(ErrCodeInvalidConfig, "%s: font size %d is below the minimum of %d", key, *size, MinFontSize)
	}
	return nil
}

// ValidatePositive validates a required, strictly positive numeric option.
func ValidatePositive(key string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s: must be greater than 0, got %v", key, v)
	}
	return nil
}
