package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateRect checks a rectangle measured by a host platform.
// Sizes must be non-negative numbers and no coordinate may be NaN; a
// violation means the platform broke its contract.
//
// The label names the measured element in the error message (e.g. "reference").
func ValidateRect(label string, x, y, width, height float64) error {
	if math.IsNaN(x) || math.IsNaN(y) {
		return New(ErrCodePlatformContract, "%s rect has NaN origin", label)
	}
	if math.IsNaN(width) || math.IsNaN(height) {
		return New(ErrCodePlatformContract, "%s rect has NaN size", label)
	}
	if width < 0 || height < 0 {
		return New(ErrCodePlatformContract, "%s rect has negative size (%gx%g)", label, width, height)
	}
	return nil
}

// ValidateDimensions checks an element size measured by a host platform.
func ValidateDimensions(label string, width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) {
		return New(ErrCodePlatformContract, "%s has NaN dimensions", label)
	}
	if width < 0 || height < 0 {
		return New(ErrCodePlatformContract, "%s has negative dimensions (%gx%g)", label, width, height)
	}
	return nil
}

// ValidateName validates a middleware or element name.
//
// Names key the middleware data map and appear in logs, so the rules are
// conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Maximum length of 64 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "name contains invalid characters: %q", name)
		}
	}

	return nil
}

// sceneExtensions is the set of file extensions the scene loader understands.
var sceneExtensions = map[string]bool{
	".toml": true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// ValidateScenePath validates a scene file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .toml, .yaml, .yml or .json
func ValidateScenePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidScene, "scene path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidScene, "scene path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "scene path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !sceneExtensions[ext] {
		return New(ErrCodeInvalidScene, "unsupported scene format %q (must be .toml, .yaml, .yml or .json)", ext)
	}

	return nil
}
