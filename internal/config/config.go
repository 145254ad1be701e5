// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the original dataset-cleanup script behavior.
package config

import (
	"errors"
	"strings"
)

// --- Enum types for validated string fields ---

// HashMethod selects the perceptual hash family used for encoding.
type HashMethod string

const (
	MethodPHash HashMethod = "phash" // DCT-based perception hash (default).
	MethodDHash HashMethod = "dhash" // Gradient difference hash.
	MethodWHash HashMethod = "whash" // Haar wavelet hash.
	MethodAHash HashMethod = "ahash" // Average hash.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ImageExtensions is the fixed allow-list of image file suffixes
// (lowercase, with leading dot). Treated as immutable.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Scan root (required unless running --check without a path).
	InputDir string

	// Dedup settings.
	Method    HashMethod // Default: "phash".
	Threshold int        // Default: 10. Max Hamming distance for a duplicate pair.

	// Behavior flags.
	Delete bool // Default: false (dry run: report only, no mutation).

	// Display and logging.
	Verbose      bool
	ShowProgress bool      // Default: true. Cleared by --no-progress.
	ColorMode    ColorMode // Default: "auto".
	LogFile      string    // Optional log file path.
	CheckOnly    bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with defaults matching the original script
// (phash, threshold 10, dry run). Used as the base before [ParseFlags]
// applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Method:       MethodPHash,
		Threshold:    10,
		Delete:       false,
		Verbose:      false,
		ShowProgress: true,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the threshold
// is satisfiable. When not in CheckOnly mode, it also requires an input
// directory.
func (c *Config) Validate() error {
	switch c.Method {
	case MethodPHash, MethodDHash, MethodWHash, MethodAHash:
		// valid
	default:
		return errors.New("invalid method (use 'phash', 'dhash', 'whash' or 'ahash')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Threshold < 0 {
		return errors.New("threshold must not be negative")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need --input_dir")
	}
	return nil
}
