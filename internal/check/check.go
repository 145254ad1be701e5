// Package check provides --check diagnostics: configured method and
// threshold, the extension allow-list, and readability of the input
// directory. Informational only; it never fails the run.
package check

import (
	"os"
	"sort"
	"strings"

	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/config"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/pipeline"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints the active hash method
// and threshold, the supported extensions, and (when an input dir was
// given) whether it is readable plus how many images it holds.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	log.Info("Method: %s", cfg.Method)
	log.Info("Threshold: %d", cfg.Threshold)
	log.Info("Extensions: %s", extensionList())
	if cfg.Delete {
		log.Warn("Delete mode is ON")
	} else {
		log.Info("Mode: dry run")
	}

	checkInputDir(cfg, log)
}

// checkInputDir verifies the input directory exists, is a directory, and is
// scannable; on success it reports how many allow-listed images it holds.
func checkInputDir(cfg *config.Config, log Logger) {
	if cfg.InputDir == "" {
		log.Warn("No --input_dir given; skipping directory check")
		return
	}

	fi, err := os.Stat(cfg.InputDir)
	if err != nil {
		log.Error("Input directory not accessible: %v", err)
		return
	}
	if !fi.IsDir() {
		log.Error("Input path is not a directory: %s", cfg.InputDir)
		return
	}

	files, err := pipeline.Scan(cfg.InputDir)
	if err != nil {
		log.Error("Cannot scan input directory: %v", err)
		return
	}
	log.Success("Input directory OK: %d images under %s", len(files), cfg.InputDir)
}

// extensionList returns the allow-list as a sorted, comma-separated string.
func extensionList() string {
	exts := make([]string, 0, len(config.ImageExtensions))
	for ext := range config.ImageExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
