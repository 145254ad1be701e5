// Command dedup finds and removes duplicate images in a class-structured
// directory tree via perceptual hashing. It parses flags, validates config
// and paths, and either runs diagnostics (--check) or the dedup pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/check"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/config"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/display"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/logging"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	// 1. Load config from defaults and CLI flags; exit on parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "dedup: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "dedup: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dedup: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	display.PrintBanner()

	// 2. If user asked for diagnostics, run them and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		os.Exit(0)
	}

	// 3. Resolve and validate the input path before scanning.
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputDir)
		os.Exit(1)
	}
	cfg.InputDir = inputAbs

	log.Info("=== dedup v%s ===", version)
	log.Debug(cfg.Verbose, "commit %s", commit)
	if !cfg.Delete {
		log.Warn("DRY RUN")
	}

	// 4. Run the pipeline; Ctrl-C cancels between stages.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		os.Exit(1)
	}
}

// absPath returns the absolute path with symlinks resolved, so the full
// path keys in the encoding map are canonical.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
