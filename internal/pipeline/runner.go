package pipeline

import (
	"context"
	"os"
	"sort"

	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/config"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/dedup"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/display"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/hash"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/logging"
)

// Run is the top-level entry point: scan -> encode -> group -> resolve ->
// report or delete. It returns aggregate stats. Per-file failures are
// counted inside and never fail the run; a scan failure (unreadable root or
// subtree) is returned so the caller can exit non-zero.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	log.Info("Scanning %s for images...", cfg.InputDir)
	files, err := Scan(cfg.InputDir)
	if err != nil {
		log.Error("Scan failed: %v", err)
		return stats, err
	}
	stats.Scanned = len(files)
	log.Info("Found %d %s", stats.Scanned, display.Plural(stats.Scanned, "image", "images"))

	if stats.Scanned == 0 {
		log.Info("No images found. Exiting.")
		return stats, nil
	}

	enc, err := hash.NewEncoder(cfg.Method)
	if err != nil {
		log.Error("%v", err)
		return stats, err
	}

	logBatchHeader(cfg, log)

	log.Info("Generating image hashes...")
	encodings := EncodeAll(cfg, log, enc, files, &stats)
	if stats.EncodeFailed > 0 {
		log.Warn("Failed to encode %d %s (skipped)", stats.EncodeFailed,
			display.Plural(stats.EncodeFailed, "file", "files"))
	}

	if ctx.Err() != nil {
		log.Warn("Interrupted")
		return stats, nil
	}

	log.Info("Finding duplicates...")
	duplicates := dedup.FindDuplicates(encodings, cfg.Threshold)
	res := dedup.Resolve(duplicates)

	stats.Removed = len(res.Removed)
	removed := sortedPaths(res.Removed)
	for _, path := range removed {
		if fi, err := os.Stat(path); err == nil {
			stats.RemovedBytes += fi.Size()
		}
	}

	logSummary(log, &stats)

	if stats.Removed == 0 {
		log.Success("No duplicates to act on.")
		return stats, nil
	}

	if ctx.Err() != nil {
		log.Warn("Interrupted")
		return stats, nil
	}

	if cfg.Delete {
		deleteRemoved(log, removed, &stats)
	} else {
		dryRun(log, removed, &stats)
	}
	return stats, nil
}

// sortedPaths returns the set's members in lexicographic order so output
// and deletion order are stable across runs.
func sortedPaths(set map[string]bool) []string {
	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// deleteRemoved permanently deletes every path in the removed set. A
// per-file failure is logged with the OS error and does not abort the batch.
func deleteRemoved(log *logging.Logger, removed []string, stats *RunStats) {
	log.Warn("!!! DELETING DUPLICATES !!!")
	for _, path := range removed {
		if err := os.Remove(path); err != nil {
			log.Error("Error deleting %s: %v", path, err)
			stats.DeleteFailed++
			continue
		}
		log.Info("Deleted: %s", path)
		stats.Deleted++
	}
	log.Success("Deleted %d %s, freed %s", stats.Deleted,
		display.Plural(stats.Deleted, "file", "files"),
		display.FormatBytes(stats.RemovedBytes))
}

// dryRun reports the removed set without touching the filesystem.
func dryRun(log *logging.Logger, removed []string, stats *RunStats) {
	log.Info("--- Dry Run (files that would be deleted) ---")
	for _, path := range removed {
		log.Info("Would delete: %s", path)
	}
	log.Info("Run with --delete to actually remove these files (%s reclaimable).",
		display.FormatBytes(stats.RemovedBytes))
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger) {
	log.Info("Method: %s, threshold: %d", cfg.Method, cfg.Threshold)
	if cfg.Delete {
		log.Warn("Delete mode: duplicates will be permanently removed")
	} else {
		log.Info("Dry run: no files will be deleted")
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("--- Result Summary ---")
	log.Info("Total images processed: %d", stats.Encoded)
	log.Info("Unique images to keep:  %d", stats.Unique())
	log.Info("Duplicates found:       %d", stats.Removed)
	if stats.EncodeFailed > 0 {
		log.Info("Failed to encode:       %d", stats.EncodeFailed)
	}
}
