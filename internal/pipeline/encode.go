package pipeline

import (
	"github.com/corona10/goimagehash"
	"github.com/schollz/progressbar/v3"

	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/config"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/hash"
	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/logging"
)

// EncodeAll hashes every scanned path with the encoder, keyed by full path
// so same-named files in different class folders stay distinct. Files that
// fail to open, decode, or hash are dropped from the map, counted in
// stats.EncodeFailed, and debug-logged; the pass never aborts on a single
// file. The progress bar is cosmetic only.
func EncodeAll(
	cfg *config.Config,
	log *logging.Logger,
	enc *hash.Encoder,
	paths []string,
	stats *RunStats,
) map[string]*goimagehash.ImageHash {
	bar := newProgressBar(cfg, int64(len(paths)))

	encodings := make(map[string]*goimagehash.ImageHash, len(paths))
	for _, path := range paths {
		h, err := enc.Encode(path)
		if err != nil {
			stats.EncodeFailed++
			log.Debug(cfg.Verbose, "Skipping %s: %v", path, err)
			_ = bar.Add(1)
			continue
		}
		encodings[path] = h
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	stats.Encoded = len(encodings)
	return encodings
}

// newProgressBar returns a visible bar, or a silent one when progress
// display is disabled (tests, --no-progress, non-interactive logs).
func newProgressBar(cfg *config.Config, total int64) *progressbar.ProgressBar {
	if !cfg.ShowProgress {
		return progressbar.DefaultSilent(total)
	}
	return progressbar.Default(total, "Hashing images")
}
