package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/config"
)

// Scan walks inputDir and collects files whose lowercased extension is in
// the image allow-list. Paths are returned in directory-walk order; the
// selector sorts its own keys, so no ordering is imposed here. Walk errors
// (unreadable root, vanished subtree) propagate to the caller.
func Scan(inputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if config.ImageExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
