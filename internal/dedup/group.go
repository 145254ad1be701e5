// Package dedup finds near-duplicate groups inside an encoding map and
// resolves them into kept and removed sets.
package dedup

import (
	"sort"

	"github.com/corona10/goimagehash"
)

// FindDuplicates compares every pair of encoded images and returns, for each
// path, the other paths whose Hamming distance is within threshold. Keys are
// iterated in sorted order so duplicate lists are reproducible across runs.
//
// The result is symmetric by construction here, but [Resolve] must not rely
// on that: duplicate maps from other producers may list A under B without
// listing B under A.
func FindDuplicates(encodings map[string]*goimagehash.ImageHash, threshold int) map[string][]string {
	paths := make([]string, 0, len(encodings))
	for p := range encodings {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	duplicates := make(map[string][]string, len(paths))
	for _, p := range paths {
		duplicates[p] = nil
	}

	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			a, b := paths[i], paths[j]
			dist, err := encodings[a].Distance(encodings[b])
			if err != nil {
				// Mixed hash kinds cannot happen within one run; skip the pair.
				continue
			}
			if dist <= threshold {
				duplicates[a] = append(duplicates[a], b)
				duplicates[b] = append(duplicates[b], a)
			}
		}
	}
	return duplicates
}
