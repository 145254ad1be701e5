// Package pipeline orchestrates the four dedup stages: scan the input tree
// for image files, encode each file to a perceptual hash, group hashes
// within the Hamming threshold, and resolve groups into kept and removed
// sets that are then reported (dry run) or deleted.
//
// The pipeline is fully sequential; per-file failures are counted and
// skipped, never fatal.
package pipeline
