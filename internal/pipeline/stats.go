package pipeline

// RunStats tracks aggregate counters and byte totals across a dedup run.
type RunStats struct {
	Scanned      int
	Encoded      int
	EncodeFailed int
	Removed      int
	Deleted      int
	DeleteFailed int

	// RemovedBytes is the total size of the removed set: reclaimable space
	// in a dry run, freed space after --delete.
	RemovedBytes int64
}

// Unique returns the number of encoded files that survive the run.
func (s *RunStats) Unique() int {
	return s.Encoded - s.Removed
}
