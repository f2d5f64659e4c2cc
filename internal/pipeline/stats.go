package pipeline

import "time"

// RunStats tracks aggregate counters across a catalog build run.
type RunStats struct {
	Assets         int // Candidate files found by traversal.
	Excluded       int // Dropped by exclusion globs before parsing.
	Partial        int // Files whose name matched no template (partial rows).
	CVDropped      int // Rows removed by the controlled-vocabulary filter.
	VersionDropped int // Rows removed by latest-version selection.
	Rows           int // Rows in the final catalog.
	OutputBytes    int64
	Elapsed        time.Duration
}
