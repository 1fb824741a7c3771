package domain

import "time"

// ExportStats is the running tally of an export. The final value is the run
// summary.
type ExportStats struct {
	// Selection names the filter the features went through.
	Selection string `json:"selection"`
	// Total is the number of features selected for export.
	Total int `json:"total"`
	// Done counts features processed, including those that failed.
	Done int `json:"done"`
	// Skipped counts features whose zip code could not be stored; none of
	// their geometry was written.
	Skipped int `json:"skipped"`
	// FailedAreas, FailedPointSets and FailedBoxes count rolled back writes.
	FailedAreas     int `json:"failedAreas"`
	FailedPointSets int `json:"failedPointSets"`
	FailedBoxes     int `json:"failedBoxes"`
	// InvalidGeometries counts features without a usable polygon.
	InvalidGeometries int `json:"invalidGeometries"`
	// NonConverged counts parts stored with a best effort simplification.
	NonConverged int `json:"nonConverged"`
	// Areas and Points count stored tabulation areas and boundary points.
	Areas  int `json:"areas"`
	Points int `json:"points"`
	// Started is when the export loop began.
	Started time.Time `json:"started"`
	// Remaining is the latest linear estimate of the time left.
	Remaining time.Duration `json:"remaining"`
}

// Failed reports whether any write or simplification fell back.
func (s ExportStats) Failed() bool {
	return s.Skipped+s.FailedAreas+s.FailedPointSets+s.FailedBoxes+s.InvalidGeometries+s.NonConverged > 0
}
