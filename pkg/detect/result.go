package detect

import "github.com/chazu/joinery/pkg/model"

// Summary aggregates one detection run.
type Summary struct {
	Components    int `json:"components"`
	Pairs         int `json:"pairs"`
	Intersections int `json:"intersections"`
	Fingers       int `json:"fingers"`
	Holes         int `json:"holes"`
	Slots         int `json:"slots"`
	CoplanarPairs int `json:"coplanar_pairs"`
	SkippedPairs  int `json:"skipped_pairs"`
}

// Warning records a pair that was skipped rather than classified.
type Warning struct {
	A       model.ID `json:"a"`
	B       model.ID `json:"b"`
	Message string   `json:"message"`
}

// Result is the outcome of a successful detection run. Events hold the
// recorded log for replaying front ends; batch callers can ignore it.
type Result struct {
	Summary  Summary                        `json:"summary"`
	Counts   map[model.ID]model.JointCounts `json:"counts"`
	Warnings []Warning                      `json:"warnings,omitempty"`
	Events   []Event                        `json:"-"`
}
