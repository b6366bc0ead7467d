package detect

import (
	"github.com/chazu/joinery/pkg/geom"
	"github.com/chazu/joinery/pkg/model"
)

// Event is one entry of the recorded detection log. The engine never
// exposes live callbacks; it records events in pair-processing order and
// front ends replay the finished log at whatever pace they like.
type Event interface {
	event() // marker restricting implementations to this package
}

// PairStarted marks the beginning of one pair evaluation. Step counts from
// 1 to TotalSteps = n(n-1)/2 so progress bars fall out directly.
type PairStarted struct {
	Step       int
	TotalSteps int
	A, B       model.ID
}

// IntersectionFound reports the clipped plane-plane intersection between a
// pair, before classification.
type IntersectionFound struct {
	A, B model.ID
	Line geom.Line
}

// JointClassified reports one matched joint pair: component A received a
// joint of TypeA over SegmentA, component B one of TypeB over SegmentB.
type JointClassified struct {
	A        model.ID
	TypeA    model.JointType
	SegmentA geom.Segment
	B        model.ID
	TypeB    model.JointType
	SegmentB geom.Segment
}

// CoplanarOverlap marks a coplanar, overlapping pair. Such pairs take the
// merge path and produce no joints.
type CoplanarOverlap struct {
	A, B model.ID
}

// PairSkipped reports a pair dropped because its plane solve was
// ill-conditioned.
type PairSkipped struct {
	A, B   model.ID
	Reason string
}

// Complete closes the log and carries the run summary, including the
// skipped-pair count.
type Complete struct {
	Summary Summary
}

func (PairStarted) event()       {}
func (IntersectionFound) event() {}
func (JointClassified) event()   {}
func (CoplanarOverlap) event()   {}
func (PairSkipped) event()       {}
func (Complete) event()          {}

// Replay iterates the recorded log in order, calling fn for each event.
// fn returning false stops the replay. Animating front ends drive their
// step timing around this.
func Replay(events []Event, fn func(Event) bool) {
	for _, e := range events {
		if !fn(e) {
			return
		}
	}
}
