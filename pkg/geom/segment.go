package geom

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Segment is a bounded line between two points in 3D space.
type Segment struct {
	Start v3.Vec `json:"start"`
	End   v3.Vec `json:"end"`
}

// Dir returns the (non-normalized) direction from Start to End.
func (s Segment) Dir() v3.Vec {
	return s.End.Sub(s.Start)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Dir().Length()
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() v3.Vec {
	return s.Start.Add(s.End).MulScalar(0.5)
}

// Transform maps both endpoints through m.
func (s Segment) Transform(m sdf.M44) Segment {
	return Segment{
		Start: m.MulPosition(s.Start),
		End:   m.MulPosition(s.End),
	}
}

func (s Segment) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f) -> (%.3f, %.3f, %.3f)",
		s.Start.X, s.Start.Y, s.Start.Z, s.End.X, s.End.Y, s.End.Z)
}

// Line is an unbounded line: a point on the line and a unit direction.
// The plane-plane intersection predicate produces one of these before
// clipping bounds it to a component's boundary.
type Line struct {
	Point v3.Vec `json:"point"`
	Dir   v3.Vec `json:"dir"`
}

// At returns the point at parameter t along the line. With a unit Dir,
// t is a distance.
func (l Line) At(t float64) v3.Vec {
	return l.Point.Add(l.Dir.MulScalar(t))
}

// Transform maps the line through m: the point as a position, the
// direction rotationally.
func (l Line) Transform(m sdf.M44) Line {
	return Line{
		Point: m.MulPosition(l.Point),
		Dir:   TransformDir(m, l.Dir),
	}
}
