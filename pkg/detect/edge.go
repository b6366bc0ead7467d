package detect

import (
	"github.com/chazu/joinery/pkg/geom"
	"github.com/chazu/joinery/pkg/model"
)

// SegmentOnEdge reports whether the segment (global frame) runs along one
// of the component's boundary edges: some single edge lies within epsilon
// of both endpoints. A chord whose endpoints touch two different edges
// crosses the interior and is not on an edge.
func SegmentOnEdge(seg geom.Segment, c *model.Component) bool {
	local := seg.Transform(c.Inverse)
	n := len(c.Vertices)
	for i := 0; i < n; i++ {
		a := c.Vertices[i]
		b := c.Vertices[(i+1)%n]
		if geom.PointSegmentDistance(local.Start, a, b) < geom.Epsilon &&
			geom.PointSegmentDistance(local.End, a, b) < geom.Epsilon {
			return true
		}
	}
	return false
}
