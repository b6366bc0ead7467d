package detect

import (
	"math"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/joinery/pkg/geom"
	"github.com/chazu/joinery/pkg/model"
)

// LineIntersections clips the infinite line against the component's
// boundary polygon and returns the bounded sub-segments that lie inside
// it, ordered along the line. For a convex boundary this is zero or one
// segment; concave boundaries can yield more.
//
// The clip runs in the component's local frame (via the inverse
// transform), projected onto the plane basis so the edge-by-edge
// intersection tests are 2D. Results are mapped back to the global frame.
func LineIntersections(line geom.Line, c *model.Component) []geom.Segment {
	if len(c.Vertices) < 3 {
		return nil
	}

	local := line.Transform(c.Inverse)
	u, v := geom.PlaneBasis(c.Normal)
	origin := c.Vertices[0]

	p := flatten(local.Point, origin, u, v)
	d := [2]float64{local.Dir.Dot(u), local.Dir.Dot(v)}

	poly := make([][2]float64, len(c.Vertices))
	for i, vert := range c.Vertices {
		poly[i] = flatten(vert, origin, u, v)
	}

	ts := crossingParams(p, d, poly)
	if len(ts) < 2 {
		return nil
	}

	var segs []geom.Segment
	for i := 0; i+1 < len(ts); i++ {
		mid := [2]float64{
			p[0] + d[0]*(ts[i]+ts[i+1])/2,
			p[1] + d[1]*(ts[i]+ts[i+1])/2,
		}
		if !insideOrOnBoundary(mid, poly) {
			continue
		}
		seg := geom.Segment{Start: local.At(ts[i]), End: local.At(ts[i+1])}
		segs = append(segs, seg.Transform(c.Forward))
	}
	return segs
}

// crossingParams returns the sorted, deduplicated line parameters at which
// the line crosses a boundary edge. Edges parallel to the line contribute
// nothing themselves; their endpoints are picked up by the adjacent edges.
func crossingParams(p, d [2]float64, poly [][2]float64) []float64 {
	var ts []float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		e := sub2(poly[(i+1)%n], a)

		den := cross2(d, e)
		if math.Abs(den) < geom.Epsilon {
			continue
		}
		ap := sub2(a, p)
		s := cross2(ap, d) / den
		if s < -geom.Epsilon || s > 1+geom.Epsilon {
			continue
		}
		ts = append(ts, cross2(ap, e)/den)
	}

	sort.Float64s(ts)

	// Crossings at a shared vertex register on both adjacent edges.
	var uniq []float64
	for _, t := range ts {
		if len(uniq) == 0 || t-uniq[len(uniq)-1] > geom.Epsilon {
			uniq = append(uniq, t)
		}
	}
	return uniq
}

// insideOrOnBoundary reports whether the 2D point lies in the polygon
// interior or within epsilon of its boundary. The boundary check matters
// when the clipped line runs along a polygon edge: the midpoint of such a
// sub-segment sits exactly on the boundary, where the crossing-number test
// alone is unreliable.
func insideOrOnBoundary(pt [2]float64, poly [][2]float64) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		if pointEdgeDistance2(pt, poly[i], poly[(i+1)%n]) < geom.Epsilon {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi[1] > pt[1]) != (pj[1] > pt[1]) &&
			pt[0] < (pj[0]-pi[0])*(pt[1]-pi[1])/(pj[1]-pi[1])+pi[0] {
			inside = !inside
		}
	}
	return inside
}

func pointEdgeDistance2(p, a, b [2]float64) float64 {
	return geom.PointSegmentDistance(
		v3.Vec{X: p[0], Y: p[1]},
		v3.Vec{X: a[0], Y: a[1]},
		v3.Vec{X: b[0], Y: b[1]},
	)
}

// flatten projects a local-frame point onto the plane basis (u, v) with
// the given origin, producing 2D coordinates.
func flatten(p, origin, u, v v3.Vec) [2]float64 {
	rel := p.Sub(origin)
	return [2]float64{rel.Dot(u), rel.Dot(v)}
}

func sub2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

func cross2(a, b [2]float64) float64 {
	return a[0]*b[1] - a[1]*b[0]
}
