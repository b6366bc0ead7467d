// Package detect implements the intersection-detection and
// joint-classification engine for planar component sets.
package detect

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/joinery/pkg/geom"
	"github.com/chazu/joinery/pkg/model"
)

// Parallel reports whether the two components' unit normals are collinear:
// |normalA . normalB| within epsilon of 1. Symmetric in its arguments.
func Parallel(a, b *model.Component) bool {
	dot := a.GlobalNormal().Dot(b.GlobalNormal())
	return math.Abs(math.Abs(dot)-1) < geom.Epsilon
}

// Coplanar reports whether the two components share a supporting plane.
// Parallelism alone is not enough: a point of b must also lie on a's
// plane, so the test is parallel normals AND zero plane offset.
func Coplanar(a, b *model.Component) bool {
	if !Parallel(a, b) {
		return false
	}
	if len(a.Vertices) == 0 || len(b.Vertices) == 0 {
		return false
	}
	diff := b.GlobalVertex(0).Sub(a.GlobalVertex(0))
	return math.Abs(diff.Dot(a.GlobalNormal())) < geom.Epsilon
}

// Intersects is the broad-phase separating-axis test. It projects both
// components' global vertex sets onto a set of candidate axes (each
// component's normal, the cross of the two normals, and the in-plane edge
// normals of both polygons) and reports false as soon as any axis cleanly
// separates the projection intervals. An interval gap proves disjointness
// on any axis, so a false here is always sound; a true admits the pair to
// the expensive line-clipping stage.
func Intersects(a, b *model.Component) bool {
	for _, axis := range separatingAxes(a, b) {
		aMin, aMax := projectOnto(a, axis)
		bMin, bMax := projectOnto(b, axis)
		if aMin > bMax+geom.Epsilon || bMin > aMax+geom.Epsilon {
			return false
		}
	}
	return true
}

func separatingAxes(a, b *model.Component) []v3.Vec {
	na, nb := a.GlobalNormal(), b.GlobalNormal()

	axes := []v3.Vec{na, nb}
	if cross := na.Cross(nb); !geom.IsZero(cross) {
		axes = append(axes, geom.Normalize(cross))
	}
	axes = appendEdgeAxes(axes, a, na)
	axes = appendEdgeAxes(axes, b, nb)
	return axes
}

// appendEdgeAxes adds the in-plane outward axes of each polygon edge.
// These are what separate disjoint coplanar components, where both plane
// normals project everything to a single point.
func appendEdgeAxes(axes []v3.Vec, c *model.Component, normal v3.Vec) []v3.Vec {
	n := len(c.Vertices)
	for i := 0; i < n; i++ {
		edge := c.GlobalVertex((i + 1) % n).Sub(c.GlobalVertex(i))
		axis := normal.Cross(edge)
		if geom.IsZero(axis) {
			continue
		}
		axes = append(axes, geom.Normalize(axis))
	}
	return axes
}

func projectOnto(c *model.Component, axis v3.Vec) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for i := range c.Vertices {
		d := c.GlobalVertex(i).Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
