// Package geom provides the planar geometry helpers the detection engine
// needs on top of sdfx's vector and matrix types. Vectors are v3.Vec and
// homogeneous transforms are sdf.M44 throughout; this package only adds
// what sdfx lacks.
package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Epsilon is the tolerance below which floating-point differences are
// treated as zero in geometric comparisons.
const Epsilon = 1e-9

// Normalize returns the unit vector in the direction of v. A vector whose
// magnitude is below Epsilon normalizes to the zero vector rather than NaN.
// Callers must treat a zero result as "undefined direction" and branch
// before using it in a predicate.
func Normalize(v v3.Vec) v3.Vec {
	if v.Length() < Epsilon {
		return v3.Vec{}
	}
	return v.Normalize()
}

// IsZero reports whether v is the zero-magnitude "undefined direction"
// sentinel.
func IsZero(v v3.Vec) bool {
	return v.Length() < Epsilon
}

// TransformDir applies only the rotational part of m to the direction d.
// M44 multiplies positions, so the direction is carried as the difference
// of two transformed points.
func TransformDir(m sdf.M44, d v3.Vec) v3.Vec {
	return m.MulPosition(d).Sub(m.MulPosition(v3.Vec{}))
}

// PlaneBasis returns two orthonormal vectors spanning the plane with unit
// normal n. The basis is deterministic for a given normal.
func PlaneBasis(n v3.Vec) (u, v v3.Vec) {
	ref := v3.Vec{X: 1}
	if math.Abs(n.X) > 0.9 {
		ref = v3.Vec{Y: 1}
	}
	u = Normalize(n.Cross(ref))
	v = n.Cross(u)
	return u, v
}

// PointSegmentDistance returns the distance from p to the closest point on
// the segment ab.
func PointSegmentDistance(p, a, b v3.Vec) float64 {
	ab := b.Sub(a)
	len2 := ab.Length2()
	if len2 < Epsilon*Epsilon {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(ab) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Sub(a.Add(ab.MulScalar(t))).Length()
}
