package detect

import (
	"github.com/chazu/joinery/pkg/geom"
	"github.com/chazu/joinery/pkg/model"
)

// InstabilityThreshold is the cross-product magnitude below which the
// two-plane solve is considered ill-conditioned: the normals are within
// roughly 0.006 degrees of parallel yet outside the parallel epsilon, so
// the intersection point would be computed from a near-singular system.
// Such pairs are skipped with a warning (or fail the run in strict mode).
const InstabilityThreshold = 1e-4

// IntersectionLine computes the infinite line where the supporting planes
// of two non-parallel components meet. The direction is the normalized
// cross product of the normals; the point is the closed-form solution of
// the two plane equations with the component along the direction set to
// zero, so the line is computed, never assumed to pass through the origin.
func IntersectionLine(a, b *model.Component) (geom.Line, error) {
	na, nb := a.GlobalNormal(), b.GlobalNormal()

	d := na.Cross(nb)
	mag := d.Length()
	if mag < InstabilityThreshold {
		return geom.Line{}, &NumericInstabilityError{
			A:              a.ID,
			B:              b.ID,
			CrossMagnitude: mag,
		}
	}

	// Plane offsets: dot(p, n) = h for every point p on the plane.
	ha := na.Dot(a.GlobalVertex(0))
	hb := nb.Dot(b.GlobalVertex(0))

	// p0 = (ha*(nb x d) + hb*(d x na)) / |d|^2 satisfies both plane
	// equations and dot(p0, d) = 0.
	p0 := nb.Cross(d).MulScalar(ha).
		Add(d.Cross(na).MulScalar(hb)).
		DivScalar(d.Length2())

	return geom.Line{Point: p0, Dir: d.DivScalar(mag)}, nil
}
