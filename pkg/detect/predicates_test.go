package detect

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"

	"github.com/chazu/joinery/pkg/model"
)

// square returns a 2x2 square in the z=0 plane of its local frame with a
// +z normal, lower-left corner at the local origin.
func square(id model.ID) *model.Component {
	c := model.New(id)
	c.AddVertex(0, 0, 0)
	c.AddVertex(2, 0, 0)
	c.AddVertex(2, 2, 0)
	c.AddVertex(0, 2, 0)
	c.SetNormal(0, 0, 1)
	return c
}

// quad builds a component directly from four global-frame vertices.
func quad(id model.ID, normal v3.Vec, verts ...v3.Vec) *model.Component {
	c := model.New(id)
	for _, v := range verts {
		c.AddVertex(v.X, v.Y, v.Z)
	}
	c.SetNormal(normal.X, normal.Y, normal.Z)
	return c
}

func TestParallelSymmetric(t *testing.T) {
	a := square(1)
	b := square(2)
	b.SetTransform(sdf.Translate3d(v3.Vec{Z: 5}))

	c := quad(3, v3.Vec{Y: 1},
		v3.Vec{}, v3.Vec{X: 2}, v3.Vec{X: 2, Z: 2}, v3.Vec{Z: 2})

	assert.True(t, Parallel(a, b))
	assert.Equal(t, Parallel(a, b), Parallel(b, a), "parallel must be symmetric")
	assert.False(t, Parallel(a, c))
	assert.Equal(t, Parallel(a, c), Parallel(c, a), "parallel must be symmetric")
}

func TestParallelOppositeNormals(t *testing.T) {
	a := square(1)
	b := square(2)
	b.SetNormal(0, 0, -1)

	// Anti-parallel normals are still collinear.
	assert.True(t, Parallel(a, b))
}

func TestCoplanarSelf(t *testing.T) {
	a := square(1)
	assert.True(t, Coplanar(a, a), "a component is coplanar with itself")
}

func TestCoplanarRequiresZeroOffset(t *testing.T) {
	a := square(1)

	// Same plane, shifted within it: coplanar.
	b := square(2)
	b.SetTransform(sdf.Translate3d(v3.Vec{X: 10}))
	assert.True(t, Coplanar(a, b))

	// Parallel planes with an offset along the normal: parallel, but a
	// point of b does not lie on a's plane, so NOT coplanar.
	c := square(3)
	c.SetTransform(sdf.Translate3d(v3.Vec{Z: 1}))
	assert.True(t, Parallel(a, c))
	assert.False(t, Coplanar(a, c), "offset parallel planes are not coplanar")
}

func TestCoplanarUnderRotation(t *testing.T) {
	// Two components whose local frames differ but whose global planes
	// coincide: b is defined in the y=0 plane and rotated into z=0.
	a := square(1)
	b := quad(2, v3.Vec{Y: 1},
		v3.Vec{}, v3.Vec{X: 2}, v3.Vec{X: 2, Z: 2}, v3.Vec{Z: 2})
	b.SetTransform(sdf.RotateX(math.Pi / 2))

	assert.True(t, Coplanar(a, b))
}

func TestIntersectsSharedEdge(t *testing.T) {
	// Perpendicular squares sharing the edge (0,0,0)-(2,0,0): intervals
	// touch on the normal axes, which still counts as overlap.
	a := square(1)
	b := quad(2, v3.Vec{Y: 1},
		v3.Vec{}, v3.Vec{X: 2}, v3.Vec{X: 2, Z: 2}, v3.Vec{Z: 2})

	assert.True(t, Intersects(a, b))
}

func TestIntersectsRejectsDisjoint(t *testing.T) {
	a := square(1)

	// Far away in a perpendicular plane: separated along a's normal.
	b := quad(2, v3.Vec{Y: 1},
		v3.Vec{Z: 5}, v3.Vec{X: 2, Z: 5}, v3.Vec{X: 2, Z: 7}, v3.Vec{Z: 7})
	assert.False(t, Intersects(a, b))

	// Coplanar but disjoint: both normal axes degenerate to a point, the
	// in-plane edge axes must separate them.
	c := square(3)
	c.SetTransform(sdf.Translate3d(v3.Vec{X: 10}))
	assert.False(t, Intersects(a, c))

	// Coplanar sharing exactly one corner point: touching, not disjoint.
	d := square(4)
	d.SetTransform(sdf.Translate3d(v3.Vec{X: 2, Y: 2}))
	assert.True(t, Intersects(a, d))
}

func TestIntersectsCrossingFaces(t *testing.T) {
	// A vertical face passing through the middle of a horizontal one.
	a := square(1)
	b := quad(2, v3.Vec{Y: 1},
		v3.Vec{X: 0.5, Y: 1, Z: -1},
		v3.Vec{X: 1.5, Y: 1, Z: -1},
		v3.Vec{X: 1.5, Y: 1, Z: 1},
		v3.Vec{X: 0.5, Y: 1, Z: 1})

	assert.True(t, Intersects(a, b))
}
