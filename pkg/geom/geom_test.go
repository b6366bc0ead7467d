package geom

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestNormalize(t *testing.T) {
	n := Normalize(v3.Vec{X: 3, Y: 0, Z: 4})
	if math.Abs(n.Length()-1) > Epsilon {
		t.Errorf("normalized length = %f, want 1", n.Length())
	}
}

func TestNormalizeZeroClamp(t *testing.T) {
	// A sub-epsilon vector must clamp to the zero sentinel, not NaN.
	n := Normalize(v3.Vec{X: 1e-12, Y: -1e-13, Z: 0})
	if n != (v3.Vec{}) {
		t.Errorf("Normalize of near-zero vector = %v, want zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Error("Normalize must never produce NaN")
	}
	if !IsZero(n) {
		t.Error("clamped vector should be the zero sentinel")
	}
}

func TestPlaneBasis(t *testing.T) {
	normals := []v3.Vec{
		{Z: 1},
		{X: 1},
		{Y: 1},
		Normalize(v3.Vec{X: 1, Y: 1, Z: 1}),
	}
	for _, n := range normals {
		u, v := PlaneBasis(n)
		if math.Abs(u.Length()-1) > Epsilon || math.Abs(v.Length()-1) > Epsilon {
			t.Errorf("basis for %v not unit length: |u|=%f |v|=%f", n, u.Length(), v.Length())
		}
		if math.Abs(u.Dot(v)) > Epsilon {
			t.Errorf("basis for %v not orthogonal: u.v=%g", n, u.Dot(v))
		}
		if math.Abs(u.Dot(n)) > Epsilon || math.Abs(v.Dot(n)) > Epsilon {
			t.Errorf("basis for %v not in plane", n)
		}
	}
}

func TestTransformDir(t *testing.T) {
	// A translation must not change a direction.
	m := sdf.Translate3d(v3.Vec{X: 10, Y: -4, Z: 2})
	d := TransformDir(m, v3.Vec{Z: 1})
	if d.Sub(v3.Vec{Z: 1}).Length() > Epsilon {
		t.Errorf("translation changed direction: %v", d)
	}

	// A 90 degree rotation about X maps +z to +y... actually to -y or +y
	// depending on handedness; just check the length and the plane.
	r := sdf.RotateX(math.Pi / 2)
	d = TransformDir(r, v3.Vec{Z: 1})
	if math.Abs(d.Length()-1) > 1e-12 {
		t.Errorf("rotation changed direction length: %f", d.Length())
	}
	if math.Abs(d.X) > 1e-12 {
		t.Errorf("rotation about X produced an X component: %v", d)
	}
}

func TestPointSegmentDistance(t *testing.T) {
	a := v3.Vec{}
	b := v3.Vec{X: 2}

	cases := []struct {
		p    v3.Vec
		want float64
	}{
		{v3.Vec{X: 1}, 0},           // on the segment
		{v3.Vec{X: 1, Y: 3}, 3},     // perpendicular foot inside
		{v3.Vec{X: -2}, 2},          // beyond start
		{v3.Vec{X: 5}, 3},           // beyond end
		{v3.Vec{X: 2, Z: 0.5}, 0.5}, // off the endpoint
	}
	for _, c := range cases {
		got := PointSegmentDistance(c.p, a, b)
		if math.Abs(got-c.want) > Epsilon {
			t.Errorf("distance(%v) = %f, want %f", c.p, got, c.want)
		}
	}
}

func TestPointSegmentDistanceDegenerate(t *testing.T) {
	// Zero-length segment degrades to point distance.
	a := v3.Vec{X: 1, Y: 1}
	got := PointSegmentDistance(v3.Vec{X: 1, Y: 3}, a, a)
	if math.Abs(got-2) > Epsilon {
		t.Errorf("distance to degenerate segment = %f, want 2", got)
	}
}

func TestSegmentTransformRoundTrip(t *testing.T) {
	m := sdf.Translate3d(v3.Vec{X: 3, Z: -1}).Mul(sdf.RotateZ(math.Pi / 3))
	inv := m.Inverse()

	s := Segment{Start: v3.Vec{X: 1, Y: 2}, End: v3.Vec{X: -1, Y: 0, Z: 4}}
	back := s.Transform(m).Transform(inv)

	if back.Start.Sub(s.Start).Length() > 1e-9 || back.End.Sub(s.End).Length() > 1e-9 {
		t.Errorf("round trip changed segment: %v -> %v", s, back)
	}
}

func TestLineAt(t *testing.T) {
	l := Line{Point: v3.Vec{X: 1}, Dir: v3.Vec{Y: 1}}
	p := l.At(2.5)
	if p.Sub(v3.Vec{X: 1, Y: 2.5}).Length() > Epsilon {
		t.Errorf("At(2.5) = %v", p)
	}
}
