// Package model defines the in-memory representation of planar components
// and the joint buckets the detection engine populates.
package model

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/joinery/pkg/geom"
)

// ID identifies a component within a set. IDs are assigned by the caller
// and must be unique and stable for the lifetime of a run.
type ID int

// Component is a planar face: an ordered boundary loop of vertices in its
// local frame, a unit normal, a forward transform into the shared global
// frame with its matching inverse, and three joint buckets.
//
// Vertices, normal and transforms are immutable during a detection run;
// AddJoint is the only run-time mutation point.
type Component struct {
	ID       ID       `json:"id"`
	Name     string   `json:"name,omitempty"`
	Vertices []v3.Vec `json:"vertices"` // ordered boundary loop, local frame
	Normal   v3.Vec   `json:"normal"`   // unit normal, local frame; zero = undefined
	Forward  sdf.M44  `json:"-"`        // local -> global
	Inverse  sdf.M44  `json:"-"`        // global -> local

	Fingers []Joint `json:"fingers,omitempty"`
	Holes   []Joint `json:"holes,omitempty"`
	Slots   []Joint `json:"slots,omitempty"`
}

// New creates a component with identity transforms and no geometry.
func New(id ID) *Component {
	return &Component{
		ID:      id,
		Forward: sdf.Identity3d(),
		Inverse: sdf.Identity3d(),
	}
}

// AddVertex appends a boundary vertex in the component's local frame.
func (c *Component) AddVertex(x, y, z float64) {
	c.Vertices = append(c.Vertices, v3.Vec{X: x, Y: y, Z: z})
}

// SetNormal sets the component normal, normalizing it to unit length.
// A zero-magnitude input stays the zero "undefined direction" sentinel
// and is rejected by validation before a run.
func (c *Component) SetNormal(x, y, z float64) {
	c.Normal = geom.Normalize(v3.Vec{X: x, Y: y, Z: z})
}

// SetTransform installs the forward local-to-global transform and derives
// its inverse.
func (c *Component) SetTransform(m sdf.M44) {
	c.Forward = m
	c.Inverse = m.Inverse()
}

// GlobalVertex returns vertex i mapped into the global frame.
func (c *Component) GlobalVertex(i int) v3.Vec {
	return c.Forward.MulPosition(c.Vertices[i])
}

// GlobalNormal returns the unit normal in the global frame.
func (c *Component) GlobalNormal() v3.Vec {
	return geom.Normalize(geom.TransformDir(c.Forward, c.Normal))
}

// AddJoint appends a classified joint to the bucket matching its type.
// This is the single mutation applied to a component during detection.
func (c *Component) AddJoint(t JointType, seg geom.Segment) {
	j := Joint{Type: t, Segment: seg}
	switch t {
	case JointFinger:
		c.Fingers = append(c.Fingers, j)
	case JointHole:
		c.Holes = append(c.Holes, j)
	case JointSlot:
		c.Slots = append(c.Slots, j)
	}
}

// Reset clears all three joint buckets, retaining capacity, without
// touching vertices, normal or transforms. It enables repeated runs on
// the same geometry.
func (c *Component) Reset() {
	c.Fingers = c.Fingers[:0]
	c.Holes = c.Holes[:0]
	c.Slots = c.Slots[:0]
}

// JointCounts returns the current bucket sizes.
func (c *Component) JointCounts() JointCounts {
	return JointCounts{
		Fingers: len(c.Fingers),
		Holes:   len(c.Holes),
		Slots:   len(c.Slots),
	}
}
