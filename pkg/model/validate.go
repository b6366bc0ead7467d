package model

import (
	"fmt"

	"github.com/chazu/joinery/pkg/geom"
)

// ValidationError describes a single degenerate-geometry finding.
type ValidationError struct {
	ComponentID ID     `json:"component_id"`
	Message     string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("component %d: %s", int(e.ComponentID), e.Message)
}

// Validate runs the whole-set geometry checks that must pass before a
// detection run. It is eager by design: a bad component fails the entire
// set up front instead of silently skewing results for good ones.
// An empty slice means the set is valid. Read-only.
func Validate(s *Set) []ValidationError {
	var errs []ValidationError

	seen := make(map[ID]int)
	for _, c := range s.Components {
		errs = append(errs, validateComponent(c)...)

		if first, dup := seen[c.ID]; dup {
			errs = append(errs, ValidationError{
				ComponentID: c.ID,
				Message:     fmt.Sprintf("duplicate id (first seen at position %d)", first),
			})
		} else {
			seen[c.ID] = len(seen)
		}
	}

	return errs
}

func validateComponent(c *Component) []ValidationError {
	var errs []ValidationError

	if len(c.Vertices) < 3 {
		errs = append(errs, ValidationError{
			ComponentID: c.ID,
			Message:     fmt.Sprintf("has %d vertices, a planar polygon needs at least 3", len(c.Vertices)),
		})
	}

	if geom.IsZero(c.Normal) {
		errs = append(errs, ValidationError{
			ComponentID: c.ID,
			Message:     "zero-magnitude normal (undefined direction)",
		})
	}

	// The forward/inverse pair must round-trip every vertex, or any
	// result computed through them is undefined.
	for i, v := range c.Vertices {
		back := c.Inverse.MulPosition(c.Forward.MulPosition(v))
		if back.Sub(v).Length() > transformTolerance {
			errs = append(errs, ValidationError{
				ComponentID: c.ID,
				Message: fmt.Sprintf("transform does not invert: vertex %d round-trips with error %g",
					i, back.Sub(v).Length()),
			})
			break
		}
	}

	return errs
}

// transformTolerance bounds the acceptable round-trip error of the
// forward/inverse transform pair. Looser than geom.Epsilon to absorb the
// floating error a 4x4 inversion accumulates at typical part coordinates.
const transformTolerance = 1e-6
