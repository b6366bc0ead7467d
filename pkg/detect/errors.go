package detect

import (
	"fmt"
	"strings"

	"github.com/chazu/joinery/pkg/model"
)

// EmptyInputError is returned when a detection run is asked to process a
// set with no components. An empty set is a caller mistake, not an
// empty-but-successful result.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "detect: component set is empty"
}

// DegenerateGeometryError aggregates the whole-set validation findings
// that aborted a run before the pairwise loop started.
type DegenerateGeometryError struct {
	Findings []model.ValidationError
}

func (e *DegenerateGeometryError) Error() string {
	if len(e.Findings) == 1 {
		return "detect: degenerate geometry: " + e.Findings[0].Error()
	}
	msgs := make([]string, len(e.Findings))
	for i, f := range e.Findings {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("detect: degenerate geometry (%d findings): %s",
		len(e.Findings), strings.Join(msgs, "; "))
}

// NumericInstabilityError marks a pair whose plane-plane solve is
// ill-conditioned: the normals' cross product magnitude is near zero while
// the pair is still outside the parallel epsilon. By default the pair is
// skipped with a warning; in strict mode it fails the whole run.
type NumericInstabilityError struct {
	A, B           model.ID
	CrossMagnitude float64
}

func (e *NumericInstabilityError) Error() string {
	return fmt.Sprintf(
		"detect: pair (%d, %d) is ill-conditioned: cross product magnitude %.3g below threshold %.3g",
		int(e.A), int(e.B), e.CrossMagnitude, InstabilityThreshold)
}
