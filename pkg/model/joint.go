package model

import (
	"fmt"
	"strconv"

	"github.com/chazu/joinery/pkg/geom"
)

// JointType enumerates the joint classifications the engine can assign.
type JointType int

const (
	JointFinger JointType = iota // both segments run along a boundary edge
	JointHole                    // the counterpart runs along an edge, this one crosses the interior
	JointSlot                    // both segments cross their component's interior
)

func (t JointType) String() string {
	switch t {
	case JointFinger:
		return "finger"
	case JointHole:
		return "hole"
	case JointSlot:
		return "slot"
	default:
		return fmt.Sprintf("JointType(%d)", int(t))
	}
}

// MarshalJSON renders the type as its name, not its ordinal.
func (t JointType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *JointType) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	switch s {
	case "finger":
		*t = JointFinger
	case "hole":
		*t = JointHole
	case "slot":
		*t = JointSlot
	default:
		return fmt.Errorf("unknown joint type %q", s)
	}
	return nil
}

// Joint is one half of a classified intersection. Joints are always created
// in matched pairs: each of the two intersecting components receives one.
type Joint struct {
	Type    JointType    `json:"type"`
	Segment geom.Segment `json:"segment"`
}

// JointCounts tallies the three joint buckets of a component.
type JointCounts struct {
	Fingers int `json:"fingers"`
	Holes   int `json:"holes"`
	Slots   int `json:"slots"`
}

// Total returns the number of joints across all three buckets.
func (c JointCounts) Total() int {
	return c.Fingers + c.Holes + c.Slots
}

// Add accumulates other into c.
func (c JointCounts) Add(other JointCounts) JointCounts {
	return JointCounts{
		Fingers: c.Fingers + other.Fingers,
		Holes:   c.Holes + other.Holes,
		Slots:   c.Slots + other.Slots,
	}
}
