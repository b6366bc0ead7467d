package model

// Set is the ordered collection of components submitted to one detection
// run. Order only affects iteration order, never the result: the engine
// canonicalizes pairs by component ID.
type Set struct {
	Components []*Component
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add appends a component to the set.
func (s *Set) Add(c *Component) {
	s.Components = append(s.Components, c)
}

// Len returns the number of components.
func (s *Set) Len() int {
	return len(s.Components)
}

// Reset clears the joint buckets of every component, leaving geometry and
// transforms untouched.
func (s *Set) Reset() {
	for _, c := range s.Components {
		c.Reset()
	}
}
