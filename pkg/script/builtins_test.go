package script

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(defcomponent "base" :normal n)`,
			expect: `(defcomponent "base" "__kw_normal" n)`,
		},
		{
			name:   "multiple keywords",
			input:  `(defcomponent "base" :at a :rotate r)`,
			expect: `(defcomponent "base" "__kw_at" a "__kw_rotate" r)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def-thing :side-count ref)`,
			expect: `(def_thing "__kw_side-count" ref)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// defcomponent tests
// ---------------------------------------------------------------------------

func TestDefcomponent(t *testing.T) {
	eng := NewEngine()

	source := `
(defcomponent "base"
  :vertices (list (vec3 0 0 0) (vec3 2 0 0) (vec3 2 2 0) (vec3 0 2 0))
  :normal (vec3 0 0 1))
`
	s, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 component, got %d", s.Len())
	}

	c := s.Components[0]
	if c.ID != 1 {
		t.Errorf("expected ID 1, got %d", c.ID)
	}
	if c.Name != "base" {
		t.Errorf("expected name 'base', got %q", c.Name)
	}
	if len(c.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(c.Vertices))
	}
	if c.Vertices[2] != (v3.Vec{X: 2, Y: 2}) {
		t.Errorf("vertex 2 = %v", c.Vertices[2])
	}
	if c.Normal != (v3.Vec{Z: 1}) {
		t.Errorf("normal = %v", c.Normal)
	}
}

func TestDefcomponentSequentialIDs(t *testing.T) {
	eng := NewEngine()

	source := `
(defcomponent "first"
  :vertices (list (vec3 0 0 0) (vec3 1 0 0) (vec3 1 1 0))
  :normal (vec3 0 0 1))
(defcomponent "second"
  :vertices (list (vec3 0 0 0) (vec3 1 0 0) (vec3 1 0 1))
  :normal (vec3 0 1 0))
(defcomponent "third"
  :vertices (list (vec3 0 0 0) (vec3 0 1 0) (vec3 0 1 1))
  :normal (vec3 1 0 0))
`
	s, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 components, got %d", s.Len())
	}
	for i, c := range s.Components {
		if int(c.ID) != i+1 {
			t.Errorf("component %d has ID %d", i, c.ID)
		}
	}
	if s.Components[1].Name != "second" {
		t.Errorf("definition order not preserved: %q", s.Components[1].Name)
	}
}

func TestDefcomponentPlacement(t *testing.T) {
	eng := NewEngine()

	// Rotate the local z normal onto global -y, then lift by 5.
	source := `
(defcomponent "wall"
  :vertices (list (vec3 0 0 0) (vec3 2 0 0) (vec3 2 2 0) (vec3 0 2 0))
  :normal (vec3 0 0 1)
  :at (vec3 0 0 5)
  :rotate (vec3 90 0 0))
`
	s, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 component, got %d", s.Len())
	}
	c := s.Components[0]

	n := c.GlobalNormal()
	if math.Abs(n.X) > 1e-9 || math.Abs(n.Y+1) > 1e-9 || math.Abs(n.Z) > 1e-9 {
		t.Errorf("global normal = %v, want (0,-1,0)", n)
	}

	// Local (2,2,0) rotates to (2,0,2) and translates to (2,0,7).
	p := c.GlobalVertex(2)
	if p.Sub(v3.Vec{X: 2, Z: 7}).Length() > 1e-9 {
		t.Errorf("global vertex 2 = %v, want (2,0,7)", p)
	}

	// The inverse must take the placed point back to the local frame.
	back := c.Inverse.MulPosition(p)
	if back.Sub(v3.Vec{X: 2, Y: 2}).Length() > 1e-9 {
		t.Errorf("inverse round-trip = %v, want (2,2,0)", back)
	}
}

func TestDefcomponentVariables(t *testing.T) {
	eng := NewEngine()

	source := `
(def size 3)
(defcomponent "square"
  :vertices (list (vec3 0 0 0) (vec3 size 0 0) (vec3 size size 0) (vec3 0 size 0))
  :normal (vec3 0 0 1))
`
	s, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 component, got %d", s.Len())
	}
	if got := s.Components[0].Vertices[2]; got != (v3.Vec{X: 3, Y: 3}) {
		t.Errorf("vertex 2 = %v, want (3,3,0)", got)
	}
}

func TestComponentLookup(t *testing.T) {
	eng := NewEngine()

	source := `
(defcomponent "base"
  :vertices (list (vec3 0 0 0) (vec3 1 0 0) (vec3 1 1 0))
  :normal (vec3 0 0 1))
(component "base")
`
	_, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
}

func TestComponentLookupUnknown(t *testing.T) {
	eng := NewEngine()

	s, evalErrs, err := eng.Evaluate(`(component "missing")`)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if s != nil {
		t.Fatal("expected nil set on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected an eval error for unknown component name")
	}
}

func TestVec3WrongArity(t *testing.T) {
	eng := NewEngine()

	s, evalErrs, err := eng.Evaluate(`(vec3 1 2)`)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if s != nil {
		t.Fatal("expected nil set on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected an eval error for wrong vec3 arity")
	}
}
