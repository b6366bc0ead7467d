package detect

import (
	"context"
	"sort"
	"sync"

	"github.com/chazu/joinery/pkg/geom"
	"github.com/chazu/joinery/pkg/model"
)

// Options controls a detection run.
type Options struct {
	// Strict fails the whole run on the first ill-conditioned pair
	// instead of skipping it with a warning.
	Strict bool
	// Workers is the number of parallel classification workers.
	// Values below 2 run the classification serially.
	Workers int
}

// Detector runs pairwise intersection detection and joint classification
// over a component set.
type Detector struct {
	opts Options
}

// New returns a Detector with the given options.
func New(opts Options) *Detector {
	return &Detector{opts: opts}
}

// jointEmit is one half of a matched joint pair, produced during the pure
// classification phase and applied during the serial merge.
type jointEmit struct {
	comp *model.Component
	typ  model.JointType
	seg  geom.Segment
}

// pairOutcome is everything one pair evaluation produced. Outcomes are
// immutable once built; components are only mutated in the merge phase.
type pairOutcome struct {
	events      []Event
	emits       []jointEmit
	intersected bool
	coplanar    bool
	instability *NumericInstabilityError
}

// Detect validates the set, classifies every unordered component pair and
// merges the classified joints into the components' buckets.
//
// Classification is pure and runs across Workers goroutines; joint
// emission happens in a single serial merge pass afterwards, in canonical
// pair order, so results are deterministic regardless of scheduling.
// Pairs are canonicalized by component ID, not input position, so
// permuting the input set cannot change the result.
//
// Cancellation via ctx is honored only at pair boundaries; a cancelled
// run returns ctx.Err() and leaves the components untouched.
func (d *Detector) Detect(ctx context.Context, set *model.Set) (*Result, error) {
	if set == nil || set.Len() == 0 {
		return nil, EmptyInputError{}
	}
	if findings := model.Validate(set); len(findings) > 0 {
		return nil, &DegenerateGeometryError{Findings: findings}
	}

	comps := canonicalOrder(set)
	pairs := allPairs(len(comps))
	outcomes := make([]pairOutcome, len(pairs))

	workers := d.opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(pairs) && len(pairs) > 0 {
		workers = len(pairs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				// Cancellation is only checked here, between
				// pairs, so no half-applied pair can exist.
				if ctx.Err() != nil {
					continue
				}
				i, j := pairs[idx][0], pairs[idx][1]
				outcomes[idx] = classifyPair(comps[i], comps[j], idx+1, len(pairs))
			}
		}()
	}
	for idx := range pairs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if d.opts.Strict {
		for i := range outcomes {
			if outcomes[i].instability != nil {
				return nil, outcomes[i].instability
			}
		}
	}

	return merge(set, comps, outcomes), nil
}

// merge is the single serial pass that applies classified joints to the
// components and assembles the result.
func merge(set *model.Set, comps []*model.Component, outcomes []pairOutcome) *Result {
	summary := Summary{
		Components: set.Len(),
		Pairs:      len(outcomes),
	}
	res := &Result{
		Counts: make(map[model.ID]model.JointCounts, set.Len()),
	}

	for i := range outcomes {
		out := &outcomes[i]
		res.Events = append(res.Events, out.events...)

		if out.coplanar {
			summary.CoplanarPairs++
		}
		if out.intersected {
			summary.Intersections++
		}
		if out.instability != nil {
			summary.SkippedPairs++
			res.Warnings = append(res.Warnings, Warning{
				A:       out.instability.A,
				B:       out.instability.B,
				Message: out.instability.Error(),
			})
		}

		for _, e := range out.emits {
			e.comp.AddJoint(e.typ, e.seg)
			switch e.typ {
			case model.JointFinger:
				summary.Fingers++
			case model.JointHole:
				summary.Holes++
			case model.JointSlot:
				summary.Slots++
			}
		}
	}

	for _, c := range comps {
		res.Counts[c.ID] = c.JointCounts()
	}

	res.Summary = summary
	res.Events = append(res.Events, Complete{Summary: summary})
	return res
}

// classifyPair evaluates one unordered pair. It reads component geometry
// but never mutates it.
func classifyPair(a, b *model.Component, step, total int) pairOutcome {
	var out pairOutcome
	out.events = append(out.events, PairStarted{
		Step: step, TotalSteps: total, A: a.ID, B: b.ID,
	})

	if Coplanar(a, b) {
		// Coplanar overlapping pairs are adjacency, not joinery; they
		// take the merge path and produce no joints.
		if Intersects(a, b) {
			out.coplanar = true
			out.events = append(out.events, CoplanarOverlap{A: a.ID, B: b.ID})
		}
		return out
	}
	if Parallel(a, b) {
		// Parallel but offset planes never meet.
		return out
	}
	if !Intersects(a, b) {
		return out
	}

	line, err := IntersectionLine(a, b)
	if err != nil {
		nie, ok := err.(*NumericInstabilityError)
		if !ok {
			nie = &NumericInstabilityError{A: a.ID, B: b.ID}
		}
		out.instability = nie
		out.events = append(out.events, PairSkipped{
			A: a.ID, B: b.ID, Reason: err.Error(),
		})
		return out
	}

	segsA := LineIntersections(line, a)
	segsB := LineIntersections(line, b)
	k := len(segsA)
	if len(segsB) < k {
		k = len(segsB)
	}
	if k == 0 {
		return out
	}

	out.intersected = true
	out.events = append(out.events, IntersectionFound{A: a.ID, B: b.ID, Line: line})

	for m := 0; m < k; m++ {
		typeA, typeB := jointTypes(
			SegmentOnEdge(segsA[m], a),
			SegmentOnEdge(segsB[m], b),
		)
		out.emits = append(out.emits,
			jointEmit{comp: a, typ: typeA, seg: segsA[m]},
			jointEmit{comp: b, typ: typeB, seg: segsB[m]},
		)
		out.events = append(out.events, JointClassified{
			A: a.ID, TypeA: typeA, SegmentA: segsA[m],
			B: b.ID, TypeB: typeB, SegmentB: segsB[m],
		})
	}
	return out
}

// jointTypes applies the classification decision table to the two
// on-edge flags.
func jointTypes(onEdgeA, onEdgeB bool) (model.JointType, model.JointType) {
	switch {
	case onEdgeA && onEdgeB:
		return model.JointFinger, model.JointFinger
	case onEdgeA:
		return model.JointFinger, model.JointHole
	case onEdgeB:
		return model.JointHole, model.JointFinger
	default:
		return model.JointSlot, model.JointSlot
	}
}

// canonicalOrder returns the set's components sorted by ID, which fixes
// the pair iteration order independently of input order.
func canonicalOrder(set *model.Set) []*model.Component {
	comps := make([]*model.Component, set.Len())
	copy(comps, set.Components)
	sort.Slice(comps, func(i, j int) bool { return comps[i].ID < comps[j].ID })
	return comps
}

// allPairs enumerates the unordered index pairs (i, j) with i < j.
func allPairs(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}
