package advanced

import "github.com/osuushi/convexhull/internal"

// Stepping harness for the incremental algorithm, e.g. to animate it or trace
// it. All state is explicit: each step takes a state and returns a fresh one,
// leaving the old one intact.

type IncrementalState struct {
	// Index of the next input point to consider
	Next int
	Hull *Polygon
	// The points of the starting triangle, which are never stepped over
	Seed SeedIndices
}

// What happened on one step.
type IncrementalStep struct {
	// Index of Point in the input
	Index  int
	Point  *Vector
	Inside bool
	// Support indices in the hull before the step, -1 when Inside
	Left, Right int
}

func (s IncrementalState) Done(points []*Vector) bool {
	return s.Next >= len(points)
}

// Move Next past the seed points.
func (s IncrementalState) skipSeed() IncrementalState {
	for s.Seed.Has(s.Next) {
		s.Next++
	}
	return s
}

// Seed the stepper with the starting triangle of the incremental algorithm.
// When every point is collinear the state is already done, and its hull is
// the segment between the extremes.
func InitialStep(points []*Vector) IncrementalState {
	if err := internal.ValidateInput(points); err != nil {
		internal.Throw(err)
	}
	hull, seed := internal.IncrementalSeed(points)
	if hull.Len() < 3 {
		return IncrementalState{Next: len(points), Hull: hull, Seed: seed}
	}
	return IncrementalState{Hull: hull, Seed: seed}.skipSeed()
}

// Consider the next point. The bool is false once every point is used.
func AppendStep(points []*Vector, state IncrementalState) (IncrementalState, IncrementalStep, bool) {
	if state.Done(points) {
		return state, IncrementalStep{Index: -1, Left: -1, Right: -1}, false
	}

	p := points[state.Next]
	hull := state.Hull.Copy()
	left, right := internal.AppendPoint(hull, p)
	step := IncrementalStep{
		Index:  state.Next,
		Point:  p,
		Inside: left < 0,
		Left:   left,
		Right:  right,
	}
	next := IncrementalState{Next: state.Next + 1, Hull: hull, Seed: state.Seed}
	return next.skipSeed(), step, true
}

// Run the stepper to completion, calling visit after every step with the
// state it produced. The final hull matches Incremental.Run on the same
// points.
func TraceIncremental(points []*Vector, visit func(IncrementalState, IncrementalStep)) (result *Polygon, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	state := InitialStep(points)
	for {
		next, step, ok := AppendStep(points, state)
		if !ok {
			return state.Hull, nil
		}
		state = next
		if visit != nil {
			visit(state, step)
		}
	}
}
