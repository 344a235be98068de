package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepperPoints() []*Vector {
	return []*Vector{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 0, Y: 4},
		{X: 1, Y: 1},
		{X: 6, Y: 2},
		{X: 4, Y: 4},
	}
}

func TestAppendStep(t *testing.T) {
	points := stepperPoints()
	state := InitialStep(points)
	require.Len(t, state.Hull.Vertices, 3)
	assert.Equal(t, 3, state.Next)

	t.Run("inside point", func(t *testing.T) {
		next, step, ok := AppendStep(points, state)
		require.True(t, ok)
		assert.True(t, step.Inside)
		assert.Same(t, points[3], step.Point)
		assert.Equal(t, 3, step.Index)
		assert.Equal(t, -1, step.Left)
		assert.Equal(t, -1, step.Right)
		assert.Equal(t, state.Hull.Vertices, next.Hull.Vertices)
		assert.Equal(t, 4, next.Next)
	})

	t.Run("outside point leaves the old state alone", func(t *testing.T) {
		state := IncrementalState{Next: 4, Hull: state.Hull}
		before := state.Hull.Copy()

		next, step, ok := AppendStep(points, state)
		require.True(t, ok)
		assert.False(t, step.Inside)
		assert.Len(t, next.Hull.Vertices, 4)
		assert.Contains(t, next.Hull.Vertices, points[4])
		assert.Equal(t, before.Vertices, state.Hull.Vertices)
	})

	t.Run("done", func(t *testing.T) {
		state := IncrementalState{Next: len(points), Hull: state.Hull}
		assert.True(t, state.Done(points))
		same, _, ok := AppendStep(points, state)
		assert.False(t, ok)
		assert.Equal(t, state, same)
	})
}

func TestTraceIncremental(t *testing.T) {
	points := stepperPoints()

	var steps []IncrementalStep
	var hullSizes []int
	hull, err := TraceIncremental(points, func(state IncrementalState, step IncrementalStep) {
		steps = append(steps, step)
		hullSizes = append(hullSizes, state.Hull.Len())
	})
	require.NoError(t, err)

	require.Len(t, steps, len(points)-3)
	assert.Equal(t, []bool{true, false, false}, []bool{steps[0].Inside, steps[1].Inside, steps[2].Inside})
	assert.Equal(t, []int{3, 4, 5}, hullSizes)
	assert.Equal(t, Incremental{}.Run(points).Vertices, hull.Vertices)
}

func TestInitialStep_CollinearSeed(t *testing.T) {
	points := []*Vector{{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	state := InitialStep(points)
	assert.Equal(t, SeedIndices{0, 1, 3}, state.Seed)
	assert.Equal(t, 2, state.Next)

	// The skipped collinear point is appended, then the seed's last point is
	// stepped over.
	next, step, ok := AppendStep(points, state)
	require.True(t, ok)
	assert.Equal(t, 2, step.Index)
	assert.False(t, step.Inside)
	assert.True(t, next.Done(points))
	assert.True(t, next.Hull.IsConvex())
	assert.ElementsMatch(t, []*Vector{points[1], points[2], points[3]}, next.Hull.Vertices)

	t.Run("all collinear", func(t *testing.T) {
		points := []*Vector{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}}
		state := InitialStep(points)
		assert.True(t, state.Done(points))
		assert.Equal(t, []*Vector{points[0], points[1]}, state.Hull.Vertices)

		hull, err := TraceIncremental(points, nil)
		require.NoError(t, err)
		assert.Equal(t, state.Hull.Vertices, hull.Vertices)
	})
}

func TestTraceIncremental_Errors(t *testing.T) {
	hull, err := TraceIncremental(stepperPoints()[:2], nil)
	assert.Nil(t, hull)
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	assert.Panics(t, func() {
		TraceIncremental(stepperPoints(), func(IncrementalState, IncrementalStep) {
			panic("true panic")
		})
	})
}
