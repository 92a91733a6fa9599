package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dockyard/grid"
)

// TestNewPath_Origin checks the zero-step path and origin crane counting.
func TestNewPath_Origin(t *testing.T) {
	open := grid.NewPath(layout(t, ".C"))
	assert.Equal(t, 0, open.Len())
	assert.Equal(t, 0, open.TotalCranes())
	r, c := open.End()
	assert.Equal(t, [2]int{0, 0}, [2]int{r, c})
	assert.Empty(t, open.Steps())
	assert.Equal(t, [][2]int{{0, 0}}, open.Cells())

	crane := grid.NewPath(layout(t, "C."))
	assert.Equal(t, 1, crane.TotalCranes(), "a crane at the origin counts")
}

// TestIsStepValid covers bounds and building checks.
func TestIsStepValid(t *testing.T) {
	g := layout(t,
		".X",
		"..",
	)
	p := grid.NewPath(g)
	assert.False(t, p.IsStepValid(grid.East), "east enters a building")
	assert.True(t, p.IsStepValid(grid.South))

	p = p.Extend(grid.South)
	assert.False(t, p.IsStepValid(grid.South), "south leaves the grid")
	assert.True(t, p.IsStepValid(grid.East))

	p = p.Extend(grid.East)
	assert.False(t, p.IsStepValid(grid.East), "east leaves the grid")
}

// TestExtend_PanicsOnInvalidStep ensures misuse is loud.
func TestExtend_PanicsOnInvalidStep(t *testing.T) {
	p := grid.NewPath(layout(t, ".X"))
	assert.Panics(t, func() { p.Extend(grid.East) })
	assert.Panics(t, func() { p.Extend(grid.South) })
}

// TestExtend_Immutable verifies that extending never changes the receiver
// and that sibling paths sharing a prefix stay independent.
func TestExtend_Immutable(t *testing.T) {
	g := layout(t,
		".C.",
		"C..",
		"...",
	)
	base := grid.NewPath(g).Extend(grid.East) // on (0,1) crane
	south := base.Extend(grid.South)
	east := base.Extend(grid.East)

	assert.Equal(t, 1, base.Len(), "receiver length unchanged")
	assert.Equal(t, []grid.Step{grid.East}, base.Steps())
	assert.Equal(t, []grid.Step{grid.East, grid.South}, south.Steps())
	assert.Equal(t, []grid.Step{grid.East, grid.East}, east.Steps())

	steps := east.Steps()
	steps[0] = grid.South
	assert.Equal(t, []grid.Step{grid.East, grid.East}, east.Steps(), "Steps returns a copy")
}

// TestTotalCranes_Monotone walks a path step by step and checks that the
// crane count never decreases and matches the cells visited.
func TestTotalCranes_Monotone(t *testing.T) {
	g := layout(t,
		"C.C.",
		".CC.",
		"X.CC",
	)
	p := grid.NewPath(g)
	prev := p.TotalCranes()
	for _, s := range []grid.Step{grid.East, grid.South, grid.East, grid.South, grid.East} {
		require.True(t, p.IsStepValid(s))
		p = p.Extend(s)
		assert.GreaterOrEqual(t, p.TotalCranes(), prev)
		prev = p.TotalCranes()
	}

	want := 0
	for _, rc := range p.Cells() {
		if g.Get(rc[0], rc[1]) == grid.Crane {
			want++
		}
	}
	assert.Equal(t, want, p.TotalCranes())
	assert.Equal(t, 5, p.TotalCranes())
	r, c := p.End()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
}

// TestValidate replays built paths and flags a blocked origin.
func TestValidate(t *testing.T) {
	p := grid.NewPath(layout(t, "..", "C.")).Extend(grid.South).Extend(grid.East)
	assert.NoError(t, p.Validate())
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {1, 1}}, p.Cells())

	blocked := grid.NewPath(layout(t, "X.", ".."))
	assert.ErrorIs(t, blocked.Validate(), grid.ErrBuildingCell)
}
