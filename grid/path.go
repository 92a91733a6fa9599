package grid

import "fmt"

// stepNode is one link of a path's step history. Nodes are never mutated
// after creation, so paths extended from a common prefix share it safely.
type stepNode struct {
	prev *stepNode
	step Step
}

// Path is a South/East walk from the origin (0,0) of a grid, together with
// its current end position and the number of distinct Crane cells visited.
//
// Path is a value type: Extend returns a new Path and leaves the receiver
// untouched, so a stored path can never be changed through a copy.
// The zero Path is not anchored to any grid; build paths with NewPath.
type Path struct {
	g        *Grid
	last     *stepNode
	n        int
	row, col int
	cranes   int
}

// NewPath returns the zero-step path standing on the origin of g.
// The origin counts toward TotalCranes when it is a Crane.
func NewPath(g *Grid) Path {
	p := Path{g: g}
	if g.Get(0, 0) == Crane {
		p.cranes = 1
	}

	return p
}

// Grid returns the grid p was built against. p does not own it.
func (p Path) Grid() *Grid { return p.g }

// Len returns the number of steps taken.
func (p Path) Len() int { return p.n }

// End returns the cell the path currently stands on.
func (p Path) End() (row, col int) { return p.row, p.col }

// TotalCranes returns the number of distinct Crane cells the path occupies,
// origin included.
func (p Path) TotalCranes() int { return p.cranes }

// IsStepValid reports whether s from the current end stays inside the grid
// and does not enter a Building.
// Complexity: O(1).
func (p Path) IsStepValid(s Step) bool {
	dr, dc := s.Delta()
	r, c := p.row+dr, p.col+dc

	return p.g.InBounds(r, c) && p.g.Get(r, c) != Building
}

// Extend returns a new path that is p followed by s.
// It panics if s is not valid from p's end: callers must check IsStepValid
// first, so reaching the panic is a logic error in the caller.
// Complexity: O(1).
func (p Path) Extend(s Step) Path {
	if !p.IsStepValid(s) {
		panic(fmt.Sprintf("grid: invalid %s step from (%d,%d)", s, p.row, p.col))
	}
	dr, dc := s.Delta()
	next := p
	next.row += dr
	next.col += dc
	next.last = &stepNode{prev: p.last, step: s}
	next.n++
	// South/East moves never revisit a cell, so counting on entry is exact.
	if p.g.Get(next.row, next.col) == Crane {
		next.cranes++
	}

	return next
}

// Steps returns a fresh slice holding the steps in the order taken.
// Complexity: O(len(path)).
func (p Path) Steps() []Step {
	out := make([]Step, p.n)
	i := p.n - 1
	for node := p.last; node != nil; node = node.prev {
		out[i] = node.step
		i--
	}

	return out
}

// Cells replays the path and returns every occupied (row, column), origin
// first. len(Cells()) == Len()+1.
func (p Path) Cells() [][2]int {
	out := make([][2]int, 0, p.n+1)
	r, c := 0, 0
	out = append(out, [2]int{r, c})
	for _, s := range p.Steps() {
		dr, dc := s.Delta()
		r, c = r+dr, c+dc
		out = append(out, [2]int{r, c})
	}

	return out
}

// Validate replays the path from the origin and checks that every occupied
// cell is inside the grid and is not a Building.
// Returns ErrOutOfBounds or ErrBuildingCell wrapped with the step index
// (step 0 is the origin itself).
func (p Path) Validate() error {
	for i, rc := range p.Cells() {
		if !p.g.InBounds(rc[0], rc[1]) {
			return fmt.Errorf("step %d at (%d,%d): %w", i, rc[0], rc[1], ErrOutOfBounds)
		}
		if p.g.Get(rc[0], rc[1]) == Building {
			return fmt.Errorf("step %d at (%d,%d): %w", i, rc[0], rc[1], ErrBuildingCell)
		}
	}

	return nil
}
