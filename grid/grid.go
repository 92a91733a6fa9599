package grid

import "fmt"

// Grid is an immutable rows×columns dockyard. cells is stored row-major.
type Grid struct {
	rows, columns int
	cells         []Cell
}

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// cells[row][column]. It deep-copies the input so later changes to cells
// never reach the Grid.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrUnknownCell for a
// value outside the three cell kinds.
// Complexity: O(rows×columns) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]Cell, 0, h*w)
	for r, row := range cells {
		for c, v := range row {
			if !v.valid() {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", r, c, int(v), ErrUnknownCell)
			}
		}
		flat = append(flat, row...)
	}

	return &Grid{rows: h, columns: w, cells: flat}, nil
}

// Filled returns a rows×columns grid where every cell is c.
func Filled(rows, columns int, c Cell) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, ErrEmptyGrid
	}
	if !c.valid() {
		return nil, ErrUnknownCell
	}
	flat := make([]Cell, rows*columns)
	for i := range flat {
		flat[i] = c
	}

	return &Grid{rows: rows, columns: columns, cells: flat}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Get returns the cell at (row, col). It panics when the coordinate is
// outside the grid; check InBounds first for untrusted input.
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: Get(%d,%d) outside %dx%d grid", row, col, g.rows, g.columns))
	}

	return g.cells[g.index(row, col)]
}

// MaxSteps returns rows+columns-2, the length of the longest South/East
// path any grid of this shape admits.
func (g *Grid) MaxSteps() int {
	return g.rows + g.columns - 2
}

// CountCranes returns the number of Crane cells in the whole grid.
func (g *Grid) CountCranes() int {
	n := 0
	for _, c := range g.cells {
		if c == Crane {
			n++
		}
	}

	return n
}

// index maps (row, col) to a row-major index: row*columns + col.
func (g *Grid) index(row, col int) int {
	return row*g.columns + col
}
