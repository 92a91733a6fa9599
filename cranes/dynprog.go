package cranes

import (
	"fmt"

	"github.com/katalvlaran/dockyard/grid"
)

// entry is one DP table cell: either no path reaches the cell yet
// (ok == false), or path is the best known path ending there. A zero-crane
// path is a present entry, not an absent one.
type entry struct {
	path grid.Path
	ok   bool
}

// extended returns e followed by s. An absent entry stays absent. When s is
// not valid from e's end, e is returned unextended.
func (e entry) extended(s grid.Step) entry {
	if !e.ok {
		return e
	}
	// For an in-bounds, non-Building destination the step is always valid,
	// so the unextended fallback is unreachable on any Grid.
	if e.path.IsStepValid(s) {
		e.path = e.path.Extend(s)
	}

	return e
}

// DynProg solves the crane unloading problem with dynamic programming.
//
// Algorithm Outline:
//  1. Allocate table A[rows][columns] of entries, all absent.
//  2. A[0][0] = origin-only path.
//  3. For row = 0..rows-1, col = 0..columns-1, skipping Buildings:
//     above = A[row-1][col] extended South (if row > 0)
//     west  = A[row][col-1] extended East  (if col > 0)
//     A[row][col] = above if both present and above has strictly more
//     cranes, else west; the single present one; or stays absent.
//  4. Scan A in row-major order and return the present entry with the most
//     cranes; ties keep the first found (lowest row, then lowest column).
//
// Any South/East path into (row,col) arrives from directly above or
// directly west, and crane counts only add along a path, so the best path
// through a predecessor is the predecessor's best path plus one step.
//
// Paths are immutable and Extend is O(1), so table entries never alias
// in-progress candidates.
//
// Errors: ErrNilGrid, ErrOriginBlocked, and ErrNoPath (unreachable when the
// origin is open).
//
// Complexity: O(rows·columns) time and memory.
func DynProg(g *grid.Grid) (grid.Path, error) {
	best, _, err := dynProg(g)

	return best, err
}

// dynProg is DynProg plus the number of table cells that ended up present.
func dynProg(g *grid.Grid) (grid.Path, int64, error) {
	if err := checkGrid(methodDynProg, g); err != nil {
		return grid.Path{}, 0, err
	}
	rows, cols := g.Rows(), g.Columns()

	// Prepare DP storage
	table := make([][]entry, rows)
	for r := range table {
		table[r] = make([]entry, cols)
	}
	table[0][0] = entry{path: grid.NewPath(g), ok: true}

	// Fill DP
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if g.Get(row, col) == grid.Building {
				continue
			}
			var above, west entry
			if row > 0 {
				above = table[row-1][col].extended(grid.South)
			}
			if col > 0 {
				west = table[row][col-1].extended(grid.East)
			}
			switch {
			case above.ok && west.ok:
				if above.path.TotalCranes() > west.path.TotalCranes() {
					table[row][col] = above
				} else {
					table[row][col] = west
				}
			case above.ok:
				table[row][col] = above
			case west.ok:
				table[row][col] = west
			}
		}
	}

	// Select the best present entry
	best := table[0][0]
	var present int64
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			e := table[row][col]
			if !e.ok {
				continue
			}
			present++
			if e.path.TotalCranes() > best.path.TotalCranes() {
				best = e
			}
		}
	}
	if !best.ok {
		return grid.Path{}, present, fmt.Errorf("%s: %w", methodDynProg, ErrNoPath)
	}

	return best.path, present, nil
}
