// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid operations. Callers branch with errors.Is.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates a cell value outside {Open, Building, Crane}.
	ErrUnknownCell = errors.New("grid: unknown cell kind")
	// ErrBadRate indicates Random was asked for building+crane rates above 1.
	ErrBadRate = errors.New("grid: building and crane rates exceed 1")
	// ErrOutOfBounds indicates a path step leaves the grid.
	ErrOutOfBounds = errors.New("grid: step leaves the grid")
	// ErrBuildingCell indicates a path occupies a Building cell.
	ErrBuildingCell = errors.New("grid: step enters a building")
)
