// SPDX-License-Identifier: MIT

package cranes

import "errors"

// Sentinel errors for the cranes package. Every message is prefixed with
// "cranes: "; context is attached with %w at the call site, so callers
// branch with errors.Is.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("cranes: grid is nil")

	// ErrNilContext indicates Solve or Verify was called with a nil context.
	ErrNilContext = errors.New("cranes: context is nil")

	// ErrOriginBlocked indicates the origin (0,0) is a Building.
	ErrOriginBlocked = errors.New("cranes: origin cell is a building")

	// ErrTooManySteps indicates the grid's diagonal span exceeds the
	// exhaustive search step limit.
	ErrTooManySteps = errors.New("cranes: grid too large for exhaustive search")

	// ErrNoPath indicates the DP table ended with no present entry.
	// It cannot happen for a grid whose origin is open.
	ErrNoPath = errors.New("cranes: no path reaches any cell")

	// ErrMismatch indicates the two algorithms disagreed on the optimum.
	ErrMismatch = errors.New("cranes: exhaustive and dynamic programming optima differ")

	// ErrUnknownAlgorithm indicates an algorithm name or value outside the
	// supported set.
	ErrUnknownAlgorithm = errors.New("cranes: unknown algorithm")

	// ErrInvalidConfig indicates a Config failed validation.
	ErrInvalidConfig = errors.New("cranes: invalid config")
)
