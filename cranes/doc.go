// Package cranes solves the crane unloading problem: find a South/East path
// from the top-left cell of a dockyard grid that never enters a Building and
// passes through as many Crane cells as possible.
//
// 🚀 Two algorithms, one answer:
//
//   - Exhaustive - enumerates every South/East step sequence of every
//     length 1..rows+columns-2, replays each from the origin, and keeps the
//     first one with the strictly greatest crane count. Exponential; it is
//     the reference oracle for small grids.
//   - DynProg - fills a rows×columns table in row-major order; each entry
//     holds the best path reaching that cell, derived from the better of the
//     entries above and to the west. Polynomial; scales to large grids.
//
// Both return a grid.Path with the same TotalCranes for every grid both can
// handle. Tie-breaking differs, so the step sequences may differ.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dockyard/cranes"
//
//	best, err := cranes.DynProg(g)
//
//	// or through the traced, logged dispatcher:
//	res, err := cranes.Solve(ctx, g,
//	  cranes.WithAlgorithm(cranes.ExhaustiveSearch),
//	  cranes.WithStepLimit(20),
//	)
//
//	// run both and cross-check crane counts:
//	res, err = cranes.Verify(ctx, g)
//
// Performance:
//
//   - Exhaustive: O(2^s · s) time, O(s) memory, s = rows+columns-2.
//   - DynProg:    O(rows·columns) time and memory.
//
// Errors:
//
//   - ErrNilGrid        - nil grid.
//   - ErrOriginBlocked  - (0,0) is a Building, so no path exists at all.
//   - ErrTooManySteps   - Exhaustive on a grid longer than the step limit.
//   - ErrMismatch       - Verify found differing optima.
//   - ErrUnknownAlgorithm, ErrInvalidConfig - configuration problems.
//
// Observability: Solve and Verify open OpenTelemetry spans, count runs and
// evaluated candidates with OpenTelemetry counters, and log through
// log/slog at Debug level.
package cranes
