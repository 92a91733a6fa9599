// Package grid models a dockyard as a rectangular grid of cells and the
// South/East paths that can be walked across it.
//
// What:
//
//   - Grid wraps an immutable rows×columns arrangement of Cell values
//     (Open, Building, Crane). Coordinates are zero-based (row, column);
//     rows grow southward and columns grow eastward.
//   - Path is an immutable value anchored at the origin (0,0). Extend
//     returns a new Path one step longer; the receiver is never modified,
//     so candidate paths can be copied and extended freely.
//   - Random builds reproducible grids from a seed, for tests and
//     benchmarks of the search algorithms in package cranes.
//
// Why:
//
//   - Both search algorithms share one notion of "valid step": the
//     destination must be inside the grid and must not be a Building.
//   - Crane counting lives in the path itself, so scoring a candidate is
//     O(1) at any point of the search.
//
// Complexity:
//
//   - New, Filled, Random: O(rows×columns) time and memory.
//   - Path.Extend, IsStepValid, TotalCranes: O(1).
//   - Path.Steps, Cells, Validate: O(len(path)).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: a cell value is not Open, Building or Crane.
//   - ErrBadRate: Random building and crane rates sum above 1.
//   - ErrOutOfBounds, ErrBuildingCell: returned by Path.Validate.
package grid
