package cranes

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dockyard/grid"
)

// Algorithm selects which search Solve runs.
//
//   - DynamicProgramming - O(rows·columns) table fill. Default.
//   - ExhaustiveSearch   - enumerates all South/East sequences; small grids only.
type Algorithm int

const (
	// DynamicProgramming runs DynProg.
	DynamicProgramming Algorithm = iota

	// ExhaustiveSearch runs Exhaustive.
	ExhaustiveSearch
)

// Canonical algorithm names used by String, ParseAlgorithm and Config.
const (
	nameDynProg    = "dynprog"
	nameExhaustive = "exhaustive"
)

// String returns the canonical name of a.
func (a Algorithm) String() string {
	switch a {
	case DynamicProgramming:
		return nameDynProg
	case ExhaustiveSearch:
		return nameExhaustive
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// valid reports whether a is a known algorithm.
func (a Algorithm) valid() bool {
	return a == DynamicProgramming || a == ExhaustiveSearch
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameDynProg:
		return DynamicProgramming, nil
	case nameExhaustive:
		return ExhaustiveSearch, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

// Result is the outcome of Solve or Verify.
type Result struct {
	// Algorithm is the search that produced Path.
	Algorithm Algorithm

	// Path is the best path found.
	Path grid.Path

	// Evaluated counts the work done: step sequences enumerated by
	// ExhaustiveSearch, or table cells holding a path for DynamicProgramming.
	Evaluated int64
}
