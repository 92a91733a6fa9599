// Package grid - seeded random dockyards for tests and benchmarks.
//
// Goals:
//   - Determinism: same seed and options ⇒ identical grid.
//   - Encapsulation: a single RNG factory; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     passed via WithRand across goroutines.
package grid

import (
	"fmt"
	"math/rand"
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRandomSeed; otherwise use seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRandomSeed
	}

	return rand.New(rand.NewSource(s))
}

// Random draws a rows×columns grid. Each cell is a Building with
// probability buildingRate, otherwise a Crane with probability craneRate,
// otherwise Open. Cells are drawn in row-major order, one draw per cell.
//
// Returns ErrEmptyGrid if rows or columns is below 1, and ErrBadRate when
// buildingRate+craneRate exceeds 1.
// Complexity: O(rows×columns).
func Random(rows, columns int, opts ...RandomOption) (*Grid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("Random: rows=%d, columns=%d: %w", rows, columns, ErrEmptyGrid)
	}
	cfg := newRandomConfig(opts...)
	if cfg.buildingRate+cfg.craneRate > 1 {
		return nil, fmt.Errorf("Random: building=%.3f + crane=%.3f > 1: %w",
			cfg.buildingRate, cfg.craneRate, ErrBadRate)
	}

	flat := make([]Cell, rows*columns)
	for i := range flat {
		x := cfg.rng.Float64()
		switch {
		case x < cfg.buildingRate:
			flat[i] = Building
		case x < cfg.buildingRate+cfg.craneRate:
			flat[i] = Crane
		default:
			flat[i] = Open
		}
	}
	if cfg.openOrigin && flat[0] == Building {
		flat[0] = Open
	}

	return &Grid{rows: rows, columns: columns, cells: flat}, nil
}
