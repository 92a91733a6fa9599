package cranes

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dockyard/grid"
)

// method tags for error context.
const (
	methodExhaustive = "Exhaustive"
	methodDynProg    = "DynProg"
)

// ctxCheckEvery is how many candidates Exhaustive enumerates between
// context checks inside a single length.
const ctxCheckEvery = 1 << 16

// Exhaustive solves the crane unloading problem by trying every South/East
// step sequence of every length from 1 to s = rows+columns-2.
//
// Sequences of a fixed length are visited in counting order: position i of
// the sequence is digit i of a binary counter, least significant first,
// with 0 = South and 1 = East. So length 3 visits SSS, ESS, SES, EES, SSE,
// … EEE. This is exactly the order of reading bits 0..s-1 of the masks
// 0, 1, …, 2^s-1, but the counter is a []grid.Step, so there is no
// machine-word ceiling on s.
//
// A sequence is replayed from the origin and dropped at its first invalid
// step (leaving the grid or entering a Building), valid prefix included.
// A completed sequence replaces the best path only when its crane count is
// strictly greater, so among equal optima the first one visited wins.
// The origin-only path seeds the best, so the result is always defined.
//
// Guards: s above the step limit (DefaultStepLimit unless WithStepLimit)
// returns ErrTooManySteps. ErrNilGrid and ErrOriginBlocked as documented
// on the package.
//
// Complexity: O(2^s · s) time, O(s) memory.
func Exhaustive(g *grid.Grid, opts ...Option) (grid.Path, error) {
	best, _, err := exhaustive(context.Background(), g, newOptions(opts...))

	return best, err
}

// exhaustive is Exhaustive with cancellation and a candidate count.
// ctx is checked before every length and every ctxCheckEvery candidates.
func exhaustive(ctx context.Context, g *grid.Grid, cfg options) (grid.Path, int64, error) {
	if err := checkGrid(methodExhaustive, g); err != nil {
		return grid.Path{}, 0, err
	}
	maxSteps := g.MaxSteps()
	if cfg.stepLimit > 0 && maxSteps > cfg.stepLimit {
		return grid.Path{}, 0, fmt.Errorf("%s: max_steps=%d exceeds limit %d: %w",
			methodExhaustive, maxSteps, cfg.stepLimit, ErrTooManySteps)
	}

	best := grid.NewPath(g)
	var evaluated int64
	seq := make([]grid.Step, maxSteps)
	for steps := 1; steps <= maxSteps; steps++ {
		if err := ctx.Err(); err != nil {
			return grid.Path{}, evaluated, err
		}
		digits := seq[:steps]
		for i := range digits {
			digits[i] = grid.South
		}
		for more := true; more; more = nextSequence(digits) {
			evaluated++
			if evaluated%ctxCheckEvery == 0 {
				if err := ctx.Err(); err != nil {
					return grid.Path{}, evaluated, err
				}
			}
			candidate, ok := replay(g, digits)
			if ok && candidate.TotalCranes() > best.TotalCranes() {
				best = candidate
			}
		}
	}

	return best, evaluated, nil
}

// nextSequence advances digits to the next sequence in counting order,
// least significant position first. It returns false once digits wraps
// back to all-South, i.e. every sequence of this length has been visited.
func nextSequence(digits []grid.Step) bool {
	for i := range digits {
		if digits[i] == grid.South {
			digits[i] = grid.East

			return true
		}
		digits[i] = grid.South
	}

	return false
}

// replay walks steps from the origin of g. ok is false as soon as a step is
// invalid; the partial path is discarded.
func replay(g *grid.Grid, steps []grid.Step) (p grid.Path, ok bool) {
	p = grid.NewPath(g)
	for _, s := range steps {
		if !p.IsStepValid(s) {
			return grid.Path{}, false
		}
		p = p.Extend(s)
	}

	return p, true
}

// checkGrid enforces the preconditions shared by both searches.
func checkGrid(method string, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGrid)
	}
	if g.Get(0, 0) == grid.Building {
		return fmt.Errorf("%s: %w", method, ErrOriginBlocked)
	}

	return nil
}
