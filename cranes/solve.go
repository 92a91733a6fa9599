package cranes

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dockyard/grid"
)

// Solve runs the selected search (DynamicProgramming unless WithAlgorithm
// says otherwise) on g.
//
// Inputs:
//   - ctx: must not be nil. Checked before the search starts; Exhaustive
//     also checks it between candidate lengths and periodically within one.
//     DynProg is linear and runs to completion once started.
//   - g: the dockyard; must not be nil and must have an open origin.
//
// Outputs:
//   - Result: the best path, the algorithm that found it, and how much work
//     was evaluated.
//   - error: ErrNilContext, ErrNilGrid, ErrOriginBlocked, ErrTooManySteps,
//     or ctx.Err().
//
// Each call opens a "cranes.Solve" span, adds to the cranes_solve_total and
// cranes_candidates_total counters, and logs at Debug level.
func Solve(ctx context.Context, g *grid.Grid, opts ...Option) (Result, error) {
	if ctx == nil {
		return Result{}, ErrNilContext
	}
	cfg := newOptions(opts...)

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "cranes.Solve",
		trace.WithAttributes(attribute.String("algorithm", cfg.algorithm.String())),
	)
	defer span.End()
	annotateGrid(span, g)

	res, err := run(ctx, g, cfg)
	recordSolve(ctx, cfg.algorithm, res.Evaluated, err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		cfg.logger.DebugContext(ctx, "crane search failed",
			slog.String("algorithm", cfg.algorithm.String()),
			slog.String("error", err.Error()),
		)

		return Result{}, err
	}

	annotateResult(span, res)
	cfg.logger.DebugContext(ctx, "crane search complete",
		slog.String("algorithm", res.Algorithm.String()),
		slog.Int("rows", g.Rows()),
		slog.Int("columns", g.Columns()),
		slog.Int("total_cranes", res.Path.TotalCranes()),
		slog.Int("path_length", res.Path.Len()),
		slog.Int64("evaluated", res.Evaluated),
	)
	span.SetStatus(codes.Ok, "")

	return res, nil
}

// Verify runs both searches concurrently on g and cross-checks their crane
// counts. On agreement it returns the DynamicProgramming result. When the
// counts differ it returns ErrMismatch naming both counts. Any error from
// either search cancels the other and is returned as is.
//
// WithAlgorithm is ignored; WithStepLimit bounds the exhaustive half.
// Each search stays single-threaded; only the two run side by side.
func Verify(ctx context.Context, g *grid.Grid, opts ...Option) (Result, error) {
	if ctx == nil {
		return Result{}, ErrNilContext
	}
	cfg := newOptions(opts...)

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "cranes.Verify")
	defer span.End()
	annotateGrid(span, g)

	var exh, dp Result
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		c := cfg
		c.algorithm = ExhaustiveSearch
		var err error
		exh, err = run(egCtx, g, c)
		recordSolve(egCtx, ExhaustiveSearch, exh.Evaluated, err == nil)

		return err
	})
	eg.Go(func() error {
		c := cfg
		c.algorithm = DynamicProgramming
		var err error
		dp, err = run(egCtx, g, c)
		recordSolve(egCtx, DynamicProgramming, dp.Evaluated, err == nil)

		return err
	})
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")

		return Result{}, err
	}

	span.SetAttributes(
		attribute.Int("exhaustive_cranes", exh.Path.TotalCranes()),
		attribute.Int("dynprog_cranes", dp.Path.TotalCranes()),
	)
	if exh.Path.TotalCranes() != dp.Path.TotalCranes() {
		err := fmt.Errorf("exhaustive=%d dynprog=%d: %w",
			exh.Path.TotalCranes(), dp.Path.TotalCranes(), ErrMismatch)
		span.RecordError(err)
		span.SetStatus(codes.Error, "optima differ")
		cfg.logger.ErrorContext(ctx, "crane search mismatch",
			slog.Int("rows", g.Rows()),
			slog.Int("columns", g.Columns()),
			slog.Int("exhaustive_cranes", exh.Path.TotalCranes()),
			slog.Int("dynprog_cranes", dp.Path.TotalCranes()),
		)

		return Result{}, err
	}

	annotateResult(span, dp)
	cfg.logger.DebugContext(ctx, "crane search verified",
		slog.Int("total_cranes", dp.Path.TotalCranes()),
		slog.Int64("exhaustive_evaluated", exh.Evaluated),
		slog.Int64("dynprog_evaluated", dp.Evaluated),
	)
	span.SetStatus(codes.Ok, "")

	return dp, nil
}

// run dispatches to the selected search.
func run(ctx context.Context, g *grid.Grid, cfg options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := Result{Algorithm: cfg.algorithm}
	var err error
	switch cfg.algorithm {
	case ExhaustiveSearch:
		res.Path, res.Evaluated, err = exhaustive(ctx, g, cfg)
	case DynamicProgramming:
		res.Path, res.Evaluated, err = dynProg(g)
	default:
		err = fmt.Errorf("%v: %w", cfg.algorithm, ErrUnknownAlgorithm)
	}

	return res, err
}

// annotateGrid records grid dimensions on span; a nil grid records nothing.
func annotateGrid(span trace.Span, g *grid.Grid) {
	if g == nil {
		return
	}
	span.SetAttributes(
		attribute.Int("rows", g.Rows()),
		attribute.Int("columns", g.Columns()),
		attribute.Int("max_steps", g.MaxSteps()),
	)
}

// annotateResult records the outcome of a successful search on span.
func annotateResult(span trace.Span, res Result) {
	span.SetAttributes(
		attribute.Int("total_cranes", res.Path.TotalCranes()),
		attribute.Int("path_length", res.Path.Len()),
		attribute.Int64("evaluated", res.Evaluated),
	)
}
