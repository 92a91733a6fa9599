package cranes

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName names the tracer and meter of this package.
const instrumentationName = "github.com/katalvlaran/dockyard/cranes"

// Counters for search runs. Instruments are created lazily from the global
// MeterProvider so a provider installed after import is still honoured.
var (
	solveTotal     metric.Int64Counter
	evaluatedTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the counters. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		var err error

		solveTotal, err = meter.Int64Counter(
			"cranes_solve_total",
			metric.WithDescription("Total number of crane path searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		evaluatedTotal, err = meter.Int64Counter(
			"cranes_candidates_total",
			metric.WithDescription("Candidates evaluated: sequences enumerated or DP cells filled"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordSolve counts one search run and the work it did.
func recordSolve(ctx context.Context, a Algorithm, evaluated int64, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	algo := attribute.String("algorithm", a.String())

	solveTotal.Add(ctx, 1, metric.WithAttributes(algo, attribute.Bool("success", success)))
	if evaluated > 0 {
		evaluatedTotal.Add(ctx, evaluated, metric.WithAttributes(algo))
	}
}
