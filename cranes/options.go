// SPDX-License-Identifier: MIT
// Package: dockyard/cranes
//
// options.go - functional options for Exhaustive, Solve and Verify.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (negative step limit, nil logger, unknown algorithm).
//   • The searches themselves never panic on caller input; they return
//     sentinel errors from errors.go.

package cranes

import "log/slog"

// DefaultStepLimit is the largest rows+columns-2 Exhaustive accepts unless
// WithStepLimit says otherwise. It matches the classic 64-bit bitmask
// enumeration bound of max_steps < 64.
const DefaultStepLimit = 63

// Option customizes a search call.
type Option func(*options)

// options aggregates all knobs; resolved once per call.
type options struct {
	algorithm Algorithm
	stepLimit int
	logger    *slog.Logger
}

// newOptions applies opts over the defaults: DynamicProgramming,
// DefaultStepLimit, slog.Default().
func newOptions(opts ...Option) options {
	cfg := options{
		algorithm: DynamicProgramming,
		stepLimit: DefaultStepLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// WithAlgorithm selects the search Solve runs. Panics on an unknown value.
func WithAlgorithm(a Algorithm) Option {
	if !a.valid() {
		panic("cranes: WithAlgorithm(unknown algorithm)")
	}
	return func(o *options) {
		o.algorithm = a
	}
}

// WithStepLimit sets the largest rows+columns-2 Exhaustive will enumerate.
// 0 disables the guard entirely; the enumerator has no word-size ceiling,
// so only running time bounds it. Panics if n < 0.
func WithStepLimit(n int) Option {
	if n < 0 {
		panic("cranes: WithStepLimit(n<0)")
	}
	return func(o *options) {
		o.stepLimit = n
	}
}

// WithLogger routes Debug-level search logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("cranes: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}
