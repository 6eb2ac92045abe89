// SPDX-License-Identifier: MIT

// Package potential: functional configuration for Field.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that applies options in order.
//
// Notes:
//   - Options never change the numerical result except WithIterations.
//     WithWorkers splits each sweep across goroutines and is bitwise
//     identical to the serial sweep.
//   - WithLogger overrides the package logger for one Field only.
package potential

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultIterations is the fixed number of Jacobi sweeps per
	// CalculatePotential call. There is no convergence check.
	DefaultIterations = 2000

	// DefaultWorkers runs the interior update on the calling goroutine.
	DefaultWorkers = 1

	// MaxNodes caps (W+1)×(H+1). Two float64 buffers of this size already
	// take 64 GiB.
	MaxNodes = 1 << 32
)

const (
	panicIterationsInvalid = "potential: WithIterations: n must be >= 0"
	panicWorkersInvalid    = "potential: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly; last wins.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	iterations int          // >= 0; DefaultIterations
	workers    int          // >= 1; DefaultWorkers
	logger     *slog.Logger // nil → package logger (see SetLogger)
}

// WithIterations sets the number of sweeps run by CalculatePotential.
// Zero is allowed and turns CalculatePotential into a state transition only.
// Panics if n < 0.
// Complexity: O(1).
func WithIterations(n int) Option {
	if n < 0 {
		panic(panicIterationsInvalid)
	}
	return func(o *options) {
		o.iterations = n
	}
}

// WithWorkers sets how many goroutines share the interior update of one
// sweep. Columns are split into contiguous ranges; the result does not
// depend on n. Panics if n < 1.
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger attaches a logger to a single Field. A nil logger restores the
// package-wide logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// gatherOptions starts from defaults and applies opts in order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{
		iterations: DefaultIterations,
		workers:    DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
