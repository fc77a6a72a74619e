// SPDX-License-Identifier: MIT

package newton

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	// DefaultEpsilon is the residual below which the root counts as found.
	DefaultEpsilon = 1e-5

	// DefaultStep is the λ step of the finite-difference derivative.
	DefaultStep = 1e-5

	// DefaultMaxIterations caps the number of Newton steps per search.
	DefaultMaxIterations = 1000
)

const (
	panicEpsilon       = "newton: WithEpsilon: epsilon must be finite and > 0"
	panicStep          = "newton: WithStep: step must be finite and > 0"
	panicMaxIterations = "newton: WithMaxIterations: cap must be ≥ 1"
)

// Option configures a Finder.
type Option func(*Options)

// Options holds the configuration of a Finder.
type Options struct {
	epsilon       float64
	step          float64
	maxIterations int
	formula       fd.Formula
	strict        bool
}

// DefaultOptions returns the documented defaults: forward difference,
// silent iteration cap.
func DefaultOptions() Options {
	return Options{
		epsilon:       DefaultEpsilon,
		step:          DefaultStep,
		maxIterations: DefaultMaxIterations,
		formula:       fd.Forward,
	}
}

// WithEpsilon sets the convergence threshold on |f|.
func WithEpsilon(eps float64) Option {
	if !positive(eps) {
		panic(panicEpsilon)
	}
	return func(o *Options) { o.epsilon = eps }
}

// WithStep sets the default difference step used by Search.
func WithStep(h float64) Option {
	if !positive(h) {
		panic(panicStep)
	}
	return func(o *Options) { o.step = h }
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterations)
	}
	return func(o *Options) { o.maxIterations = n }
}

// WithCentralDifference switches the derivative to a central difference.
// It costs one more criterion evaluation per step.
func WithCentralDifference() Option {
	return func(o *Options) { o.formula = fd.Central }
}

// WithStrict makes a search that hits the iteration cap return
// ErrNotConverged alongside its last result.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }
