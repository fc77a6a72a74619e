// SPDX-License-Identifier: MIT

package history

import "math"

// DefaultVelocityStep is the ct step of the numeric velocity of a Moveable history.
const DefaultVelocityStep = 1e-4

const panicVelocityStep = "history: WithVelocityStep: step must be finite and > 0"

// Option configures a Moveable history.
type Option func(*Options)

// Options holds the configuration of a Moveable history.
type Options struct {
	velocityStep float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{velocityStep: DefaultVelocityStep}
}

// WithVelocityStep sets the step of the numeric velocity. It panics on a
// non-positive or non-finite step.
func WithVelocityStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 0) {
		panic(panicVelocityStep)
	}
	return func(o *Options) { o.velocityStep = h }
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
