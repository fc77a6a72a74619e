// SPDX-License-Identifier: MIT

package history

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/spacetime/core"
)

// DeltaFunc returns the displacement from the base event after Δct.
type DeltaFunc func(dct float64) core.FourVector

// Moveable is a History defined relative to a DeltaBase:
// Event(ct) = base.Event + delta(ct − base.ct).
type Moveable struct {
	base  DeltaBase
	delta DeltaFunc
	opts  Options
}

// NewMoveable returns the history anchored at base with the given delta.
func NewMoveable(base DeltaBase, delta DeltaFunc, opts ...Option) (*Moveable, error) {
	if delta == nil {
		return nil, fmt.Errorf("NewMoveable: %w", ErrNilDelta)
	}
	return newMoveable(base, delta, opts...), nil
}

func newMoveable(base DeltaBase, delta DeltaFunc, opts ...Option) *Moveable {
	return &Moveable{base: base, delta: delta, opts: gatherOptions(opts...)}
}

// Base returns the anchor.
func (m *Moveable) Base() DeltaBase { return m.base }

// Event returns the event at coordinate time ct.
func (m *Moveable) Event(ct float64) core.Event {
	return m.base.Event.Plus(m.delta(ct - m.base.Event.CT()))
}

// lightSlack is how close to 1 a numeric speed may come before it counts
// as light speed.
const lightSlack = 1e-9

// Velocity returns dr/dct at ct by a forward difference of the event
// positions. It fails with core.ErrSpeedLimit when the estimate is within
// lightSlack of the speed of light or above it.
func (m *Moveable) Velocity(ct float64) (core.Velocity, error) {
	settings := &fd.Settings{Formula: fd.Forward, Step: m.opts.velocityStep}
	var c [3]float64
	for i, axis := range core.SpatialAxes() {
		c[i] = fd.Derivative(func(t float64) float64 {
			v, _ := m.Event(t).On(axis)
			return v
		}, ct, settings)
	}
	r := core.NewThreeVector(c[0], c[1], c[2])
	if beta := r.Magnitude(); beta >= 1-lightSlack {
		return core.Velocity{}, fmt.Errorf("Moveable.Velocity(%g): β=%g: %w", ct, beta, core.ErrSpeedLimit)
	}
	v, err := core.VelocityOf(r)
	if err != nil {
		return core.Velocity{}, fmt.Errorf("Moveable.Velocity(%g): %w", ct, err)
	}
	return v, nil
}

// TimelikeMoveable is a Moveable history that also tracks proper time:
// Tau(ct) = base.τ + dTau(ct − base.ct) and CT(τ) = base.ct + dCT(τ − base.τ).
type TimelikeMoveable struct {
	*Moveable
	dTau func(dct float64) float64
	dCT  func(dtau float64) float64
}

// NewTimelikeMoveable returns a time-like history from its position delta
// and the two proper-time conversions, which must be mutual inverses.
func NewTimelikeMoveable(base DeltaBase, delta DeltaFunc, dTau, dCT func(float64) float64, opts ...Option) (*TimelikeMoveable, error) {
	if delta == nil || dTau == nil || dCT == nil {
		return nil, fmt.Errorf("NewTimelikeMoveable: %w", ErrNilDelta)
	}
	return newTimelike(base, delta, dTau, dCT, opts...), nil
}

func newTimelike(base DeltaBase, delta DeltaFunc, dTau, dCT func(float64) float64, opts ...Option) *TimelikeMoveable {
	return &TimelikeMoveable{Moveable: newMoveable(base, delta, opts...), dTau: dTau, dCT: dCT}
}

// Tau returns the proper time at coordinate time ct.
func (m *TimelikeMoveable) Tau(ct float64) float64 {
	return m.base.Tau + m.dTau(ct-m.base.Event.CT())
}

// CT returns the coordinate time at proper time τ.
func (m *TimelikeMoveable) CT(tau float64) float64 {
	return m.base.Event.CT() + m.dCT(tau-m.base.Tau)
}

// EventAtTau returns the event at proper time τ.
func (m *TimelikeMoveable) EventAtTau(tau float64) core.Event { return m.Event(m.CT(tau)) }
