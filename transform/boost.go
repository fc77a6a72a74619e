// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/spacetime/core"
)

// Boost is the Lorentz transform between two grids in uniform relative
// motion with the given velocity, in any spatial direction.
//
// With β = |v|, û = v/β and Γ = 1/√(1−β²):
//
//	ct' = Γ (ct − s·β·(r·û))
//	r'  = r + û·(r·û)(Γ−1) − û·(Γ·ct·β·s)
//
// where s = +1 for Apply and s = −1 for Reverse. The zero velocity is the
// identity exactly.
type Boost struct {
	velocity core.Velocity
	beta     float64
	gamma    float64
	unit     core.ThreeVector
}

// NewBoost returns the boost with velocity v.
func NewBoost(v core.Velocity) Boost {
	b := Boost{velocity: v, beta: v.Beta(), gamma: v.Gamma()}
	if b.beta > 0 {
		b.unit, _ = v.Vector().UnitVector()
	}
	return b
}

// BoostAlong returns the boost with speed β along a spatial axis.
func BoostAlong(axis core.Axis, beta float64) (Boost, error) {
	v, err := core.VelocityAlong(axis, beta)
	if err != nil {
		return Boost{}, fmt.Errorf("BoostAlong: %w", err)
	}
	return NewBoost(v), nil
}

// Velocity returns the velocity of the second grid relative to the first.
func (b Boost) Velocity() core.Velocity { return b.velocity }

// Apply returns e as seen from the moving grid.
func (b Boost) Apply(e core.Event) core.Event {
	return core.EventOf(b.do(e.Components(), forward))
}

// Reverse undoes Apply.
func (b Boost) Reverse(e core.Event) core.Event {
	return core.EventOf(b.do(e.Components(), backward))
}

// ApplyVector boosts a four-vector.
func (b Boost) ApplyVector(v core.FourVector) core.FourVector {
	return core.FourVectorOf(b.do(v.Components(), forward))
}

// ReverseVector undoes ApplyVector.
func (b Boost) ReverseVector(v core.FourVector) core.FourVector {
	return core.FourVectorOf(b.do(v.Components(), backward))
}

// String returns "boost(βx, βy, βz)".
func (b Boost) String() string { return "boost" + b.velocity.String() }

func (b Boost) do(c core.Components, s sign) core.Components {
	if b.beta == 0 {
		return c
	}
	var (
		ct    = c[core.CT]
		r     = splitSpatial(c)
		rDotU = r.Dot(b.unit)
		k     = float64(s) * b.beta
	)
	// Stage 1: time mixes with the parallel component only.
	ctPrime := b.gamma * (ct - k*rDotU)
	// Stage 2: stretch the parallel component, then shift it by the motion.
	rPrime := r.
		Plus(b.unit.Times(rDotU * (b.gamma - 1))).
		Minus(b.unit.Times(b.gamma * ct * k))

	c[core.CT] = ctPrime
	return joinSpatial(c, rPrime)
}
