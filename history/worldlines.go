// SPDX-License-Identifier: MIT

package history

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/physics"
)

// UniformVelocity moves in a straight line with constant velocity.
// Proper time runs slow by Γ: Δτ = Δct/Γ.
type UniformVelocity struct {
	*TimelikeMoveable
	velocity core.Velocity
}

// NewUniformVelocity returns the straight worldline through base with velocity v.
func NewUniformVelocity(base DeltaBase, v core.Velocity, opts ...Option) *UniformVelocity {
	u := &UniformVelocity{velocity: v}
	gamma := v.Gamma()
	u.TimelikeMoveable = newTimelike(base,
		func(dct float64) core.FourVector {
			return core.FourVectorFrom(dct, v.Vector().Times(dct))
		},
		func(dct float64) float64 { return dct / gamma },
		func(dtau float64) float64 { return dtau * gamma },
		opts...,
	)
	return u
}

// NewStationary returns an object at rest at the base position.
func NewStationary(base DeltaBase, opts ...Option) *UniformVelocity {
	return NewUniformVelocity(base, core.Velocity{}, opts...)
}

// Velocity returns the constant velocity.
func (u *UniformVelocity) Velocity(float64) (core.Velocity, error) { return u.velocity, nil }

// UniformAcceleration is hyperbolic motion with constant proper acceleration
// g along one spatial axis, at rest at the base event. With p = Δct:
//
//	Δx = (√(1+(g·p)²) − 1)/g
//	Δτ = asinh(g·p)/g
//	β  = g·p/√(1+(g·p)²)
//
// A negative g accelerates toward the negative axis.
type UniformAcceleration struct {
	*TimelikeMoveable
	axis core.Axis
	g    float64
}

// NewUniformAcceleration returns the hyperbolic worldline anchored at base.
func NewUniformAcceleration(base DeltaBase, axis core.Axis, g float64, opts ...Option) (*UniformAcceleration, error) {
	unit, err := core.ThreeVectorAlong(axis, 1)
	if err != nil {
		return nil, fmt.Errorf("NewUniformAcceleration: %w", err)
	}
	if g == 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return nil, fmt.Errorf("NewUniformAcceleration(g=%g): %w", g, ErrBadParameter)
	}
	u := &UniformAcceleration{axis: axis, g: g}
	u.TimelikeMoveable = newTimelike(base,
		func(dct float64) core.FourVector {
			gp := g * dct
			return core.FourVectorFrom(dct, unit.Times((math.Sqrt(1+gp*gp)-1)/g))
		},
		func(dct float64) float64 { return math.Asinh(g*dct) / g },
		func(dtau float64) float64 { return math.Sinh(g*dtau) / g },
		opts...,
	)
	return u, nil
}

// Velocity returns the exact velocity at ct.
func (u *UniformAcceleration) Velocity(ct float64) (core.Velocity, error) {
	gp := u.g * (ct - u.base.Event.CT())
	return core.VelocityAlong(u.axis, gp/math.Sqrt(1+gp*gp))
}

// ProperAcceleration returns g along the motion axis.
func (u *UniformAcceleration) ProperAcceleration() core.Acceleration {
	v, _ := core.ThreeVectorAlong(u.axis, u.g)
	return core.AccelerationOf(v)
}

// CircularMotion moves at constant speed β on a circle of the given radius,
// centred on the base position, in the plane perpendicular to axis. The
// angle is measured from the first right-hand-rule axis of axis toward the
// second, starting at θ0 when ct = base.ct, with angular speed ω = β/r.
type CircularMotion struct {
	*TimelikeMoveable
	radius, beta, omega, theta0 float64
	a, b                        core.ThreeVector
}

// NewCircularMotion returns the circular worldline about base.
func NewCircularMotion(base DeltaBase, radius, beta float64, axis core.Axis, theta0 float64, opts ...Option) (*CircularMotion, error) {
	first, second, err := axis.RightHandRule()
	if err != nil {
		return nil, fmt.Errorf("NewCircularMotion: %w", err)
	}
	if !(radius > 0) || math.IsInf(radius, 0) || math.IsNaN(theta0) || math.IsInf(theta0, 0) {
		return nil, fmt.Errorf("NewCircularMotion(r=%g, θ0=%g): %w", radius, theta0, ErrBadParameter)
	}
	gamma, err := physics.Gamma(beta)
	if err != nil {
		return nil, fmt.Errorf("NewCircularMotion: %w", err)
	}
	if !(beta > 0) {
		return nil, fmt.Errorf("NewCircularMotion(β=%g): %w", beta, ErrBadParameter)
	}
	c := &CircularMotion{radius: radius, beta: beta, omega: beta / radius, theta0: theta0}
	c.a, _ = core.ThreeVectorAlong(first, 1)
	c.b, _ = core.ThreeVectorAlong(second, 1)
	c.TimelikeMoveable = newTimelike(base,
		func(dct float64) core.FourVector {
			return core.FourVectorFrom(dct, c.radial(dct).Times(radius))
		},
		func(dct float64) float64 { return dct / gamma },
		func(dtau float64) float64 { return dtau * gamma },
		opts...,
	)
	return c, nil
}

// AngularSpeed returns ω = β/r, in radians per unit ct.
func (c *CircularMotion) AngularSpeed() float64 { return c.omega }

// Velocity returns the exact tangential velocity at ct.
func (c *CircularMotion) Velocity(ct float64) (core.Velocity, error) {
	return core.VelocityOf(c.tangent(ct - c.base.Event.CT()).Times(c.beta))
}

// Acceleration returns the centripetal coordinate acceleration β²/r at ct.
func (c *CircularMotion) Acceleration(ct float64) core.Acceleration {
	dct := ct - c.base.Event.CT()
	return core.AccelerationOf(c.radial(dct).Times(-c.beta * c.omega))
}

// ThomasPrecession returns the precession rate of a gyroscope carried on
// the circle. Its magnitude is (Γ−1)·ω and it points against the orbital
// angular velocity.
func (c *CircularMotion) ThomasPrecession(ct float64) (core.AxisAngle, error) {
	v, err := c.Velocity(ct)
	if err != nil {
		return core.AxisAngle{}, err
	}
	return physics.ThomasPrecession(c.Acceleration(ct), v), nil
}

func (c *CircularMotion) phase(dct float64) float64 { return c.theta0 + c.omega*dct }

func (c *CircularMotion) radial(dct float64) core.ThreeVector {
	sin, cos := math.Sincos(c.phase(dct))
	return c.a.Times(cos).Plus(c.b.Times(sin))
}

func (c *CircularMotion) tangent(dct float64) core.ThreeVector {
	sin, cos := math.Sincos(c.phase(dct))
	return c.a.Times(-sin).Plus(c.b.Times(cos))
}

// NewThereAndBack returns a stitched worldline that leaves base with
// velocity v, turns around turnaround later (in ct), and returns with −v.
// Proper time is continuous across the turn.
func NewThereAndBack(base DeltaBase, v core.Velocity, turnaround float64, opts ...Option) (*StitchedTimelike, error) {
	if !(turnaround > 0) || math.IsInf(turnaround, 0) {
		return nil, fmt.Errorf("NewThereAndBack(turnaround=%g): %w", turnaround, ErrBadParameter)
	}
	back, err := core.VelocityOf(v.Vector().Times(-1))
	if err != nil {
		return nil, fmt.Errorf("NewThereAndBack: %w", err)
	}
	out := NewUniformVelocity(base, v, opts...)
	turn := base.Event.CT() + turnaround
	b := StartTimelike(out)
	if err := b.AddLeg(NewUniformVelocity(BaseOn(out, turn), back, opts...), turn); err != nil {
		return nil, err
	}
	return b.Build()
}

// PhotonStraight is a light-like straight worldline.
type PhotonStraight struct {
	*Moveable
	dir core.Direction
}

// NewPhotonStraight returns a photon passing through the base event in direction dir.
func NewPhotonStraight(base DeltaBase, dir core.Direction, opts ...Option) *PhotonStraight {
	return &PhotonStraight{
		Moveable: newMoveable(base, func(dct float64) core.FourVector {
			return core.FourVectorFrom(dct, dir.Times(dct))
		}, opts...),
		dir: dir,
	}
}

// Direction returns the direction of travel.
func (p *PhotonStraight) Direction() core.Direction { return p.dir }

// Velocity always fails with ErrLightlike.
func (p *PhotonStraight) Velocity(float64) (core.Velocity, error) {
	return core.Velocity{}, ErrLightlike
}

// MirrorReflection is a photon passing through the base event in direction
// dir and bounced straight back by a mirror reached reflectAt ≥ 0 later
// (in ct). With reflectAt = 0 the bounce is at the base event.
type MirrorReflection struct {
	*Moveable
	dir       core.Direction
	reflectAt float64
}

// NewMirrorReflection returns the bounced photon worldline.
func NewMirrorReflection(base DeltaBase, dir core.Direction, reflectAt float64, opts ...Option) (*MirrorReflection, error) {
	if !(reflectAt >= 0) || math.IsInf(reflectAt, 0) {
		return nil, fmt.Errorf("NewMirrorReflection(%g): %w", reflectAt, ErrBadParameter)
	}
	m := &MirrorReflection{dir: dir, reflectAt: reflectAt}
	m.Moveable = newMoveable(base, func(dct float64) core.FourVector {
		return core.FourVectorFrom(dct, dir.Times(reflectAt-math.Abs(dct-reflectAt)))
	}, opts...)
	return m, nil
}

// Mirror returns the event of the reflection.
func (m *MirrorReflection) Mirror() core.Event {
	return m.Event(m.base.Event.CT() + m.reflectAt)
}

// Velocity always fails with ErrLightlike.
func (m *MirrorReflection) Velocity(float64) (core.Velocity, error) {
	return core.Velocity{}, ErrLightlike
}
