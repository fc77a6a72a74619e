// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// Velocity is a polar three-vector in units of the speed limit (c = 1).
// Every component and the magnitude lie strictly inside (-1, 1).
// The zero value is the velocity of an object at rest.
type Velocity struct{ v ThreeVector }

// NewVelocity returns the velocity (βx, βy, βz) or ErrSpeedLimit / ErrNonFinite.
func NewVelocity(x, y, z float64) (Velocity, error) {
	return VelocityOf(NewThreeVector(x, y, z))
}

// VelocityOf validates an existing vector as a velocity. The result is polar.
func VelocityOf(v ThreeVector) (Velocity, error) {
	if !v.IsFinite() {
		return Velocity{}, fmt.Errorf("VelocityOf%v: %w", v, ErrNonFinite)
	}
	for _, c := range v.c {
		if c <= -1 || c >= 1 {
			return Velocity{}, fmt.Errorf("VelocityOf%v: component %g: %w", v, c, ErrSpeedLimit)
		}
	}
	if v.Magnitude() >= 1 {
		return Velocity{}, fmt.Errorf("VelocityOf%v: magnitude %g: %w", v, v.Magnitude(), ErrSpeedLimit)
	}
	v.kind = Polar
	return Velocity{v: v}, nil
}

// VelocityAlong returns a velocity of speed β along one spatial axis.
func VelocityAlong(axis Axis, beta float64) (Velocity, error) {
	v, err := ThreeVectorAlong(axis, beta)
	if err != nil {
		return Velocity{}, fmt.Errorf("VelocityAlong: %w", err)
	}
	return VelocityOf(v)
}

// Vector returns the underlying three-vector.
func (v Velocity) Vector() ThreeVector { return v.v }

// X returns βx.
func (v Velocity) X() float64 { return v.v.c[0] }

// Y returns βy.
func (v Velocity) Y() float64 { return v.v.c[1] }

// Z returns βz.
func (v Velocity) Z() float64 { return v.v.c[2] }

// On returns the component on a spatial axis.
func (v Velocity) On(axis Axis) (float64, error) { return v.v.On(axis) }

// Beta returns the speed |v|.
func (v Velocity) Beta() float64 { return v.v.Magnitude() }

// Gamma returns the Lorentz factor 1/√(1−β²).
func (v Velocity) Gamma() float64 {
	return 1 / math.Sqrt(1-v.v.Square())
}

// IsZero reports whether v is the rest velocity.
func (v Velocity) IsZero() bool { return v.v.IsZero() }

// Direction returns the unit direction of motion, or ErrZeroVector at rest.
func (v Velocity) Direction() (Direction, error) {
	return DirectionOf(v.v)
}

// String formats v as "(βx, βy, βz)".
func (v Velocity) String() string { return v.v.String() }

// Direction is a polar unit vector.
type Direction struct{ v ThreeVector }

// NewDirection normalises (x, y, z) to unit length.
func NewDirection(x, y, z float64) (Direction, error) {
	return DirectionOf(NewThreeVector(x, y, z))
}

// DirectionOf normalises v to unit length, or returns ErrZeroVector.
func DirectionOf(v ThreeVector) (Direction, error) {
	if !v.IsFinite() {
		return Direction{}, fmt.Errorf("DirectionOf%v: %w", v, ErrNonFinite)
	}
	u, err := v.UnitVector()
	if err != nil {
		return Direction{}, fmt.Errorf("DirectionOf: %w", err)
	}
	u.kind = Polar
	return Direction{v: u}, nil
}

// DirectionAlong returns the unit vector of a spatial axis.
func DirectionAlong(axis Axis) (Direction, error) {
	v, err := ThreeVectorAlong(axis, 1)
	if err != nil {
		return Direction{}, fmt.Errorf("DirectionAlong: %w", err)
	}
	return Direction{v: v}, nil
}

// Vector returns the unit vector.
func (d Direction) Vector() ThreeVector { return d.v }

// Times returns s·d as a plain vector.
func (d Direction) Times(s float64) ThreeVector { return d.v.Times(s) }

// Reversed returns −d.
func (d Direction) Reversed() Direction { return Direction{v: d.v.Times(-1)} }

// String formats d as "(x, y, z)".
func (d Direction) String() string { return d.v.String() }

// Position is the spatial part of an event, relative to the spatial origin.
type Position struct{ v ThreeVector }

// NewPosition returns the position (x, y, z).
func NewPosition(x, y, z float64) Position {
	return Position{v: NewThreeVector(x, y, z)}
}

// PositionOf wraps v as a (polar) position.
func PositionOf(v ThreeVector) Position {
	v.kind = Polar
	return Position{v: v}
}

// Vector returns the position vector.
func (p Position) Vector() ThreeVector { return p.v }

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 { return o.v.Minus(p.v).Magnitude() }

// String formats p as "(x, y, z)".
func (p Position) String() string { return p.v.String() }

// Acceleration is a polar three-vector; proper acceleration when measured in
// the object's momentary rest frame.
type Acceleration struct{ v ThreeVector }

// NewAcceleration returns the acceleration (x, y, z).
func NewAcceleration(x, y, z float64) Acceleration {
	return Acceleration{v: NewThreeVector(x, y, z)}
}

// AccelerationOf wraps v as a (polar) acceleration.
func AccelerationOf(v ThreeVector) Acceleration {
	v.kind = Polar
	return Acceleration{v: v}
}

// Vector returns the acceleration vector.
func (a Acceleration) Vector() ThreeVector { return a.v }

// String formats a as "(x, y, z)".
func (a Acceleration) String() string { return a.v.String() }

// AxisAngle is a pseudo-vector describing a rotation: its direction is the
// axis (right-hand rule) and its magnitude is the angle in radians.
type AxisAngle struct{ v ThreeVector }

// NewAxisAngle returns the axis-angle (x, y, z).
func NewAxisAngle(x, y, z float64) AxisAngle {
	return AxisAngle{v: NewPseudoVector(x, y, z)}
}

// AxisAngleOf wraps v as an axis-angle; the result is always Pseudo.
func AxisAngleOf(v ThreeVector) AxisAngle {
	v.kind = Pseudo
	return AxisAngle{v: v}
}

// AxisAngleAlong returns a rotation of angle θ about a spatial axis.
func AxisAngleAlong(axis Axis, theta float64) (AxisAngle, error) {
	v, err := ThreeVectorAlong(axis, theta)
	if err != nil {
		return AxisAngle{}, fmt.Errorf("AxisAngleAlong: %w", err)
	}
	return AxisAngleOf(v), nil
}

// Vector returns the pseudo-vector.
func (a AxisAngle) Vector() ThreeVector { return a.v }

// Angle returns the rotation angle, |a|.
func (a AxisAngle) Angle() float64 { return a.v.Magnitude() }

// UnitAxis returns the unit rotation axis, or ErrZeroVector for a zero angle.
func (a AxisAngle) UnitAxis() (ThreeVector, error) { return a.v.UnitVector() }

// String formats a as "(x, y, z)".
func (a AxisAngle) String() string { return a.v.String() }

// PhaseGradient is the spatial wave vector k of a plane wave.
type PhaseGradient struct{ v ThreeVector }

// NewPhaseGradient returns the wave vector (kx, ky, kz).
func NewPhaseGradient(x, y, z float64) PhaseGradient {
	return PhaseGradient{v: NewThreeVector(x, y, z)}
}

// PhaseGradientOf wraps v as a (polar) wave vector.
func PhaseGradientOf(v ThreeVector) PhaseGradient {
	v.kind = Polar
	return PhaseGradient{v: v}
}

// Vector returns the wave vector.
func (k PhaseGradient) Vector() ThreeVector { return k.v }

// Magnitude returns |k|.
func (k PhaseGradient) Magnitude() float64 { return k.v.Magnitude() }

// String formats k as "(x, y, z)".
func (k PhaseGradient) String() string { return k.v.String() }
