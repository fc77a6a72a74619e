// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Components holds four values in CT, X, Y, Z order.
type Components [4]float64

// metric is the diagonal of η for signature (+,-,-,-).
var metric = Components{1, -1, -1, -1}

// four is the storage and read-only surface shared by FourVector and Event.
type four struct{ c Components }

// Components returns a copy of the raw components.
func (f four) Components() Components { return f.c }

// CT returns the time component c·t.
func (f four) CT() float64 { return f.c[CT] }

// X returns the x component.
func (f four) X() float64 { return f.c[X] }

// Y returns the y component.
func (f four) Y() float64 { return f.c[Y] }

// Z returns the z component.
func (f four) Z() float64 { return f.c[Z] }

// On returns the component on any axis.
func (f four) On(axis Axis) (float64, error) {
	if !axis.IsValid() {
		return 0, fmt.Errorf("On(%v): %w", axis, ErrBadAxis)
	}
	return f.c[axis], nil
}

// Spatial returns the spatial part as a polar three-vector.
func (f four) Spatial() ThreeVector {
	return NewThreeVector(f.c[X], f.c[Y], f.c[Z])
}

// Square returns the Minkowski square ct² − x² − y² − z².
// Positive is time-like, negative is space-like, zero is light-like.
func (f four) Square() float64 { return dot(f.c, f.c) }

// IsFinite reports whether no component is NaN or ±Inf.
func (f four) IsFinite() bool { return finite(f.c[:]) }

// String formats the components as "(ct, x, y, z)".
func (f four) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", f.c[CT], f.c[X], f.c[Y], f.c[Z])
}

func dot(a, b Components) float64 {
	var sum float64
	for i := range a {
		sum += metric[i] * a[i] * b[i]
	}
	return sum
}

func equalWithin(a, b Components, eps float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// FourVector is a difference between two events, or a derivative of one
// (four-velocity, wave four-vector). Linear transforms act on it directly;
// displacements of the origin do not apply to it.
type FourVector struct{ four }

// NewFourVector returns the four-vector (ct, x, y, z).
func NewFourVector(ct, x, y, z float64) FourVector {
	return FourVector{four{Components{ct, x, y, z}}}
}

// FourVectorOf builds a four-vector from raw components.
func FourVectorOf(c Components) FourVector { return FourVector{four{c}} }

// FourVectorFrom joins a time component and a spatial part.
func FourVectorFrom(ct float64, spatial ThreeVector) FourVector {
	return NewFourVector(ct, spatial.c[0], spatial.c[1], spatial.c[2])
}

// FourVectorAlong returns the four-vector with value on one axis and zero elsewhere.
func FourVectorAlong(axis Axis, value float64) (FourVector, error) {
	if !axis.IsValid() {
		return FourVector{}, fmt.Errorf("FourVectorAlong(%v): %w", axis, ErrBadAxis)
	}
	var c Components
	c[axis] = value
	return FourVectorOf(c), nil
}

// With returns a copy with one component replaced.
func (v FourVector) With(axis Axis, value float64) (FourVector, error) {
	if !axis.IsValid() {
		return v, fmt.Errorf("FourVector.With(%v): %w", axis, ErrBadAxis)
	}
	v.c[axis] = value
	return v, nil
}

// Plus returns v + o.
func (v FourVector) Plus(o FourVector) FourVector {
	for i := range v.c {
		v.c[i] += o.c[i]
	}
	return v
}

// Minus returns v − o.
func (v FourVector) Minus(o FourVector) FourVector {
	for i := range v.c {
		v.c[i] -= o.c[i]
	}
	return v
}

// Times returns s·v.
func (v FourVector) Times(s float64) FourVector {
	for i := range v.c {
		v.c[i] *= s
	}
	return v
}

// Divide returns v/s, or ErrDivideByZero.
func (v FourVector) Divide(s float64) (FourVector, error) {
	if s == 0 {
		return v, fmt.Errorf("FourVector.Divide: %w", ErrDivideByZero)
	}
	return v.Times(1 / s), nil
}

// Dot returns the Minkowski scalar product v·o.
func (v FourVector) Dot(o FourVector) float64 { return dot(v.c, o.c) }

// Magnitude returns √(v·v), or ErrNegativeSquare for a space-like vector.
func (v FourVector) Magnitude() (float64, error) {
	sq := v.Square()
	if sq < 0 {
		return 0, fmt.Errorf("FourVector.Magnitude(square=%g): %w", sq, ErrNegativeSquare)
	}
	return math.Sqrt(sq), nil
}

// EqualsWithTolerance compares components with an absolute tolerance.
func (v FourVector) EqualsWithTolerance(o FourVector, eps float64) bool {
	return equalWithin(v.c, o.c, eps)
}

// Event is a point in space-time.
type Event struct{ four }

// NewEvent returns the event (ct, x, y, z).
func NewEvent(ct, x, y, z float64) Event {
	return Event{four{Components{ct, x, y, z}}}
}

// EventOf builds an event from raw components.
func EventOf(c Components) Event { return Event{four{c}} }

// EventAt joins a time and a position.
func EventAt(ct float64, p Position) Event {
	return NewEvent(ct, p.v.c[0], p.v.c[1], p.v.c[2])
}

// EventAlong returns the event with value on one axis and zero elsewhere.
func EventAlong(axis Axis, value float64) (Event, error) {
	if !axis.IsValid() {
		return Event{}, fmt.Errorf("EventAlong(%v): %w", axis, ErrBadAxis)
	}
	var c Components
	c[axis] = value
	return EventOf(c), nil
}

// Origin returns the event (0, 0, 0, 0).
func Origin() Event { return Event{} }

// With returns a copy with one component replaced.
func (e Event) With(axis Axis, value float64) (Event, error) {
	if !axis.IsValid() {
		return e, fmt.Errorf("Event.With(%v): %w", axis, ErrBadAxis)
	}
	e.c[axis] = value
	return e, nil
}

// Plus returns the event displaced by d.
func (e Event) Plus(d FourVector) Event {
	for i := range e.c {
		e.c[i] += d.c[i]
	}
	return e
}

// MinusVector returns the event displaced by −d.
func (e Event) MinusVector(d FourVector) Event {
	for i := range e.c {
		e.c[i] -= d.c[i]
	}
	return e
}

// Minus returns the four-vector e − o, pointing from o to e.
func (e Event) Minus(o Event) FourVector {
	for i := range e.c {
		e.c[i] -= o.c[i]
	}
	return FourVectorOf(e.c)
}

// FromOrigin returns e − Origin().
func (e Event) FromOrigin() FourVector { return FourVectorOf(e.c) }

// IntervalSquared returns (o − e)², the invariant squared interval between two events.
func (e Event) IntervalSquared(o Event) float64 { return o.Minus(e).Square() }

// Position returns the spatial part of e.
func (e Event) Position() Position { return PositionOf(e.Spatial()) }

// EqualsWithTolerance compares components with an absolute tolerance.
func (e Event) EqualsWithTolerance(o Event, eps float64) bool {
	return equalWithin(e.c, o.c, eps)
}
