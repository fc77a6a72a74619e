// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spacetime/core"
)

// Rotation turns the spatial grid by an angle θ about an axis, following the
// right-hand rule. Time is untouched, and polar and pseudo vectors rotate
// alike.
//
// Apply is a change of frame: the grid turns by +θ, so components turn by
// −θ. Reverse turns components by +θ. Both run the same active rotation by
// φ = s·θ, with s = −1 for Apply and s = +1 for Reverse.
//
// Rotations about a coordinate axis use the plane formula on the
// right-hand pair (a, b) of that axis:
//
//	a' = a cos φ − b sin φ
//	b' = a sin φ + b cos φ
//
// which for Apply reads a' = a cos θ + b sin θ, b' = −a sin θ + b cos θ.
// Any other axis uses Rodrigues' formula with unit axis e:
//
//	v' = v cos φ + (e×v) sin φ + e(e·v)(1 − cos φ)
//
// The two forms agree on coordinate axes. θ = 0 is the identity exactly.
type Rotation struct {
	angle core.AxisAngle
	theta float64
	unit  core.ThreeVector

	aligned bool
	a, b    int // spatial indices of the right-hand pair when aligned
}

// NewRotation returns the rotation by θ about a coordinate axis.
func NewRotation(axis core.Axis, theta float64) (Rotation, error) {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return Rotation{}, fmt.Errorf("NewRotation(%v, %g): %w", axis, theta, ErrBadAngle)
	}
	aa, err := core.AxisAngleAlong(axis, theta)
	if err != nil {
		return Rotation{}, fmt.Errorf("NewRotation: %w", err)
	}
	return RotationOf(aa)
}

// RotationOf returns the rotation described by an axis-angle pseudo-vector.
// It fails with ErrBadAngle when a component is NaN or ±Inf.
func RotationOf(aa core.AxisAngle) (Rotation, error) {
	if !aa.Vector().IsFinite() {
		return Rotation{}, fmt.Errorf("RotationOf(%v): %w", aa.Vector(), ErrBadAngle)
	}
	r := Rotation{angle: aa, theta: aa.Angle()}
	if r.theta == 0 {
		return r, nil
	}
	r.unit, _ = aa.UnitAxis()
	if axis, ok := aa.Vector().Axis(); ok {
		// a negative component is a positive angle about the flipped axis
		r.theta, _ = aa.Vector().On(axis)
		r.unit, _ = core.ThreeVectorAlong(axis, 1)
		first, second, _ := axis.RightHandRule()
		r.aligned, r.a, r.b = true, int(first)-1, int(second)-1
	}
	return r, nil
}

// AxisAngle returns the rotation as a pseudo-vector.
func (r Rotation) AxisAngle() core.AxisAngle { return r.angle }

// Angle returns |θ|.
func (r Rotation) Angle() float64 { return r.angle.Angle() }

// Apply rotates the spatial part of e into the turned grid.
func (r Rotation) Apply(e core.Event) core.Event {
	return core.EventOf(r.doFour(e.Components(), backward))
}

// Reverse undoes Apply.
func (r Rotation) Reverse(e core.Event) core.Event {
	return core.EventOf(r.doFour(e.Components(), forward))
}

// ApplyVector rotates the spatial part of v into the turned grid.
func (r Rotation) ApplyVector(v core.FourVector) core.FourVector {
	return core.FourVectorOf(r.doFour(v.Components(), backward))
}

// ReverseVector undoes ApplyVector.
func (r Rotation) ReverseVector(v core.FourVector) core.FourVector {
	return core.FourVectorOf(r.doFour(v.Components(), forward))
}

// ApplySpatial expresses v in the turned grid.
func (r Rotation) ApplySpatial(v core.ThreeVector) core.ThreeVector {
	return r.do(v, backward)
}

// ReverseSpatial undoes ApplySpatial.
func (r Rotation) ReverseSpatial(v core.ThreeVector) core.ThreeVector {
	return r.do(v, forward)
}

// String returns "rotation(x, y, z)".
func (r Rotation) String() string { return "rotation" + r.angle.String() }

func (r Rotation) doFour(c core.Components, s sign) core.Components {
	if r.theta == 0 {
		return c
	}
	return joinSpatial(c, r.do(splitSpatial(c), s))
}

func (r Rotation) do(v core.ThreeVector, s sign) core.ThreeVector {
	if r.theta == 0 {
		return v
	}
	phi := float64(s) * r.theta
	if r.aligned {
		return r.plane(v, phi)
	}
	return r.rodrigues(v, phi)
}

// plane rotates within the right-hand pair of a coordinate axis.
func (r Rotation) plane(v core.ThreeVector, phi float64) core.ThreeVector {
	var (
		c        = v.Components()
		sin, cos = math.Sincos(phi)
		a, b     = c[r.a], c[r.b]
	)
	c[r.a] = a*cos - b*sin
	c[r.b] = a*sin + b*cos
	return core.ThreeVectorOf(v.Kind(), c)
}

// rodrigues rotates about an arbitrary unit axis.
func (r Rotation) rodrigues(v core.ThreeVector, phi float64) core.ThreeVector {
	sin, cos := math.Sincos(phi)
	e := r.unit
	out := v.Times(cos).
		Plus(e.Cross(v).Times(sin)).
		Plus(e.Times(e.Dot(v) * (1 - cos)))
	return core.ThreeVectorOf(v.Kind(), out.Components())
}
