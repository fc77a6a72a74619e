// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the absolute tolerance used by approximate comparisons
// when the caller has no better value.
const DefaultEpsilon = 1e-9

// ThreeVector is an immutable spatial vector with a declared Kind.
// The zero value is the polar zero vector.
type ThreeVector struct {
	c    [3]float64
	kind Kind
}

// NewThreeVector returns the polar vector (x, y, z).
func NewThreeVector(x, y, z float64) ThreeVector {
	return ThreeVector{c: [3]float64{x, y, z}, kind: Polar}
}

// NewPseudoVector returns the pseudo-vector (x, y, z).
func NewPseudoVector(x, y, z float64) ThreeVector {
	return ThreeVector{c: [3]float64{x, y, z}, kind: Pseudo}
}

// ThreeVectorOf builds a vector of the given kind from raw components.
// Transforms use it to rebuild a value of the same kind as their input.
func ThreeVectorOf(kind Kind, c [3]float64) ThreeVector {
	return ThreeVector{c: c, kind: kind}
}

// ThreeVectorAlong returns the polar vector with value on the given spatial axis
// and zero elsewhere.
func ThreeVectorAlong(axis Axis, value float64) (ThreeVector, error) {
	i, err := spatialIndex(axis)
	if err != nil {
		return ThreeVector{}, fmt.Errorf("ThreeVectorAlong(%v): %w", axis, err)
	}
	var v ThreeVector
	v.c[i] = value
	return v, nil
}

// Kind returns the declared kind of v.
func (v ThreeVector) Kind() Kind { return v.kind }

// Components returns a copy of the components in X, Y, Z order.
func (v ThreeVector) Components() [3]float64 { return v.c }

// X returns the x component.
func (v ThreeVector) X() float64 { return v.c[0] }

// Y returns the y component.
func (v ThreeVector) Y() float64 { return v.c[1] }

// Z returns the z component.
func (v ThreeVector) Z() float64 { return v.c[2] }

// On returns the component on a spatial axis.
func (v ThreeVector) On(axis Axis) (float64, error) {
	i, err := spatialIndex(axis)
	if err != nil {
		return 0, fmt.Errorf("ThreeVector.On(%v): %w", axis, err)
	}
	return v.c[i], nil
}

// With returns a copy of v with one component replaced.
func (v ThreeVector) With(axis Axis, value float64) (ThreeVector, error) {
	i, err := spatialIndex(axis)
	if err != nil {
		return v, fmt.Errorf("ThreeVector.With(%v): %w", axis, err)
	}
	v.c[i] = value
	return v, nil
}

// Plus returns v + o, keeping the kind of v.
func (v ThreeVector) Plus(o ThreeVector) ThreeVector {
	for i := range v.c {
		v.c[i] += o.c[i]
	}
	return v
}

// Minus returns v − o, keeping the kind of v.
func (v ThreeVector) Minus(o ThreeVector) ThreeVector {
	for i := range v.c {
		v.c[i] -= o.c[i]
	}
	return v
}

// Times returns s·v.
func (v ThreeVector) Times(s float64) ThreeVector {
	for i := range v.c {
		v.c[i] *= s
	}
	return v
}

// Divide returns v/s, or ErrDivideByZero when s is zero.
func (v ThreeVector) Divide(s float64) (ThreeVector, error) {
	if s == 0 {
		return v, fmt.Errorf("ThreeVector.Divide: %w", ErrDivideByZero)
	}
	return v.Times(1 / s), nil
}

// Dot returns the Euclidean scalar product.
func (v ThreeVector) Dot(o ThreeVector) float64 {
	return floats.Dot(v.c[:], o.c[:])
}

// Cross returns v×o. Two vectors of the same kind give a pseudo-vector;
// mixed kinds give a polar vector.
func (v ThreeVector) Cross(o ThreeVector) ThreeVector {
	kind := Polar
	if v.kind == o.kind {
		kind = Pseudo
	}
	return ThreeVector{
		c: [3]float64{
			v.c[1]*o.c[2] - v.c[2]*o.c[1],
			v.c[2]*o.c[0] - v.c[0]*o.c[2],
			v.c[0]*o.c[1] - v.c[1]*o.c[0],
		},
		kind: kind,
	}
}

// Square returns v·v.
func (v ThreeVector) Square() float64 { return v.Dot(v) }

// Magnitude returns |v|, always non-negative.
func (v ThreeVector) Magnitude() float64 { return math.Sqrt(v.Square()) }

// IsZero reports whether every component is exactly zero.
func (v ThreeVector) IsZero() bool { return v.c == [3]float64{} }

// UnitVector returns v/|v|, or ErrZeroVector.
func (v ThreeVector) UnitVector() (ThreeVector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return v, fmt.Errorf("ThreeVector.UnitVector: %w", ErrZeroVector)
	}
	return v.Times(1 / mag), nil
}

// Angle returns the Euclidean angle between v and o, in [0, π].
func (v ThreeVector) Angle(o ThreeVector) (float64, error) {
	denom := v.Magnitude() * o.Magnitude()
	if denom == 0 {
		return 0, fmt.Errorf("ThreeVector.Angle: %w", ErrZeroVector)
	}
	// rounding can push the cosine just past ±1
	cos := math.Max(-1, math.Min(1, v.Dot(o)/denom))
	return math.Acos(cos), nil
}

// Axis returns the single axis carrying a non-zero component. The second
// result is false when zero or more than one component is non-zero.
func (v ThreeVector) Axis() (Axis, bool) {
	found, count := X, 0
	for i, c := range v.c {
		if c != 0 {
			found = spatialAxes[i]
			count++
		}
	}
	return found, count == 1
}

// EqualsWithTolerance compares components with an absolute tolerance.
// The kind is not compared.
func (v ThreeVector) EqualsWithTolerance(o ThreeVector, eps float64) bool {
	for i := range v.c {
		if !scalar.EqualWithinAbs(v.c[i], o.c[i], eps) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v ThreeVector) IsFinite() bool {
	return finite(v.c[:])
}

// String formats v as "(x, y, z)".
func (v ThreeVector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.c[0], v.c[1], v.c[2])
}

func finite(c []float64) bool {
	for _, x := range c {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
