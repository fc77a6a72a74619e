// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis identifies one of the four coordinate axes, in the fixed order CT, X, Y, Z.
type Axis int

const (
	// CT is the time axis, measured as c·t.
	CT Axis = iota
	// X is the first spatial axis.
	X
	// Y is the second spatial axis.
	Y
	// Z is the third spatial axis.
	Z
)

var (
	allAxes     = [4]Axis{CT, X, Y, Z}
	spatialAxes = [3]Axis{X, Y, Z}
	axisNames   = [4]string{"ct", "x", "y", "z"}
)

// Axes returns all four axes in order.
func Axes() []Axis { return allAxes[:] }

// SpatialAxes returns X, Y, Z in order.
func SpatialAxes() []Axis { return spatialAxes[:] }

// IsValid reports whether a is one of CT, X, Y, Z.
func (a Axis) IsValid() bool { return a >= CT && a <= Z }

// IsSpatial reports whether a is X, Y or Z.
func (a Axis) IsSpatial() bool { return a >= X && a <= Z }

// String returns "ct", "x", "y" or "z".
func (a Axis) String() string {
	if !a.IsValid() {
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
	return axisNames[a]
}

// ParseAxis returns the axis named s: "ct" (or "t"), "x", "y" or "z",
// in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ct", "t":
		return CT, nil
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return 0, fmt.Errorf("ParseAxis(%q): %w", s, ErrBadAxis)
}

// RightHandRule returns the two other spatial axes (a, b) such that a×b points
// along the receiver: X→(Y,Z), Y→(Z,X), Z→(X,Y).
// Rotating about the receiver turns a toward b.
func (a Axis) RightHandRule() (Axis, Axis, error) {
	switch a {
	case X:
		return Y, Z, nil
	case Y:
		return Z, X, nil
	case Z:
		return X, Y, nil
	}
	if !a.IsValid() {
		return 0, 0, fmt.Errorf("RightHandRule(%v): %w", a, ErrBadAxis)
	}
	return 0, 0, fmt.Errorf("RightHandRule(%v): %w", a, ErrNotSpatial)
}

// spatialIndex maps X, Y, Z to 0, 1, 2.
func spatialIndex(a Axis) (int, error) {
	if !a.IsValid() {
		return 0, ErrBadAxis
	}
	if !a.IsSpatial() {
		return 0, ErrNotSpatial
	}
	return int(a) - 1, nil
}

// Parity is the sign applied to one axis by a reflection.
type Parity int

const (
	// Even leaves the component unchanged.
	Even Parity = 1
	// Odd flips the sign of the component.
	Odd Parity = -1
)

// Sign returns +1 for Even and -1 for Odd.
func (p Parity) Sign() float64 {
	if p == Odd {
		return -1
	}
	return 1
}

// String returns "even" or "odd".
func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}
	return "even"
}

// ParseParity accepts "even"/"+" and "odd"/"-", in any case.
func ParseParity(s string) (Parity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even", "+":
		return Even, nil
	case "odd", "-":
		return Odd, nil
	}
	return 0, fmt.Errorf("ParseParity(%q): %w", s, ErrBadParity)
}

// Kind tags a ThreeVector as an ordinary (polar) vector or a pseudo-vector.
type Kind int

const (
	// Polar vectors change sign under spatial reflection (positions, velocities).
	Polar Kind = iota
	// Pseudo vectors are unaffected by reflection (axis-angles, angular velocities).
	Pseudo
)

// String returns "polar" or "pseudo".
func (k Kind) String() string {
	if k == Pseudo {
		return "pseudo"
	}
	return "polar"
}
