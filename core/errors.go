// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// Every constructor and method in this package returns one of these sentinels
// (possibly wrapped with fmt.Errorf("Func: %w", ErrX)); callers match them with
// errors.Is. No method panics on user input.

package core

import "errors"

var (
	// ErrBadAxis is returned when an Axis value is outside CT..Z.
	ErrBadAxis = errors.New("core: invalid axis")

	// ErrBadParity is returned by ParseParity for an unknown name.
	ErrBadParity = errors.New("core: invalid parity")

	// ErrNotSpatial is returned when CT is used where X, Y or Z is required.
	ErrNotSpatial = errors.New("core: axis is not spatial")

	// ErrDivideByZero is returned by Divide when the scalar is zero.
	ErrDivideByZero = errors.New("core: divide by zero")

	// ErrZeroVector is returned when a non-zero vector is required
	// (unit vectors, angles, directions).
	ErrZeroVector = errors.New("core: zero-length vector")

	// ErrSpeedLimit is returned when a velocity component or its magnitude
	// is not strictly inside (-1, 1).
	ErrSpeedLimit = errors.New("core: speed limit exceeded")

	// ErrNonFinite is returned when a component is NaN or ±Inf.
	ErrNonFinite = errors.New("core: non-finite component")

	// ErrNegativeSquare is returned by FourVector.Magnitude for space-like vectors.
	ErrNegativeSquare = errors.New("core: magnitude of vector with negative square")
)
