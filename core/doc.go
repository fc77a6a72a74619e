// SPDX-License-Identifier: MIT

// Package core defines the value types of flat Minkowski space-time:
// axes, parities, three-vectors, four-vectors and events.
//
// Every type in this package is an immutable value. Methods that "modify"
// a value return a new one; nothing is shared, so all values are safe to use
// from any number of goroutines without locking.
//
// Axes:
//
//	CT, X, Y, Z     - fixed order 0..3; X, Y, Z are spatial.
//	RightHandRule() - the two other spatial axes, in right-hand order:
//	                  X→(Y,Z), Y→(Z,X), Z→(X,Y).
//
// Three-vectors:
//
//	ThreeVector carries a Kind tag (Polar or Pseudo). Reflections dispatch on
//	that tag: a Pseudo vector (an axis-angle, an angular velocity) is not
//	affected by parity. Specialised types wrap ThreeVector and enforce their
//	construction invariant:
//
//	  Velocity      - every component and the magnitude strictly inside (-1, 1)
//	  Direction     - unit magnitude
//	  Position      - no restriction
//	  Acceleration  - no restriction
//	  AxisAngle     - pseudo-vector; magnitude is the angle in radians
//	  PhaseGradient - wave vector k
//
// Four-vectors and events:
//
//	Both are 4-tuples ordered CT, X, Y, Z with the scalar product of
//	signature (+,-,-,-):
//
//	  a·b = a_ct b_ct − a_x b_x − a_y b_y − a_z b_z
//
//	An Event is a point; a FourVector is a difference between points (or a
//	derivative of one). Event − Event is a FourVector, Event + FourVector is
//	an Event. Event.Square() is the interval to the coordinate origin, which
//	is not invariant under displacements of the origin.
//
// Approximate equality compares component-wise against an absolute epsilon
// (DefaultEpsilon = 1e-9) using gonum's scalar.EqualWithinAbs.
//
// Errors:
//
//	ErrBadAxis        - axis value outside CT..Z.
//	ErrBadParity      - unknown parity name.
//	ErrNotSpatial     - CT passed where a spatial axis is required.
//	ErrDivideByZero   - division by a zero scalar.
//	ErrZeroVector     - zero-length vector where a direction is required.
//	ErrSpeedLimit     - velocity component or magnitude outside (-1, 1).
//	ErrNonFinite      - NaN or ±Inf component.
//	ErrNegativeSquare - magnitude of a four-vector with negative square.
package core
