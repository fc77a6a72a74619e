// SPDX-License-Identifier: MIT

// Package history models worldlines: functions from a scalar parameter λ to
// an Event.
//
// A History is a pure function; calling Event with the same λ always returns
// the same event. Most histories here are parameterized by coordinate time
// ct. Time-like histories (massive objects) also convert between ct and
// proper time τ, and EventAtTau uses τ as the parameter instead.
//
// Moveable histories are defined relative to an anchor (DeltaBase) rather
// than the origin:
//
//	Event(ct) = base.Event + delta(ct − base.ct)
//	Tau(ct)   = base.τ + Δτ(ct − base.ct)
//
// so the same motion can be started anywhere in space-time, including on
// another history (BaseOn). Their Velocity is a forward difference with step
// DefaultVelocityStep unless a concrete history knows it exactly. The
// numeric version is poor near the speed of light and at kinks such as a
// sharp turnaround.
//
// Stitched histories switch between legs at strictly increasing branch
// points. The first leg covers (−∞, first branch point); Event(λ) uses the
// leg with the greatest branch point ≤ λ, found by a linear scan since
// realistic stitched histories hold a handful of legs.
//
// Concrete worldlines:
//
//	UniformVelocity      - straight line, constant velocity (Stationary at rest)
//	UniformAcceleration  - hyperbolic motion along one axis, starting at rest
//	CircularMotion       - constant speed on a circle about the base position
//	ThereAndBack         - out and back at constant speed (twin paradox)
//	PhotonStraight       - light-like straight line
//	MirrorReflection     - light-like line bounced back by a mirror
//
// Errors:
//
//	ErrNilHistory     - nil leg or base history.
//	ErrNilDelta       - nil delta function for a Moveable history.
//	ErrBranchOrder    - branch point not strictly after the previous one.
//	ErrBadBranchPoint - NaN branch point.
//	ErrBadParameter   - non-finite or out-of-range motion parameter.
//	ErrLightlike      - velocity requested from a light-like history.
package history
