// SPDX-License-Identifier: MIT

// Package transform implements invertible coordinate transforms of
// Minkowski space-time and their ordered composition.
//
// Every transform exposes a pair of mutual inverses:
//
//	Apply   - change of frame: the same event, expressed in a second grid
//	          that moves or is oriented differently.
//	Reverse - change of event: a different event, expressed in the same grid.
//
// For all e, Reverse(Apply(e)) == e and Apply(Reverse(e)) == e up to
// floating-point rounding. Each primitive implements a single private
// formula taking a sign parameter, and derives Apply and Reverse from it by
// negating the sign; neither direction is derived separately.
//
// Primitives:
//
//	Boost        - Lorentz boost with a Velocity. Linear.
//	Rotation     - spatial rotation about an axis (coordinate axis or any
//	               AxisAngle). Linear and Spatial.
//	Reflection   - per-axis parity flip. Self-inverse. Linear and Spatial;
//	               Pseudo three-vectors are left untouched.
//	Displacement - shift of the origin. Affine: it acts on Events only and
//	               does not implement Linear, so a FourVector (a difference
//	               between events) cannot be displaced.
//
// Composition:
//
//	Pipeline       - applies stages left-to-right; Reverse runs right-to-left
//	                 calling each stage's Reverse.
//	LinearPipeline - the same over Linear stages, so it is Linear itself.
//
// Linear transforms preserve the Minkowski square of every FourVector, so
// the squared interval between two events survives any pipeline without a
// Displacement. MatrixOf exposes the 4×4 matrix of a Linear transform as a
// gonum *mat.Dense, and PreservesMetric checks ΛᵀηΛ = η.
//
// All transforms are immutable values and safe for concurrent use.
package transform
