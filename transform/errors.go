// SPDX-License-Identifier: MIT

package transform

import "errors"

var (
	// ErrBadAngle is returned when a rotation angle is NaN or ±Inf.
	ErrBadAngle = errors.New("transform: non-finite rotation angle")

	// ErrInvariantBroken is returned by CheckInterval when a linear transform
	// changes the Minkowski square of a vector beyond tolerance.
	ErrInvariantBroken = errors.New("transform: invariant square not preserved")

	// ErrNotInverse is returned by CheckRoundTrip when Reverse does not undo Apply.
	ErrNotInverse = errors.New("transform: reverse does not undo apply")
)
