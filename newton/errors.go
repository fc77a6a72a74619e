// SPDX-License-Identifier: MIT

package newton

import "errors"

var (
	// ErrNilHistory is returned by New for a nil history.
	ErrNilHistory = errors.New("newton: nil history")

	// ErrNilCriterion is returned by New for a nil criterion.
	ErrNilCriterion = errors.New("newton: nil criterion")

	// ErrBadStep is returned for a difference step that is not finite and > 0.
	ErrBadStep = errors.New("newton: step must be finite and > 0")

	// ErrBadGuess is returned for a NaN or infinite starting guess.
	ErrBadGuess = errors.New("newton: guess must be finite")

	// ErrFlatCriterion is returned when f' is zero or not finite, so no
	// Newton step can be taken.
	ErrFlatCriterion = errors.New("newton: criterion is flat or undefined")

	// ErrNotConverged is returned under WithStrict when the iteration cap
	// is reached before |f| < epsilon.
	ErrNotConverged = errors.New("newton: iteration cap reached")
)
