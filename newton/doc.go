// SPDX-License-Identifier: MIT

// Package newton locates the event on a history that satisfies a scalar
// criterion, using the Newton–Raphson method.
//
// A Criterion maps an event to a number that is zero at the wanted event,
// for example the coordinate time minus a target, or the interval to an
// apex event. The Finder evaluates f(λ) = criterion(history.Event(λ)) and
// iterates
//
//	λₙ₊₁ = λₙ − f(λₙ)/f'(λₙ)
//
// where f' is a finite difference computed with gonum's diff/fd. The search
// is basic: the data is expected to be smooth, monotonic near the root and
// to have a single root there. A good first guess matters; Result.Iterations
// tells how hard the search had to work.
//
// Errors:
//
//	ErrNilHistory    - New called with a nil history.
//	ErrNilCriterion  - New called with a nil criterion.
//	ErrBadStep       - non-positive or non-finite difference step.
//	ErrBadGuess      - non-finite starting guess.
//	ErrFlatCriterion - the derivative vanished or is undefined.
//	ErrNotConverged  - iteration cap reached under WithStrict.
package newton
