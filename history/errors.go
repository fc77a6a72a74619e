// SPDX-License-Identifier: MIT

package history

import "errors"

var (
	// ErrNilHistory is returned when a nil History is used as a leg or anchor.
	ErrNilHistory = errors.New("history: nil history")

	// ErrNilDelta is returned when a Moveable history has no delta function.
	ErrNilDelta = errors.New("history: nil delta function")

	// ErrBranchOrder is returned when a leg's branch point is not strictly
	// greater than the previous one.
	ErrBranchOrder = errors.New("history: branch points must strictly increase")

	// ErrBadBranchPoint is returned for a NaN branch point.
	ErrBadBranchPoint = errors.New("history: invalid branch point")

	// ErrBadParameter is returned for non-finite or out-of-range motion parameters.
	ErrBadParameter = errors.New("history: parameter out of range")

	// ErrLightlike is returned when a velocity is requested from a light-like history.
	ErrLightlike = errors.New("history: light-like history has no velocity")
)
