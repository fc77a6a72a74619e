// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/spacetime/core"

// Transform re-expresses events between two coordinate grids.
type Transform interface {
	// Apply returns the same event in the second grid.
	Apply(e core.Event) core.Event
	// Reverse returns the event whose Apply is e.
	Reverse(e core.Event) core.Event
}

// Linear is a Transform that also acts on differences between events.
type Linear interface {
	Transform
	ApplyVector(v core.FourVector) core.FourVector
	ReverseVector(v core.FourVector) core.FourVector
}

// Spatial is implemented by transforms that act within 3-space alone.
// The Kind of the input is preserved in the output.
type Spatial interface {
	ApplySpatial(v core.ThreeVector) core.ThreeVector
	ReverseSpatial(v core.ThreeVector) core.ThreeVector
}

// sign selects the direction of a transform formula.
type sign float64

const (
	forward  sign = 1
	backward sign = -1
)

// splitSpatial returns the spatial part of c as a polar vector.
func splitSpatial(c core.Components) core.ThreeVector {
	return core.NewThreeVector(c[core.X], c[core.Y], c[core.Z])
}

// joinSpatial returns c with its spatial part replaced by r.
func joinSpatial(c core.Components, r core.ThreeVector) core.Components {
	rc := r.Components()
	c[core.X], c[core.Y], c[core.Z] = rc[0], rc[1], rc[2]
	return c
}
