// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/spacetime/core"
)

// Displacement shifts events by a fixed four-component offset.
// Apply adds the offset and Reverse subtracts it.
//
// It is affine, not linear: Displacement implements Transform but not
// Linear, because a FourVector (a difference between two events) has no
// position to shift. The difference of two displaced events is unchanged,
// while the square of a single event (its interval to the origin) is not.
type Displacement struct {
	offset core.FourVector
}

// NewDisplacement returns the displacement by (ct, x, y, z).
func NewDisplacement(ct, x, y, z float64) Displacement {
	return Displacement{offset: core.NewFourVector(ct, x, y, z)}
}

// DisplacementOf returns the displacement by d.
func DisplacementOf(d core.FourVector) Displacement {
	return Displacement{offset: d}
}

// DisplacementAlong returns the displacement by value along one axis.
func DisplacementAlong(axis core.Axis, value float64) (Displacement, error) {
	d, err := core.FourVectorAlong(axis, value)
	if err != nil {
		return Displacement{}, fmt.Errorf("DisplacementAlong: %w", err)
	}
	return DisplacementOf(d), nil
}

// Offset returns the displacement vector.
func (d Displacement) Offset() core.FourVector { return d.offset }

// Apply returns e + offset.
func (d Displacement) Apply(e core.Event) core.Event { return d.do(e, forward) }

// Reverse returns e − offset.
func (d Displacement) Reverse(e core.Event) core.Event { return d.do(e, backward) }

// String returns "displacement(ct, x, y, z)".
func (d Displacement) String() string { return "displacement" + d.offset.String() }

func (d Displacement) do(e core.Event, s sign) core.Event {
	return e.Plus(d.offset.Times(float64(s)))
}
