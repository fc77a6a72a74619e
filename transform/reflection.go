// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spacetime/core"
)

// Reflection flips the sign of selected components. It is its own inverse,
// so Apply and Reverse are the same operation.
//
// Flipping exactly two spatial axes (and not time) is a rotation by π; such
// reflections are reported by IsRotation but computed the same way.
//
// Three-vectors of Kind Pseudo are not affected by ApplySpatial or
// ReverseSpatial.
type Reflection struct {
	parity [4]core.Parity
}

// NewReflection returns the reflection with the given parity per axis.
func NewReflection(ct, x, y, z core.Parity) Reflection {
	return Reflection{parity: [4]core.Parity{ct, x, y, z}}
}

// ReflectionAlong flips a single axis.
func ReflectionAlong(axis core.Axis) (Reflection, error) {
	if !axis.IsValid() {
		return Reflection{}, fmt.Errorf("ReflectionAlong(%v): %w", axis, core.ErrBadAxis)
	}
	r := NewReflection(core.Even, core.Even, core.Even, core.Even)
	r.parity[axis] = core.Odd
	return r, nil
}

// AllAxes flips all four axes: spatial parity combined with time reversal.
func AllAxes() Reflection {
	return NewReflection(core.Odd, core.Odd, core.Odd, core.Odd)
}

// SpatialParity flips X, Y and Z.
func SpatialParity() Reflection {
	return NewReflection(core.Even, core.Odd, core.Odd, core.Odd)
}

// TimeReversal flips CT only.
func TimeReversal() Reflection {
	return NewReflection(core.Odd, core.Even, core.Even, core.Even)
}

// Parities returns the parity per axis in CT, X, Y, Z order.
func (r Reflection) Parities() [4]core.Parity { return r.parity }

// IsRotation reports whether r flips an even, non-zero number of spatial axes
// and leaves time alone.
func (r Reflection) IsRotation() bool {
	if r.parity[core.CT] == core.Odd {
		return false
	}
	flipped := 0
	for _, a := range core.SpatialAxes() {
		if r.parity[a] == core.Odd {
			flipped++
		}
	}
	return flipped == 2
}

// Apply flips the components of e.
func (r Reflection) Apply(e core.Event) core.Event { return core.EventOf(r.do(e.Components())) }

// Reverse is identical to Apply.
func (r Reflection) Reverse(e core.Event) core.Event { return core.EventOf(r.do(e.Components())) }

// ApplyVector flips the components of v.
func (r Reflection) ApplyVector(v core.FourVector) core.FourVector {
	return core.FourVectorOf(r.do(v.Components()))
}

// ReverseVector is identical to ApplyVector.
func (r Reflection) ReverseVector(v core.FourVector) core.FourVector {
	return core.FourVectorOf(r.do(v.Components()))
}

// ApplySpatial flips the spatial components of a polar vector and returns a
// pseudo-vector unchanged.
func (r Reflection) ApplySpatial(v core.ThreeVector) core.ThreeVector { return r.doSpatial(v) }

// ReverseSpatial is identical to ApplySpatial.
func (r Reflection) ReverseSpatial(v core.ThreeVector) core.ThreeVector { return r.doSpatial(v) }

// String returns "reflection[ct,x,y,z]" with each parity spelled out.
func (r Reflection) String() string {
	parts := make([]string, len(r.parity))
	for i, p := range r.parity {
		parts[i] = p.String()
	}
	return "reflection[" + strings.Join(parts, ",") + "]"
}

func (r Reflection) do(c core.Components) core.Components {
	for i := range c {
		c[i] *= r.parity[i].Sign()
	}
	return c
}

func (r Reflection) doSpatial(v core.ThreeVector) core.ThreeVector {
	if v.Kind() == core.Pseudo {
		return v
	}
	c := v.Components()
	for i, a := range core.SpatialAxes() {
		c[i] *= r.parity[a].Sign()
	}
	return core.ThreeVectorOf(v.Kind(), c)
}
