// SPDX-License-Identifier: MIT

package core

import "math"

// Separation classifies a pair of events by the sign of their squared interval.
type Separation int

const (
	// Lightlike pairs have |interval²| below epsilon.
	Lightlike Separation = iota
	// Timelike pairs have interval² > 0; their time order is the same in every frame.
	Timelike
	// Spacelike pairs have interval² < 0; their time order depends on the frame.
	Spacelike
)

// String returns "lightlike", "timelike" or "spacelike".
func (s Separation) String() string {
	switch s {
	case Timelike:
		return "timelike"
	case Spacelike:
		return "spacelike"
	default:
		return "lightlike"
	}
}

// SeparationOf classifies a four-vector. The light-like test runs first, so
// tiny squares on either side of zero count as light-like.
func SeparationOf(v FourVector, eps float64) Separation {
	sq := v.Square()
	switch {
	case math.Abs(sq) < eps:
		return Lightlike
	case sq > 0:
		return Timelike
	default:
		return Spacelike
	}
}

// SeparationBetween classifies the pair (a, b).
func SeparationBetween(a, b Event, eps float64) Separation {
	return SeparationOf(b.Minus(a), eps)
}

// TimeOrder is the coordinate-time order of one event relative to another.
type TimeOrder int

const (
	// Simultaneous events have |Δct| below epsilon.
	Simultaneous TimeOrder = iota
	// Before means the first event has the smaller ct.
	Before
	// After means the first event has the larger ct.
	After
)

// String returns "simultaneous", "before" or "after".
func (t TimeOrder) String() string {
	switch t {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "simultaneous"
	}
}

// TimeOrderOf returns the order of a relative to b in the current frame.
func TimeOrderOf(a, b Event, eps float64) TimeOrder {
	d := a.CT() - b.CT()
	switch {
	case math.Abs(d) < eps:
		return Simultaneous
	case d < 0:
		return Before
	default:
		return After
	}
}
