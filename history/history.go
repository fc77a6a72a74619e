// SPDX-License-Identifier: MIT

package history

import (
	"github.com/katalvlaran/spacetime/core"
)

// History is a worldline: a pure function from λ to an event.
type History interface {
	Event(lambda float64) core.Event
}

// Func adapts a plain function to History.
type Func func(lambda float64) core.Event

// Event calls f.
func (f Func) Event(lambda float64) core.Event { return f(lambda) }

// Timelike is a History parameterized by ct that also tracks proper time.
type Timelike interface {
	History
	// Tau returns the proper time at coordinate time ct.
	Tau(ct float64) float64
	// CT returns the coordinate time at proper time τ.
	CT(tau float64) float64
}

// EventAtTau returns the event of h at proper time τ.
func EventAtTau(h Timelike, tau float64) core.Event { return h.Event(h.CT(tau)) }

// LambdaParam names the meaning of a history's parameter.
type LambdaParam int

const (
	// CoordinateTime parameterizes by ct.
	CoordinateTime LambdaParam = iota
	// ProperTime parameterizes by τ.
	ProperTime
)

// String returns "ct" or "tau".
func (p LambdaParam) String() string {
	if p == ProperTime {
		return "tau"
	}
	return "ct"
}

// ByParam returns h parameterized by p. For ProperTime, λ is passed through
// h.CT first.
func ByParam(h Timelike, p LambdaParam) History {
	if p == ProperTime {
		return Func(func(tau float64) core.Event { return EventAtTau(h, tau) })
	}
	return h
}

// DeltaBase anchors a Moveable history: the event it starts from and the
// proper time already elapsed there.
type DeltaBase struct {
	Event core.Event
	Tau   float64
}

// Origin anchors at the origin with τ = 0.
func Origin() DeltaBase { return DeltaBase{} }

// BaseAt anchors at an event with a given proper time.
func BaseAt(e core.Event, tau float64) DeltaBase {
	return DeltaBase{Event: e, Tau: tau}
}

// BaseOn anchors at the event of h at coordinate time ct, carrying over its
// proper time so a new history continues where h leaves off.
func BaseOn(h Timelike, ct float64) DeltaBase {
	return DeltaBase{Event: h.Event(ct), Tau: h.Tau(ct)}
}
