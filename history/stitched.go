// SPDX-License-Identifier: MIT

package history

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spacetime/core"
)

// leg is one piece of a stitched history, in effect from branch onward.
type leg[H History] struct {
	branch float64
	tau    float64 // accumulated proper time at branch; time-like legs only
	off    float64 // added to the leg's own proper time; time-like legs only
	h      H
}

// legs is an ordered list with strictly increasing branch points. The first
// leg's branch point is −∞.
type legs[H History] []leg[H]

func (ls legs[H]) last() leg[H] { return ls[len(ls)-1] }

// check validates a new branch point against the last one.
func (ls legs[H]) check(branch float64) error {
	if math.IsNaN(branch) {
		return fmt.Errorf("AddLeg(%g): %w", branch, ErrBadBranchPoint)
	}
	if prev := ls.last().branch; branch <= prev {
		return fmt.Errorf("AddLeg(%g) after %g: %w", branch, prev, ErrBranchOrder)
	}
	return nil
}

// index returns the leg with the greatest key ≤ x, where key picks the
// branch coordinate to compare against.
func (ls legs[H]) index(x float64, key func(leg[H]) float64) int {
	found := 0
	for i := 1; i < len(ls); i++ {
		if key(ls[i]) > x {
			break
		}
		found = i
	}
	return found
}

func byBranch[H History](l leg[H]) float64 { return l.branch }
func byTau[H History](l leg[H]) float64    { return l.tau }

// Builder assembles a Stitched history.
type Builder struct {
	legs legs[History]
	err  error
}

// Start begins a stitched history whose first leg covers (−∞, next branch).
func Start(first History) *Builder {
	b := &Builder{legs: legs[History]{{branch: math.Inf(-1), h: first}}}
	if first == nil {
		b.err = fmt.Errorf("Start: %w", ErrNilHistory)
	}
	return b
}

// AddLeg switches to h from λ = branch onward. The branch point must be
// strictly greater than the previous one; on failure the builder is unchanged.
func (b *Builder) AddLeg(h History, branch float64) error {
	if h == nil {
		return fmt.Errorf("AddLeg: %w", ErrNilHistory)
	}
	if err := b.legs.check(branch); err != nil {
		return err
	}
	b.legs = append(b.legs, leg[History]{branch: branch, h: h})
	return nil
}

// Build returns the stitched history. Later AddLeg calls do not affect it.
func (b *Builder) Build() (*Stitched, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Stitched{legs: append(legs[History](nil), b.legs...)}, nil
}

// Stitched is a History made of legs switching at branch points.
type Stitched struct {
	legs legs[History]
}

// Event returns the event of the leg in effect at λ.
func (s *Stitched) Event(lambda float64) core.Event {
	return s.legs[s.Leg(lambda)].h.Event(lambda)
}

// Leg returns the index of the leg in effect at λ.
func (s *Stitched) Leg(lambda float64) int { return s.legs.index(lambda, byBranch[History]) }

// Len returns the number of legs.
func (s *Stitched) Len() int { return len(s.legs) }

// BranchPoints returns the branch points in order; the first is −∞.
func (s *Stitched) BranchPoints() []float64 { return branchPoints(s.legs) }

// TimelikeBuilder assembles a StitchedTimelike history.
type TimelikeBuilder struct {
	legs legs[Timelike]
	err  error
}

// StartTimelike begins a stitched time-like history.
func StartTimelike(first Timelike) *TimelikeBuilder {
	b := &TimelikeBuilder{legs: legs[Timelike]{{branch: math.Inf(-1), tau: math.Inf(-1), h: first}}}
	if first == nil {
		b.err = fmt.Errorf("StartTimelike: %w", ErrNilHistory)
	}
	return b
}

// AddLeg switches to h from ct = branch onward. The proper time at the
// branch is read from the previous leg and h's own clock is shifted to
// match it, so τ accumulates along the legs whatever h's base τ is.
func (b *TimelikeBuilder) AddLeg(h Timelike, branch float64) error {
	if h == nil {
		return fmt.Errorf("AddLeg: %w", ErrNilHistory)
	}
	if b.err != nil {
		return b.err
	}
	if err := b.legs.check(branch); err != nil {
		return err
	}
	prev := b.legs.last()
	tau := prev.h.Tau(branch) + prev.off
	b.legs = append(b.legs, leg[Timelike]{branch: branch, tau: tau, off: tau - h.Tau(branch), h: h})
	return nil
}

// Build returns the stitched time-like history.
func (b *TimelikeBuilder) Build() (*StitchedTimelike, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &StitchedTimelike{legs: append(legs[Timelike](nil), b.legs...)}, nil
}

// StitchedTimelike is a Timelike history made of time-like legs.
type StitchedTimelike struct {
	legs legs[Timelike]
}

// Event returns the event of the leg in effect at ct.
func (s *StitchedTimelike) Event(ct float64) core.Event {
	return s.legs[s.Leg(ct)].h.Event(ct)
}

// Tau returns the proper time at ct, from the leg in effect at ct.
func (s *StitchedTimelike) Tau(ct float64) float64 {
	l := s.legs[s.Leg(ct)]
	return l.h.Tau(ct) + l.off
}

// CT returns the coordinate time at proper time τ, from the leg in effect at τ.
func (s *StitchedTimelike) CT(tau float64) float64 {
	l := s.legs[s.legs.index(tau, byTau[Timelike])]
	return l.h.CT(tau - l.off)
}

// EventAtTau returns the event at proper time τ.
func (s *StitchedTimelike) EventAtTau(tau float64) core.Event { return s.Event(s.CT(tau)) }

// Leg returns the index of the leg in effect at ct.
func (s *StitchedTimelike) Leg(ct float64) int { return s.legs.index(ct, byBranch[Timelike]) }

// Len returns the number of legs.
func (s *StitchedTimelike) Len() int { return len(s.legs) }

// BranchPoints returns the branch points in order; the first is −∞.
func (s *StitchedTimelike) BranchPoints() []float64 { return branchPoints(s.legs) }

func branchPoints[H History](ls legs[H]) []float64 {
	out := make([]float64, len(ls))
	for i, l := range ls {
		out[i] = l.branch
	}
	return out
}
