// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spacetime/core"
)

// CheckInterval verifies that l preserves the Minkowski square of v within eps.
// It returns an error wrapping ErrInvariantBroken otherwise.
func CheckInterval(l Linear, v core.FourVector, eps float64) error {
	before, after := v.Square(), l.ApplyVector(v).Square()
	if math.Abs(after-before) >= eps {
		return fmt.Errorf("CheckInterval(%v): square %g became %g: %w", l, before, after, ErrInvariantBroken)
	}
	return nil
}

// CheckRoundTrip verifies Reverse(Apply(e)) == e and Apply(Reverse(e)) == e
// within eps. It returns an error wrapping ErrNotInverse otherwise.
func CheckRoundTrip(t Transform, e core.Event, eps float64) error {
	if got := t.Reverse(t.Apply(e)); !got.EqualsWithTolerance(e, eps) {
		return fmt.Errorf("CheckRoundTrip(%v): reverse∘apply gave %v for %v: %w", t, got, e, ErrNotInverse)
	}
	if got := t.Apply(t.Reverse(e)); !got.EqualsWithTolerance(e, eps) {
		return fmt.Errorf("CheckRoundTrip(%v): apply∘reverse gave %v for %v: %w", t, got, e, ErrNotInverse)
	}
	return nil
}
