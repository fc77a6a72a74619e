// SPDX-License-Identifier: MIT

package newton

import "github.com/katalvlaran/spacetime/core"

// CoordinateTime is zero where the event's ct equals ct.
func CoordinateTime(ct float64) Criterion {
	return func(e core.Event) float64 { return e.CT() - ct }
}

// OnLightCone is zero on the light cone of apex, past or future: it is the
// interval squared between the event and apex. Which sheet is found depends
// on the guess.
func OnLightCone(apex core.Event) Criterion {
	return func(e core.Event) float64 { return e.IntervalSquared(apex) }
}

// PastLightCone is zero on the past light cone of apex only:
//
//	ct_apex − ct − |r − r_apex|
//
// The root is the retarded event, the one an observer at apex sees.
func PastLightCone(apex core.Event) Criterion {
	return func(e core.Event) float64 {
		return apex.CT() - e.CT() - e.Position().DistanceTo(apex.Position())
	}
}
