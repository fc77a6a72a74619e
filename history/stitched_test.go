// SPDX-License-Identifier: MIT
package history_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/history"
)

// marker returns a history whose x component identifies the leg.
func marker(id float64) history.History {
	return history.Func(func(l float64) core.Event { return core.NewEvent(l, id, 0, 0) })
}

func TestStitched_SelectsLegByBranchPoint(t *testing.T) {
	b := history.Start(marker(1))
	require.NoError(t, b.AddLeg(marker(2), 5))
	h, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, 1.0, h.Event(4.9).X(), "before the branch point: leg 1")
	require.Equal(t, 2.0, h.Event(5.1).X(), "after the branch point: leg 2")
	require.Equal(t, 2.0, h.Event(5).X(), "the branch point belongs to the new leg")
	require.Equal(t, 1.0, h.Event(-1e300).X(), "the first leg covers −∞")

	require.Equal(t, 0, h.Leg(4.9))
	require.Equal(t, 1, h.Leg(5.1))
	require.Equal(t, []float64{math.Inf(-1), 5}, h.BranchPoints())
}

func TestStitched_ManyLegs(t *testing.T) {
	b := history.Start(marker(0))
	for i, branch := range []float64{-2, 0, 3.5, 10} {
		require.NoError(t, b.AddLeg(marker(float64(i+1)), branch))
	}
	h, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 5, h.Len())

	cases := map[float64]float64{-5: 0, -2: 1, -1: 1, 0: 2, 3.4: 2, 3.5: 3, 9.99: 3, 10: 4, 1e9: 4}
	for lambda, want := range cases {
		require.Equal(t, want, h.Event(lambda).X(), "λ=%v", lambda)
	}
}

func TestStitched_OrderingErrors(t *testing.T) {
	b := history.Start(marker(1))
	require.NoError(t, b.AddLeg(marker(2), 5))

	require.ErrorIs(t, b.AddLeg(marker(3), 5), history.ErrBranchOrder, "equal is not strictly greater")
	require.ErrorIs(t, b.AddLeg(marker(3), 4), history.ErrBranchOrder)
	require.ErrorIs(t, b.AddLeg(marker(3), math.NaN()), history.ErrBadBranchPoint)
	require.ErrorIs(t, b.AddLeg(nil, 6), history.ErrNilHistory)

	// failures leave the builder untouched
	h, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())

	// −∞ is already taken by the first leg
	require.ErrorIs(t, history.Start(marker(1)).AddLeg(marker(2), math.Inf(-1)), history.ErrBranchOrder)

	_, err = history.Start(nil).Build()
	require.ErrorIs(t, err, history.ErrNilHistory)
}

func TestStitched_BuildSnapshots(t *testing.T) {
	b := history.Start(marker(1))
	h, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, b.AddLeg(marker(2), 0))
	require.Equal(t, 1, h.Len(), "later legs do not leak into a built history")
	require.Equal(t, 1.0, h.Event(10).X())
}

func TestStitchedTimelike_ProperTimeAccumulates(t *testing.T) {
	out := history.NewUniformVelocity(history.Origin(), mustVelocity(t, 0.6, 0, 0))
	rest := history.NewStationary(history.BaseOn(out, 10))
	b := history.StartTimelike(out)
	require.NoError(t, b.AddLeg(rest, 10))
	h, err := b.Build()
	require.NoError(t, err)

	// moving leg: τ = ct/1.25; resting leg: τ grows 1:1 from 8
	require.InDelta(t, 4.0, h.Tau(5), tol)
	require.InDelta(t, 8.0, h.Tau(10), tol)
	require.InDelta(t, 18.0, h.Tau(20), tol)

	require.InDelta(t, 5.0, h.CT(4), tol)
	require.InDelta(t, 20.0, h.CT(18), tol)
	requireEvent(t, core.NewEvent(20, 6, 0, 0), h.Event(20), tol)
	requireEvent(t, core.NewEvent(20, 6, 0, 0), h.EventAtTau(18), tol)
	require.Equal(t, []float64{math.Inf(-1), 10}, h.BranchPoints())

	require.ErrorIs(t, b.AddLeg(rest, 10), history.ErrBranchOrder)
	require.ErrorIs(t, b.AddLeg(nil, 11), history.ErrNilHistory)

	_, err = history.StartTimelike(nil).Build()
	require.ErrorIs(t, err, history.ErrNilHistory)
}

func TestStitchedTimelike_ShiftsLegClocks(t *testing.T) {
	out := history.NewUniformVelocity(history.Origin(), mustVelocity(t, 0.6, 0, 0))
	// anchored with τ = 0 although 8 units of proper time have passed
	rest := history.NewStationary(history.BaseAt(core.NewEvent(10, 6, 0, 0), 0))
	b := history.StartTimelike(out)
	require.NoError(t, b.AddLeg(rest, 10))
	h, err := b.Build()
	require.NoError(t, err)

	require.InDelta(t, 7.992, h.Tau(9.99), tol)
	require.InDelta(t, 8.0, h.Tau(10), tol)
	require.InDelta(t, 18.0, h.Tau(20), tol)

	require.InDelta(t, 14.0, h.CT(12), tol)
	require.InDelta(t, 5.0, h.CT(4), tol)
	requireEvent(t, core.NewEvent(14, 6, 0, 0), h.EventAtTau(12), tol)

	// a third leg continues from the shifted clock
	back := history.NewUniformVelocity(history.BaseAt(core.NewEvent(20, 6, 0, 0), 100), mustVelocity(t, -0.6, 0, 0))
	require.NoError(t, b.AddLeg(back, 20))
	h, err = b.Build()
	require.NoError(t, err)
	require.InDelta(t, 26.0, h.Tau(30), tol)
	require.InDelta(t, 30.0, h.CT(26), tol)
}
