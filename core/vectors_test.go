// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/core"
)

func TestVelocity_RangeEnforcement(t *testing.T) {
	bad := []struct {
		name    string
		x, y, z float64
	}{
		{"magnitude exactly one", 0.6, 0.8, 0},
		{"component at +1", 1, 0, 0},
		{"component at -1", 0, -1, 0},
		{"component above one", 0, 0, 1.5},
		{"component below minus one", -2, 0, 0},
		{"magnitude above one", 0.7, 0.7, 0.3},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewVelocity(tc.x, tc.y, tc.z)
			require.ErrorIs(t, err, core.ErrSpeedLimit)
		})
	}

	_, err := core.NewVelocity(math.NaN(), 0, 0)
	require.ErrorIs(t, err, core.ErrNonFinite)

	_, err = core.VelocityAlong(core.CT, 0.5)
	require.ErrorIs(t, err, core.ErrNotSpatial)
}

func TestVelocity_GammaAndDirection(t *testing.T) {
	v, err := core.NewVelocity(0.6, 0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.6, v.Beta(), tol)
	require.InDelta(t, 1.25, v.Gamma(), tol)

	d, err := v.Direction()
	require.NoError(t, err)
	requireThree(t, core.NewThreeVector(1, 0, 0), d.Vector(), tol)

	var rest core.Velocity
	require.True(t, rest.IsZero())
	require.Equal(t, 1.0, rest.Gamma())
	_, err = rest.Direction()
	require.ErrorIs(t, err, core.ErrZeroVector)

	// a pseudo input is re-tagged polar
	w, err := core.VelocityOf(core.NewPseudoVector(0.1, 0.2, 0.3))
	require.NoError(t, err)
	require.Equal(t, core.Polar, w.Vector().Kind())
}

func TestDirection_IsUnit(t *testing.T) {
	d, err := core.NewDirection(3, 0, 4)
	require.NoError(t, err)
	requireThree(t, core.NewThreeVector(0.6, 0, 0.8), d.Vector(), tol)
	requireThree(t, core.NewThreeVector(-0.6, 0, -0.8), d.Reversed().Vector(), tol)
	requireThree(t, core.NewThreeVector(3, 0, 4), d.Times(5), tol)

	_, err = core.NewDirection(0, 0, 0)
	require.ErrorIs(t, err, core.ErrZeroVector)

	_, err = core.NewDirection(math.Inf(1), 0, 0)
	require.ErrorIs(t, err, core.ErrNonFinite)

	z, err := core.DirectionAlong(core.Z)
	require.NoError(t, err)
	requireThree(t, core.NewThreeVector(0, 0, 1), z.Vector(), 0)
}

func TestAxisAngle_IsPseudo(t *testing.T) {
	a := core.NewAxisAngle(0, 0, math.Pi/2)
	require.Equal(t, core.Pseudo, a.Vector().Kind())
	require.InDelta(t, math.Pi/2, a.Angle(), tol)

	u, err := a.UnitAxis()
	require.NoError(t, err)
	requireThree(t, core.NewThreeVector(0, 0, 1), u, tol)

	b := core.AxisAngleOf(core.NewThreeVector(1, 0, 0))
	require.Equal(t, core.Pseudo, b.Vector().Kind())

	_, err = core.AxisAngle{}.UnitAxis()
	require.ErrorIs(t, err, core.ErrZeroVector)

	_, err = core.AxisAngleAlong(core.CT, 1)
	require.ErrorIs(t, err, core.ErrNotSpatial)
}

func TestPositionAccelerationPhaseGradient(t *testing.T) {
	p := core.NewPosition(1, 2, 2)
	require.InDelta(t, 3.0, p.DistanceTo(core.NewPosition(0, 0, 0)), tol)
	require.Equal(t, core.Polar, core.PositionOf(core.NewPseudoVector(1, 0, 0)).Vector().Kind())

	a := core.NewAcceleration(0, 0, 9.8)
	require.Equal(t, 9.8, a.Vector().Z())

	k := core.NewPhaseGradient(3, 4, 0)
	require.InDelta(t, 5.0, k.Magnitude(), tol)
}
