// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/core"
)

func TestAxis_OrderAndNames(t *testing.T) {
	require.Equal(t, []core.Axis{core.CT, core.X, core.Y, core.Z}, core.Axes())
	require.Equal(t, []core.Axis{core.X, core.Y, core.Z}, core.SpatialAxes())
	require.Equal(t, "ct", core.CT.String())
	require.Equal(t, "z", core.Z.String())
	require.Equal(t, "Axis(7)", core.Axis(7).String())

	require.False(t, core.CT.IsSpatial())
	require.True(t, core.Y.IsSpatial())
	require.False(t, core.Axis(-1).IsValid())
}

func TestAxis_RightHandRule(t *testing.T) {
	cases := []struct {
		axis core.Axis
		a, b core.Axis
	}{
		{core.X, core.Y, core.Z},
		{core.Y, core.Z, core.X},
		{core.Z, core.X, core.Y},
	}
	for _, tc := range cases {
		a, b, err := tc.axis.RightHandRule()
		require.NoError(t, err)
		require.Equal(t, tc.a, a, "first axis for %v", tc.axis)
		require.Equal(t, tc.b, b, "second axis for %v", tc.axis)

		// a×b must point along the axis itself
		ua, _ := core.ThreeVectorAlong(a, 1)
		ub, _ := core.ThreeVectorAlong(b, 1)
		got, ok := ua.Cross(ub).Axis()
		require.True(t, ok)
		require.Equal(t, tc.axis, got)
	}

	_, _, err := core.CT.RightHandRule()
	require.ErrorIs(t, err, core.ErrNotSpatial)
	_, _, err = core.Axis(9).RightHandRule()
	require.ErrorIs(t, err, core.ErrBadAxis)
}

func TestParityAndKind(t *testing.T) {
	require.Equal(t, 1.0, core.Even.Sign())
	require.Equal(t, -1.0, core.Odd.Sign())
	require.Equal(t, "odd", core.Odd.String())
	require.Equal(t, "pseudo", core.Pseudo.String())
	require.Equal(t, "polar", core.Polar.String())
}

func TestParseAxisAndParity(t *testing.T) {
	for in, want := range map[string]core.Axis{"ct": core.CT, "T": core.CT, " x ": core.X, "Y": core.Y, "z": core.Z} {
		got, err := core.ParseAxis(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := core.ParseAxis("w")
	require.ErrorIs(t, err, core.ErrBadAxis)

	p, err := core.ParseParity("ODD")
	require.NoError(t, err)
	require.Equal(t, core.Odd, p)
	p, err = core.ParseParity("+")
	require.NoError(t, err)
	require.Equal(t, core.Even, p)
	_, err = core.ParseParity("maybe")
	require.ErrorIs(t, err, core.ErrBadParity)
}
