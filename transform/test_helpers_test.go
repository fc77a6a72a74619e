// SPDX-License-Identifier: MIT
// Package transform_test contains shared fixtures for the transform tests.

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/transform"
)

// Tolerances.
const (
	tolInverse  = 1e-9 // round trips
	tolInterval = 1e-8 // interval invariance after several stages
	tolExact    = 1e-12
)

// Fixture events used by the interval tests.
var (
	eventA = core.NewEvent(10, 1, 2, 1)
	eventB = core.NewEvent(15, 3, 2, 5)
)

// sampleEvents spans all four quadrants plus the origin.
var sampleEvents = []core.Event{
	core.Origin(),
	eventA,
	eventB,
	core.NewEvent(-3, 0.5, -7, 2),
	core.NewEvent(1, 1, 1, 1),
	core.NewEvent(0, -4, 0, 9),
}

func mustVelocity(t testing.TB, x, y, z float64) core.Velocity {
	t.Helper()
	v, err := core.NewVelocity(x, y, z)
	require.NoError(t, err)
	return v
}

func mustRotation(t testing.TB, axis core.Axis, theta float64) transform.Rotation {
	t.Helper()
	r, err := transform.NewRotation(axis, theta)
	require.NoError(t, err)
	return r
}

func mustRotationOf(t testing.TB, x, y, z float64) transform.Rotation {
	t.Helper()
	r, err := transform.RotationOf(core.NewAxisAngle(x, y, z))
	require.NoError(t, err)
	return r
}

// interestingLinear returns one of each linear primitive plus a non-aligned rotation.
func interestingLinear(t testing.TB) map[string]transform.Linear {
	t.Helper()
	flipY, err := transform.ReflectionAlong(core.Y)
	require.NoError(t, err)
	return map[string]transform.Linear{
		"boost x":          transform.NewBoost(mustVelocity(t, 0.6, 0, 0)),
		"boost oblique":    transform.NewBoost(mustVelocity(t, 0.5, 0.1, 0.3)),
		"boost fast":       transform.NewBoost(mustVelocity(t, 0.0, -0.99, 0.1)),
		"rotation z":       mustRotation(t, core.Z, 0.7),
		"rotation x neg":   mustRotation(t, core.X, -2.1),
		"rotation oblique": mustRotationOf(t, 0.1, 0.4, 0.5),
		"reflection all":   transform.AllAxes(),
		"reflection y":     flipY,
	}
}
