// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spacetime/core"
)

// Tolerances used across core tests.
const (
	tol      = 1e-12
	tolLoose = 1e-9
)

// requireEvent fails unless got equals want within eps.
func requireEvent(t *testing.T, want, got core.Event, eps float64) {
	t.Helper()
	require.Truef(t, want.EqualsWithTolerance(got, eps), "want %v, got %v", want, got)
}

// requireThree fails unless got equals want within eps.
func requireThree(t *testing.T, want, got core.ThreeVector, eps float64) {
	t.Helper()
	require.Truef(t, want.EqualsWithTolerance(got, eps), "want %v, got %v", want, got)
}
