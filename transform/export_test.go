// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/spacetime/core"

// Test bridge: exposes the two rotation kernels so transform_test can check
// that the coordinate-axis shortcut and Rodrigues' formula agree.

// PlaneRotate_TestOnly runs the coordinate-axis kernel with φ = s·θ.
func PlaneRotate_TestOnly(r Rotation, v core.ThreeVector, s float64) core.ThreeVector {
	return r.plane(v, s*r.theta)
}

// RodriguesRotate_TestOnly runs the general kernel with φ = s·θ.
func RodriguesRotate_TestOnly(r Rotation, v core.ThreeVector, s float64) core.ThreeVector {
	return r.rodrigues(v, s*r.theta)
}

// IsAligned_TestOnly reports whether r takes the coordinate-axis shortcut.
func IsAligned_TestOnly(r Rotation) bool { return r.aligned }
