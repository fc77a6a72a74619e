// SPDX-License-Identifier: MIT
package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spacetime/core"
	"github.com/katalvlaran/spacetime/transform"
)

func TestMatrixOf_IsLorentz(t *testing.T) {
	for name, l := range interestingLinear(t) {
		t.Run(name, func(t *testing.T) {
			m := transform.MatrixOf(l)
			require.True(t, transform.PreservesMetric(m, 1e-9), "Λ = %v", mat.Formatted(m))

			// Λ·v agrees with ApplyVector
			for _, e := range sampleEvents {
				v := e.FromOrigin()
				require.True(t, transform.ApplyMatrix(m, v).EqualsWithTolerance(l.ApplyVector(v), 1e-9))
			}

			// the reverse matrix is the inverse
			var prod mat.Dense
			prod.Mul(transform.ReverseMatrixOf(l), m)
			require.True(t, mat.EqualApprox(&prod, eye4(), 1e-9))
		})
	}
}

func TestMatrixOf_PipelineIsProduct(t *testing.T) {
	b := transform.NewBoost(mustVelocity(t, 0.5, 0.1, 0.3))
	r := mustRotationOf(t, 0.1, 0.4, 0.5)
	f := transform.AllAxes()
	p := transform.NewLinearPipeline(b, r, f)

	// apply order b, r, f means Λ = F·R·B
	var rb, frb mat.Dense
	rb.Mul(transform.MatrixOf(r), transform.MatrixOf(b))
	frb.Mul(transform.MatrixOf(f), &rb)
	require.True(t, mat.EqualApprox(transform.MatrixOf(p), &frb, 1e-12))
}

func TestMatrixOf_BoostEntries(t *testing.T) {
	b, err := transform.BoostAlong(core.X, 0.6)
	require.NoError(t, err)
	want := mat.NewDense(4, 4, []float64{
		1.25, -0.75, 0, 0,
		-0.75, 1.25, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	require.True(t, mat.EqualApprox(want, transform.MatrixOf(b), 1e-12))
}

func TestPreservesMetric_Rejects(t *testing.T) {
	require.False(t, transform.PreservesMetric(mat.NewDense(3, 3, nil), 1e-9))

	scale := eye4()
	scale.Scale(2, scale)
	require.False(t, transform.PreservesMetric(scale, 1e-9))
	require.True(t, transform.PreservesMetric(transform.Metric(), 0))
}

func eye4() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}
