// SPDX-License-Identifier: MIT

package transform

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spacetime/core"
)

// Metric returns η = diag(1, −1, −1, −1), the Minkowski metric in CT, X, Y, Z order.
func Metric() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, -1,
	})
}

// MatrixOf returns the 4×4 matrix Λ of l.ApplyVector: column j is the image
// of the j-th basis vector, so Λ·v equals l.ApplyVector(v).
//
// Complexity: four ApplyVector calls and a 16-element allocation.
func MatrixOf(l Linear) *mat.Dense {
	return matrixFrom(l.ApplyVector)
}

// ReverseMatrixOf returns the matrix of l.ReverseVector, the inverse of MatrixOf(l).
func ReverseMatrixOf(l Linear) *mat.Dense {
	return matrixFrom(l.ReverseVector)
}

// ApplyMatrix returns m·v for a 4×4 matrix m.
func ApplyMatrix(m mat.Matrix, v core.FourVector) core.FourVector {
	c := v.Components()
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(4, c[:]))
	return core.NewFourVector(out.AtVec(0), out.AtVec(1), out.AtVec(2), out.AtVec(3))
}

// PreservesMetric reports whether m is a Lorentz matrix, i.e. mᵀ·η·m equals
// η within eps. Any non-4×4 matrix is rejected.
func PreservesMetric(m mat.Matrix, eps float64) bool {
	if r, c := m.Dims(); r != 4 || c != 4 {
		return false
	}
	eta := Metric()
	var tmp, got mat.Dense
	tmp.Mul(m.T(), eta)
	got.Mul(&tmp, m)
	return mat.EqualApprox(&got, eta, eps)
}

func matrixFrom(f func(core.FourVector) core.FourVector) *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for j, axis := range core.Axes() {
		basis, _ := core.FourVectorAlong(axis, 1)
		col := f(basis).Components()
		m.SetCol(j, col[:])
	}
	return m
}
