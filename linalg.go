package epsteinlib

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// vecEqEps is the absolute tolerance used to compare lattice vectors and
// detect the zero vector, matching the reference kernel's 2^-32.
const vecEqEps = 0x1p-32

// Dot computes the Euclidean dot product of u and v.
func Dot(u, v []float64) float64 {
	return floats.Dot(u, v)
}

// MatVecInt writes m*v into out, where m is a dim x dim row-major matrix
// and v holds integer coordinates (an odometer vector). out must already
// be sized to dim.
func MatVecInt(dim int, m []float64, v []int, out []float64) {
	for i := 0; i < dim; i++ {
		row := m[i*dim : i*dim+dim]
		s := 0.0
		for j := 0; j < dim; j++ {
			s += row[j] * float64(v[j])
		}
		out[i] = s
	}
}

// TransposeInPlace transposes the dim x dim row-major matrix m in place.
func TransposeInPlace(dim int, m []float64) {
	for i := 0; i < dim; i++ {
		for j := 0; j < i; j++ {
			m[dim*i+j], m[dim*j+i] = m[dim*j+i], m[dim*i+j]
		}
	}
}

// VecEq reports whether u and v are componentwise equal within vecEqEps.
func VecEq(u, v []float64) bool {
	for i := range u {
		if !scalar.EqualWithinAbs(u[i], v[i], vecEqEps) {
			return false
		}
	}
	return true
}

// VecIsZero reports whether every component of v is within vecEqEps of 0.
func VecIsZero(v []float64) bool {
	for _, c := range v {
		if !scalar.EqualWithinAbs(c, 0, vecEqEps) {
			return false
		}
	}
	return true
}

// InfNorm returns the infinity norm (maximum absolute row sum) of the
// dim x dim row-major matrix m.
func InfNorm(dim int, m []float64) float64 {
	d := mat.NewDense(dim, dim, append([]float64(nil), m...))
	return mat.Norm(d, math.Inf(1))
}

// Invert returns the inverse of the dim x dim row-major matrix a together
// with the absolute value of its determinant (the lattice cell volume).
// a is required invertible by caller contract (spec "domain" error kind);
// Invert panics if gonum reports a as singular.
func Invert(dim int, a []float64) (ainv []float64, vol float64) {
	src := mat.NewDense(dim, dim, append([]float64(nil), a...))
	vol = math.Abs(mat.Det(src))

	var inv mat.Dense
	if err := inv.Inverse(src); err != nil {
		panic(fmt.Sprintf("epsteinlib: generator matrix is not invertible: %v", err))
	}

	ainv = make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			ainv[i*dim+j] = inv.At(i, j)
		}
	}
	return ainv, vol
}
