package util

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

func vec(x []float32) blas32.Vector {
	return blas32.Vector{N: len(x), Inc: 1, Data: x}
}

// dot product of two vectors of the same length
func Dot(x, y []float32) float32 {
	return blas32.Dot(vec(x), vec(y))
}

// Saxpy updates x in place: x += g * y
func Saxpy(x []float32, g float32, y []float32) {
	blas32.Axpy(g, vec(y), vec(x))
}

// euclidean length of the vector
func Norm(x []float32) float32 {
	return blas32.Nrm2(vec(x))
}

// Unit scales x in place to unit length. A zero vector is left as is.
func Unit(x []float32) {
	l := Norm(x)
	if l == 0 {
		return
	}
	blas32.Scal(1/l, vec(x))
}

// MatVec writes into out the dot product of x with each row of the row
// major rows*len(x) matrix data.
func MatVec(data []float32, rows int, x []float32, out []float32) {
	if rows == 0 {
		return
	}
	a := blas32.General{Rows: rows, Cols: len(x), Stride: len(x), Data: data}
	blas32.Gemv(blas.NoTrans, 1, a, vec(x), 0, vec(out))
}
