package estimate

import "gonum.org/v1/gonum/mat"

// GradientU returns ∂f/∂u, differentiating along each row of f with sample
// spacing du. It panics if f has fewer than 2 columns.
func GradientU(f *mat.Dense, du float64) *mat.Dense {
	rows, cols := f.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		gradient(out.RawRowView(i), f.RawRowView(i), du)
	}
	return out
}

// GradientV returns ∂f/∂v, differentiating down each column of f with
// sample spacing dv. It panics if f has fewer than 2 rows.
func GradientV(f *mat.Dense, dv float64) *mat.Dense {
	rows, cols := f.Dims()
	out := mat.NewDense(rows, cols, nil)
	src := make([]float64, rows)
	dst := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(src, j, f)
		gradient(dst, src, dv)
		out.SetCol(j, dst)
	}
	return out
}

// gradient writes the finite-difference derivative of src into dst.
func gradient(dst, src []float64, h float64) {
	n := len(src)
	dst[0] = (src[1] - src[0]) / h
	dst[n-1] = (src[n-1] - src[n-2]) / h
	for k := 1; k < n-1; k++ {
		dst[k] = (src[k+1] - src[k-1]) / (2 * h)
	}
}
