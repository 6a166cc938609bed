package surface

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/mat"
)

// Embed maps the parameter pair (u, v) onto the Möbius strip of center
// radius r:
//
//	x = (r + v·cos(u/2))·cos(u)
//	y = (r + v·cos(u/2))·sin(u)
//	z = v·sin(u/2)
func Embed(r, u, v float64) v3.Vec {
	d := r + v*math.Cos(u/2)
	return v3.Vec{
		X: d * math.Cos(u),
		Y: d * math.Sin(u),
		Z: v * math.Sin(u/2),
	}
}

// Mesh is the sampled embedding. X.At(i, j), Y.At(i, j), Z.At(i, j) is the
// embedding of (U[j], V[i]). A Mesh is never modified after Build returns it.
type Mesh struct {
	X *mat.Dense
	Y *mat.Dense
	Z *mat.Dense
}

// Build validates p, samples the parameter grid and evaluates the
// embedding at every (u, v) pair of the outer product.
func Build(p ShapeParameters) (ParameterGrid, *Mesh, error) {
	grid, err := NewParameterGrid(p)
	if err != nil {
		return ParameterGrid{}, nil, err
	}
	return grid, sample(p.R, grid), nil
}

func sample(r float64, grid ParameterGrid) *Mesh {
	rows, cols := len(grid.V), len(grid.U)
	m := &Mesh{
		X: mat.NewDense(rows, cols, nil),
		Y: mat.NewDense(rows, cols, nil),
		Z: mat.NewDense(rows, cols, nil),
	}
	for i, v := range grid.V {
		for j, u := range grid.U {
			p := Embed(r, u, v)
			m.X.Set(i, j, p.X)
			m.Y.Set(i, j, p.Y)
			m.Z.Set(i, j, p.Z)
		}
	}
	return m
}

// Dims returns the number of v samples (rows) and u samples (columns).
func (m *Mesh) Dims() (rows, cols int) {
	return m.X.Dims()
}

// Point returns the sample at row i, column j.
func (m *Mesh) Point(i, j int) v3.Vec {
	return v3.Vec{X: m.X.At(i, j), Y: m.Y.At(i, j), Z: m.Z.At(i, j)}
}
