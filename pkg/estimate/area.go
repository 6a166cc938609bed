package estimate

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/mat"

	"github.com/chazu/mobius/pkg/surface"
)

// NormalField holds the unnormalized surface normal ∂r/∂u × ∂r/∂v at
// every grid sample.
type NormalField struct {
	NX *mat.Dense
	NY *mat.Dense
	NZ *mat.Dense
}

// At returns the normal at row i, column j.
func (f NormalField) At(i, j int) v3.Vec {
	return v3.Vec{X: f.NX.At(i, j), Y: f.NY.At(i, j), Z: f.NZ.At(i, j)}
}

// Normals differentiates the mesh coordinates and crosses the u and v
// tangents at every sample.
func Normals(grid surface.ParameterGrid, m *surface.Mesh) (NormalField, error) {
	if err := checkShape(grid, m); err != nil {
		return NormalField{}, err
	}
	du, dv := grid.DU(), grid.DV()

	xu, xv := GradientU(m.X, du), GradientV(m.X, dv)
	yu, yv := GradientU(m.Y, du), GradientV(m.Y, dv)
	zu, zv := GradientU(m.Z, du), GradientV(m.Z, dv)

	rows, cols := m.Dims()
	f := NormalField{
		NX: mat.NewDense(rows, cols, nil),
		NY: mat.NewDense(rows, cols, nil),
		NZ: mat.NewDense(rows, cols, nil),
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			f.NX.Set(i, j, yu.At(i, j)*zv.At(i, j)-zu.At(i, j)*yv.At(i, j))
			f.NY.Set(i, j, zu.At(i, j)*xv.At(i, j)-xu.At(i, j)*zv.At(i, j))
			f.NZ.Set(i, j, xu.At(i, j)*yv.At(i, j)-yu.At(i, j)*xv.At(i, j))
		}
	}
	return f, nil
}

// AreaElements returns the magnitude of the surface normal at every sample.
func AreaElements(grid surface.ParameterGrid, m *surface.Mesh) (*mat.Dense, error) {
	f, err := Normals(grid, m)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	el := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			el.Set(i, j, f.At(i, j).Length())
		}
	}
	return el, nil
}

// SurfaceArea approximates the area of m as the sum of all n² area
// elements scaled by the cell area du·dv.
func SurfaceArea(grid surface.ParameterGrid, m *surface.Mesh) (float64, error) {
	el, err := AreaElements(grid, m)
	if err != nil {
		return 0, fmt.Errorf("estimate: surface area: %w", err)
	}
	return mat.Sum(el) * grid.DU() * grid.DV(), nil
}

// checkShape rejects grids too small to difference and meshes that were
// not sampled on grid.
func checkShape(grid surface.ParameterGrid, m *surface.Mesh) error {
	if len(grid.U) < surface.MinResolution || len(grid.V) < surface.MinResolution {
		return fmt.Errorf("%w: grid is %d×%d, need at least %d samples per axis",
			surface.ErrInvalidParameter, len(grid.V), len(grid.U), surface.MinResolution)
	}
	if m == nil || m.X == nil || m.Y == nil || m.Z == nil {
		return fmt.Errorf("%w: mesh is missing coordinates", surface.ErrInvalidParameter)
	}
	for _, c := range []*mat.Dense{m.X, m.Y, m.Z} {
		if r, k := c.Dims(); r != len(grid.V) || k != len(grid.U) {
			return fmt.Errorf("%w: mesh is %d×%d, grid is %d×%d",
				surface.ErrInvalidParameter, r, k, len(grid.V), len(grid.U))
		}
	}
	return nil
}
