// Package strip is the construction API for a sampled Möbius strip: it
// validates the shape once, builds the mesh once, and exposes the area and
// boundary estimates over that immutable mesh.
package strip

import (
	"fmt"

	"github.com/chazu/mobius/pkg/estimate"
	"github.com/chazu/mobius/pkg/surface"
)

// Strip is an immutable sampled Möbius strip. It is safe for concurrent
// use.
type Strip struct {
	params surface.ShapeParameters
	grid   surface.ParameterGrid
	mesh   *surface.Mesh
}

// Measurements bundles every estimate for one strip.
type Measurements struct {
	SurfaceArea    float64 `json:"surfaceArea"`
	EdgeLength     float64 `json:"edgeLength"`
	BoundaryLength float64 `json:"boundaryLength"`
}

// New builds a strip of center radius r and width w sampled n times along
// each parameter axis. Invalid parameters fail with an error wrapping
// surface.ErrInvalidParameter.
func New(r, w float64, n int) (*Strip, error) {
	return NewFromParameters(surface.ShapeParameters{R: r, W: w, N: n})
}

// NewFromParameters is New for a ShapeParameters value.
func NewFromParameters(p surface.ShapeParameters) (*Strip, error) {
	grid, mesh, err := surface.Build(p)
	if err != nil {
		return nil, fmt.Errorf("strip: %w", err)
	}
	return &Strip{params: p, grid: grid, mesh: mesh}, nil
}

// Parameters returns the shape parameters the strip was built from.
func (s *Strip) Parameters() surface.ShapeParameters { return s.params }

// Grid returns the parameter samples. Callers must not modify the slices.
func (s *Strip) Grid() surface.ParameterGrid { return s.grid }

// Mesh returns the sampled coordinates. Callers must not modify them.
func (s *Strip) Mesh() *surface.Mesh { return s.mesh }

// SurfaceArea returns the finite-difference estimate of the strip's area.
func (s *Strip) SurfaceArea() float64 {
	a, err := estimate.SurfaceArea(s.grid, s.mesh)
	if err != nil {
		// Unreachable: construction validated the grid and mesh.
		panic(fmt.Sprintf("strip: surface area: %v", err))
	}
	return a
}

// EdgeLength returns the doubled polyline length of the edge v = +w/2.
func (s *Strip) EdgeLength() float64 {
	e, err := estimate.EdgeLength(s.params.R, s.params.W, s.grid.U)
	if err != nil {
		panic(fmt.Sprintf("strip: edge length: %v", err))
	}
	return e
}

// BoundaryLength returns the polyline length of the single boundary curve
// traced over u in [0, 4π] at the strip's u spacing.
func (s *Strip) BoundaryLength() float64 {
	b, err := estimate.TraceBoundary(s.params.R, s.params.W, s.params.N)
	if err != nil {
		panic(fmt.Sprintf("strip: boundary length: %v", err))
	}
	return b
}

// Measure computes every estimate.
func (s *Strip) Measure() Measurements {
	return Measurements{
		SurfaceArea:    s.SurfaceArea(),
		EdgeLength:     s.EdgeLength(),
		BoundaryLength: s.BoundaryLength(),
	}
}
