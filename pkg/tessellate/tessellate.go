// Package tessellate turns sampled strips into triangle meshes for a
// renderer. One mesh is produced per strip.
package tessellate

import (
	"fmt"
	"math"

	"github.com/chazu/mobius/pkg/estimate"
	"github.com/chazu/mobius/pkg/kernel"
	"github.com/chazu/mobius/pkg/scene"
	"github.com/chazu/mobius/pkg/strip"
)

// Tessellate splits every grid cell of s into two triangles. Vertices are
// the mesh samples in row-major order; normals are the unit finite-difference
// surface normals at those samples, or zero where the normal vanishes.
func Tessellate(s *strip.Strip, name string) (*kernel.Mesh, error) {
	if s == nil {
		return nil, fmt.Errorf("tessellate: strip %q is nil", name)
	}
	m := s.Mesh()
	field, err := estimate.Normals(s.Grid(), m)
	if err != nil {
		return nil, fmt.Errorf("tessellate: normals for %q: %w", name, err)
	}

	rows, cols := m.Dims()
	if uint64(rows)*uint64(cols) > math.MaxUint32 {
		return nil, fmt.Errorf("tessellate: %d×%d grid exceeds 32-bit indices", rows, cols)
	}

	numVerts := rows * cols
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := m.Point(i, j)
			vertices = append(vertices, float32(p.X), float32(p.Y), float32(p.Z))

			n := field.At(i, j)
			if l := n.Length(); l > 0 {
				n = n.MulScalar(1 / l)
			}
			normals = append(normals, float32(n.X), float32(n.Y), float32(n.Z))
		}
	}

	indices := make([]uint32, 0, (rows-1)*(cols-1)*6)
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a := uint32(i*cols + j)
			b := a + 1
			c := a + uint32(cols)
			d := c + 1
			indices = append(indices, a, b, d, a, d, c)
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
		PartName: name,
	}, nil
}

// TessellateScene produces one mesh per part, in declaration order.
func TessellateScene(sc *scene.Scene) ([]*kernel.Mesh, error) {
	if sc == nil {
		return nil, nil
	}
	var meshes []*kernel.Mesh
	for _, p := range sc.Parts() {
		m, err := Tessellate(p.Strip, p.Name)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}
