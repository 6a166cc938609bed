// Package sdfx renders kernel meshes with the github.com/deadsy/sdfx CAD
// library: meshes are converted to sdfx triangles and written as STL.
package sdfx

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/mobius/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Renderer = (*STLRenderer)(nil)

// ErrEmptyMesh is returned when there is nothing to render.
var ErrEmptyMesh = errors.New("sdfx: mesh has no triangles")

// Triangles converts a flat kernel mesh into sdfx triangles.
func Triangles(m *kernel.Mesh) ([]*sdf.Triangle3, error) {
	if m == nil {
		return nil, ErrEmptyMesh
	}
	if len(m.Vertices)%3 != 0 {
		return nil, fmt.Errorf("sdfx: vertex array length %d is not a multiple of 3", len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("sdfx: index array length %d is not a multiple of 3", len(m.Indices))
	}

	vc := m.VertexCount()
	tris := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for t := 0; t < m.TriangleCount(); t++ {
		var tri sdf.Triangle3
		for k := 0; k < 3; k++ {
			idx := int(m.Indices[3*t+k])
			if idx >= vc {
				return nil, fmt.Errorf("sdfx: triangle %d references vertex %d of %d", t, idx, vc)
			}
			p := m.Vertex(idx)
			tri[k] = v3.Vec{X: p[0], Y: p[1], Z: p[2]}
		}
		tris = append(tris, &tri)
	}
	return tris, nil
}

// BoundingBox returns the axis-aligned bounds of the mesh vertices.
func BoundingBox(m *kernel.Mesh) sdf.Box3 {
	if m == nil || m.IsEmpty() {
		return sdf.Box3{}
	}
	lo := v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Vertex(i)
		lo = v3.Vec{X: math.Min(lo.X, p[0]), Y: math.Min(lo.Y, p[1]), Z: math.Min(lo.Z, p[2])}
		hi = v3.Vec{X: math.Max(hi.X, p[0]), Y: math.Max(hi.Y, p[1]), Z: math.Max(hi.Z, p[2])}
	}
	return sdf.Box3{Min: lo, Max: hi}
}

// STLRenderer writes each rendered mesh to an STL file at Path,
// replacing any previous contents.
type STLRenderer struct {
	Path string
}

// NewSTLRenderer returns a renderer writing to path.
func NewSTLRenderer(path string) *STLRenderer {
	return &STLRenderer{Path: path}
}

// Render writes m as STL.
func (r *STLRenderer) Render(m *kernel.Mesh) error {
	tris, err := Triangles(m)
	if err != nil {
		return err
	}
	if len(tris) == 0 {
		return ErrEmptyMesh
	}
	if err := render.SaveSTL(r.Path, tris); err != nil {
		return fmt.Errorf("sdfx: writing %s: %w", r.Path, err)
	}
	return nil
}
