// Package kernel defines the boundary between the geometry core and
// whatever displays its output. The core produces flat triangle meshes and
// hands them to a Renderer; nothing in the core depends on rendering
// succeeding.
package kernel

// Renderer is a one-shot sink for a finished triangle mesh.
// Implementations (sdfx STL output) may write files or open viewers.
type Renderer interface {
	Render(m *Mesh) error
}

// RenderFunc adapts an ordinary function to the Renderer interface.
type RenderFunc func(m *Mesh) error

// Render calls f(m).
func (f RenderFunc) Render(m *Mesh) error {
	return f(m)
}
