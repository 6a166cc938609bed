package kernel

import (
	"errors"
	"testing"
)

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

func TestMeshVertex(t *testing.T) {
	m := &Mesh{Vertices: []float32{0, 0, 0, 1.5, -2, 3}}
	if got := m.Vertex(1); got != [3]float64{1.5, -2, 3} {
		t.Errorf("Vertex(1) = %v, want [1.5 -2 3]", got)
	}
}

// --- Renderer adapter ---

func TestRenderFunc(t *testing.T) {
	var got *Mesh
	var r Renderer = RenderFunc(func(m *Mesh) error {
		got = m
		return nil
	})

	m := &Mesh{PartName: "strip"}
	if err := r.Render(m); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != m {
		t.Error("RenderFunc did not receive the mesh")
	}
}

func TestRenderFuncPropagatesError(t *testing.T) {
	want := errors.New("display unavailable")
	r := RenderFunc(func(*Mesh) error { return want })
	if err := r.Render(&Mesh{}); !errors.Is(err, want) {
		t.Errorf("Render() error = %v, want %v", err, want)
	}
}
