// Command mobius estimates the surface area and boundary length of the
// example Möbius strip (R=1, w=0.3, n=100), prints both, and writes the
// mesh to mobius_strip.stl.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chazu/mobius/pkg/kernel"
	"github.com/chazu/mobius/pkg/kernel/sdfx"
	"github.com/chazu/mobius/pkg/strip"
	"github.com/chazu/mobius/pkg/surface"
	"github.com/chazu/mobius/pkg/tessellate"
)

// outputPath is where the rendered mesh is written.
const outputPath = "mobius_strip.stl"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Stdout, sdfx.NewSTLRenderer(outputPath), logger); err != nil {
		logger.Error("mobius failed", "err", err)
		os.Exit(1)
	}
}

// run prints the estimates for the example strip to w, then hands its mesh
// to r. Rendering failures are logged, not returned.
func run(w io.Writer, r kernel.Renderer, logger *slog.Logger) error {
	s, err := strip.NewFromParameters(surface.DefaultParameters())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Surface Area: %.4f\n", s.SurfaceArea())
	fmt.Fprintf(w, "Edge Length: %.4f\n", s.EdgeLength())

	visualize(s, r, logger)
	return nil
}

// visualize tessellates s and renders it.
func visualize(s *strip.Strip, r kernel.Renderer, logger *slog.Logger) {
	m, err := tessellate.Tessellate(s, "Mobius Strip")
	if err != nil {
		logger.Warn("tessellate failed", "err", err)
		return
	}
	if err := r.Render(m); err != nil {
		logger.Warn("render failed", "err", err)
		return
	}
	logger.Info("rendered mesh", "part", m.PartName, "triangles", m.TriangleCount())
}
