package estimate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/chazu/mobius/pkg/surface"
)

// EdgeLength approximates the boundary length of the strip with center
// radius r and width w. It sums the chords of the edge v = +w/2 sampled at
// u and doubles the result; the edge v = -w/2 traces a congruent path.
func EdgeLength(r, w float64, u []float64) (float64, error) {
	p := surface.ShapeParameters{R: r, W: w, N: len(u)}
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("estimate: edge length: %w", err)
	}
	return 2 * polyline(r, w/2, u), nil
}

// TraceBoundary walks the single boundary curve v = +w/2 over u in [0, 4π]
// using 2n-1 samples, the same spacing as an n-sample grid over [0, 2π].
// It returns the polyline length without the doubling shortcut.
func TraceBoundary(r, w float64, n int) (float64, error) {
	p := surface.ShapeParameters{R: r, W: w, N: n}
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("estimate: boundary length: %w", err)
	}
	u := floats.Span(make([]float64, 2*n-1), 0, 4*math.Pi)
	return polyline(r, w/2, u), nil
}

// polyline sums the distances between consecutive embedded samples along
// the curve of constant v.
func polyline(r, v float64, u []float64) float64 {
	seg := make([]float64, len(u)-1)
	prev := surface.Embed(r, u[0], v)
	for k := 1; k < len(u); k++ {
		p := surface.Embed(r, u[k], v)
		seg[k-1] = p.Sub(prev).Length()
		prev = p
	}
	return floats.Sum(seg)
}
