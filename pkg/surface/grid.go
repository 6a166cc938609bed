package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ParameterGrid holds the u and v samples. Both are strictly increasing and
// evenly spaced with step range/(n-1).
type ParameterGrid struct {
	U []float64 `json:"u"` // [0, 2π], endpoints included
	V []float64 `json:"v"` // [-W/2, W/2], endpoints included
}

// NewParameterGrid samples both parameter axes for p.
func NewParameterGrid(p ShapeParameters) (ParameterGrid, error) {
	if err := p.Validate(); err != nil {
		return ParameterGrid{}, err
	}
	return ParameterGrid{
		U: SampleU(p.N),
		V: floats.Span(make([]float64, p.N), -p.W/2, p.W/2),
	}, nil
}

// SampleU returns n samples spanning [0, 2π] inclusive.
// It panics if n is less than 2.
func SampleU(n int) []float64 {
	return floats.Span(make([]float64, n), 0, 2*math.Pi)
}

// DU returns the spacing of the u samples.
func (g ParameterGrid) DU() float64 {
	return g.U[1] - g.U[0]
}

// DV returns the spacing of the v samples.
func (g ParameterGrid) DV() float64 {
	return g.V[1] - g.V[0]
}
