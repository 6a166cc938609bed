package surface

import (
	"fmt"
	"math"
)

// Defaults used by the command-line example.
const (
	DefaultRadius     = 1.0
	DefaultWidth      = 0.3
	DefaultResolution = 100
)

// MinResolution is the smallest grid that still admits a finite difference
// along each axis.
const MinResolution = 2

// ShapeParameters fully determines a sampled strip.
type ShapeParameters struct {
	R float64 `json:"radius"`     // distance from the center to the strip midline
	W float64 `json:"width"`      // strip width
	N int     `json:"resolution"` // samples per parameter axis
}

// DefaultParameters returns R=1, W=0.3, N=100.
func DefaultParameters() ShapeParameters {
	return ShapeParameters{R: DefaultRadius, W: DefaultWidth, N: DefaultResolution}
}

// Validate checks that R and W are positive and finite and that N is at
// least MinResolution. The returned error wraps ErrInvalidParameter.
func (p ShapeParameters) Validate() error {
	if p.N < MinResolution {
		return fmt.Errorf("%w: resolution is %d, must be at least %d", ErrInvalidParameter, p.N, MinResolution)
	}
	if !positiveFinite(p.R) {
		return fmt.Errorf("%w: radius is %v, must be positive and finite", ErrInvalidParameter, p.R)
	}
	if !positiveFinite(p.W) {
		return fmt.Errorf("%w: width is %v, must be positive and finite", ErrInvalidParameter, p.W)
	}
	return nil
}

// NaN fails the comparison.
func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
