// Package estimate approximates the surface area and boundary length of a
// sampled Möbius strip.
//
// Surface area is a point-wise Riemann sum of the area element ‖∂r/∂u ×
// ∂r/∂v‖ over the parameter grid, with partial derivatives taken by finite
// differences: central at interior samples, one-sided at the first and last
// sample of each axis. Truncation error is O(du² + dv²) in the interior and
// O(du + dv) on the boundary rows and columns.
//
// Boundary length is a polyline sum over the edge v = +w/2. The strip has a
// single boundary curve that closes after u = 4π; EdgeLength doubles the
// [0, 2π] edge, TraceBoundary walks the whole curve.
package estimate
