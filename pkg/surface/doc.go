// Package surface samples the Möbius strip embedding over a uniform
// parameter grid. The resulting Mesh is three coordinate matrices, one per
// axis, indexed [v index, u index].
//
// The u samples include both 0 and 2π, so the seam column is sampled twice.
// The estimators downstream count it twice; this is a known discretization
// artifact of the sampling convention and is kept for reproducibility.
package surface
