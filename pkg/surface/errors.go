package surface

import "errors"

// ErrInvalidParameter reports shape parameters that leave the grid spacing
// or the finite differences undefined.
var ErrInvalidParameter = errors.New("surface: invalid parameter")
