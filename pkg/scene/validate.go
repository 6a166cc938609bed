package scene

import "fmt"

// CoarseResolution is the resolution below which estimates are flagged as
// unreliable.
const CoarseResolution = 10

// Warning is an advisory finding about a part. Warnings never block
// measurement or rendering.
type Warning struct {
	Part    string
	Code    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (part: %s)", w.Code, w.Message, w.Part)
}

// Validate runs the advisory checks over every part.
func Validate(sc *Scene) []Warning {
	var warnings []Warning
	for _, p := range sc.parts {
		warnings = append(warnings, validateResolution(p)...)
		warnings = append(warnings, validateWidth(p)...)
	}
	return warnings
}

// validateResolution flags grids too coarse for the seam artifact and the
// one-sided boundary differences to be negligible.
func validateResolution(p Part) []Warning {
	n := p.Strip.Parameters().N
	if n >= CoarseResolution {
		return nil
	}
	return []Warning{{
		Part:    p.Name,
		Code:    "COARSE_RESOLUTION",
		Message: fmt.Sprintf("resolution %d is below %d; estimates are dominated by discretization error", n, CoarseResolution),
	}}
}

// validateWidth flags strips whose edge reaches the center axis (w/2 ≥ R),
// where the embedding self-intersects, and strips wider than their radius.
func validateWidth(p Part) []Warning {
	sp := p.Strip.Parameters()
	switch {
	case sp.W/2 >= sp.R:
		return []Warning{{
			Part:    p.Name,
			Code:    "SELF_INTERSECTING",
			Message: fmt.Sprintf("half width %.4f reaches radius %.4f; the surface passes through its axis", sp.W/2, sp.R),
		}}
	case sp.W > sp.R:
		return []Warning{{
			Part:    p.Name,
			Code:    "WIDE_STRIP",
			Message: fmt.Sprintf("width %.4f exceeds radius %.4f", sp.W, sp.R),
		}}
	}
	return nil
}
