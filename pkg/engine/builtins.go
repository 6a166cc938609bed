package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/mobius/pkg/scene"
	"github.com/chazu/mobius/pkg/strip"
	"github.com/chazu/mobius/pkg/surface"
)

// MaxResolution caps the resolution a script may request. A strip samples
// three n×n grids, so unbounded input could exhaust memory, which is fatal
// to the process rather than an evaluation error.
const MaxResolution = 4096

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpStrip wraps a built strip so it can be passed between builtins.
type sexpStrip struct {
	s    *strip.Strip
	name string // set once the strip is registered with defstrip
}

func (s *sexpStrip) SexpString(ps *zygo.PrintState) string {
	p := s.s.Parameters()
	if s.name != "" {
		return fmt.Sprintf("(strip %q)", s.name)
	}
	return fmt.Sprintf("(mobius :radius %g :width %g :resolution %d)", p.R, p.W, p.N)
}
func (s *sexpStrip) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string and returns the
// keyword name without its prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a SexpInt or SexpFloat.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a SexpInt.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toStrip extracts the strip from a sexpStrip.
func toStrip(s zygo.Sexp) (*strip.Strip, error) {
	if v, ok := s.(*sexpStrip); ok {
		return v.s, nil
	}
	return nil, fmt.Errorf("expected strip, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// measure registers a one-argument builtin returning a float computed from
// a strip.
func measure(env *zygo.Zlisp, name string, f func(*strip.Strip) float64) {
	env.AddFunction(name, func(env *zygo.Zlisp, fn string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument, got %d", fn, len(args))
		}
		s, err := toStrip(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return &zygo.SexpFloat{Val: f(s)}, nil
	})
}

// registerBuiltins installs the strip builtins into a zygomys environment.
// Declared strips are added to sc.
//
// Source must be preprocessed with preprocessSource() so that :keyword
// tokens and kebab-case names are in the form registered here.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {

	// -----------------------------------------------------------------------
	// (mobius :radius 1 :width 0.3 :resolution 100)
	// -----------------------------------------------------------------------
	env.AddFunction("mobius", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) > 0 {
			return zygo.SexpNull, fmt.Errorf("mobius takes keyword arguments only, got %d positional", len(pa.positional))
		}
		p := surface.DefaultParameters()

		if v, ok := pa.kw["radius"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("mobius: radius: %w", err)
			}
			p.R = f
		}
		if v, ok := pa.kw["width"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("mobius: width: %w", err)
			}
			p.W = f
		}
		if v, ok := pa.kw["resolution"]; ok {
			n, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("mobius: resolution: %w", err)
			}
			if n > MaxResolution {
				return zygo.SexpNull, fmt.Errorf("mobius: resolution %d exceeds maximum %d", n, MaxResolution)
			}
			p.N = n
		}

		s, err := strip.NewFromParameters(p)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mobius: %w", err)
		}
		return &sexpStrip{s: s}, nil
	})

	// -----------------------------------------------------------------------
	// (defstrip "name" (mobius ...))
	// -----------------------------------------------------------------------
	env.AddFunction("defstrip", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defstrip requires a name and a strip expression")
		}
		stripName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defstrip: name: %w", err)
		}
		s, err := toStrip(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defstrip: body: %w", err)
		}
		if err := sc.Add(stripName, s); err != nil {
			return zygo.SexpNull, fmt.Errorf("defstrip: %w", err)
		}
		return &sexpStrip{s: s, name: stripName}, nil
	})

	// -----------------------------------------------------------------------
	// (strip "name")
	// -----------------------------------------------------------------------
	env.AddFunction("strip", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("strip requires a name argument")
		}
		stripName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("strip: name: %w", err)
		}
		s := sc.Lookup(stripName)
		if s == nil {
			return zygo.SexpNull, fmt.Errorf("strip: no strip named %q", stripName)
		}
		return &sexpStrip{s: s, name: stripName}, nil
	})

	// -----------------------------------------------------------------------
	// (surface-area s) (edge-length s) (boundary-length s)
	//
	// Registered in snake_case; the preprocessor rewrites the kebab-case
	// spelling.
	// -----------------------------------------------------------------------
	measure(env, "surface_area", (*strip.Strip).SurfaceArea)
	measure(env, "edge_length", (*strip.Strip).EdgeLength)
	measure(env, "boundary_length", (*strip.Strip).BoundaryLength)
}
