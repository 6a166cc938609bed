// Package scene collects the named strips a script declares. A Scene is
// produced fresh by each evaluation and is not modified after it is
// returned.
package scene

import (
	"errors"
	"fmt"

	"github.com/chazu/mobius/pkg/strip"
)

var (
	// ErrEmptyName is returned when a strip is added without a name.
	ErrEmptyName = errors.New("scene: strip name must not be empty")
	// ErrDuplicateName is returned when a name is already taken.
	ErrDuplicateName = errors.New("scene: duplicate strip name")
)

// Part is a named strip.
type Part struct {
	Name  string
	Strip *strip.Strip
}

// Scene holds parts in declaration order.
type Scene struct {
	parts []Part
	index map[string]int
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{index: make(map[string]int)}
}

// Add registers s under name.
func (sc *Scene) Add(name string, s *strip.Strip) error {
	if name == "" {
		return ErrEmptyName
	}
	if s == nil {
		return fmt.Errorf("scene: strip %q is nil", name)
	}
	if _, ok := sc.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	sc.index[name] = len(sc.parts)
	sc.parts = append(sc.parts, Part{Name: name, Strip: s})
	return nil
}

// Lookup returns the strip registered under name, or nil.
func (sc *Scene) Lookup(name string) *strip.Strip {
	i, ok := sc.index[name]
	if !ok {
		return nil
	}
	return sc.parts[i].Strip
}

// Parts returns a copy of the parts in declaration order.
func (sc *Scene) Parts() []Part {
	out := make([]Part, len(sc.parts))
	copy(out, sc.parts)
	return out
}

// Len returns the number of parts.
func (sc *Scene) Len() int {
	return len(sc.parts)
}
