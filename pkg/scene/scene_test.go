package scene

import (
	"errors"
	"testing"

	"github.com/chazu/mobius/pkg/strip"
)

func mustStrip(t *testing.T, r, w float64, n int) *strip.Strip {
	t.Helper()
	s, err := strip.New(r, w, n)
	if err != nil {
		t.Fatalf("strip.New(%v, %v, %d): %v", r, w, n, err)
	}
	return s
}

func TestAddAndLookup(t *testing.T) {
	sc := New()
	a := mustStrip(t, 1, 0.3, 20)
	b := mustStrip(t, 2, 0.3, 20)

	if err := sc.Add("a", a); err != nil {
		t.Fatalf("Add(a): %v", err)
	}
	if err := sc.Add("b", b); err != nil {
		t.Fatalf("Add(b): %v", err)
	}
	if sc.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", sc.Len())
	}
	if sc.Lookup("a") != a || sc.Lookup("b") != b {
		t.Error("Lookup returned the wrong strip")
	}
	if sc.Lookup("missing") != nil {
		t.Error("Lookup(missing) should be nil")
	}

	parts := sc.Parts()
	if parts[0].Name != "a" || parts[1].Name != "b" {
		t.Errorf("parts out of declaration order: %v, %v", parts[0].Name, parts[1].Name)
	}
}

func TestAddErrors(t *testing.T) {
	sc := New()
	s := mustStrip(t, 1, 0.3, 20)

	if err := sc.Add("", s); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Add(\"\") error = %v, want ErrEmptyName", err)
	}
	if err := sc.Add("nil", nil); err == nil {
		t.Error("Add with nil strip should fail")
	}
	if err := sc.Add("x", s); err != nil {
		t.Fatalf("Add(x): %v", err)
	}
	if err := sc.Add("x", s); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("second Add(x) error = %v, want ErrDuplicateName", err)
	}
	if sc.Len() != 1 {
		t.Errorf("Len() = %d after rejected adds, want 1", sc.Len())
	}
}

func TestPartsIsACopy(t *testing.T) {
	sc := New()
	if err := sc.Add("a", mustStrip(t, 1, 0.3, 20)); err != nil {
		t.Fatal(err)
	}
	parts := sc.Parts()
	parts[0].Name = "changed"
	if sc.Parts()[0].Name != "a" {
		t.Error("mutating Parts() result changed the scene")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		r, w  float64
		n     int
		codes []string
	}{
		{"clean", 1, 0.3, 100, nil},
		{"coarse", 1, 0.3, 5, []string{"COARSE_RESOLUTION"}},
		{"wide", 1, 1.5, 100, []string{"WIDE_STRIP"}},
		{"self-intersecting", 1, 2, 100, []string{"SELF_INTERSECTING"}},
		{"coarse and self-intersecting", 1, 3, 3, []string{"COARSE_RESOLUTION", "SELF_INTERSECTING"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := New()
			if err := sc.Add("p", mustStrip(t, tt.r, tt.w, tt.n)); err != nil {
				t.Fatal(err)
			}
			warnings := Validate(sc)
			if len(warnings) != len(tt.codes) {
				t.Fatalf("got %d warnings %v, want %v", len(warnings), warnings, tt.codes)
			}
			for i, w := range warnings {
				if w.Code != tt.codes[i] {
					t.Errorf("warning %d code = %q, want %q", i, w.Code, tt.codes[i])
				}
				if w.Part != "p" {
					t.Errorf("warning %d part = %q, want p", i, w.Part)
				}
			}
		})
	}
}
