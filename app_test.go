package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/chazu/mobius/pkg/kernel"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestE2EExampleScript exercises the full pipeline: Lisp source → engine →
// scene → measurements and tessellation.
func TestE2EExampleScript(t *testing.T) {
	app := NewApp(quietLogger())

	source, err := os.ReadFile("examples/strips.lisp")
	if err != nil {
		t.Fatalf("failed to read strips.lisp: %v", err)
	}

	result := app.Evaluate(string(source))
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}

	if len(result.Meshes) != 3 {
		t.Fatalf("expected 3 meshes, got %d", len(result.Meshes))
	}
	if len(result.Measurements) != 3 {
		t.Fatalf("expected 3 measurements, got %d", len(result.Measurements))
	}

	wantOrder := []string{"example", "doubled", "sketch"}
	for i, name := range wantOrder {
		if result.Meshes[i].PartName != name {
			t.Errorf("mesh %d part = %q, want %q", i, result.Meshes[i].PartName, name)
		}
		if result.Measurements[i].PartName != name {
			t.Errorf("measurement %d part = %q, want %q", i, result.Measurements[i].PartName, name)
		}
		if result.Meshes[i].Color == "" {
			t.Errorf("part %q: no color assigned", name)
		}
		if len(result.Meshes[i].Vertices) == 0 || len(result.Meshes[i].Indices) == 0 {
			t.Errorf("part %q: empty geometry", name)
		}
	}

	example := result.Measurements[0]
	if got := formatted(example.SurfaceArea); got != "1.9238" {
		t.Errorf("example surface area = %s, want 1.9238", got)
	}
	if got := formatted(example.EdgeLength); got != "12.5999" {
		t.Errorf("example edge length = %s, want 12.5999", got)
	}

	// The sketch strip is coarse and wider than its radius.
	codes := map[string]bool{}
	for _, w := range result.Warnings {
		if w.PartName != "sketch" {
			t.Errorf("unexpected warning for %q: %s", w.PartName, w.Message)
		}
		codes[w.Code] = true
	}
	if !codes["COARSE_RESOLUTION"] || !codes["WIDE_STRIP"] {
		t.Errorf("expected COARSE_RESOLUTION and WIDE_STRIP warnings, got %v", result.Warnings)
	}
}

// formatted rounds to the 4 decimal places the command prints.
func formatted(x float64) string {
	return fmt.Sprintf("%.4f", x)
}

// TestE2EEmptySource ensures the pipeline handles empty input gracefully and
// returns empty, non-nil slices so JSON serializes [] rather than null.
func TestE2EEmptySource(t *testing.T) {
	app := NewApp(quietLogger())
	result := app.Evaluate("")

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors for empty source: %v", result.Errors)
	}
	if len(result.Meshes) != 0 || len(result.Measurements) != 0 {
		t.Errorf("expected no output for empty source, got %d meshes", len(result.Meshes))
	}

	b, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "null") {
		t.Errorf("empty result serialized with null: %s", b)
	}
}

// TestE2ESyntaxError ensures eval errors are reported, not fatal errors.
func TestE2ESyntaxError(t *testing.T) {
	app := NewApp(quietLogger())
	result := app.Evaluate("(+ 1 2)\n(defstrip \"test\"")

	if len(result.Errors) == 0 {
		t.Fatal("expected eval errors for syntax error")
	}
	if result.Errors[0].Message == "" {
		t.Error("syntax error should have a non-empty message")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on error, got %d", len(result.Meshes))
	}
}

// TestE2EInvalidParameter ensures a bad resolution is an eval error.
func TestE2EInvalidParameter(t *testing.T) {
	app := NewApp(quietLogger())
	result := app.Evaluate(`(defstrip "bad" (mobius :resolution 1))`)

	if len(result.Errors) == 0 {
		t.Fatal("expected eval error for resolution 1")
	}
	if len(result.Meshes) != 0 || len(result.Measurements) != 0 {
		t.Error("expected no output for invalid parameters")
	}
}

func TestE2EResultJSON(t *testing.T) {
	app := NewApp(quietLogger())
	result := app.Evaluate(`(defstrip "s" (mobius :resolution 4))`)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	b, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"surfaceArea"`, `"edgeLength"`, `"boundaryLength"`, `"partName":"s"`, `"vertices"`} {
		if !bytes.Contains(b, []byte(key)) {
			t.Errorf("JSON missing %s: %s", key, b)
		}
	}
}

func TestRunPrintsRoundedEstimates(t *testing.T) {
	var out bytes.Buffer
	var rendered *kernel.Mesh
	r := kernel.RenderFunc(func(m *kernel.Mesh) error {
		rendered = m
		return nil
	})

	if err := run(&out, r, quietLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "Surface Area: 1.9238\nEdge Length: 12.5999\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if rendered == nil {
		t.Fatal("renderer was not called")
	}
	if rendered.TriangleCount() != 2*99*99 {
		t.Errorf("rendered %d triangles, want %d", rendered.TriangleCount(), 2*99*99)
	}
}

func TestRunIgnoresRenderFailure(t *testing.T) {
	var out bytes.Buffer
	r := kernel.RenderFunc(func(*kernel.Mesh) error { return errors.New("no display") })

	if err := run(&out, r, quietLogger()); err != nil {
		t.Fatalf("run should not fail when rendering fails: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Surface Area: ") {
		t.Errorf("estimates not printed: %q", out.String())
	}
}
