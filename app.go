package main

import (
	"log/slog"

	"github.com/chazu/mobius/pkg/engine"
	"github.com/chazu/mobius/pkg/scene"
	"github.com/chazu/mobius/pkg/strip"
	"github.com/chazu/mobius/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to strips.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the backend a viewer binds to: it evaluates strip scripts and
// returns meshes and measurements in a JSON-serializable form.
type App struct {
	engine *engine.Engine
	logger *slog.Logger
}

// MeshData is the JSON-serializable mesh format sent to a viewer.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// MeasurementData is the estimates for one named strip.
type MeasurementData struct {
	PartName string `json:"partName"`
	strip.Measurements
}

// EvalErrorData is a JSON-serializable eval error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// WarningData is a JSON-serializable advisory warning.
type WarningData struct {
	PartName string `json:"partName"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// EvalResult is the full result of evaluating a script.
type EvalResult struct {
	Meshes       []MeshData        `json:"meshes"`
	Measurements []MeasurementData `json:"measurements"`
	Errors       []EvalErrorData   `json:"errors"`
	Warnings     []WarningData     `json:"warnings"`
}

// NewApp creates a new App logging to logger. A nil logger uses
// slog.Default().
func NewApp(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		engine: engine.NewEngine(),
		logger: logger,
	}
}

// Evaluate takes Lisp source and returns mesh data, measurements and
// errors for every strip it declares.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:       []MeshData{},
		Measurements: []MeasurementData{},
		Errors:       []EvalErrorData{},
		Warnings:     []WarningData{},
	}

	// Step 1: Evaluate the source into a scene.
	sc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		a.logger.Error("evaluate failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 2: Advisory checks.
	for _, w := range scene.Validate(sc) {
		result.Warnings = append(result.Warnings, WarningData{
			PartName: w.Part,
			Code:     w.Code,
			Message:  w.Message,
		})
	}

	// Step 3: Measure every strip.
	for _, p := range sc.Parts() {
		result.Measurements = append(result.Measurements, MeasurementData{
			PartName:     p.Name,
			Measurements: p.Strip.Measure(),
		})
	}

	// Step 4: Tessellate for display.
	meshes, err := tessellate.TessellateScene(sc)
	if err != nil {
		a.logger.Error("tessellate failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}
	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}

	return result
}
