// Package analyze holds the leaf text analyzers and the registry the
// orchestrator reaches them through. Every analyzer is a stateless
// function from (text, genre) to one result shape; none depends on
// another analyzer's output.
package analyze

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Analyzer names. The orchestrator addresses analyzers by name so stubs
// can be swapped in for tests.
const (
	NamePacing          = "pacing"
	NameDualCoding      = "dual-coding"
	NameCharacters      = "characters"
	NameThemes          = "themes"
	NameTropes          = "tropes"
	NameFictionElements = "fiction-elements"
	NameProseQuality    = "prose-quality"
	NameVisuals         = "visual-enhancements"
	NameAdvanced        = "advanced-metrics"
)

// Analyzer is the single capability interface every leaf implements.
type Analyzer interface {
	Name() string
	Analyze(text, genre string) (any, error)
}

// Registry holds the analyzer set and validates every result at the
// boundary, so malformed analyzer output fails fast instead of
// propagating into the scores.
type Registry struct {
	analyzers map[string]Analyzer
	validate  *validator.Validate
}

// NewRegistry returns a registry populated with the built-in analyzers.
func NewRegistry() *Registry {
	r := &Registry{
		analyzers: make(map[string]Analyzer),
		validate:  validator.New(),
	}
	for _, a := range []Analyzer{
		NewPacingAnalyzer(),
		NewDualCodingAnalyzer(),
		NewCharacterAnalyzer(),
		NewThemeAnalyzer(),
		NewTropeAnalyzer(),
		NewFictionElementAnalyzer(),
		NewProseQualityAnalyzer(),
		NewVisualAnalyzer(),
		NewAdvancedAnalyzer(),
	} {
		r.Register(a)
	}
	return r
}

// NewEmptyRegistry returns a registry with no analyzers registered.
// Used by tests that inject stubs.
func NewEmptyRegistry() *Registry {
	return &Registry{
		analyzers: make(map[string]Analyzer),
		validate:  validator.New(),
	}
}

// Register adds or replaces an analyzer under its name.
func (r *Registry) Register(a Analyzer) {
	r.analyzers[a.Name()] = a
}

// Run invokes the named analyzer and validates its result shape.
func (r *Registry) Run(name, text, genre string) (any, error) {
	a, ok := r.analyzers[name]
	if !ok {
		return nil, fmt.Errorf("analyzer %q not registered", name)
	}

	result, err := a.Analyze(text, genre)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("analyzer %q returned nil result", name)
	}
	if err := r.validate.Struct(result); err != nil {
		return nil, fmt.Errorf("analyzer %q returned malformed result: %w", name, err)
	}
	return result, nil
}

// RunAs invokes the named analyzer and asserts the result type.
func RunAs[T any](r *Registry, name, text, genre string) (T, error) {
	var zero T
	result, err := r.Run(name, text, genre)
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("analyzer %q returned %T, want %T", name, result, zero)
	}
	return typed, nil
}
