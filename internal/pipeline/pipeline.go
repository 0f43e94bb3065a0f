// Package pipeline orchestrates the analyzer sequence and assembles the
// final report.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/okrenz/manuscan/internal/analyze"
	"github.com/okrenz/manuscan/internal/cache"
	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/score"
)

// Stage names the steps of the analysis state machine, in execution order.
type Stage string

const (
	StageReceived        Stage = "received"
	StagePacing          Stage = "analyzing-pacing"
	StageVisuals         Stage = "analyzing-visuals"
	StageCharacters      Stage = "analyzing-characters"
	StageThemes          Stage = "analyzing-themes"
	StageTropes          Stage = "analyzing-tropes"
	StageFictionElements Stage = "analyzing-fiction-elements"
	StageProseQuality    Stage = "analyzing-prose-quality"
	StageEnhancements    Stage = "analyzing-visual-enhancements"
	StageAdvanced        Stage = "analyzing-advanced-metrics"
	StageBuildingReport  Stage = "building-report"
	StageComplete        Stage = "complete"
)

// Stages returns the full stage sequence of a successful run.
func Stages() []Stage {
	return []Stage{
		StageReceived, StagePacing, StageVisuals, StageCharacters,
		StageThemes, StageTropes, StageFictionElements, StageProseQuality,
		StageEnhancements, StageAdvanced, StageBuildingReport, StageComplete,
	}
}

// ProgressObserver receives one notification per stage transition. It is
// a side channel only; observers cannot influence control flow.
type ProgressObserver interface {
	OnStage(stage Stage, detail string)
}

// ProgressFunc adapts a plain function to ProgressObserver.
type ProgressFunc func(stage Stage, detail string)

// OnStage implements ProgressObserver.
func (f ProgressFunc) OnStage(stage Stage, detail string) { f(stage, detail) }

// Pipeline runs the fixed analyzer sequence over one manuscript and
// assembles the scored report. Runs are independent; a single Pipeline is
// safe for concurrent use across manuscripts.
type Pipeline struct {
	registry *analyze.Registry
	builder  *score.Builder
	cache    cache.Cache
	cacheTTL time.Duration
	validate *validator.Validate
	config   *model.Config
}

// NewPipeline creates a pipeline with the built-in analyzer set.
func NewPipeline(cfg *model.Config) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return &Pipeline{
		registry: analyze.NewRegistry(),
		builder:  score.NewBuilder(),
		cache:    c,
		cacheTTL: cfg.Cache.DiskTTL,
		validate: validator.New(),
		config:   cfg,
	}
}

// WithRegistry replaces the analyzer registry. Used by tests to inject
// stub analyzers.
func (p *Pipeline) WithRegistry(r *analyze.Registry) *Pipeline {
	p.registry = r
	return p
}

// Analyze runs the full pipeline. Analyzers execute sequentially in a
// fixed order so progress reporting stays deterministic. Cancellation is
// not honored mid-pipeline: once a run starts it either completes or
// fails; ctx is accepted for call-site symmetry with the async runner.
func (p *Pipeline) Analyze(_ context.Context, m model.Manuscript, obs ProgressObserver) (*model.Report, error) {
	notify := func(stage Stage, detail string) {
		if obs != nil {
			obs.OnStage(stage, detail)
		}
	}

	if err := p.validate.Struct(m); err != nil {
		return nil, fmt.Errorf("invalid manuscript: %w", err)
	}
	genre := m.Genre
	if genre == "" {
		genre = p.config.Analysis.DefaultGenre
	}

	notify(StageReceived, fmt.Sprintf("manuscript %s: %d words, genre %q", m.ID, m.WordCount, genre))

	if report, ok := p.cachedReport(m.Text, genre); ok {
		notify(StageComplete, "served from cache")
		return report, nil
	}

	raw := model.RawResults{}

	notify(StagePacing, "classifying paragraph pacing")
	pacing, err := analyze.RunAs[model.PacingResult](p.registry, analyze.NamePacing, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze pacing: %w", err)
	}
	raw.Pacing = pacing

	notify(StageVisuals, "measuring show-vs-tell balance")
	dual, err := analyze.RunAs[model.DualCodingResult](p.registry, analyze.NameDualCoding, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze dual coding: %w", err)
	}
	raw.DualCoding = dual

	notify(StageCharacters, "detecting characters and arcs")
	characters, err := analyze.RunAs[model.CharacterResult](p.registry, analyze.NameCharacters, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze characters: %w", err)
	}
	raw.Characters = characters

	notify(StageThemes, "tracing thematic threads")
	themes, err := analyze.RunAs[model.ThemeResult](p.registry, analyze.NameThemes, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze themes: %w", err)
	}
	raw.Themes = themes

	notify(StageTropes, fmt.Sprintf("checking %s conventions", genre))
	tropes, err := analyze.RunAs[model.TropeResult](p.registry, analyze.NameTropes, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze tropes: %w", err)
	}
	raw.Tropes = tropes

	notify(StageFictionElements, "scoring fiction elements")
	elements, err := analyze.RunAs[model.FictionElementsResult](p.registry, analyze.NameFictionElements, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze fiction elements: %w", err)
	}
	raw.Elements = elements

	notify(StageProseQuality, "measuring prose quality")
	prose, err := analyze.RunAs[model.ProseQualityResult](p.registry, analyze.NameProseQuality, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze prose quality: %w", err)
	}
	raw.Prose = prose

	notify(StageEnhancements, "collecting visual moments")
	visuals, err := analyze.RunAs[model.VisualEnhancementResult](p.registry, analyze.NameVisuals, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze visual enhancements: %w", err)
	}
	raw.Visuals = visuals

	notify(StageAdvanced, "computing advanced metrics")
	advanced, err := analyze.RunAs[model.AdvancedMetricsResult](p.registry, analyze.NameAdvanced, m.Text, genre)
	if err != nil {
		return nil, fmt.Errorf("analyze advanced metrics: %w", err)
	}
	raw.Advanced = advanced

	notify(StageBuildingReport, "aggregating principle scores")
	principles := p.builder.Build(raw)
	overall, err := score.Overall(principles)
	if err != nil {
		return nil, fmt.Errorf("aggregate scores: %w", err)
	}

	report := &model.Report{
		RunID:           uuid.NewString(),
		ChapterID:       m.ID,
		Genre:           genre,
		WordCount:       m.WordCount,
		GeneratedAt:     time.Now().UTC(),
		OverallScore:    overall,
		PrincipleScores: principles,
		Evaluations:     score.Evaluations(principles),
		Visualization:   score.Visualize(principles, overall),
		Raw:             raw,
	}

	p.storeReport(m.Text, genre, report)

	notify(StageComplete, fmt.Sprintf("overall score %.0f", overall))
	return report, nil
}

func (p *Pipeline) cachedReport(text, genre string) (*model.Report, bool) {
	if p.cache == nil {
		return nil, false
	}
	data, ok := p.cache.Get(cache.ReportKey(text, genre))
	if !ok {
		return nil, false
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		_ = p.cache.Delete(cache.ReportKey(text, genre))
		return nil, false
	}
	return &report, true
}

func (p *Pipeline) storeReport(text, genre string, report *model.Report) {
	if p.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = p.cache.Set(cache.ReportKey(text, genre), data, p.cacheTTL)
}
