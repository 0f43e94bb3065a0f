package model

// Analyzer result shapes. One variant per leaf analyzer; produced fresh on
// every run and only ever read by the scoring layer. Validate tags are
// enforced at the registry boundary so a malformed analyzer result fails
// fast instead of corrupting scores downstream.

// PacingProblem flags a stretch of paragraphs with monotonous pacing.
type PacingProblem struct {
	Paragraph   int    `json:"paragraph"`
	Kind        string `json:"kind"` // e.g. "monotonous-compact"
	Description string `json:"description"`
}

// PacingResult holds the paragraph-length distribution.
type PacingResult struct {
	Compact  int `json:"compact" validate:"min=0"`
	Balanced int `json:"balanced" validate:"min=0"`
	Extended int `json:"extended" validate:"min=0"`

	Problems []PacingProblem `json:"problems,omitempty"`
}

// TotalParagraphs is the number of non-empty paragraphs seen.
func (r PacingResult) TotalParagraphs() int {
	return r.Compact + r.Balanced + r.Extended
}

// SensoryNote is one "needs more sensory detail" flag from the dual-coding
// analyzer, anchored to a paragraph.
type SensoryNote struct {
	Paragraph int    `json:"paragraph"`
	Excerpt   string `json:"excerpt,omitempty"`
	Advice    string `json:"advice"`
}

// DualCodingResult measures show-vs-tell balance.
type DualCodingResult struct {
	TotalParagraphs int           `json:"total_paragraphs" validate:"min=0"`
	SensoryHits     int           `json:"sensory_hits" validate:"min=0"`
	Notes           []SensoryNote `json:"notes,omitempty"`
}

// SuggestionCount is the number of paragraphs flagged as telling.
func (r DualCodingResult) SuggestionCount() int { return len(r.Notes) }

// Character is one detected character with arc classification.
type Character struct {
	Name             string  `json:"name"`
	Role             string  `json:"role"` // protagonist, supporting, minor
	Arc              string  `json:"arc"`  // flat, positive, negative, unclear
	Mentions         int     `json:"mentions"`
	DevelopmentScore float64 `json:"development_score"` // 0-100
}

// CharacterResult holds detected characters and an averaged score.
type CharacterResult struct {
	Characters         []Character `json:"characters"`
	AverageDevelopment float64     `json:"average_development" validate:"min=0,max=100"`
}

// Theme is one detected thematic thread.
type Theme struct {
	Name     string  `json:"name"`
	Mentions int     `json:"mentions"`
	Strength float64 `json:"strength"` // 0-100
}

// ThemeResult holds detected themes and overall depth.
type ThemeResult struct {
	Themes          []Theme  `json:"themes"`
	DepthScore      float64  `json:"depth_score" validate:"min=0,max=100"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Trope is one genre trope with its occurrence count.
type Trope struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TropeResult measures genre-convention adherence and trope overuse.
type TropeResult struct {
	Genre           string   `json:"genre"`
	Tropes          []Trope  `json:"tropes"`
	ConventionScore float64  `json:"convention_score" validate:"min=0,max=100"`
	OveruseScore    float64  `json:"overuse_score" validate:"min=0,max=100"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// FictionElement is one scored narrative-craft dimension (character,
// setting, plot, ...) from the fixed taxonomy.
type FictionElement struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score" validate:"min=0,max=100"`
	Insights []string `json:"insights,omitempty"`
}

// FictionElementsResult holds the per-element scores plus a balance score
// describing how evenly the elements are developed.
type FictionElementsResult struct {
	Elements     []FictionElement `json:"elements" validate:"dive"`
	BalanceScore float64          `json:"balance_score" validate:"min=0,max=100"`
}

// SentenceBuckets counts sentences by length band.
type SentenceBuckets struct {
	Short  int `json:"short"`  // < 10 words
	Medium int `json:"medium"` // 10-25 words
	Long   int `json:"long"`   // > 25 words
}

// ProseQualityResult holds the nested prose-craft sub-metrics.
type ProseQualityResult struct {
	VocabularyVariety  float64         `json:"vocabulary_variety" validate:"min=0,max=100"`
	DialogueTagQuality float64         `json:"dialogue_tag_quality" validate:"min=0,max=100"`
	PassiveVoicePct    float64         `json:"passive_voice_pct" validate:"min=0"`
	AdverbDensity      float64         `json:"adverb_density" validate:"min=0"` // per 1000 words
	Sentences          SentenceBuckets `json:"sentences"`
	SentenceVariety    float64         `json:"sentence_variety" validate:"min=0,max=100"`
	FleschKincaidGrade float64         `json:"flesch_kincaid_grade"`
}

// VisualScene marks a paragraph worth rendering as an illustration or
// scene card in the excluded UI layer.
type VisualScene struct {
	Paragraph   int    `json:"paragraph"`
	Description string `json:"description"`
}

// VisualEnhancementResult lists visualization-worthy scenes.
type VisualEnhancementResult struct {
	Scenes []VisualScene `json:"scenes"`
}

// POVMetrics measures point-of-view consistency.
type POVMetrics struct {
	Dominant   string  `json:"dominant"` // first, second, third
	Violations int     `json:"violations"`
	Score      float64 `json:"score" validate:"min=0,max=100"`
}

// ClicheMetrics counts stock phrases.
type ClicheMetrics struct {
	Count int      `json:"count"`
	Found []string `json:"found,omitempty"`
}

// FilteringMetrics counts perception-filter words (saw, felt, noticed).
type FilteringMetrics struct {
	Count   int     `json:"count"`
	Density float64 `json:"density"` // per 1000 words
	Score   float64 `json:"score" validate:"min=0,max=100"`
}

// BalanceMetric is a generic percentage-plus-score pair.
type BalanceMetric struct {
	Percentage float64 `json:"percentage"`
	Score      float64 `json:"score" validate:"min=0,max=100"`
}

// SceneSequelMetrics counts action scenes vs reflective sequels.
type SceneSequelMetrics struct {
	Scenes  int     `json:"scenes"`
	Sequels int     `json:"sequels"`
	Score   float64 `json:"score" validate:"min=0,max=100"`
}

// ConflictMetrics measures conflict marker density.
type ConflictMetrics struct {
	Markers        int     `json:"markers"`
	DensityPer1000 float64 `json:"density_per_1000"`
}

// SensoryMetrics tracks how evenly the five senses are exercised.
type SensoryMetrics struct {
	Sight   int     `json:"sight"`
	Sound   int     `json:"sound"`
	Smell   int     `json:"smell"`
	Taste   int     `json:"taste"`
	Touch   int     `json:"touch"`
	Balance float64 `json:"balance" validate:"min=0,max=100"`
}

// AdvancedMetricsResult bundles the second-tier craft metrics.
type AdvancedMetricsResult struct {
	EmotionalPacing BalanceMetric      `json:"emotional_pacing"`
	POV             POVMetrics         `json:"pov"`
	Cliches         ClicheMetrics      `json:"cliches"`
	Filtering       FilteringMetrics   `json:"filtering"`
	Backstory       BalanceMetric      `json:"backstory"`
	DialogueRatio   BalanceMetric      `json:"dialogue_ratio"`
	SceneSequel     SceneSequelMetrics `json:"scene_sequel"`
	Conflict        ConflictMetrics    `json:"conflict"`
	Sensory         SensoryMetrics     `json:"sensory"`
}
