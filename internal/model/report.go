package model

import "time"

// RawResults carries each analyzer's output verbatim for downstream
// display. The scoring layer reads these; it never mutates them.
type RawResults struct {
	Pacing     PacingResult            `json:"pacing"`
	DualCoding DualCodingResult        `json:"dual_coding"`
	Characters CharacterResult         `json:"characters"`
	Themes     ThemeResult             `json:"themes"`
	Tropes     TropeResult             `json:"tropes"`
	Elements   FictionElementsResult   `json:"elements"`
	Prose      ProseQualityResult      `json:"prose"`
	Visuals    VisualEnhancementResult `json:"visuals"`
	Advanced   AdvancedMetricsResult   `json:"advanced"`
}

// PrincipleEvaluation is the "evaluation" projection of a PrincipleScore:
// findings derived 1:1 from the detail strings, suggestions carried over,
// evidence reserved for the (excluded) UI layer.
type PrincipleEvaluation struct {
	PrincipleID PrincipleID  `json:"principle_id"`
	Score       float64      `json:"score"`
	Weight      float64      `json:"weight"`
	Findings    []string     `json:"findings"`
	Suggestions []Suggestion `json:"suggestions"`
	Evidence    []string     `json:"evidence"`
}

// PrincipleViz is one tuple of the "visualization" projection.
type PrincipleViz struct {
	Name        PrincipleID `json:"name"`
	DisplayName string      `json:"display_name"`
	Score       float64     `json:"score"`
	Weight      float64     `json:"weight"`
}

// Visualization is the chart-ready view of one analysis run.
type Visualization struct {
	OverallScore int            `json:"overall_score"`
	Principles   []PrincipleViz `json:"principles"`
}

// Report is the terminal artifact of one analysis run. It is assembled in
// a single pass from already-computed sub-results and never mutated after
// construction.
type Report struct {
	RunID       string    `json:"run_id"`
	ChapterID   string    `json:"chapter_id"`
	Genre       string    `json:"genre"`
	WordCount   int       `json:"word_count"`
	GeneratedAt time.Time `json:"generated_at"`

	OverallScore    float64               `json:"overall_score"` // weighted mean, 0-100
	PrincipleScores []PrincipleScore      `json:"principle_scores"`
	Evaluations     []PrincipleEvaluation `json:"evaluations"`
	Visualization   Visualization         `json:"visualization"`

	Raw RawResults `json:"raw"`
}
