package score

import (
	"errors"
	"math"

	"github.com/okrenz/manuscan/internal/model"
)

// ErrNoScorablePrinciples is returned when the weight sum is zero: either
// no principle scores exist or every weight is zero. Guarded explicitly
// so the overall score can never be NaN.
var ErrNoScorablePrinciples = errors.New("no scorable principles")

// Overall computes the weighted mean of all principle scores, rounded to
// the nearest integer value.
func Overall(scores []model.PrincipleScore) (float64, error) {
	var weighted, weights float64
	for _, s := range scores {
		weighted += s.Score * s.Weight
		weights += s.Weight
	}
	if weights == 0 {
		return 0, ErrNoScorablePrinciples
	}
	return math.Round(weighted / weights), nil
}

// Evaluations projects the principle-score list into the evaluation view.
// Findings mirror the detail strings 1:1; evidence is always empty and
// reserved for the downstream UI.
func Evaluations(scores []model.PrincipleScore) []model.PrincipleEvaluation {
	evals := make([]model.PrincipleEvaluation, 0, len(scores))
	for _, s := range scores {
		findings := make([]string, len(s.Details))
		copy(findings, s.Details)
		suggestions := make([]model.Suggestion, len(s.Suggestions))
		copy(suggestions, s.Suggestions)

		evals = append(evals, model.PrincipleEvaluation{
			PrincipleID: s.ID,
			Score:       s.Score,
			Weight:      s.Weight,
			Findings:    findings,
			Suggestions: suggestions,
			Evidence:    []string{},
		})
	}
	return evals
}

// Visualize projects the principle-score list into the chart-ready view.
func Visualize(scores []model.PrincipleScore, overall float64) model.Visualization {
	viz := model.Visualization{
		OverallScore: int(math.Round(overall)),
		Principles:   make([]model.PrincipleViz, 0, len(scores)),
	}
	for _, s := range scores {
		viz.Principles = append(viz.Principles, model.PrincipleViz{
			Name:        s.ID,
			DisplayName: s.DisplayName,
			Score:       s.Score,
			Weight:      s.Weight,
		})
	}
	return viz
}
