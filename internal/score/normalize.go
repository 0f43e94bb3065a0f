// Package score converts raw analyzer output into the uniform weighted
// principle-score model and aggregates it into one overall score.
package score

import "math"

// PacingScore converts the paragraph-length distribution into a 0-100
// score. With no paragraphs at all the result is a neutral 50.
//
// Variety is a truthy check: 100 only when all three bands are in use,
// otherwise 70. Balance is banded on the balanced-paragraph ratio with
// inclusive bounds: [0.4,0.6] -> 100, [0.3,0.7] -> 85, else 70. The
// result is the rounded mean of the two.
func PacingScore(compact, balanced, extended int) int {
	total := compact + balanced + extended
	if total == 0 {
		return 50
	}

	varietyScore := 70.0
	if compact > 0 && balanced > 0 && extended > 0 {
		varietyScore = 100
	}

	balancedRatio := float64(balanced) / float64(total)
	var balanceScore float64
	switch {
	case balancedRatio >= 0.4 && balancedRatio <= 0.6:
		balanceScore = 100
	case balancedRatio >= 0.3 && balancedRatio <= 0.7:
		balanceScore = 85
	default:
		balanceScore = 70
	}

	return int(math.Round((varietyScore + balanceScore) / 2))
}

// DualCodingScore converts the density of "needs more sensory detail"
// notes into a 0-100 score. Fewer notes (more showing) scores higher.
// Bands are strictly less-than at each boundary.
func DualCodingScore(suggestionCount, totalParagraphs int) int {
	if totalParagraphs < 1 {
		totalParagraphs = 1
	}
	ratio := float64(suggestionCount) / float64(totalParagraphs)

	switch {
	case ratio < 0.1:
		return 95
	case ratio < 0.2:
		return 85
	case ratio < 0.3:
		return 75
	case ratio < 0.4:
		return 65
	case ratio < 0.5:
		return 55
	default:
		return 45
	}
}
