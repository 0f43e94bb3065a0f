package analyze

import (
	"strings"

	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/segment"
	"github.com/okrenz/manuscan/internal/util"
)

// DualCodingAnalyzer measures show-vs-tell balance: paragraphs without
// sensory or concrete language get a "needs more sensory detail" note.
type DualCodingAnalyzer struct {
	sensoryWords []string
}

// NewDualCodingAnalyzer creates a dual-coding analyzer.
func NewDualCodingAnalyzer() *DualCodingAnalyzer {
	return &DualCodingAnalyzer{
		sensoryWords: []string{
			"saw", "glimpse", "gleam", "shadow", "bright", "color", "colour",
			"heard", "whisper", "echo", "hum", "roar", "crackle", "silence",
			"smell", "scent", "aroma", "stench", "perfume",
			"taste", "bitter", "sweet", "sour", "salty",
			"touch", "rough", "smooth", "cold", "warm", "damp", "sting",
			"trembl", "shiver", "ache",
		},
	}
}

func (a *DualCodingAnalyzer) Name() string { return NameDualCoding }

// Analyze flags paragraphs with no sensory vocabulary.
func (a *DualCodingAnalyzer) Analyze(text, _ string) (any, error) {
	paragraphs := segment.Split(text)

	result := model.DualCodingResult{
		TotalParagraphs: len(paragraphs),
	}

	for i, p := range paragraphs {
		lower := strings.ToLower(p.Text)
		if _, found := util.ContainsAny(lower, a.sensoryWords); found {
			result.SensoryHits++
			continue
		}
		// Abstract narration only. Very short connective paragraphs are
		// left alone.
		if p.WordCount < 15 {
			continue
		}
		result.Notes = append(result.Notes, model.SensoryNote{
			Paragraph: i,
			Excerpt:   excerpt(p.Text, 80),
			Advice:    "Ground this paragraph in at least one concrete sensory detail",
		})
	}

	return result, nil
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}
