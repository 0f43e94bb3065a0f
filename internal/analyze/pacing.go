package analyze

import (
	"fmt"

	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/segment"
)

// monotonyRun is how many consecutive same-band paragraphs get flagged as
// a pacing problem.
const monotonyRun = 5

// PacingAnalyzer classifies paragraphs into length bands and flags long
// runs of the same band.
type PacingAnalyzer struct{}

// NewPacingAnalyzer creates a pacing analyzer.
func NewPacingAnalyzer() *PacingAnalyzer { return &PacingAnalyzer{} }

func (a *PacingAnalyzer) Name() string { return NamePacing }

// Analyze segments the text and tallies pacing bands.
func (a *PacingAnalyzer) Analyze(text, _ string) (any, error) {
	paragraphs := segment.Split(text)
	compact, balanced, extended := segment.Count(paragraphs)

	result := model.PacingResult{
		Compact:  compact,
		Balanced: balanced,
		Extended: extended,
	}

	// Flag monotonous stretches: five or more consecutive paragraphs in
	// the same band.
	runStart := 0
	var runClass segment.PacingClass
	flush := func(end int) {
		if end-runStart >= monotonyRun {
			result.Problems = append(result.Problems, model.PacingProblem{
				Paragraph: runStart,
				Kind:      "monotonous-" + string(runClass),
				Description: fmt.Sprintf("%d consecutive %s paragraphs starting at paragraph %d",
					end-runStart, runClass, runStart+1),
			})
		}
	}
	for i, p := range paragraphs {
		class := p.Class()
		if i == 0 {
			runClass = class
			continue
		}
		if class != runClass {
			flush(i)
			runStart = i
			runClass = class
		}
	}
	flush(len(paragraphs))

	return result, nil
}
