package analyze

import (
	"fmt"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/segment"
	"github.com/okrenz/manuscan/internal/util"
)

// VisualAnalyzer marks paragraphs worth rendering as scene illustrations
// in the downstream dashboard: dense visual language, action, or setting
// establishment.
type VisualAnalyzer struct {
	visualCues []string
}

// NewVisualAnalyzer creates a visual-enhancement analyzer.
func NewVisualAnalyzer() *VisualAnalyzer {
	return &VisualAnalyzer{
		visualCues: []string{
			"towered", "sprawled", "glinted", "loomed", "stretched",
			"horizon", "skyline", "landscape", "panorama", "vista",
			"burst", "exploded", "collapsed", "shattered", "leapt",
		},
	}
}

func (a *VisualAnalyzer) Name() string { return NameVisuals }

// Analyze collects visualization-worthy paragraphs.
func (a *VisualAnalyzer) Analyze(text, _ string) (any, error) {
	paragraphs := segment.Split(text)

	result := model.VisualEnhancementResult{}
	for i, p := range paragraphs {
		lower := strings.ToLower(p.Text)
		cue, found := util.ContainsAny(lower, a.visualCues)
		if !found {
			continue
		}
		result.Scenes = append(result.Scenes, model.VisualScene{
			Paragraph:   i,
			Description: fmt.Sprintf("Strong visual moment (%q) at paragraph %d", cue, i+1),
		})
	}

	return result, nil
}
