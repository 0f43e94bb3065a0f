package analyze

import (
	"fmt"
	"math"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
)

// fictionElementTaxonomy is the fixed set of narrative craft dimensions.
// Elements with no signal in the text are still reported with a low score
// so the balance calculation sees the full taxonomy.
var fictionElementTaxonomy = []struct {
	name     string
	keywords []string
}{
	{"character", []string{"felt", "thought", "wanted", "decided", "realized"}},
	{"setting", []string{"room", "city", "forest", "street", "sky", "house", "land"}},
	{"plot", []string{"then", "because", "after", "plan", "until", "finally"}},
	{"conflict", []string{"fight", "argue", "against", "struggle", "refuse", "threat"}},
	{"dialogue", []string{"\"", "said", "asked", "replied"}},
	{"pacing", []string{"suddenly", "slowly", "moment", "rushed", "waited"}},
	{"tension", []string{"afraid", "danger", "risk", "held his breath", "held her breath", "heart pounded"}},
	{"voice", []string{"i ", "me ", "my ", "we "}},
	{"imagery", []string{"like a", "as if", "shimmer", "glow", "silhouette"}},
	{"stakes", []string{"everything", "lose", "last chance", "or else", "depended"}},
	{"backstory", []string{"had been", "years ago", "used to", "once", "remembered"}},
	{"worldbuilding", []string{"kingdom", "custom", "law", "history", "legend", "ritual"}},
}

// FictionElementAnalyzer scores each element of the fixed taxonomy and
// produces per-element insights.
type FictionElementAnalyzer struct{}

// NewFictionElementAnalyzer creates a fiction-element analyzer.
func NewFictionElementAnalyzer() *FictionElementAnalyzer {
	return &FictionElementAnalyzer{}
}

func (a *FictionElementAnalyzer) Name() string { return NameFictionElements }

// Analyze scores the twelve taxonomy elements by keyword density.
func (a *FictionElementAnalyzer) Analyze(text, _ string) (any, error) {
	lower := strings.ToLower(text)
	words := len(strings.Fields(text))
	if words == 0 {
		words = 1
	}

	result := model.FictionElementsResult{}
	var sum, sumSq float64
	for _, el := range fictionElementTaxonomy {
		hits := 0
		for _, kw := range el.keywords {
			hits += strings.Count(lower, kw)
		}

		// Density per 1000 words, saturating at 100 around 12.5/1000.
		density := float64(hits) / float64(words) * 1000
		score := density * 8
		if score > 100 {
			score = 100
		}

		element := model.FictionElement{Name: el.name, Score: score}
		switch {
		case hits == 0:
			element.Insights = append(element.Insights,
				fmt.Sprintf("No %s signal detected in the manuscript", el.name))
		case score < 40:
			element.Insights = append(element.Insights,
				fmt.Sprintf("%s is present but thin (%d markers)", el.name, hits),
				fmt.Sprintf("Look for scenes where %s could carry more weight", el.name))
		default:
			element.Insights = append(element.Insights,
				fmt.Sprintf("%s is well represented (%d markers)", el.name, hits))
		}

		result.Elements = append(result.Elements, element)
		sum += score
		sumSq += score * score
	}

	// Balance: 100 minus the normalized spread across elements.
	n := float64(len(result.Elements))
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	balance := 100 - math.Sqrt(variance)
	if balance < 0 {
		balance = 0
	}
	result.BalanceScore = balance

	return result, nil
}
