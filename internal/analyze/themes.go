package analyze

import (
	"sort"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
)

// ThemeAnalyzer detects thematic threads from a fixed keyword taxonomy
// and scores overall thematic depth.
type ThemeAnalyzer struct {
	taxonomy map[string][]string
}

// NewThemeAnalyzer creates a theme analyzer.
func NewThemeAnalyzer() *ThemeAnalyzer {
	return &ThemeAnalyzer{
		taxonomy: map[string][]string{
			"love":           {"love", "beloved", "affection", "longing", "devotion"},
			"loss":           {"loss", "grief", "mourning", "gone", "missing", "funeral"},
			"identity":       {"identity", "belong", "who am i", "self", "true nature"},
			"power":          {"power", "control", "authority", "dominion", "rule"},
			"betrayal":       {"betray", "deceive", "traitor", "lied", "double-cross"},
			"redemption":     {"redeem", "forgive", "atone", "second chance", "absolution"},
			"survival":       {"survive", "endure", "starve", "shelter", "escape"},
			"justice":        {"justice", "fair", "punish", "guilt", "innocent", "trial"},
			"family":         {"family", "mother", "father", "sister", "brother", "home"},
			"freedom":        {"freedom", "free", "captive", "cage", "liberation"},
			"sacrifice":      {"sacrifice", "gave up", "cost", "price", "surrender"},
			"transformation": {"change", "transform", "became", "no longer", "different now"},
		},
	}
}

func (a *ThemeAnalyzer) Name() string { return NameThemes }

// Analyze counts theme keyword mentions and derives depth.
func (a *ThemeAnalyzer) Analyze(text, _ string) (any, error) {
	lower := strings.ToLower(text)

	result := model.ThemeResult{}
	for name, keywords := range a.taxonomy {
		count := 0
		for _, kw := range keywords {
			count += strings.Count(lower, kw)
		}
		if count == 0 {
			continue
		}
		strength := float64(count) * 10
		if strength > 100 {
			strength = 100
		}
		result.Themes = append(result.Themes, model.Theme{
			Name:     name,
			Mentions: count,
			Strength: strength,
		})
	}

	sort.Slice(result.Themes, func(i, j int) bool {
		if result.Themes[i].Mentions != result.Themes[j].Mentions {
			return result.Themes[i].Mentions > result.Themes[j].Mentions
		}
		return result.Themes[i].Name < result.Themes[j].Name
	})

	// Depth rewards a few strong themes over many shallow ones.
	switch {
	case len(result.Themes) == 0:
		result.DepthScore = 30
		result.Recommendations = append(result.Recommendations,
			"No recurring thematic threads detected; consider weaving a central theme through key scenes")
	case len(result.Themes) <= 4:
		strong := 0
		for _, th := range result.Themes {
			if th.Mentions >= 5 {
				strong++
			}
		}
		result.DepthScore = 60 + float64(strong)*10
		if result.DepthScore > 100 {
			result.DepthScore = 100
		}
	default:
		result.DepthScore = 55
		result.Recommendations = append(result.Recommendations,
			"Many themes detected but thinly spread; deepen the two or three that matter most")
	}

	return result, nil
}
