package analyze

import (
	"sort"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
)

// TropeAnalyzer checks genre-convention adherence against per-genre trope
// keyword lists and flags trope overuse.
type TropeAnalyzer struct {
	genreTropes map[string]map[string][]string
}

// NewTropeAnalyzer creates a trope analyzer with the built-in genre lists.
func NewTropeAnalyzer() *TropeAnalyzer {
	return &TropeAnalyzer{
		genreTropes: map[string]map[string][]string{
			"fantasy": {
				"chosen one":   {"chosen one", "prophecy", "destined"},
				"dark lord":    {"dark lord", "ancient evil", "shadow king"},
				"magic mentor": {"wizard", "mentor", "old sage"},
				"epic quest":   {"quest", "journey", "artifact"},
			},
			"mystery": {
				"red herring":  {"red herring", "false lead", "wrong suspect"},
				"locked room":  {"locked room", "impossible crime"},
				"hidden past":  {"secret past", "buried secret", "old case"},
				"final reveal": {"confession", "unmasked", "all along"},
			},
			"romance": {
				"meet cute":        {"first met", "bumped into", "locked eyes"},
				"love triangle":    {"torn between", "both of them"},
				"grand gesture":    {"ran after", "declaration", "airport"},
				"misunderstanding": {"misunderstood", "never told", "if only"},
			},
			"thriller": {
				"ticking clock": {"hours left", "running out of time", "deadline"},
				"double agent":  {"double agent", "mole", "inside man"},
				"cat and mouse": {"one step ahead", "hunting", "trap"},
			},
			model.DefaultGenre: {
				"flashback":     {"years earlier", "remembered when", "back then"},
				"foreshadowing": {"little did", "would later", "not yet know"},
				"cliffhanger":   {"suddenly", "at that moment", "door burst"},
			},
		},
	}
}

func (a *TropeAnalyzer) Name() string { return NameTropes }

// Analyze counts genre tropes and scores convention vs overuse.
func (a *TropeAnalyzer) Analyze(text, genre string) (any, error) {
	genre = strings.ToLower(genre)
	tropes, ok := a.genreTropes[genre]
	if !ok {
		genre = model.DefaultGenre
		tropes = a.genreTropes[genre]
	}

	lower := strings.ToLower(text)
	words := len(strings.Fields(text))

	result := model.TropeResult{Genre: genre}
	present := 0
	totalHits := 0
	for name, keywords := range tropes {
		count := 0
		for _, kw := range keywords {
			count += strings.Count(lower, kw)
		}
		if count == 0 {
			continue
		}
		present++
		totalHits += count
		result.Tropes = append(result.Tropes, model.Trope{Name: name, Count: count})
	}
	sort.Slice(result.Tropes, func(i, j int) bool {
		if result.Tropes[i].Count != result.Tropes[j].Count {
			return result.Tropes[i].Count > result.Tropes[j].Count
		}
		return result.Tropes[i].Name < result.Tropes[j].Name
	})

	// Convention: share of the genre's trope families that appear at all.
	result.ConventionScore = float64(present) / float64(len(tropes)) * 100

	// Overuse: trope hits per 10k words, capped at 100.
	if words > 0 {
		result.OveruseScore = float64(totalHits) / float64(words) * 10_000 * 2
		if result.OveruseScore > 100 {
			result.OveruseScore = 100
		}
	}

	if result.ConventionScore < 25 {
		result.Recommendations = append(result.Recommendations,
			"Few "+genre+" conventions detected; readers of the genre may find the manuscript off-brand")
	}
	if result.OveruseScore > 60 {
		result.Recommendations = append(result.Recommendations,
			"Trope language appears very frequently; subvert or thin out the most repeated ones")
	}

	return result, nil
}
