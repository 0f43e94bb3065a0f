package analyze

import (
	"sort"
	"strings"
	"unicode"

	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/util"
)

// CharacterAnalyzer detects recurring capitalized names, classifies their
// narrative role by mention share, and estimates an arc from emotional
// language near each name.
type CharacterAnalyzer struct {
	stopwords     map[string]bool
	positiveWords []string
	negativeWords []string
}

// NewCharacterAnalyzer creates a character analyzer.
func NewCharacterAnalyzer() *CharacterAnalyzer {
	stop := map[string]bool{}
	for _, w := range []string{
		"The", "A", "An", "I", "He", "She", "It", "They", "We", "You",
		"But", "And", "Or", "Then", "When", "While", "After", "Before",
		"His", "Her", "Their", "My", "Its", "There", "This", "That",
		"If", "As", "At", "In", "On", "By", "For", "With", "No", "Not",
		"What", "Why", "How", "Where", "Who", "Yes", "Now", "Chapter",
	} {
		stop[w] = true
	}
	return &CharacterAnalyzer{
		stopwords: stop,
		positiveWords: []string{
			"smiled", "laughed", "hoped", "forgave", "learned", "grew",
			"accepted", "loved", "triumphed", "healed",
		},
		negativeWords: []string{
			"wept", "raged", "feared", "failed", "lost", "betrayed",
			"broke", "crumbled", "despaired", "regretted",
		},
	}
}

func (a *CharacterAnalyzer) Name() string { return NameCharacters }

// Analyze builds character records with role, arc, and development score.
func (a *CharacterAnalyzer) Analyze(text, _ string) (any, error) {
	sentences := util.SplitSentences(text)

	mentions := map[string]int{}
	arcSignal := map[string]int{} // positive minus negative co-occurrences
	for _, sentence := range sentences {
		words := util.Words(sentence)
		var namesHere []string
		for i, w := range words {
			trimmed := strings.TrimFunc(w, func(r rune) bool {
				return !unicode.IsLetter(r)
			})
			if trimmed == "" || a.stopwords[trimmed] {
				continue
			}
			// Sentence-initial capitals are ambiguous between names and
			// ordinary words, so only mid-sentence occurrences count.
			if i == 0 {
				continue
			}
			if unicode.IsUpper([]rune(trimmed)[0]) {
				mentions[trimmed]++
				namesHere = append(namesHere, trimmed)
			}
		}

		lower := strings.ToLower(sentence)
		signal := 0
		if _, ok := util.ContainsAny(lower, a.positiveWords); ok {
			signal++
		}
		if _, ok := util.ContainsAny(lower, a.negativeWords); ok {
			signal--
		}
		for _, name := range namesHere {
			arcSignal[name] += signal
		}
	}

	// Keep names with at least 3 mentions; anything rarer is noise.
	type entry struct {
		name  string
		count int
	}
	var entries []entry
	total := 0
	for name, count := range mentions {
		if count >= 3 {
			entries = append(entries, entry{name, count})
			total += count
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	result := model.CharacterResult{}
	var devSum float64
	for i, e := range entries {
		share := 0.0
		if total > 0 {
			share = float64(e.count) / float64(total)
		}

		role := "minor"
		switch {
		case i == 0 && share >= 0.25:
			role = "protagonist"
		case share >= 0.10:
			role = "supporting"
		}

		arc := "flat"
		switch {
		case arcSignal[e.name] >= 2:
			arc = "positive"
		case arcSignal[e.name] <= -2:
			arc = "negative"
		case e.count < 5:
			arc = "unclear"
		}

		// Development: mention depth plus any detectable arc movement.
		dev := float64(e.count) * 4
		if arc == "positive" || arc == "negative" {
			dev += 30
		}
		if dev > 100 {
			dev = 100
		}

		result.Characters = append(result.Characters, model.Character{
			Name:             e.name,
			Role:             role,
			Arc:              arc,
			Mentions:         e.count,
			DevelopmentScore: dev,
		})
		devSum += dev
	}

	if len(result.Characters) > 0 {
		result.AverageDevelopment = devSum / float64(len(result.Characters))
	}
	return result, nil
}
