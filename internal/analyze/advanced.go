package analyze

import (
	"math"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/segment"
	"github.com/okrenz/manuscan/internal/util"
)

// AdvancedAnalyzer bundles the second-tier craft metrics: emotional
// pacing, POV consistency, clichés, filtering words, backstory share,
// dialogue/narrative ratio, scene-sequel rhythm, conflict density, and
// sensory balance.
type AdvancedAnalyzer struct {
	emotionWords   []string
	cliches        []string
	filteringWords []string
	backstoryCues  []string
	conflictCues   []string
	sequelCues     []string
	senses         map[string][]string
}

// NewAdvancedAnalyzer creates an advanced-metrics analyzer.
func NewAdvancedAnalyzer() *AdvancedAnalyzer {
	return &AdvancedAnalyzer{
		emotionWords: []string{
			"afraid", "angry", "joy", "grief", "terror", "relief",
			"despair", "hope", "fury", "tender", "shame", "longing",
		},
		cliches: []string{
			"dark and stormy night", "in the nick of time", "cold sweat",
			"heart of gold", "crystal clear", "dead silence",
			"blood ran cold", "weak in the knees", "time stood still",
			"like a ton of bricks", "calm before the storm",
			"at the end of the day", "last but not least",
		},
		filteringWords: []string{
			"saw", "heard", "felt", "noticed", "watched", "realized",
			"seemed", "wondered", "thought", "knew",
		},
		backstoryCues: []string{
			"had been", "years ago", "used to", "back when",
			"as a child", "remembered",
		},
		conflictCues: []string{
			"fight", "fought", "argue", "argued", "refuse", "refused",
			"against", "threat", "confront", "clash", "struggle",
			"demanded", "blocked",
		},
		sequelCues: []string{
			"thought about", "wondered", "considered", "decided",
			"breathed", "rested", "reflected",
		},
		senses: map[string][]string{
			"sight": {"saw", "glimpse", "bright", "shadow", "color", "colour", "gleam"},
			"sound": {"heard", "whisper", "echo", "roar", "hum", "silence"},
			"smell": {"smell", "scent", "aroma", "stench"},
			"taste": {"taste", "bitter", "sweet", "sour", "salty"},
			"touch": {"touch", "rough", "smooth", "cold", "warm", "sting"},
		},
	}
}

func (a *AdvancedAnalyzer) Name() string { return NameAdvanced }

// Analyze computes every advanced sub-metric in one pass.
func (a *AdvancedAnalyzer) Analyze(text, _ string) (any, error) {
	lower := strings.ToLower(text)
	words := util.Words(text)
	wordCount := len(words)
	paragraphs := segment.Split(text)

	result := model.AdvancedMetricsResult{
		EmotionalPacing: a.emotionalPacing(paragraphs),
		POV:             a.povConsistency(words),
		Cliches:         a.clicheScan(lower),
		Filtering:       a.filteringScan(lower, wordCount),
		Backstory:       a.backstoryShare(paragraphs),
		DialogueRatio:   dialogueShare(text),
		SceneSequel:     a.sceneSequel(paragraphs),
		Conflict:        a.conflictDensity(lower, wordCount),
		Sensory:         a.sensoryBalance(lower),
	}
	return result, nil
}

// emotionalPacing wants emotional beats spread through the manuscript,
// not bunched into one stretch.
func (a *AdvancedAnalyzer) emotionalPacing(paragraphs []segment.Paragraph) model.BalanceMetric {
	if len(paragraphs) == 0 {
		return model.BalanceMetric{Score: 50}
	}

	hits := 0
	thirds := [3]int{}
	for i, p := range paragraphs {
		lw := strings.ToLower(p.Text)
		if _, found := util.ContainsAny(lw, a.emotionWords); found {
			hits++
			thirds[i*3/len(paragraphs)]++
		}
	}

	pct := float64(hits) / float64(len(paragraphs)) * 100
	score := 60.0
	spread := 0
	for _, n := range thirds {
		if n > 0 {
			spread++
		}
	}
	score += float64(spread) * 10
	if pct >= 15 && pct <= 60 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return model.BalanceMetric{Percentage: pct, Score: score}
}

// povConsistency finds the dominant narrative person and counts pronoun
// usage outside it.
func (a *AdvancedAnalyzer) povConsistency(words []string) model.POVMetrics {
	first := map[string]bool{"i": true, "me": true, "my": true, "mine": true, "we": true, "our": true}
	second := map[string]bool{"you": true, "your": true, "yours": true}
	third := map[string]bool{"he": true, "she": true, "him": true, "her": true, "his": true, "hers": true, "they": true, "them": true, "their": true}

	counts := map[string]int{}
	for _, w := range words {
		norm := util.NormalizeWord(w)
		switch {
		case first[norm]:
			counts["first"]++
		case second[norm]:
			counts["second"]++
		case third[norm]:
			counts["third"]++
		}
	}

	// Fixed evaluation order so ties resolve the same way on every run.
	dominant := "third"
	max := 0
	total := 0
	for _, person := range []string{"first", "second", "third"} {
		n := counts[person]
		total += n
		if n > max {
			max = n
			dominant = person
		}
	}

	metrics := model.POVMetrics{Dominant: dominant, Score: 100}
	if total == 0 {
		metrics.Score = 80
		return metrics
	}

	// Second-person bleed into a first/third manuscript is the usual
	// violation; mixed first/third is normal in dialogue-heavy text, so
	// only minority persons under 5% are treated as clean.
	for person, n := range counts {
		if person == dominant {
			continue
		}
		share := float64(n) / float64(total)
		if person == "second" && share > 0.02 {
			metrics.Violations += n
		} else if share > 0.35 {
			metrics.Violations += n / 2
		}
	}
	score := 100 - float64(metrics.Violations)
	if score < 0 {
		score = 0
	}
	metrics.Score = score
	return metrics
}

func (a *AdvancedAnalyzer) clicheScan(lower string) model.ClicheMetrics {
	metrics := model.ClicheMetrics{}
	for _, c := range a.cliches {
		n := strings.Count(lower, c)
		if n == 0 {
			continue
		}
		metrics.Count += n
		metrics.Found = append(metrics.Found, c)
	}
	return metrics
}

func (a *AdvancedAnalyzer) filteringScan(lower string, wordCount int) model.FilteringMetrics {
	metrics := model.FilteringMetrics{}
	for _, f := range a.filteringWords {
		metrics.Count += strings.Count(lower, " "+f+" ")
	}
	if wordCount > 0 {
		metrics.Density = float64(metrics.Count) / float64(wordCount) * 1000
	}
	score := 100 - metrics.Density*5
	if score < 0 {
		score = 0
	}
	metrics.Score = score
	return metrics
}

// backstoryShare measures the fraction of paragraphs dominated by
// retrospective narration. Some backstory is good; a third of the text is
// not.
func (a *AdvancedAnalyzer) backstoryShare(paragraphs []segment.Paragraph) model.BalanceMetric {
	if len(paragraphs) == 0 {
		return model.BalanceMetric{Score: 50}
	}
	flagged := 0
	for _, p := range paragraphs {
		lw := strings.ToLower(p.Text)
		hits := 0
		for _, cue := range a.backstoryCues {
			hits += strings.Count(lw, cue)
		}
		if hits >= 2 {
			flagged++
		}
	}
	pct := float64(flagged) / float64(len(paragraphs)) * 100
	score := 100 - math.Max(0, pct-15)*2
	if score < 0 {
		score = 0
	}
	return model.BalanceMetric{Percentage: pct, Score: score}
}

// dialogueShare measures the fraction of text inside quotation marks and
// scores proximity to the 30-60% band most commercial fiction sits in.
func dialogueShare(text string) model.BalanceMetric {
	inQuote := false
	quoted := 0
	total := 0
	for _, r := range text {
		if r == '"' || r == '“' || r == '”' {
			if r != '”' {
				inQuote = !inQuote
			} else {
				inQuote = false
			}
			continue
		}
		total++
		if inQuote {
			quoted++
		}
	}
	if total == 0 {
		return model.BalanceMetric{Score: 50}
	}
	pct := float64(quoted) / float64(total) * 100

	var score float64
	switch {
	case pct >= 30 && pct <= 60:
		score = 100
	case pct >= 20 && pct <= 70:
		score = 85
	case pct >= 10 && pct <= 80:
		score = 70
	default:
		score = 55
	}
	return model.BalanceMetric{Percentage: pct, Score: score}
}

// sceneSequel classifies paragraphs into action scenes and reflective
// sequels, rewarding alternation.
func (a *AdvancedAnalyzer) sceneSequel(paragraphs []segment.Paragraph) model.SceneSequelMetrics {
	metrics := model.SceneSequelMetrics{Score: 60}
	for _, p := range paragraphs {
		lw := strings.ToLower(p.Text)
		conflicts := 0
		for _, cue := range a.conflictCues {
			conflicts += strings.Count(lw, cue)
		}
		sequels := 0
		for _, cue := range a.sequelCues {
			sequels += strings.Count(lw, cue)
		}
		switch {
		case conflicts > sequels && conflicts > 0:
			metrics.Scenes++
		case sequels > 0:
			metrics.Sequels++
		}
	}

	if metrics.Scenes == 0 && metrics.Sequels == 0 {
		return metrics
	}
	total := metrics.Scenes + metrics.Sequels
	sceneRatio := float64(metrics.Scenes) / float64(total)
	switch {
	case sceneRatio >= 0.4 && sceneRatio <= 0.7:
		metrics.Score = 95
	case sceneRatio >= 0.25 && sceneRatio <= 0.85:
		metrics.Score = 80
	default:
		metrics.Score = 60
	}
	return metrics
}

func (a *AdvancedAnalyzer) conflictDensity(lower string, wordCount int) model.ConflictMetrics {
	metrics := model.ConflictMetrics{}
	for _, cue := range a.conflictCues {
		metrics.Markers += strings.Count(lower, cue)
	}
	if wordCount > 0 {
		metrics.DensityPer1000 = float64(metrics.Markers) / float64(wordCount) * 1000
	}
	return metrics
}

func (a *AdvancedAnalyzer) sensoryBalance(lower string) model.SensoryMetrics {
	metrics := model.SensoryMetrics{}
	counts := map[string]*int{
		"sight": &metrics.Sight,
		"sound": &metrics.Sound,
		"smell": &metrics.Smell,
		"taste": &metrics.Taste,
		"touch": &metrics.Touch,
	}
	covered := 0
	for sense, words := range a.senses {
		n := 0
		for _, w := range words {
			n += strings.Count(lower, w)
		}
		*counts[sense] = n
		if n > 0 {
			covered++
		}
	}
	// 20 points per sense exercised at least once.
	metrics.Balance = float64(covered) * 20
	return metrics
}
