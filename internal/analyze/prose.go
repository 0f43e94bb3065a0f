package analyze

import (
	"strings"

	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/util"
)

// ProseQualityAnalyzer computes the nested prose-craft sub-metrics:
// vocabulary variety, dialogue attribution, passive voice, adverb density,
// sentence-length buckets, and readability.
type ProseQualityAnalyzer struct {
	passiveAux map[string]bool
	plainTags  []string
	ornateTags []string
}

// NewProseQualityAnalyzer creates a prose-quality analyzer.
func NewProseQualityAnalyzer() *ProseQualityAnalyzer {
	return &ProseQualityAnalyzer{
		passiveAux: map[string]bool{
			"was": true, "were": true, "is": true, "are": true,
			"been": true, "being": true, "be": true,
		},
		plainTags: []string{"said", "asked"},
		ornateTags: []string{
			"exclaimed", "pontificated", "ejaculated", "expostulated",
			"intoned", "queried", "opined", "chortled", "hissed",
		},
	}
}

func (a *ProseQualityAnalyzer) Name() string { return NameProseQuality }

// Analyze computes all prose sub-metrics in one pass over the text.
func (a *ProseQualityAnalyzer) Analyze(text, _ string) (any, error) {
	words := util.Words(text)
	sentences := util.SplitSentences(text)

	result := model.ProseQualityResult{}

	// Vocabulary variety: distinct-to-total ratio scaled against the 0.4
	// a typical long-form text settles near.
	distinct := map[string]bool{}
	adverbs := 0
	for _, w := range words {
		norm := util.NormalizeWord(w)
		if norm == "" {
			continue
		}
		distinct[norm] = true
		if strings.HasSuffix(norm, "ly") && len(norm) > 4 {
			adverbs++
		}
	}
	if len(words) > 0 {
		ratio := float64(len(distinct)) / float64(len(words))
		variety := ratio / 0.4 * 100
		if variety > 100 {
			variety = 100
		}
		result.VocabularyVariety = variety
		result.AdverbDensity = float64(adverbs) / float64(len(words)) * 1000
	}

	// Dialogue tags: plain invisible tags beat ornate ones.
	plain, ornate := 0, 0
	lower := strings.ToLower(text)
	for _, tag := range a.plainTags {
		plain += strings.Count(lower, " "+tag)
	}
	for _, tag := range a.ornateTags {
		ornate += strings.Count(lower, tag)
	}
	switch {
	case plain+ornate == 0:
		result.DialogueTagQuality = 70 // no attribution found at all
	default:
		result.DialogueTagQuality = float64(plain) / float64(plain+ornate) * 100
	}

	// Passive voice: auxiliary + past participle ("was taken").
	passive := 0
	for i := 0; i+1 < len(words); i++ {
		if !a.passiveAux[util.NormalizeWord(words[i])] {
			continue
		}
		next := util.NormalizeWord(words[i+1])
		if strings.HasSuffix(next, "ed") || strings.HasSuffix(next, "en") {
			passive++
		}
	}
	if len(sentences) > 0 {
		result.PassiveVoicePct = float64(passive) / float64(len(sentences)) * 100
	}

	// Sentence buckets and variety.
	for _, s := range sentences {
		n := len(util.Words(s))
		switch {
		case n < 10:
			result.Sentences.Short++
		case n > 25:
			result.Sentences.Long++
		default:
			result.Sentences.Medium++
		}
	}
	result.SentenceVariety = sentenceVariety(result.Sentences)

	result.FleschKincaidGrade = util.FleschKincaidGrade(text)

	return result, nil
}

// sentenceVariety rewards a mix of lengths anchored on medium sentences.
func sentenceVariety(b model.SentenceBuckets) float64 {
	total := b.Short + b.Medium + b.Long
	if total == 0 {
		return 50
	}
	nonEmpty := 0
	for _, n := range []int{b.Short, b.Medium, b.Long} {
		if n > 0 {
			nonEmpty++
		}
	}
	base := 40 + float64(nonEmpty)*15
	mediumRatio := float64(b.Medium) / float64(total)
	if mediumRatio >= 0.4 && mediumRatio <= 0.7 {
		base += 15
	}
	if base > 100 {
		base = 100
	}
	return base
}
