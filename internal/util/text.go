// Package util provides small text helpers shared by the analyzers.
package util

import (
	"strings"
	"unicode"
)

// Words splits text on whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// NormalizeWord lowercases a token and strips surrounding punctuation.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	}))
}

// SplitSentences splits text into sentences on ./!/? followed by
// whitespace. A simple heuristic: abbreviations followed by a space will
// over-split, which is acceptable for density-style metrics.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// CountSyllables estimates syllables in a word by counting vowel groups.
// Good enough for readability grades; exactness is not required.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	// Silent trailing e.
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

// FleschKincaidGrade computes the standard grade-level formula.
func FleschKincaidGrade(text string) float64 {
	sentences := SplitSentences(text)
	words := Words(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(NormalizeWord(w))
	}

	wordsPerSentence := float64(len(words)) / float64(len(sentences))
	syllablesPerWord := float64(syllables) / float64(len(words))
	return 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59
}

// ContainsAny reports whether the lowercased text contains any of the
// given lowercase needles, and returns the first match.
func ContainsAny(lower string, needles []string) (string, bool) {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return n, true
		}
	}
	return "", false
}
