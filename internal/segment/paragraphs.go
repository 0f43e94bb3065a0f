// Package segment splits manuscript text into paragraphs and classifies
// them into pacing bands by word count.
package segment

import (
	"regexp"
	"strings"
)

// PacingClass is the length band of one paragraph.
type PacingClass string

const (
	ClassCompact  PacingClass = "compact"  // < 60 words
	ClassBalanced PacingClass = "balanced" // 60-160 words
	ClassExtended PacingClass = "extended" // > 160 words
)

const (
	compactMax  = 60
	extendedMin = 160
)

// Paragraph is one non-empty paragraph with its word count.
type Paragraph struct {
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
}

// Class returns the pacing band for the paragraph.
func (p Paragraph) Class() PacingClass {
	return Classify(p.WordCount)
}

// Classify maps a word count to its pacing band. Boundaries are exclusive:
// exactly 60 and exactly 160 words are both balanced.
func Classify(wordCount int) PacingClass {
	switch {
	case wordCount < compactMax:
		return ClassCompact
	case wordCount > extendedMin:
		return ClassExtended
	default:
		return ClassBalanced
	}
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Split breaks text into paragraphs on blank lines. Empty paragraphs are
// excluded entirely; they count toward no pacing band.
func Split(text string) []Paragraph {
	parts := paragraphBreak.Split(text, -1)
	paragraphs := make([]Paragraph, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		paragraphs = append(paragraphs, Paragraph{
			Text:      trimmed,
			WordCount: len(strings.Fields(trimmed)),
		})
	}
	return paragraphs
}

// Count tallies paragraphs per pacing band.
func Count(paragraphs []Paragraph) (compact, balanced, extended int) {
	for _, p := range paragraphs {
		switch p.Class() {
		case ClassCompact:
			compact++
		case ClassExtended:
			extended++
		default:
			balanced++
		}
	}
	return compact, balanced, extended
}
