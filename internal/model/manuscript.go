package model

import "strings"

// DefaultGenre is used when the caller does not supply a genre label.
const DefaultGenre = "general"

// Section marks a structural unit of the manuscript (chapter, scene break).
type Section struct {
	Heading string `json:"heading"`
	Start   int    `json:"start"` // rune offset of section start
	End     int    `json:"end"`   // rune offset of section end (exclusive)
}

// Manuscript is the immutable input to one analysis run.
type Manuscript struct {
	ID        string    `json:"id" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	WordCount int       `json:"word_count" validate:"min=0"`
	Sections  []Section `json:"sections,omitempty"`
	Genre     string    `json:"genre,omitempty"`
}

// NewManuscript builds a Manuscript with a precomputed word count.
// An empty genre falls back to DefaultGenre.
func NewManuscript(id, text, genre string) Manuscript {
	if genre == "" {
		genre = DefaultGenre
	}
	return Manuscript{
		ID:        id,
		Text:      text,
		WordCount: len(strings.Fields(text)),
		Genre:     genre,
	}
}
