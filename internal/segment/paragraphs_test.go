package segment

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		words int
		want  PacingClass
	}{
		{0, ClassCompact},
		{59, ClassCompact},
		{60, ClassBalanced},
		{100, ClassBalanced},
		{160, ClassBalanced},
		{161, ClassExtended},
		{500, ClassExtended},
	}

	for _, tt := range tests {
		if got := Classify(tt.words); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.words, got, tt.want)
		}
	}
}

func TestSplit_ExcludesEmptyParagraphs(t *testing.T) {
	text := "First paragraph here.\n\n\n\n   \n\nSecond paragraph here."
	paragraphs := Split(text)

	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}
	if paragraphs[0].WordCount != 3 {
		t.Errorf("expected 3 words in first paragraph, got %d", paragraphs[0].WordCount)
	}
}

func TestSplit_EmptyText(t *testing.T) {
	if got := Split(""); len(got) != 0 {
		t.Errorf("expected no paragraphs for empty text, got %d", len(got))
	}
	if got := Split("\n\n  \n\n"); len(got) != 0 {
		t.Errorf("expected no paragraphs for whitespace text, got %d", len(got))
	}
}

func TestCount(t *testing.T) {
	compactPara := "short one."
	balancedPara := strings.Repeat("word ", 100)
	extendedPara := strings.Repeat("word ", 200)

	text := compactPara + "\n\n" + balancedPara + "\n\n" + extendedPara + "\n\n" + compactPara
	compact, balanced, extended := Count(Split(text))

	if compact != 2 || balanced != 1 || extended != 1 {
		t.Errorf("Count = (%d, %d, %d), want (2, 1, 1)", compact, balanced, extended)
	}
}
