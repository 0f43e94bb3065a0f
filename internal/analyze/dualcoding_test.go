package analyze

import (
	"strings"
	"testing"

	"github.com/okrenz/manuscan/internal/model"
)

func TestDualCodingAnalyzer(t *testing.T) {
	sensory := "The cold wind carried the scent of rain across the empty square."
	abstract := strings.TrimSpace(strings.Repeat("They considered the political situation at considerable length. ", 3))
	short := "He agreed."

	text := strings.Join([]string{sensory, abstract, short}, "\n\n")

	a := NewDualCodingAnalyzer()
	raw, err := a.Analyze(text, "")
	if err != nil {
		t.Fatal(err)
	}
	result := raw.(model.DualCodingResult)

	if result.TotalParagraphs != 3 {
		t.Errorf("TotalParagraphs = %d, want 3", result.TotalParagraphs)
	}
	if result.SensoryHits != 1 {
		t.Errorf("SensoryHits = %d, want 1", result.SensoryHits)
	}
	// The long abstract paragraph gets a note; the short connective one
	// does not.
	if result.SuggestionCount() != 1 {
		t.Fatalf("SuggestionCount = %d, want 1", result.SuggestionCount())
	}
	if result.Notes[0].Paragraph != 1 {
		t.Errorf("note anchored to paragraph %d, want 1", result.Notes[0].Paragraph)
	}
	if result.Notes[0].Advice == "" {
		t.Error("note missing advice text")
	}
}

func TestDualCodingAnalyzer_EmptyText(t *testing.T) {
	a := NewDualCodingAnalyzer()
	raw, err := a.Analyze("", "")
	if err != nil {
		t.Fatal(err)
	}
	result := raw.(model.DualCodingResult)
	if result.TotalParagraphs != 0 || result.SuggestionCount() != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
