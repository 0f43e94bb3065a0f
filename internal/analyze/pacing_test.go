package analyze

import (
	"strings"
	"testing"

	"github.com/okrenz/manuscan/internal/model"
)

func paragraphOf(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestPacingAnalyzer_Bands(t *testing.T) {
	text := strings.Join([]string{
		paragraphOf(10),  // compact
		paragraphOf(100), // balanced
		paragraphOf(200), // extended
		paragraphOf(59),  // compact
	}, "\n\n")

	r := NewEmptyRegistry()
	r.Register(NewPacingAnalyzer())
	result, err := RunAs[model.PacingResult](r, NamePacing, text, "")
	if err != nil {
		t.Fatal(err)
	}

	if result.Compact != 2 || result.Balanced != 1 || result.Extended != 1 {
		t.Errorf("got compact=%d balanced=%d extended=%d, want 2/1/1",
			result.Compact, result.Balanced, result.Extended)
	}
	if result.TotalParagraphs() != 4 {
		t.Errorf("TotalParagraphs = %d, want 4", result.TotalParagraphs())
	}
	if len(result.Problems) != 0 {
		t.Errorf("no monotonous run expected, got %v", result.Problems)
	}
}

func TestPacingAnalyzer_MonotonyFlagged(t *testing.T) {
	parts := make([]string, 6)
	for i := range parts {
		parts[i] = paragraphOf(10)
	}
	text := strings.Join(parts, "\n\n")

	a := NewPacingAnalyzer()
	raw, err := a.Analyze(text, "")
	if err != nil {
		t.Fatal(err)
	}
	result := raw.(model.PacingResult)

	if len(result.Problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(result.Problems), result.Problems)
	}
	if result.Problems[0].Kind != "monotonous-compact" {
		t.Errorf("problem kind = %s, want monotonous-compact", result.Problems[0].Kind)
	}
}

func TestPacingAnalyzer_EmptyText(t *testing.T) {
	a := NewPacingAnalyzer()
	raw, err := a.Analyze("", "")
	if err != nil {
		t.Fatal(err)
	}
	result := raw.(model.PacingResult)
	if result.TotalParagraphs() != 0 {
		t.Errorf("TotalParagraphs = %d, want 0", result.TotalParagraphs())
	}
}
