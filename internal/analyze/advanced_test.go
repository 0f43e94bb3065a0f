package analyze

import (
	"strings"
	"testing"

	"github.com/okrenz/manuscan/internal/model"
)

func TestAdvancedAnalyzer_POVTieIsDeterministic(t *testing.T) {
	// First- and second-person pronouns tie at 10 counts each.
	text := strings.TrimSpace(strings.Repeat("I warned you. ", 10))

	a := NewAdvancedAnalyzer()
	first, err := a.Analyze(text, "")
	if err != nil {
		t.Fatal(err)
	}
	pov := first.(model.AdvancedMetricsResult).POV

	if pov.Dominant != "first" {
		t.Errorf("tied counts must resolve to first person, got %s", pov.Dominant)
	}

	for i := 0; i < 50; i++ {
		raw, err := a.Analyze(text, "")
		if err != nil {
			t.Fatal(err)
		}
		got := raw.(model.AdvancedMetricsResult).POV
		if got.Dominant != pov.Dominant || got.Violations != pov.Violations || got.Score != pov.Score {
			t.Fatalf("run %d differs: dominant=%s violations=%d score=%v, want dominant=%s violations=%d score=%v",
				i, got.Dominant, got.Violations, got.Score, pov.Dominant, pov.Violations, pov.Score)
		}
	}
}

func TestAdvancedAnalyzer_POVViolations(t *testing.T) {
	// Heavily third person with a second-person slip.
	text := strings.TrimSpace(strings.Repeat("She watched him leave. ", 20)) +
		" You would have done the same."

	a := NewAdvancedAnalyzer()
	raw, err := a.Analyze(text, "")
	if err != nil {
		t.Fatal(err)
	}
	pov := raw.(model.AdvancedMetricsResult).POV

	if pov.Dominant != "third" {
		t.Errorf("dominant = %s, want third", pov.Dominant)
	}
	if pov.Violations == 0 {
		t.Error("second-person bleed should count as a violation")
	}
	if pov.Score >= 100 {
		t.Errorf("score = %v, want below 100 with violations present", pov.Score)
	}
}
