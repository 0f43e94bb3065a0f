package score

import (
	"testing"

	"github.com/okrenz/manuscan/internal/model"
)

func sampleRaw() model.RawResults {
	return model.RawResults{
		Pacing:     model.PacingResult{Compact: 3, Balanced: 4, Extended: 3},
		DualCoding: model.DualCodingResult{TotalParagraphs: 10},
		Characters: model.CharacterResult{AverageDevelopment: 75},
		Themes:     model.ThemeResult{DepthScore: 70},
		Tropes:     model.TropeResult{Genre: "fantasy", ConventionScore: 50, OveruseScore: 20},
		Elements: model.FictionElementsResult{
			Elements: []model.FictionElement{
				{Name: "plot", Score: 40, Insights: []string{"thin plot"}},
				{Name: "setting", Score: 90, Insights: []string{"rich setting"}},
				{Name: "character", Score: 65, Insights: []string{"solid"}},
			},
			BalanceScore: 80,
		},
		Prose: model.ProseQualityResult{
			VocabularyVariety:  80,
			DialogueTagQuality: 90,
			PassiveVoicePct:    10,
			AdverbDensity:      15,
			SentenceVariety:    85,
			FleschKincaidGrade: 8,
		},
		Advanced: model.AdvancedMetricsResult{
			EmotionalPacing: model.BalanceMetric{Percentage: 30, Score: 80},
			POV:             model.POVMetrics{Dominant: "third", Score: 100},
			Filtering:       model.FilteringMetrics{Score: 90},
			Backstory:       model.BalanceMetric{Percentage: 10, Score: 100},
			DialogueRatio:   model.BalanceMetric{Percentage: 40, Score: 100},
			SceneSequel:     model.SceneSequelMetrics{Scenes: 5, Sequels: 4, Score: 95},
			Conflict:        model.ConflictMetrics{Markers: 20, DensityPer1000: 2.5},
			Sensory:         model.SensoryMetrics{Sight: 5, Sound: 3, Smell: 1, Taste: 1, Touch: 2, Balance: 100},
		},
	}
}

func TestBuild_Cardinality(t *testing.T) {
	scores := NewBuilder().Build(sampleRaw())

	// 20 fixed metrics + 3 elements + 1 balance.
	if len(scores) != 24 {
		t.Fatalf("expected 24 principle scores, got %d", len(scores))
	}

	elementCount := 0
	balanceCount := 0
	for _, s := range scores {
		if s.ID.IsFictionElement() {
			elementCount++
		}
		if s.ID == model.PrincipleFictionBalance {
			balanceCount++
		}
	}
	if elementCount != 3 {
		t.Errorf("expected 3 fiction-element scores, got %d", elementCount)
	}
	if balanceCount != 1 {
		t.Errorf("expected exactly 1 fictionBalance score, got %d", balanceCount)
	}
}

func TestBuild_FictionElementsSortedDescending(t *testing.T) {
	scores := NewBuilder().Build(sampleRaw())

	var elements []model.PrincipleScore
	for _, s := range scores {
		if s.ID.IsFictionElement() {
			elements = append(elements, s)
		}
	}

	for i := 1; i < len(elements); i++ {
		if elements[i].Score > elements[i-1].Score {
			t.Fatalf("fiction elements not sorted descending: %v then %v",
				elements[i-1].Score, elements[i].Score)
		}
	}
	// IDs are assigned after sorting.
	if elements[0].ID != model.FictionElementID(0) {
		t.Errorf("first element ID = %s, want %s", elements[0].ID, model.FictionElementID(0))
	}
	if elements[0].DisplayName != "Setting" {
		t.Errorf("highest-scoring element should be Setting, got %s", elements[0].DisplayName)
	}
}

func TestBuild_WeightsMatchTable(t *testing.T) {
	scores := NewBuilder().Build(sampleRaw())

	for _, s := range scores {
		want := Weight(s.ID)
		if want == 0 {
			t.Errorf("principle %s has no weight table entry", s.ID)
			continue
		}
		if s.Weight != want {
			t.Errorf("principle %s weight = %v, want %v", s.ID, s.Weight, want)
		}
		if s.Weight < 0.5 || s.Weight > 1.0 {
			t.Errorf("principle %s weight %v outside [0.5, 1.0]", s.ID, s.Weight)
		}
	}
}

func TestActiveVoice_Clamping(t *testing.T) {
	raw := sampleRaw()
	raw.Prose.PassiveVoicePct = 80 // would be -60 without the clamp

	scores := NewBuilder().Build(raw)
	for _, s := range scores {
		if s.ID != model.PrincipleActiveVoice {
			continue
		}
		if s.Score != 0 {
			t.Errorf("active voice score = %v, want 0", s.Score)
		}
		return
	}
	t.Fatal("activeVoice principle missing")
}

func TestAdverbEconomy_Clamping(t *testing.T) {
	raw := sampleRaw()
	raw.Prose.AdverbDensity = 500

	scores := NewBuilder().Build(raw)
	for _, s := range scores {
		if s.ID == model.PrincipleAdverbEconomy {
			if s.Score < 0 || s.Score > 100 {
				t.Errorf("adverb economy score %v outside [0, 100]", s.Score)
			}
			return
		}
	}
	t.Fatal("adverbEconomy principle missing")
}

func TestReadability_Clamping(t *testing.T) {
	raw := sampleRaw()
	raw.Prose.FleschKincaidGrade = 40 // |40-8|*5 = 160 penalty

	scores := NewBuilder().Build(raw)
	for _, s := range scores {
		if s.ID == model.PrincipleReadability {
			if s.Score != 0 {
				t.Errorf("readability score = %v, want 0", s.Score)
			}
			return
		}
	}
	t.Fatal("readability principle missing")
}

func TestClicheSuggestion_ThresholdIsStrict(t *testing.T) {
	find := func(count int) []model.Suggestion {
		raw := sampleRaw()
		raw.Advanced.Cliches = model.ClicheMetrics{Count: count}
		for _, s := range NewBuilder().Build(raw) {
			if s.ID == model.PrincipleClicheAvoidance {
				return s.Suggestions
			}
		}
		t.Fatal("clicheAvoidance principle missing")
		return nil
	}

	if got := find(5); len(got) != 0 {
		t.Errorf("count=5 should emit no suggestion, got %d", len(got))
	}
	if got := find(6); len(got) != 1 {
		t.Errorf("count=6 should emit one suggestion, got %d", len(got))
	}
}

func TestConflictSuggestion_PriorityThreshold(t *testing.T) {
	priorityFor := func(density float64) model.Priority {
		raw := sampleRaw()
		raw.Advanced.Conflict = model.ConflictMetrics{DensityPer1000: density}
		for _, s := range NewBuilder().Build(raw) {
			if s.ID == model.PrincipleConflictPresence {
				if len(s.Suggestions) == 0 {
					t.Fatalf("expected a suggestion at density %v", density)
				}
				return s.Suggestions[0].Priority
			}
		}
		t.Fatal("conflictPresence principle missing")
		return ""
	}

	if got := priorityFor(0.5); got != model.PriorityHigh {
		t.Errorf("density 0.5 priority = %s, want high", got)
	}
	if got := priorityFor(1.5); got != model.PriorityMedium {
		t.Errorf("density 1.5 priority = %s, want medium", got)
	}
}

func TestFictionElement_SuggestionCap(t *testing.T) {
	raw := sampleRaw()
	raw.Elements.Elements = []model.FictionElement{
		{Name: "plot", Score: 20, Insights: []string{"a", "b", "c", "d", "e"}},
	}

	for _, s := range NewBuilder().Build(raw) {
		if !s.ID.IsFictionElement() {
			continue
		}
		if len(s.Suggestions) != 3 {
			t.Errorf("expected at most 3 suggestions per element, got %d", len(s.Suggestions))
		}
		for _, sug := range s.Suggestions {
			if sug.Priority != model.PriorityHigh {
				t.Errorf("score 20 element should carry high priority, got %s", sug.Priority)
			}
		}
		return
	}
	t.Fatal("no fiction-element principle found")
}
