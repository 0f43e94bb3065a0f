package util

import (
	"math"
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello,", "hello"},
		{"\"Stop!\"", "stop"},
		{"don't", "don't"},
		{"--", ""},
		{"Mira's", "mira's"},
		{"1920s", "1920s"},
	}
	for _, tt := range tests {
		if got := NormalizeWord(tt.in); got != tt.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"single", "One sentence.", 1},
		{"mixed terminators", "First. Second! Third?", 3},
		{"newlines treated as spaces", "First.\nSecond.", 2},
		{"no trailing terminator", "First. Second without a stop", 2},
		{"decimal point kept intact", "It cost 3.50 dollars. Then it rained.", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.in); len(got) != tt.want {
				t.Errorf("got %d sentences %v, want %d", len(got), got, tt.want)
			}
		})
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"water", 2},
		{"beautiful", 3},
		{"the", 1},
		{"make", 1},  // silent e
		{"table", 2}, // -le keeps its syllable
		{"rhythm", 1},
		{"", 1}, // floor
	}
	for _, tt := range tests {
		if got := CountSyllables(tt.word); got != tt.want {
			t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestFleschKincaidGrade(t *testing.T) {
	if got := FleschKincaidGrade(""); got != 0 {
		t.Errorf("empty text grade = %v, want 0", got)
	}

	// Ten one-syllable words in one sentence:
	// 0.39*10 + 11.8*1 - 15.59 = 0.11
	got := FleschKincaidGrade("The cat sat on the mat and then it slept.")
	if math.Abs(got-0.11) > 0.01 {
		t.Errorf("grade = %v, want ~0.11", got)
	}

	simple := FleschKincaidGrade("The dog ran. The cat sat. It was fun.")
	dense := FleschKincaidGrade("Notwithstanding considerable organizational complexity, the initiative demonstrated extraordinary institutional resilience throughout implementation.")
	if simple >= dense {
		t.Errorf("simple prose grade %v should be below dense prose grade %v", simple, dense)
	}
}

func TestContainsAny(t *testing.T) {
	needles := []string{"scent", "cold", "roar"}

	match, found := ContainsAny("the cold wind", needles)
	if !found || match != "cold" {
		t.Errorf("got %q, %v; want cold, true", match, found)
	}
	if _, found := ContainsAny("nothing here", needles); found {
		t.Error("unexpected match")
	}
}
