package score

import "testing"

func TestPacingScore(t *testing.T) {
	tests := []struct {
		name                        string
		compact, balanced, extended int
		want                        int
	}{
		{"no paragraphs is neutral", 0, 0, 0, 50},
		{"single band only", 10, 0, 0, 70},
		{"all bands, balanced ratio 0.4", 3, 4, 3, 100},
		{"all bands, balanced ratio 0.6", 2, 6, 2, 100},
		{"all bands, balanced ratio 0.35", 8, 7, 5, 93}, // variety 100, balance 85
		{"all bands, balanced ratio too low", 8, 1, 1, 85},
		{"two bands, good ratio", 5, 5, 0, 85}, // variety 70, balance 100
		{"two bands, mid ratio", 7, 3, 0, 78},  // variety 70, balance 85 -> 77.5 rounds up
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PacingScore(tt.compact, tt.balanced, tt.extended)
			if got != tt.want {
				t.Errorf("PacingScore(%d, %d, %d) = %d, want %d",
					tt.compact, tt.balanced, tt.extended, got, tt.want)
			}
		})
	}
}

func TestDualCodingScore_Bands(t *testing.T) {
	tests := []struct {
		suggestions, paragraphs int
		want                    int
	}{
		{5, 100, 95},  // ratio 0.05
		{15, 100, 85}, // ratio 0.15
		{25, 100, 75},
		{35, 100, 65},
		{45, 100, 55},
		{55, 100, 45}, // ratio 0.55
		{10, 100, 85}, // exactly 0.1 falls to the next band down
		{0, 0, 95},    // zero paragraphs guarded by max(totalParagraphs, 1)
	}

	for _, tt := range tests {
		got := DualCodingScore(tt.suggestions, tt.paragraphs)
		if got != tt.want {
			t.Errorf("DualCodingScore(%d, %d) = %d, want %d",
				tt.suggestions, tt.paragraphs, got, tt.want)
		}
	}
}

func TestDualCodingScore_Monotonic(t *testing.T) {
	prev := 101
	for suggestions := 0; suggestions <= 120; suggestions++ {
		got := DualCodingScore(suggestions, 100)
		if got > prev {
			t.Fatalf("score increased from %d to %d at suggestionCount=%d", prev, got, suggestions)
		}
		prev = got
	}
}
