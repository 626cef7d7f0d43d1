package service

import "testing"

func TestParseLeadScore(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare number", "8", 8},
		{"number with label", "Score: 7/10", 7},
		{"number in prose", "I would rate this lead a 9 because the budget is confirmed.", 9},
		{"no digits", "strong lead, high intent", 5},
		{"empty", "", 5},
		{"zero", "0", 5},
		{"out of range", "15", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLeadScore(tt.raw)
			if got != tt.want {
				t.Errorf("ParseLeadScore(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
