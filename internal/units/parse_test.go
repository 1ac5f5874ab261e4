package units

import (
	"math"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2", 2},
		{" 1.5 ", 1.5},
		{"1/2", 0.5},
		{"1 1/2", 1.5},
		{"½", 0.5},
		{"1½", 1.5},
		{"2 ¼", 2.25},
		{"", 0},
		{"abc", 0},
		{"1/0", 0},
		{"-3", 0},
		{"NaN", 0},
		{"1 2 3", 0},
	}
	for _, tt := range tests {
		got := ParseValue(tt.input)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseValue(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
