package services

import "testing"

func TestLetterGradeFor(t *testing.T) {
	tests := []struct {
		marks float64
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{80, "A"},
		{79.5, "B+"},
		{75, "B+"},
		{74, "B"},
		{70, "B"},
		{69, "C+"},
		{65, "C+"},
		{64.9, "C"},
		{60, "C"},
		{59, "D"},
		{50, "D"},
		{49.9, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := LetterGradeFor(tt.marks); got != tt.want {
			t.Errorf("LetterGradeFor(%v) = %q, want %q", tt.marks, got, tt.want)
		}
	}
}
