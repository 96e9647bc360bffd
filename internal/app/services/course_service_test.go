package services

import "testing"

func TestIsValidCourseCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"CS101", true},
		{"MATH2", true},
		{"ENG", true},
		{"101", true},
		{"", false},
		{"cs101", false},
		{"CS-101", false},
		{"CS 101", false},
		{"CS_101", false},
	}

	for _, tt := range tests {
		if got := isValidCourseCode(tt.code); got != tt.want {
			t.Errorf("isValidCourseCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
