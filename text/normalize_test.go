package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "Introduction", "Introduction"},
		{"collapse spaces", "1.   Introduction", "1. Introduction"},
		{"tabs and newlines", "Chapter\t1\nOverview", "Chapter 1 Overview"},
		{"leading trailing", "  padded  ", "padded"},
		{"combining mark composed", "résumé", "résumé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFoldEquatesVariants(t *testing.T) {
	a := Fold("RÉSUMÉ")
	b := Fold("résumé")
	if a != b {
		t.Errorf("Fold forms differ: %q vs %q", a, b)
	}
}

func TestIsNumericOnly(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"42", true},
		{"3.14", true},
		{"2024-01", true},
		{"1. Introduction", false},
		{"", false},
		{"...", false},
	}

	for _, tt := range tests {
		if got := IsNumericOnly(tt.input); got != tt.expected {
			t.Errorf("IsNumericOnly(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
