// File: stringx_test.go
// Title: String Utility Unit Tests
// Description: Unit tests for blank/empty checks and name folding helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial test suite

package stringx

import "testing"

func TestIsEmptyAndIsBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantEmpty bool
		wantBlank bool
	}{
		{"Empty string", "", true, true},
		{"Spaces only", "   ", false, true},
		{"Tab and newline", "\t\n", false, true},
		{"Word", "sedan", false, false},
		{"Word with spaces", " sedan ", false, false},
		{"Unicode whitespace", " ", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.input); got != tt.wantEmpty {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.wantEmpty)
			}
			if got := IsBlank(tt.input); got != tt.wantBlank {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.wantBlank)
			}
			if got := IsNotEmpty(tt.input); got == tt.wantEmpty {
				t.Errorf("IsNotEmpty(%q) = %v, inverse expected", tt.input, got)
			}
			if got := IsNotBlank(tt.input); got == tt.wantBlank {
				t.Errorf("IsNotBlank(%q) = %v, inverse expected", tt.input, got)
			}
		})
	}
}

func TestTrimToEmpty(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  sedan  ", "sedan"},
		{"", ""},
		{"\tsedan\n", "sedan"},
		{"sedan", "sedan"},
	}

	for _, tt := range tests {
		if got := TrimToEmpty(tt.input); got != tt.want {
			t.Errorf("TrimToEmpty(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFoldName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sedan", "SEDAN"},
		{"SeDaN", "SEDAN"},
		{"SEDAN", "SEDAN"},
		{"", ""},
		{"sedan-2", "SEDAN-2"},
	}

	for _, tt := range tests {
		if got := FoldName(tt.input); got != tt.want {
			t.Errorf("FoldName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEqualNames(t *testing.T) {
	tests := []struct {
		name            string
		a, b            string
		caseInsensitive bool
		want            bool
	}{
		{"Exact match sensitive", "Sedan", "Sedan", false, true},
		{"Case mismatch sensitive", "Sedan", "sedan", false, false},
		{"Case mismatch insensitive", "Sedan", "sedan", true, true},
		{"Different names insensitive", "Sedan", "Truck", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualNames(tt.a, tt.b, tt.caseInsensitive); got != tt.want {
				t.Errorf("EqualNames(%q, %q, %v) = %v, want %v",
					tt.a, tt.b, tt.caseInsensitive, got, tt.want)
			}
		})
	}
}
