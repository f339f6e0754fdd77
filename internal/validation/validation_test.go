package validation

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"valid alphanumeric", "analyst1", true},
		{"valid with dot", "jane.doe", true},
		{"valid with hyphen", "data-team", true},
		{"empty string", "", false},
		{"too long", strings.Repeat("a", 65), false},
		{"contains space", "jane doe", false},
		{"contains slash", "jane/doe", false},
		{"unicode", "日本語", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateUsername(tt.username); got != tt.want {
				t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    float64
		valid   bool
		wantMsg string
	}{
		{"empty uses fallback", "", 0.1, true, ""},
		{"zero", "0", 0, true, ""},
		{"one", "1", 1, true, ""},
		{"fraction", "0.25", 0.25, true, ""},
		{"whitespace", " 0.5 ", 0.5, true, ""},
		{"negative", "-0.1", 0, false, "Threshold must be between 0 and 1"},
		{"above one", "1.01", 0, false, "Threshold must be between 0 and 1"},
		{"not a number", "lots", 0, false, "Threshold must be a number"},
		{"nan", "NaN", 0, false, "Threshold must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid, msg := ParseFraction(tt.value, 0.1)
			if valid != tt.valid {
				t.Errorf("ParseFraction(%q) valid = %v, want %v", tt.value, valid, tt.valid)
			}
			if got != tt.want {
				t.Errorf("ParseFraction(%q) = %v, want %v", tt.value, got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("ParseFraction(%q) msg = %q, want %q", tt.value, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateItemSelection(t *testing.T) {
	tests := []struct {
		name    string
		item1   string
		item2   string
		valid   bool
		wantMsg string
	}{
		{"two items", "whole milk", "yogurt", true, ""},
		{"missing first", "", "yogurt", false, "Please select items."},
		{"missing second", "whole milk", " ", false, "Please select items."},
		{"same item", "yogurt", "yogurt", false, "Please choose two different items."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateItemSelection(tt.item1, tt.item2)
			if valid != tt.valid || msg != tt.wantMsg {
				t.Errorf("ValidateItemSelection(%q, %q) = (%v, %q), want (%v, %q)",
					tt.item1, tt.item2, valid, msg, tt.valid, tt.wantMsg)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		valid bool
	}{
		{"question", "what is lift?", true},
		{"blank", "   ", false},
		{"too long", strings.Repeat("x", MaxQueryLength+1), false},
		{"at limit", strings.Repeat("x", MaxQueryLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if valid, _ := ValidateQuery(tt.query); valid != tt.valid {
				t.Errorf("ValidateQuery() valid = %v, want %v", valid, tt.valid)
			}
		})
	}
}
