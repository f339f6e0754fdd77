package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength caps chatbot questions.
const MaxQueryLength = 500

// UsernamePattern defines the valid username format: alphanumeric, dots, hyphens, underscores.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidateUsername checks if a username matches the allowed pattern.
func ValidateUsername(username string) bool {
	if username == "" || len(username) > 64 {
		return false
	}
	return UsernamePattern.MatchString(username)
}

// ParseFraction parses a threshold in [0, 1]. An empty value yields fallback.
func ParseFraction(value string, fallback float64) (float64, bool, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, true, ""
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false, "Threshold must be a number"
	}
	if f < 0 || f > 1 {
		return 0, false, "Threshold must be between 0 and 1"
	}
	return f, true, ""
}

// ValidateItemSelection checks that two items were chosen and differ.
func ValidateItemSelection(item1, item2 string) (bool, string) {
	if strings.TrimSpace(item1) == "" || strings.TrimSpace(item2) == "" {
		return false, "Please select items."
	}
	if item1 == item2 {
		return false, "Please choose two different items."
	}
	return true, ""
}

// ValidateQuery checks a chatbot question.
func ValidateQuery(query string) (bool, string) {
	if strings.TrimSpace(query) == "" {
		return false, "Please ask a question."
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return false, "Question is too long"
	}
	return true, ""
}
