package faq

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity scores two strings in [0, 1], with 1 for identical input.
type Similarity interface {
	Score(a, b string) float64
}

// SimilarityFunc adapts a plain function to Similarity.
type SimilarityFunc func(a, b string) float64

// Score calls f(a, b).
func (f SimilarityFunc) Score(a, b string) float64 {
	return f(a, b)
}

// SequenceRatio is the Ratcliff/Obershelp ratio: twice the number of characters
// in matching blocks divided by the total length of both strings.
type SequenceRatio struct{}

// Score compares a and b rune by rune.
func (SequenceRatio) Score(a, b string) float64 {
	if a == b {
		return 1
	}
	m := difflib.NewMatcher(runes(a), runes(b))
	return m.Ratio()
}

func runes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

// TrigramJaccard is the Jaccard index of the character trigram sets of both
// strings. Strings shorter than three runes act as a single gram.
type TrigramJaccard struct{}

// Score compares the trigram sets of a and b.
func (TrigramJaccard) Score(a, b string) float64 {
	if a == b {
		return 1
	}
	ga, gb := trigrams(a), trigrams(b)

	intersection := 0
	for g := range ga {
		if _, ok := gb[g]; ok {
			intersection++
		}
	}
	union := len(ga) + len(gb) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func trigrams(s string) map[string]struct{} {
	r := []rune(s)
	grams := make(map[string]struct{})
	if len(r) < 3 {
		if len(r) > 0 {
			grams[s] = struct{}{}
		}
		return grams
	}
	for i := 0; i+3 <= len(r); i++ {
		grams[string(r[i:i+3])] = struct{}{}
	}
	return grams
}

// SimilarityByName returns a named similarity strategy ("sequence" or "trigram").
func SimilarityByName(name string) (Similarity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sequence", "ratcliff":
		return SequenceRatio{}, nil
	case "trigram", "jaccard":
		return TrigramJaccard{}, nil
	default:
		return nil, fmt.Errorf("unknown similarity %q", name)
	}
}
