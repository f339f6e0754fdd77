package models

import (
	"strings"

	"github.com/google/uuid"
)

// FrequentItemset is a precomputed itemset and its support.
type FrequentItemset struct {
	ID      uuid.UUID `json:"id"`
	Items   []string  `json:"itemsets"`
	Support float64   `json:"support"`
}

// Label renders the itemset as "{a, b}".
func (f *FrequentItemset) Label() string {
	return setLabel(f.Items)
}

// AssociationRule is a precomputed antecedents -> consequents rule.
type AssociationRule struct {
	ID          uuid.UUID `json:"id"`
	Antecedents []string  `json:"antecedents"`
	Consequents []string  `json:"consequents"`
	Support     float64   `json:"support"`
	Confidence  float64   `json:"confidence"`
	Lift        float64   `json:"lift"`
}

// Label renders the rule as "{a} -> {b}".
func (r *AssociationRule) Label() string {
	return setLabel(r.Antecedents) + " -> " + setLabel(r.Consequents)
}

func setLabel(items []string) string {
	return "{" + strings.Join(items, ", ") + "}"
}

// Chat lookup outcomes.
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
)

// ChatLookup is the running count of chatbot answers per question and outcome.
// Question is the matched canonical question, or empty for no match.
type ChatLookup struct {
	Question string `json:"question"`
	Outcome  string `json:"outcome"`
	Count    int64  `json:"count"`
}
