package faq

import (
	"errors"
	"strings"
)

// DefaultThreshold is the minimum similarity a match must reach.
const DefaultThreshold = 0.4

var ErrNoMatch = errors.New("no matching question")

// Match is the winning corpus entry for a query.
type Match struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

// Matcher finds the closest corpus question for free-text queries. It holds
// no mutable state and is safe for concurrent use.
type Matcher struct {
	corpus     *Corpus
	similarity Similarity
	threshold  float64
}

// NewMatcher creates a matcher. A nil similarity selects SequenceRatio.
func NewMatcher(corpus *Corpus, similarity Similarity, threshold float64) *Matcher {
	if similarity == nil {
		similarity = SequenceRatio{}
	}
	return &Matcher{corpus: corpus, similarity: similarity, threshold: threshold}
}

// Threshold returns the configured cutoff.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Corpus returns the corpus being searched.
func (m *Matcher) Corpus() *Corpus {
	return m.corpus
}

// Match returns the best-scoring entry, or ErrNoMatch when the best score is
// below the threshold or the corpus is empty. Among equal scores the entry
// that comes first in the corpus wins.
func (m *Matcher) Match(query string) (*Match, error) {
	q := strings.ToLower(query)

	// A question already in the corpus scores 1 under any strategy.
	if answer, ok := m.corpus.Answer(q); ok && q == strings.TrimSpace(q) && m.threshold <= 1 {
		return &Match{Question: q, Answer: answer, Score: 1}, nil
	}

	best := -1
	bestScore := 0.0
	for i, e := range m.corpus.entries {
		score := m.similarity.Score(e.Question, q)
		if best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 || bestScore < m.threshold {
		return nil, ErrNoMatch
	}

	e := m.corpus.entries[best]
	return &Match{Question: e.Question, Answer: e.Answer, Score: bestScore}, nil
}

// Lookup returns the answer for the closest question to query using the
// Ratcliff/Obershelp ratio, or ErrNoMatch.
func Lookup(query string, corpus *Corpus, threshold float64) (string, error) {
	match, err := NewMatcher(corpus, SequenceRatio{}, threshold).Match(query)
	if err != nil {
		return "", err
	}
	return match.Answer, nil
}
