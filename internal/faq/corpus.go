// Package faq answers free-text questions by fuzzy-matching them against a
// fixed corpus of canonical questions.
package faq

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one canonical question and its answer.
type Entry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Corpus is an immutable, ordered question -> answer table. Order is the order
// of construction and decides ties during lookup.
type Corpus struct {
	entries []Entry
	index   map[string]int
}

// NewCorpus builds a corpus. Questions are trimmed and lower-cased; blank
// questions are skipped. A repeated question keeps its first position and
// takes the later answer.
func NewCorpus(entries []Entry) *Corpus {
	c := &Corpus{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		q := strings.ToLower(strings.TrimSpace(e.Question))
		if q == "" {
			continue
		}
		if i, ok := c.index[q]; ok {
			c.entries[i].Answer = e.Answer
			continue
		}
		c.index[q] = len(c.entries)
		c.entries = append(c.entries, Entry{Question: q, Answer: e.Answer})
	}
	return c
}

// corpusFile is the on-disk layout of the FAQ file.
type corpusFile struct {
	Entries []Entry `yaml:"faq"`
}

// LoadCorpus reads a YAML FAQ file of the form:
//
//	faq:
//	  - question: what is apriori algorithm
//	    answer: It is a rule-mining method.
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read faq corpus: %w", err)
	}

	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse faq corpus: %w", err)
	}

	return NewCorpus(f.Entries), nil
}

// Len returns the number of questions.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Entries returns the entries in corpus order. The slice must not be modified.
func (c *Corpus) Entries() []Entry {
	return c.entries
}

// Answer returns the answer for an exact (normalized) question.
func (c *Corpus) Answer(question string) (string, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(question))]
	if !ok {
		return "", false
	}
	return c.entries[i].Answer, true
}
