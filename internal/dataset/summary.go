package dataset

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// previewRows is the number of rows shown in the dataset preview.
const previewRows = 5

// ItemFrequency is how many records mention an item.
type ItemFrequency struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
	// Percent of the largest count, for bar widths.
	Percent float64 `json:"percent"`
}

// Describe is a numeric column summary.
type Describe struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Summary is the dataset overview shown on the home page.
type Summary struct {
	Rows     int             `json:"rows"`
	Columns  int             `json:"columns"`
	Header   []string        `json:"header"`
	Preview  [][]string      `json:"preview"`
	Numeric  []Describe      `json:"numeric"`
	TopItems []ItemFrequency `json:"top_items"`
}

// Summarize builds the overview of a table.
func Summarize(t *Table, topN int) Summary {
	s := Summary{
		Rows:    len(t.Rows),
		Columns: len(t.Header),
		Header:  t.Header,
	}

	n := previewRows
	if len(t.Rows) < n {
		n = len(t.Rows)
	}
	s.Preview = t.Rows[:n]

	for i, h := range t.Header {
		if d, ok := describeColumn(t, i); ok {
			d.Column = h
			s.Numeric = append(s.Numeric, d)
		}
	}

	if col, err := t.Column(ColumnItem); err == nil {
		s.TopItems = TopItems(t, col, topN)
	}

	return s
}

// TopItems counts values of column col and returns the n most frequent, ties
// ordered by name.
func TopItems(t *Table, col, n int) []ItemFrequency {
	counts := make(map[string]int)
	for _, row := range t.Rows {
		item := strings.TrimSpace(row[col])
		if item == "" {
			continue
		}
		counts[item]++
	}

	freqs := make([]ItemFrequency, 0, len(counts))
	for item, c := range counts {
		freqs = append(freqs, ItemFrequency{Item: item, Count: c})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Item < freqs[j].Item
	})

	if n > 0 && len(freqs) > n {
		freqs = freqs[:n]
	}
	if len(freqs) > 0 {
		max := float64(freqs[0].Count)
		for i := range freqs {
			freqs[i].Percent = float64(freqs[i].Count) / max * 100
		}
	}
	return freqs
}

// describeColumn summarizes column i if every non-empty value parses as a
// number.
func describeColumn(t *Table, i int) (Describe, bool) {
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		v := strings.TrimSpace(row[i])
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Describe{}, false
		}
		values = append(values, f)
	}
	if len(values) == 0 {
		return Describe{}, false
	}
	sort.Float64s(values)

	std := 0.0
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	return Describe{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Std:    std,
		Min:    values[0],
		Q25:    quantile(values, 0.25),
		Median: quantile(values, 0.5),
		Q75:    quantile(values, 0.75),
		Max:    values[len(values)-1],
	}, true
}

// quantile uses linear interpolation between closest ranks on sorted values.
// gonum's stat.Quantile only offers the empirical and LinInterp (CDF-based)
// estimators, neither of which matches this definition.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
