// Package basket turns raw purchase records into per-basket presence data and
// computes pairwise association metrics over it.
package basket

import (
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Transaction is a single purchase record: one item bought by one customer on
// one date.
type Transaction struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	Item       string `json:"item"`
}

// Basket is the set of items bought together, keyed by customer and date.
type Basket struct {
	CustomerID string   `json:"customer_id"`
	Date       string   `json:"date"`
	Items      []string `json:"items"` // distinct, in first-seen order
}

// Encoding is the one-hot view of a transaction dataset. It is built once by
// Encode and never mutated afterwards, so it can be shared across goroutines
// without locking.
type Encoding struct {
	baskets []Basket
	items   []string
	index   map[string]int

	// rows[b] has bit i set when basket b contains item i.
	rows []*bitset.BitSet
	// cols[i] has bit b set when item i appears in basket b.
	cols []*bitset.BitSet
}

type basketKey struct {
	customer string
	date     string
}

// Encode groups transactions into baskets and builds the presence matrix over
// the sorted item universe. Records with a blank item name are dropped.
func Encode(transactions []Transaction) *Encoding {
	grouped := make(map[basketKey]*Basket)
	seen := make(map[basketKey]map[string]struct{})
	universe := make(map[string]struct{})

	for _, tx := range transactions {
		item := strings.TrimSpace(tx.Item)
		if item == "" {
			continue
		}
		key := basketKey{customer: tx.CustomerID, date: tx.Date}
		b, ok := grouped[key]
		if !ok {
			b = &Basket{CustomerID: tx.CustomerID, Date: tx.Date}
			grouped[key] = b
			seen[key] = make(map[string]struct{})
		}
		if _, dup := seen[key][item]; !dup {
			seen[key][item] = struct{}{}
			b.Items = append(b.Items, item)
		}
		universe[item] = struct{}{}
	}

	enc := &Encoding{
		baskets: make([]Basket, 0, len(grouped)),
		items:   make([]string, 0, len(universe)),
		index:   make(map[string]int, len(universe)),
	}

	for _, b := range grouped {
		enc.baskets = append(enc.baskets, *b)
	}
	sort.Slice(enc.baskets, func(i, j int) bool {
		if enc.baskets[i].CustomerID != enc.baskets[j].CustomerID {
			return enc.baskets[i].CustomerID < enc.baskets[j].CustomerID
		}
		return enc.baskets[i].Date < enc.baskets[j].Date
	})

	for item := range universe {
		enc.items = append(enc.items, item)
	}
	sort.Strings(enc.items)
	for i, item := range enc.items {
		enc.index[item] = i
	}

	enc.rows = make([]*bitset.BitSet, len(enc.baskets))
	enc.cols = make([]*bitset.BitSet, len(enc.items))
	for i := range enc.cols {
		enc.cols[i] = bitset.New(uint(len(enc.baskets)))
	}
	for b, basket := range enc.baskets {
		row := bitset.New(uint(len(enc.items)))
		for _, item := range basket.Items {
			i := enc.index[item]
			row.Set(uint(i))
			enc.cols[i].Set(uint(b))
		}
		enc.rows[b] = row
	}

	return enc
}

// NumBaskets returns the number of baskets (the "total" of every support).
func (e *Encoding) NumBaskets() int {
	return len(e.baskets)
}

// Baskets returns the baskets in encoding order. The slice must not be modified.
func (e *Encoding) Baskets() []Basket {
	return e.baskets
}

// Items returns the sorted item universe. The slice must not be modified.
func (e *Encoding) Items() []string {
	return e.items
}

// ItemIndex returns the column index of an item.
func (e *Encoding) ItemIndex(item string) (int, bool) {
	i, ok := e.index[item]
	return i, ok
}

// Has reports whether basket b contains item i.
func (e *Encoding) Has(b, i int) bool {
	if b < 0 || b >= len(e.rows) || i < 0 || i >= len(e.items) {
		return false
	}
	return e.rows[b].Test(uint(i))
}

// Presence returns the one-hot cell value for basket b and item i.
func (e *Encoding) Presence(b, i int) uint8 {
	if e.Has(b, i) {
		return 1
	}
	return 0
}

// Row returns a copy of basket b's presence bits over the item universe.
func (e *Encoding) Row(b int) *bitset.BitSet {
	if b < 0 || b >= len(e.rows) {
		return bitset.New(0)
	}
	return e.rows[b].Clone()
}

// ItemCount returns the number of baskets containing item i.
func (e *Encoding) ItemCount(i int) int {
	if i < 0 || i >= len(e.cols) {
		return 0
	}
	return int(e.cols[i].Count())
}

// JointCount returns the number of baskets containing both items i and j.
func (e *Encoding) JointCount(i, j int) int {
	if i < 0 || i >= len(e.cols) || j < 0 || j >= len(e.cols) {
		return 0
	}
	return int(e.cols[i].IntersectionCardinality(e.cols[j]))
}
