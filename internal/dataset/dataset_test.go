package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const groceriesCSV = `Member_number,Date,itemDescription
1808,21-07-2015,tropical fruit
2552,05-01-2015,whole milk
2300,19-09-2015,pip fruit
1808,21-07-2015,whole milk
1187,12-12-2015,other vegetables
2552,05-01-2015, whole milk
3037,01-02-2015,whole milk
`

func TestReadTransactions(t *testing.T) {
	txs, err := ReadTransactions(strings.NewReader(groceriesCSV))
	if err != nil {
		t.Fatalf("ReadTransactions() error = %v", err)
	}
	if len(txs) != 7 {
		t.Fatalf("ReadTransactions() returned %d records, want 7", len(txs))
	}
	if txs[5].Item != "whole milk" {
		t.Errorf("item not trimmed: %q", txs[5].Item)
	}
	if txs[0].CustomerID != "1808" || txs[0].Date != "21-07-2015" {
		t.Errorf("first record = %+v", txs[0])
	}
}

func TestReadTransactions_ColumnOrderAndCase(t *testing.T) {
	input := "itemdescription,member_number,date\nmilk,1,d1\nbread,1,d1\n"
	txs, err := ReadTransactions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTransactions() error = %v", err)
	}
	if len(txs) != 2 || txs[1].Item != "bread" || txs[1].CustomerID != "1" {
		t.Errorf("ReadTransactions() = %+v", txs)
	}
}

func TestReadTransactions_MissingColumn(t *testing.T) {
	_, err := ReadTransactions(strings.NewReader("Member_number,Date\n1,d1\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ReadTransactions() error = %v, want ErrMissingColumn", err)
	}
}

func TestReadTable_SkipsShortRows(t *testing.T) {
	table, err := ReadTable(strings.NewReader("a,b,c\n1,2,3\n4,5\n6,7,8\n"))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if len(table.Rows) != 2 {
		t.Errorf("ReadTable() rows = %d, want 2", len(table.Rows))
	}
}

func TestSummarize(t *testing.T) {
	table, err := ReadTable(strings.NewReader(groceriesCSV))
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}

	s := Summarize(table, 2)

	if s.Rows != 7 || s.Columns != 3 {
		t.Errorf("shape = (%d, %d), want (7, 3)", s.Rows, s.Columns)
	}
	if len(s.Preview) != 5 {
		t.Errorf("len(Preview) = %d, want 5", len(s.Preview))
	}

	if len(s.TopItems) != 2 {
		t.Fatalf("len(TopItems) = %d, want 2", len(s.TopItems))
	}
	if s.TopItems[0].Item != "whole milk" || s.TopItems[0].Count != 4 {
		t.Errorf("TopItems[0] = %+v, want whole milk x4", s.TopItems[0])
	}
	// other vegetables, pip fruit and tropical fruit tie at 1; name order wins.
	if s.TopItems[1].Item != "other vegetables" {
		t.Errorf("TopItems[1] = %+v, want other vegetables", s.TopItems[1])
	}
	if s.TopItems[0].Percent != 100 || s.TopItems[1].Percent != 25 {
		t.Errorf("percents = %v, %v", s.TopItems[0].Percent, s.TopItems[1].Percent)
	}

	if len(s.Numeric) != 1 || s.Numeric[0].Column != ColumnMember {
		t.Fatalf("Numeric = %+v, want only %s", s.Numeric, ColumnMember)
	}
	d := s.Numeric[0]
	// Sorted: 1187 1808 1808 2300 2552 2552 3037.
	if d.Count != 7 || d.Min != 1187 || d.Max != 3037 {
		t.Errorf("Describe = %+v", d)
	}
	if d.Q25 != 1808 || d.Median != 2300 || d.Q75 != 2552 {
		t.Errorf("quartiles = %v, %v, %v, want 1808, 2300, 2552", d.Q25, d.Median, d.Q75)
	}
	if math.Abs(d.Mean-2177.714285714286) > 1e-9 {
		t.Errorf("Mean = %v, want 2177.714...", d.Mean)
	}
	if math.Abs(d.Std-617.5755592869357) > 1e-6 {
		t.Errorf("Std = %v, want sample std 617.5755...", d.Std)
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		if got := quantile(values, tt.q); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("quantile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestStore_LoadAndChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groceries.csv")
	if err := os.WriteFile(path, []byte(groceriesCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if _, err := store.Current(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Current() before Load error = %v, want ErrNotLoaded", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Encoding.NumBaskets() != 5 {
		t.Errorf("NumBaskets() = %d, want 5", snap.Encoding.NumBaskets())
	}

	changed, err := store.Changed()
	if err != nil {
		t.Fatalf("Changed() error = %v", err)
	}
	if changed {
		t.Error("Changed() = true right after Load")
	}

	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	changed, err = store.Changed()
	if err != nil {
		t.Fatalf("Changed() error = %v", err)
	}
	if !changed {
		t.Error("Changed() = false after touching the file")
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.csv"))
	if _, err := store.Load(); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}
