package basket

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeAssociation_Example(t *testing.T) {
	enc := Encode(exampleTransactions())

	got, err := ComputeAssociation("milk", "bread", enc)
	if err != nil {
		t.Fatalf("ComputeAssociation() error = %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Support1", got.Support1, 0.75},
		{"Support2", got.Support2, 0.75},
		{"SupportBoth", got.SupportBoth, 0.5},
		{"Confidence1To2", got.Confidence1To2, 2.0 / 3.0},
		{"Confidence2To1", got.Confidence2To1, 2.0 / 3.0},
		{"Lift", got.Lift, (2.0 / 3.0) / 0.75},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if got.Classification != NegativelyAssociated {
		t.Errorf("Classification = %q, want %q", got.Classification, NegativelyAssociated)
	}
	if got.Baskets != 4 {
		t.Errorf("Baskets = %d, want 4", got.Baskets)
	}
}

func TestComputeAssociation_AsymmetricConfidence(t *testing.T) {
	enc := Encode(exampleTransactions())

	got, err := ComputeAssociation("eggs", "milk", enc)
	if err != nil {
		t.Fatalf("ComputeAssociation() error = %v", err)
	}
	if !almostEqual(got.Confidence1To2, 1) {
		t.Errorf("Confidence1To2 = %v, want 1", got.Confidence1To2)
	}
	if !almostEqual(got.Confidence2To1, 1.0/3.0) {
		t.Errorf("Confidence2To1 = %v, want 1/3", got.Confidence2To1)
	}
	if got.Classification != PositivelyAssociated {
		t.Errorf("Classification = %q, want %q", got.Classification, PositivelyAssociated)
	}
}

func TestComputeAssociation_Independent(t *testing.T) {
	// a and b each appear in half the baskets and together in a quarter.
	txs := []Transaction{
		{CustomerID: "1", Date: "d", Item: "a"},
		{CustomerID: "1", Date: "d", Item: "b"},
		{CustomerID: "2", Date: "d", Item: "a"},
		{CustomerID: "2", Date: "d", Item: "c"},
		{CustomerID: "3", Date: "d", Item: "b"},
		{CustomerID: "4", Date: "d", Item: "c"},
	}
	got, err := ComputeAssociation("a", "b", Encode(txs))
	if err != nil {
		t.Fatalf("ComputeAssociation() error = %v", err)
	}
	if got.Lift != 1 {
		t.Errorf("Lift = %v, want 1", got.Lift)
	}
	if got.Classification != Independent {
		t.Errorf("Classification = %q, want %q", got.Classification, Independent)
	}
}

func TestComputeAssociation_InvalidInput(t *testing.T) {
	enc := Encode(exampleTransactions())

	tests := []struct {
		name    string
		item1   string
		item2   string
		wantErr error
	}{
		{"same item", "milk", "milk", ErrSameItem},
		{"unknown first", "nonexistent", "milk", ErrUnknownItem},
		{"unknown second", "milk", "nonexistent", ErrUnknownItem},
		{"both unknown and equal", "nope", "nope", ErrUnknownItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAssociation(tt.item1, tt.item2, enc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ComputeAssociation() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ComputeAssociation() error = %v, want wrapping ErrInvalidInput", err)
			}
		})
	}
}

func TestComputeAssociation_ZeroBaskets(t *testing.T) {
	// An item universe without baskets cannot come out of Encode, so build
	// the degenerate encoding by hand.
	enc := &Encoding{
		items: []string{"a", "b"},
		index: map[string]int{"a": 0, "b": 1},
	}

	got, err := ComputeAssociation("a", "b", enc)
	if err != nil {
		t.Fatalf("ComputeAssociation() error = %v", err)
	}
	for name, v := range map[string]float64{
		"Support1":       got.Support1,
		"Support2":       got.Support2,
		"SupportBoth":    got.SupportBoth,
		"Confidence1To2": got.Confidence1To2,
		"Confidence2To1": got.Confidence2To1,
		"Lift":           got.Lift,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0", name, v)
		}
	}
	if got.Classification != NegativelyAssociated {
		t.Errorf("Classification = %q, want %q", got.Classification, NegativelyAssociated)
	}
}

func TestComputeAssociation_Properties(t *testing.T) {
	txs := []Transaction{
		{CustomerID: "1", Date: "a", Item: "whole milk"},
		{CustomerID: "1", Date: "a", Item: "rolls/buns"},
		{CustomerID: "1", Date: "a", Item: "yogurt"},
		{CustomerID: "2", Date: "a", Item: "whole milk"},
		{CustomerID: "2", Date: "b", Item: "soda"},
		{CustomerID: "3", Date: "a", Item: "yogurt"},
		{CustomerID: "3", Date: "a", Item: "soda"},
		{CustomerID: "4", Date: "a", Item: "rolls/buns"},
		{CustomerID: "4", Date: "a", Item: "whole milk"},
		{CustomerID: "5", Date: "c", Item: "sausage"},
	}
	enc := Encode(txs)
	items := enc.Items()

	for _, x := range items {
		for _, y := range items {
			if x == y {
				continue
			}
			xy, err := ComputeAssociation(x, y, enc)
			if err != nil {
				t.Fatalf("ComputeAssociation(%q, %q) error = %v", x, y, err)
			}
			yx, err := ComputeAssociation(y, x, enc)
			if err != nil {
				t.Fatalf("ComputeAssociation(%q, %q) error = %v", y, x, err)
			}

			if xy.Support1 < 0 || xy.Support1 > 1 {
				t.Errorf("support(%q) = %v out of [0,1]", x, xy.Support1)
			}
			if xy.SupportBoth > math.Min(xy.Support1, xy.Support2)+epsilon {
				t.Errorf("support(%q,%q) = %v exceeds min of singles", x, y, xy.SupportBoth)
			}
			if xy.Confidence1To2 < 0 || xy.Confidence1To2 > 1+epsilon {
				t.Errorf("confidence(%q->%q) = %v out of [0,1]", x, y, xy.Confidence1To2)
			}
			if !almostEqual(xy.Lift, yx.Lift) {
				t.Errorf("lift(%q->%q) = %v, lift(%q->%q) = %v", x, y, xy.Lift, y, x, yx.Lift)
			}
			if !almostEqual(xy.Confidence1To2, yx.Confidence2To1) {
				t.Errorf("confidence(%q->%q) differs between argument orders", x, y)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		lift float64
		want Classification
	}{
		{1.5, PositivelyAssociated},
		{1, Independent},
		{0.9, NegativelyAssociated},
		{0, NegativelyAssociated},
	}

	for _, tt := range tests {
		if got := Classify(tt.lift); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.lift, got, tt.want)
		}
	}
}
