package basket

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownItem  = fmt.Errorf("%w: unknown item", ErrInvalidInput)
	ErrSameItem     = fmt.Errorf("%w: items must differ", ErrInvalidInput)
)

// Classification describes the direction of an association.
type Classification string

const (
	PositivelyAssociated Classification = "positively associated"
	Independent          Classification = "independent"
	NegativelyAssociated Classification = "negatively associated"
)

// Classify maps a lift value to its classification.
func Classify(lift float64) Classification {
	switch {
	case lift > 1:
		return PositivelyAssociated
	case lift == 1:
		return Independent
	default:
		return NegativelyAssociated
	}
}

// Association holds the metrics for one item pair.
//
// Lift is reported for Item1 -> Item2 only. lift(X->Y) equals lift(Y->X)
// algebraically (both reduce to support(X,Y) / (support(X) * support(Y))), so no
// reverse value is kept.
type Association struct {
	Item1          string         `json:"item1"`
	Item2          string         `json:"item2"`
	Baskets        int            `json:"baskets"`
	Support1       float64        `json:"support_1"`
	Support2       float64        `json:"support_2"`
	SupportBoth    float64        `json:"support_both"`
	Confidence1To2 float64        `json:"confidence_1_to_2"`
	Confidence2To1 float64        `json:"confidence_2_to_1"`
	Lift           float64        `json:"lift"`
	Classification Classification `json:"classification"`
}

// ComputeAssociation computes support, confidence in both directions, and lift
// for item1 and item2. Zero denominators resolve to 0, never NaN or Inf.
func ComputeAssociation(item1, item2 string, enc *Encoding) (*Association, error) {
	i, ok := enc.ItemIndex(item1)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, item1)
	}
	j, ok := enc.ItemIndex(item2)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, item2)
	}
	if i == j {
		return nil, ErrSameItem
	}

	total := enc.NumBaskets()
	s1 := fraction(enc.ItemCount(i), total)
	s2 := fraction(enc.ItemCount(j), total)
	s12 := fraction(enc.JointCount(i, j), total)

	conf12 := ratio(s12, s1)
	conf21 := ratio(s12, s2)
	lift := ratio(conf12, s2)

	return &Association{
		Item1:          item1,
		Item2:          item2,
		Baskets:        total,
		Support1:       s1,
		Support2:       s2,
		SupportBoth:    s12,
		Confidence1To2: conf12,
		Confidence2To1: conf21,
		Lift:           lift,
		Classification: Classify(lift),
	}, nil
}

func fraction(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

func ratio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 0
}
