package api

import (
	"context"

	"basketlens/internal/dataset"
	"basketlens/internal/models"
)

// SnapshotSource yields the currently loaded dataset.
type SnapshotSource interface {
	Current() (*dataset.Snapshot, error)
}

// RuleStore reads precomputed itemsets and rules.
type RuleStore interface {
	GetFrequentItemsets(ctx context.Context, minSupport float64) ([]models.FrequentItemset, error)
	GetAssociationRules(ctx context.Context, minSupport, minConfidence float64) ([]models.AssociationRule, error)
}
