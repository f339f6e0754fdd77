package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"basketlens/internal/models"
)

// GetFrequentItemsets returns itemsets with support >= minSupport, highest
// support first.
func (d *DB) GetFrequentItemsets(ctx context.Context, minSupport float64) ([]models.FrequentItemset, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, items, support
		FROM frequent_itemsets
		WHERE support >= $1
		ORDER BY support DESC, items ASC
	`, minSupport)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []models.FrequentItemset
	for rows.Next() {
		var s models.FrequentItemset
		if err := rows.Scan(&s.ID, &s.Items, &s.Support); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// GetAssociationRules returns rules with support >= minSupport and
// confidence >= minConfidence, highest support first.
func (d *DB) GetAssociationRules(ctx context.Context, minSupport, minConfidence float64) ([]models.AssociationRule, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, antecedents, consequents, support, confidence, lift
		FROM association_rules
		WHERE support >= $1 AND confidence >= $2
		ORDER BY support DESC, confidence DESC
	`, minSupport, minConfidence)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []models.AssociationRule
	for rows.Next() {
		var r models.AssociationRule
		if err := rows.Scan(&r.ID, &r.Antecedents, &r.Consequents, &r.Support, &r.Confidence, &r.Lift); err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// ReplaceAnalysis swaps the stored itemsets and rules in one transaction. A
// nil slice leaves its table untouched; an empty one clears it.
func (d *DB) ReplaceAnalysis(ctx context.Context, sets []models.FrequentItemset, rules []models.AssociationRule) error {
	return pgx.BeginFunc(ctx, d.Pool, func(tx pgx.Tx) error {
		if sets != nil {
			if err := replaceItemsets(ctx, tx, sets); err != nil {
				return err
			}
		}
		if rules != nil {
			if err := replaceRules(ctx, tx, rules); err != nil {
				return err
			}
		}
		return nil
	})
}

func replaceItemsets(ctx context.Context, tx pgx.Tx, sets []models.FrequentItemset) error {
	if _, err := tx.Exec(ctx, `DELETE FROM frequent_itemsets`); err != nil {
		return fmt.Errorf("failed to clear itemsets: %w", err)
	}
	for _, s := range sets {
		if _, err := tx.Exec(ctx,
			`INSERT INTO frequent_itemsets (items, support) VALUES ($1, $2)`,
			s.Items, s.Support,
		); err != nil {
			return fmt.Errorf("failed to insert itemset %s: %w", s.Label(), err)
		}
	}
	return nil
}

func replaceRules(ctx context.Context, tx pgx.Tx, rules []models.AssociationRule) error {
	if _, err := tx.Exec(ctx, `DELETE FROM association_rules`); err != nil {
		return fmt.Errorf("failed to clear rules: %w", err)
	}
	for _, r := range rules {
		if _, err := tx.Exec(ctx, `
			INSERT INTO association_rules (antecedents, consequents, support, confidence, lift)
			VALUES ($1, $2, $3, $4, $5)
		`, r.Antecedents, r.Consequents, r.Support, r.Confidence, r.Lift); err != nil {
			return fmt.Errorf("failed to insert rule %s: %w", r.Label(), err)
		}
	}
	return nil
}
