package db

import (
	"context"

	"basketlens/internal/models"
)

// IncrementChatLookup upserts a chatbot lookup count by outcome.
func (d *DB) IncrementChatLookup(ctx context.Context, question, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO chat_lookups (question, outcome, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (question, outcome) DO UPDATE
		SET count = chat_lookups.count + 1
	`, question, outcome)
	return err
}

// GetAllChatLookups returns all chat lookup rows for metrics export.
func (d *DB) GetAllChatLookups(ctx context.Context) ([]models.ChatLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT question, outcome, count FROM chat_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.ChatLookup
	for rows.Next() {
		var l models.ChatLookup
		if err := rows.Scan(&l.Question, &l.Outcome, &l.Count); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
