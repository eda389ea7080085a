package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/rephrase-master/internal/history"
	"github.com/jonathan/rephrase-master/internal/styles"
)

// HistoryStore implements history.Store on PostgreSQL.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore returns a history.Store backed by db.
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

var _ history.Store = (*HistoryStore)(nil)

// Add inserts item and returns it with server-assigned defaults.
func (s *HistoryStore) Add(ctx context.Context, item history.Item) (history.Item, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	err := s.db.pool.QueryRow(ctx,
		`INSERT INTO rephrase_history (id, original, rephrased, style, created_at)
		 VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		 RETURNING created_at`,
		item.ID, item.Original, item.Rephrased, string(item.Style), nullableTime(item),
	).Scan(&item.CreatedAt)
	if err != nil {
		return history.Item{}, fmt.Errorf("failed to insert history item: %w", err)
	}
	return item, nil
}

// List returns up to limit items, newest first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]history.Item, error) {
	if limit <= 0 {
		limit = history.DefaultListLimit
	}

	rows, err := s.db.pool.Query(ctx,
		`SELECT id, original, rephrased, style, created_at
		 FROM rephrase_history
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (history.Item, error) {
		var item history.Item
		var style string
		if err := row.Scan(&item.ID, &item.Original, &item.Rephrased, &style, &item.CreatedAt); err != nil {
			return history.Item{}, err
		}
		item.Style = styles.Style(style)
		return item, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan history: %w", err)
	}
	return items, nil
}

// Delete removes one item.
func (s *HistoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.pool.Exec(ctx, `DELETE FROM rephrase_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete history item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &history.NotFoundError{ID: id}
	}
	return nil
}

// Clear removes every item.
func (s *HistoryStore) Clear(ctx context.Context) error {
	if _, err := s.db.pool.Exec(ctx, `DELETE FROM rephrase_history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func nullableTime(item history.Item) any {
	if item.CreatedAt.IsZero() {
		return nil
	}
	return item.CreatedAt
}
