package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"vanifolio/internal/models"
)

// IncrementLookup upserts an FAQ lookup count by entry and outcome.
func (d *DB) IncrementLookup(ctx context.Context, entryID, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO faq_lookups (entry_id, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (entry_id, outcome) DO UPDATE
		SET count = faq_lookups.count + 1, last_seen_at = NOW()
	`, entryID, outcome)
	return err
}

// GetAllLookups returns all lookup rows for metrics export.
func (d *DB) GetAllLookups(ctx context.Context) ([]models.FAQLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT entry_id, outcome, count, last_seen_at FROM faq_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.FAQLookup
	for rows.Next() {
		var l models.FAQLookup
		if err := rows.Scan(&l.EntryID, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// InsertQueryLog stores one accepted search.
func (d *DB) InsertQueryLog(ctx context.Context, q *models.QueryLog) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO faq_queries (id, query, outcome, entry_id, page, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, q.ID, q.Query, q.Outcome, q.EntryID, q.Page, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert query log: %w", err)
	}
	return nil
}

// GetQueryLog returns a single query log row.
func (d *DB) GetQueryLog(ctx context.Context, id uuid.UUID) (*models.QueryLog, error) {
	var q models.QueryLog
	err := d.Pool.QueryRow(ctx, `
		SELECT id, query, outcome, entry_id, page, created_at
		FROM faq_queries WHERE id = $1
	`, id).Scan(&q.ID, &q.Query, &q.Outcome, &q.EntryID, &q.Page, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQueryLogNotFound
		}
		return nil, err
	}
	return &q, nil
}

// RecentQueryLogs returns the newest query logs first.
func (d *DB) RecentQueryLogs(ctx context.Context, limit int) ([]models.QueryLog, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, query, outcome, entry_id, page, created_at
		FROM faq_queries
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.QueryLog
	for rows.Next() {
		var q models.QueryLog
		if err := rows.Scan(&q.ID, &q.Query, &q.Outcome, &q.EntryID, &q.Page, &q.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, q)
	}
	return logs, rows.Err()
}

// PruneQueryLogs deletes query logs created before cutoff and returns how
// many rows were removed.
func (d *DB) PruneQueryLogs(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM faq_queries WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune query logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
