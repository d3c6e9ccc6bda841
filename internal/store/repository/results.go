package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fortuna/scorefeed/internal/store"
)

// ResultRepository handles result data access
type ResultRepository struct {
	db *store.Database
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *store.Database) *ResultRepository {
	return &ResultRepository{db: db}
}

// Upsert stores one extracted record, replacing the payload when the same
// result type and source id were stored before.
func (r *ResultRepository) Upsert(ctx context.Context, resultType, sourceID string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding result payload: %w", err)
	}

	query := `
		INSERT INTO results (result_type, source_id, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (result_type, source_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`

	if _, err := r.db.DB().ExecContext(ctx, query, resultType, sourceID, payload); err != nil {
		return fmt.Errorf("upserting result %s/%s: %w", resultType, sourceID, err)
	}
	return nil
}

// GetBySourceID finds one result by type and source id
func (r *ResultRepository) GetBySourceID(ctx context.Context, resultType, sourceID string) (*store.Result, error) {
	query := `
		SELECT id, result_type, source_id, payload, created_at, updated_at
		FROM results
		WHERE result_type = $1 AND source_id = $2
	`

	result := &store.Result{}
	err := r.db.DB().QueryRowContext(ctx, query, resultType, sourceID).Scan(
		&result.ID, &result.ResultType, &result.SourceID, &result.Payload,
		&result.CreatedAt, &result.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("result not found: %s/%s", resultType, sourceID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying result: %w", err)
	}

	return result, nil
}

// RecentByType returns the most recently updated results of one type
func (r *ResultRepository) RecentByType(ctx context.Context, resultType string, limit int) ([]*store.Result, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, result_type, source_id, payload, created_at, updated_at
		FROM results
		WHERE result_type = $1
		ORDER BY updated_at DESC
		LIMIT $2
	`

	rows, err := r.db.DB().QueryContext(ctx, query, resultType, limit)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []*store.Result
	for rows.Next() {
		result := &store.Result{}
		if err := rows.Scan(
			&result.ID, &result.ResultType, &result.SourceID, &result.Payload,
			&result.CreatedAt, &result.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}

	return results, nil
}

// CountByType returns how many results of one type are stored
func (r *ResultRepository) CountByType(ctx context.Context, resultType string) (int64, error) {
	var count int64
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM results WHERE result_type = $1`, resultType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting results: %w", err)
	}
	return count, nil
}
