package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DatasetRepository reads stored health datasets. It never writes.
type DatasetRepository struct{ db *sql.DB }

func NewDatasetRepository(db *sql.DB) *DatasetRepository { return &DatasetRepository{db: db} }

// LatestPayload returns the JSON document of the newest row.
func (r *DatasetRepository) LatestPayload(ctx context.Context) ([]byte, error) {
	const q = `SELECT payload FROM health_datasets ORDER BY created_at DESC LIMIT 1`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, q).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("health_datasets is empty")
		}
		return nil, fmt.Errorf("query latest dataset: %w", err)
	}
	return payload, nil
}
