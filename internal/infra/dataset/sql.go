package dataset

import (
	"context"
	"fmt"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

// PayloadReader returns the newest stored dataset payload.
type PayloadReader interface {
	LatestPayload(ctx context.Context) ([]byte, error)
}

// SQLSource reads the dataset from the health_datasets table.
type SQLSource struct {
	Driver string
	Repo   PayloadReader
}

func NewSQLSource(driver string, repo PayloadReader) *SQLSource {
	return &SQLSource{Driver: driver, Repo: repo}
}

func (s *SQLSource) Name() string { return s.Driver + ":health_datasets" }

func (s *SQLSource) Load(ctx context.Context) (*health.Document, error) {
	b, err := s.Repo.LatestPayload(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", health.ErrDatasetUnavailable, err)
	}
	return decode(s.Name(), b)
}
