package dataset

import (
	"context"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

// Checker reports whether a source currently yields a parseable dataset.
type Checker struct {
	Source health.Source
}

func (c Checker) Check(ctx context.Context) error {
	_, err := c.Source.Load(ctx)
	return err
}
