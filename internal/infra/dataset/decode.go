package dataset

import (
	"fmt"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

// decode parses a loaded payload. Read failures are expected to be wrapped
// with health.ErrDatasetUnavailable by the caller; parse failures keep
// health.ErrMalformedDataset.
func decode(from string, b []byte) (*health.Document, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", health.ErrDatasetUnavailable, from)
	}
	doc, err := health.ParseDocument(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", from, err)
	}
	return doc, nil
}
