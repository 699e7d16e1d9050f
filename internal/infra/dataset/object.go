package dataset

import (
	"context"
	"fmt"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

// ObjectReader fetches a whole object by key.
type ObjectReader interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Bucket() string
}

// ObjectSource reads the dataset from an object store.
type ObjectSource struct {
	Store ObjectReader
	Key   string
}

func NewObjectSource(store ObjectReader, key string) *ObjectSource {
	return &ObjectSource{Store: store, Key: key}
}

func (s *ObjectSource) Name() string { return fmt.Sprintf("minio:%s/%s", s.Store.Bucket(), s.Key) }

func (s *ObjectSource) Load(ctx context.Context) (*health.Document, error) {
	b, err := s.Store.Read(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", health.ErrDatasetUnavailable, err)
	}
	return decode(s.Name(), b)
}
