package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

// DefaultPath is where the sample dataset ships.
const DefaultPath = "data/sample_health_data.json"

// FileSource reads the dataset from a JSON file on every Load.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	if path == "" {
		path = DefaultPath
	}
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string { return "file:" + s.Path }

func (s *FileSource) Load(ctx context.Context) (*health.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", health.ErrDatasetUnavailable, err)
	}
	return decode(s.Name(), b)
}
