package health

import "context"

// Source loads the dataset document. Implementations read a fresh copy on
// every call.
type Source interface {
	Load(ctx context.Context) (*Document, error)
	Name() string
}
