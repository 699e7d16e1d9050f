package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/health-agent/internal/domain/health"
)

const minimal = `{"user":{"name":"Ada"},"bloodTests":[],"vitals":[]}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestFileSource(t *testing.T) {
	ctx := context.Background()

	t.Run("loads", func(t *testing.T) {
		src := NewFileSource(writeFile(t, minimal))
		doc, err := src.Load(ctx)
		require.NoError(t, err)
		user, err := doc.Section(health.SectionUser)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Ada"}`, string(user))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Load(ctx)
		assert.ErrorIs(t, err, health.ErrDatasetUnavailable)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := NewFileSource(writeFile(t, `{"bloodTests": 5}`)).Load(ctx)
		assert.ErrorIs(t, err, health.ErrMalformedDataset)
	})

	t.Run("default path", func(t *testing.T) {
		assert.Equal(t, "file:"+DefaultPath, NewFileSource("").Name())
	})
}

type fakeObjects struct {
	data map[string][]byte
}

func (f fakeObjects) Bucket() string { return "health" }

func (f fakeObjects) Read(_ context.Context, key string) ([]byte, error) {
	b, ok := f.data[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return b, nil
}

func TestObjectSource(t *testing.T) {
	store := fakeObjects{data: map[string][]byte{"user.json": []byte(minimal)}}

	src := NewObjectSource(store, "user.json")
	assert.Equal(t, "minio:health/user.json", src.Name())
	_, err := src.Load(context.Background())
	require.NoError(t, err)

	_, err = NewObjectSource(store, "other.json").Load(context.Background())
	assert.ErrorIs(t, err, health.ErrDatasetUnavailable)
}

type fakeRepo struct {
	payload []byte
	err     error
}

func (f fakeRepo) LatestPayload(context.Context) ([]byte, error) { return f.payload, f.err }

func TestSQLSource(t *testing.T) {
	_, err := NewSQLSource("postgres", fakeRepo{payload: []byte(minimal)}).Load(context.Background())
	require.NoError(t, err)

	_, err = NewSQLSource("mysql", fakeRepo{err: errors.New("down")}).Load(context.Background())
	assert.ErrorIs(t, err, health.ErrDatasetUnavailable)

	_, err = NewSQLSource("mysql", fakeRepo{}).Load(context.Background())
	assert.ErrorIs(t, err, health.ErrDatasetUnavailable)
}

func TestChecker(t *testing.T) {
	ok := Checker{Source: NewSQLSource("postgres", fakeRepo{payload: []byte(minimal)})}
	assert.NoError(t, ok.Check(context.Background()))

	bad := Checker{Source: NewObjectSource(fakeObjects{}, "x")}
	assert.Error(t, bad.Check(context.Background()))
}
