package publish

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManifest(t *testing.T) *Manifest {
	t.Helper()
	m, err := OpenManifest(filepath.Join(t.TempDir(), "state", "publish.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManifest_RecordAndChecksum(t *testing.T) {
	m := newTestManifest(t)
	ctx := context.Background()

	_, ok, err := m.Checksum(ctx, "s3://site", "index.html")
	require.NoError(t, err)
	assert.False(t, ok)

	publishedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, m.Record(ctx, Entry{
		Destination: "s3://site",
		Key:         "index.html",
		Checksum:    "abc",
		Size:        10,
		RunID:       "run-1",
		PublishedAt: publishedAt,
	}))

	sum, ok, err := m.Checksum(ctx, "s3://site", "index.html")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", sum)

	// Different destination is tracked separately
	_, ok, err = m.Checksum(ctx, "s3://other", "index.html")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Record(ctx, Entry{
		Destination: "s3://site",
		Key:         "index.html",
		Checksum:    "def",
		Size:        12,
		RunID:       "run-2",
		PublishedAt: publishedAt.Add(time.Hour),
	}))

	entries, err := m.List(ctx, "s3://site")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "def", entries[0].Checksum)
	assert.Equal(t, int64(12), entries[0].Size)
	assert.Equal(t, "run-2", entries[0].RunID)
	assert.True(t, publishedAt.Add(time.Hour).Equal(entries[0].PublishedAt))
}

func TestManifest_ListOrdered(t *testing.T) {
	m := newTestManifest(t)
	ctx := context.Background()

	for _, key := range []string{"projects/index.html", "404.html", "index.html"} {
		require.NoError(t, m.Record(ctx, Entry{
			Destination: "s3://site",
			Key:         key,
			Checksum:    Checksum([]byte(key)),
			RunID:       "run",
			PublishedAt: time.Now(),
		}))
	}

	entries, err := m.List(ctx, "s3://site")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "404.html", entries[0].Key)
	assert.Equal(t, "index.html", entries[1].Key)
	assert.Equal(t, "projects/index.html", entries[2].Key)
}
