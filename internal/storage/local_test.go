package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Upload(ctx, "abc.pdf", "application/pdf", strings.NewReader("%PDF-1.4 data")))

	data, err := store.Download(ctx, "abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(data))

	require.NoError(t, store.Remove(ctx, "abc.pdf"))

	_, err = store.Download(ctx, "abc.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStore_RemoveMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, store.Remove(context.Background(), "nope.pdf"), ErrObjectNotFound)
}

func TestLocalStore_PathIsBasenamed(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Upload(ctx, "../../evil.pdf", "application/pdf", strings.NewReader("x")))

	data, err := store.Download(ctx, "evil.pdf")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
