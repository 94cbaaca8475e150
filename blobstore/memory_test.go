package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutOpen(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Put(ctx, "x.bin", []byte("abc")))

	blob, err := st.Open(ctx, "x.bin")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(3), blob.Size())

	p := make([]byte, 2)
	n, err := blob.ReadAt(ctx, p, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "bc", string(p))
}

func TestMemoryStoreNotFound(t *testing.T) {
	st := NewMemoryStore()
	_, err := st.Open(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Put(ctx, "x.bin", []byte("v1")))
	blob, err := st.Open(ctx, "x.bin")
	require.NoError(t, err)
	defer blob.Close()

	require.NoError(t, st.Put(ctx, "x.bin", []byte("v2")))

	got, err := blob.(Mappable).Bytes()
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
}

func TestThrottledStorePassthrough(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Put(ctx, "x.bin", []byte("throttle me")))

	ts := NewThrottledStore(st, 1<<20)
	blob, err := ts.Open(ctx, "x.bin")
	require.NoError(t, err)
	defer blob.Close()

	p := make([]byte, 11)
	n, err := blob.ReadAt(ctx, p, 0)
	require.NoError(t, err)
	assert.Equal(t, "throttle me", string(p[:n]))
}
