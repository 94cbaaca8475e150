package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutOpen(t *testing.T) {
	ctx := context.Background()
	st := NewLocalStore(t.TempDir())

	data := []byte("lemma artifact bytes")
	require.NoError(t, st.Put(ctx, "lemma-is.bin", data))

	blob, err := st.Open(ctx, "lemma-is.bin")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(len(data)), blob.Size())

	got, err := blob.(Mappable).Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, got)

	p := make([]byte, 5)
	n, err := blob.ReadAt(ctx, p, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "lemma", string(p))
}

func TestLocalStorePutReplaces(t *testing.T) {
	ctx := context.Background()
	st := NewLocalStore(t.TempDir())

	require.NoError(t, st.Put(ctx, "a.bin", []byte("old")))
	require.NoError(t, st.Put(ctx, "a.bin", []byte("newer")))

	blob, err := st.Open(ctx, "a.bin")
	require.NoError(t, err)
	defer blob.Close()

	got, err := blob.(Mappable).Bytes()
	require.NoError(t, err)
	assert.Equal(t, "newer", string(got))
}

func TestLocalStoreOpenMissing(t *testing.T) {
	st := NewLocalStore(t.TempDir())
	_, err := st.Open(context.Background(), "missing.bin")
	assert.Error(t, err)
}
