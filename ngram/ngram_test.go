package ngram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipString(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func TestLoadFrequenciesPlain(t *testing.T) {
	freqs, err := LoadFrequencies(strings.NewReader(`{"vera": 120000, "fara": 9000, "og": 500000}`))
	require.NoError(t, err)

	assert.Equal(t, uint64(120000), freqs["vera"])
	assert.Equal(t, uint64(9000), freqs["fara"])
	assert.Zero(t, freqs["hvergi"])
}

func TestLoadFrequenciesGzip(t *testing.T) {
	freqs, err := LoadFrequencies(gzipString(t, `{"við": 250000}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(250000), freqs["við"])
}

func TestLoadBigrams(t *testing.T) {
	bigrams, err := LoadBigrams(strings.NewReader(`[["góðan","dag",1200],["á","morgun",800]]`))
	require.NoError(t, err)

	require.Len(t, bigrams, 2)
	assert.Equal(t, Bigram{Word1: "góðan", Word2: "dag", Frequency: 1200}, bigrams[0])
	assert.Equal(t, Bigram{Word1: "á", Word2: "morgun", Frequency: 800}, bigrams[1])
}

func TestLoadBigramsGzip(t *testing.T) {
	bigrams, err := LoadBigrams(gzipString(t, `[["í","dag",5000]]`))
	require.NoError(t, err)
	require.Len(t, bigrams, 1)
	assert.Equal(t, uint32(5000), bigrams[0].Frequency)
}

func TestLoadBigramsRejectsOversizedFrequency(t *testing.T) {
	_, err := LoadBigrams(strings.NewReader(`[["a","b",4294967296]]`))
	assert.Error(t, err)
}

func TestLoadBigramsRejectsShortTriple(t *testing.T) {
	_, err := LoadBigrams(strings.NewReader(`[["a","b"]]`))
	assert.Error(t, err)
}

func TestLoadFrequenciesEmptyInput(t *testing.T) {
	_, err := LoadFrequencies(strings.NewReader(""))
	assert.Error(t, err)
}
