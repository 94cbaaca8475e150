package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalogOrder(t *testing.T) {
	lemmas := []string{"fara", "hestur", "og", "alda"}
	freqs := map[string]uint64{
		"og":     90000,
		"fara":   5000,
		"hestur": 120,
	}

	c, err := BuildCatalog(lemmas, freqs)
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	// Descending frequency, unseen lemmas last.
	assert.Equal(t, "og", c.Lemma(0))
	assert.Equal(t, "fara", c.Lemma(1))
	assert.Equal(t, "hestur", c.Lemma(2))
	assert.Equal(t, "alda", c.Lemma(3))
	assert.Equal(t, uint64(0), c.Frequency(3))

	idx, ok := c.Index("fara")
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx)

	_, ok = c.Index("missing")
	assert.False(t, ok)
}

func TestBuildCatalogFrequencyTies(t *testing.T) {
	lemmas := []string{"ganga", "borða", "aka"}
	freqs := map[string]uint64{"ganga": 10, "borða": 10, "aka": 10}

	c, err := BuildCatalog(lemmas, freqs)
	require.NoError(t, err)

	// Equal frequencies fall back to lemma text ascending.
	assert.Equal(t, "aka", c.Lemma(0))
	assert.Equal(t, "borða", c.Lemma(1))
	assert.Equal(t, "ganga", c.Lemma(2))
}

func TestBuildCatalogCapacity(t *testing.T) {
	lemmas := make([]string, MaxLemmas+1)
	for i := range lemmas {
		lemmas[i] = string(rune(i))
	}

	_, err := BuildCatalog(lemmas, nil)
	require.Error(t, err)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, MaxLemmas+1, capErr.Lemmas)
}
