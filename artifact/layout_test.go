package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout(t *testing.T) {
	h := &Header{
		Version:        Version2,
		StringPoolSize: 20, // already padded
		LemmaCount:     3,
		WordCount:      5,
		EntryCount:     7,
		BigramCount:    2,
	}

	l := ComputeLayout(h)

	assert.Equal(t, 32, l.StringPool)
	assert.Equal(t, 52, l.LemmaOffsets)  // 32 + 20
	assert.Equal(t, 64, l.LemmaLengths)  // + 3*4
	assert.Equal(t, 68, l.WordOffsets)   // 64 + 3 -> padded to 68
	assert.Equal(t, 88, l.WordLengths)   // + 5*4
	assert.Equal(t, 96, l.EntryOffsets)  // 88 + 5 -> padded to 96
	assert.Equal(t, 120, l.Entries)      // + (5+1)*4
	assert.Equal(t, 148, l.BigramW1Offsets) // + 7*4
	assert.Equal(t, 156, l.BigramW1Lengths) // + 2*4
	assert.Equal(t, 160, l.BigramW2Offsets) // 156 + 2 -> padded to 160
	assert.Equal(t, 168, l.BigramW2Lengths) // + 2*4
	assert.Equal(t, 172, l.BigramFreqs)     // 168 + 2 -> padded to 172
	assert.Equal(t, 180, l.Size)            // + 2*4
}

func TestComputeLayoutEmpty(t *testing.T) {
	l := ComputeLayout(&Header{Version: Version1})

	// All sections collapse onto the header; only the one extra entry
	// offset takes space.
	assert.Equal(t, HeaderSize, l.StringPool)
	assert.Equal(t, HeaderSize+4, l.Size)
}

func TestAlign4(t *testing.T) {
	assert.Equal(t, 0, align4(0))
	assert.Equal(t, 4, align4(1))
	assert.Equal(t, 4, align4(4))
	assert.Equal(t, 8, align4(5))
}
