package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringPoolIntern(t *testing.T) {
	p := NewStringPool()

	off1, err := p.Intern("hestur")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), off1)

	off2, err := p.Intern("fara")
	require.NoError(t, err)
	assert.Equal(t, uint32(6), off2)

	// Duplicate strings share a slot.
	off3, err := p.Intern("hestur")
	require.NoError(t, err)
	assert.Equal(t, off1, off3)
	assert.Equal(t, 10, p.Len())
}

func TestStringPoolFinishPadding(t *testing.T) {
	p := NewStringPool()
	_, err := p.Intern("abc")
	require.NoError(t, err)

	buf := p.Finish()
	assert.Len(t, buf, 4)
	assert.Equal(t, []byte{'a', 'b', 'c', 0}, buf)
}

func TestStringPoolFinishAligned(t *testing.T) {
	p := NewStringPool()
	_, err := p.Intern("fara")
	require.NoError(t, err)

	// Already aligned, no padding added.
	assert.Len(t, p.Finish(), 4)
}

func TestStringPoolRejectsOverlongString(t *testing.T) {
	p := NewStringPool()
	long := strings.Repeat("x", MaxStringLen+1)

	_, err := p.Intern(long)
	require.Error(t, err)

	var tooLong *StringTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, MaxStringLen+1, tooLong.Length)

	// Boundary value is accepted.
	_, err = p.Intern(strings.Repeat("y", MaxStringLen))
	assert.NoError(t, err)
}
