package artifact

import (
	"fmt"
	"math"
)

// MaxStringLen is the longest byte string the pool accepts; string
// lengths are stored in single-byte fields.
const MaxStringLen = 255

// StringTooLongError reports a lexicon or bigram string whose UTF-8
// encoding does not fit the format's one-byte length field.
type StringTooLongError struct {
	Value  string
	Length int
}

func (e *StringTooLongError) Error() string {
	return fmt.Sprintf("string %q is %d bytes, format limit is %d", e.Value, e.Length, MaxStringLen)
}

// StringPool is an append-only, deduplicating byte-string interner.
// Lemma text, word text and bigram text all share one pool: two equal
// strings occupy a single slot no matter where they occur.
type StringPool struct {
	buf     []byte
	offsets map[string]uint32
}

// NewStringPool creates an empty pool.
func NewStringPool() *StringPool {
	return &StringPool{offsets: make(map[string]uint32)}
}

// Intern returns the pool offset of s, appending its UTF-8 bytes on
// first sight. An exact byte-for-byte match reuses the earlier slot.
func (p *StringPool) Intern(s string) (uint32, error) {
	if off, ok := p.offsets[s]; ok {
		return off, nil
	}
	if len(s) > MaxStringLen {
		return 0, &StringTooLongError{Value: s, Length: len(s)}
	}
	if len(p.buf)+len(s) > math.MaxUint32 {
		return 0, fmt.Errorf("string pool exceeds 4 GiB offset range")
	}

	off := uint32(len(p.buf))
	p.buf = append(p.buf, s...)
	p.offsets[s] = off
	return off, nil
}

// Len returns the current pool size in bytes, before padding.
func (p *StringPool) Len() int { return len(p.buf) }

// Finish pads the pool to a 4-byte boundary and returns its bytes.
// The padding belongs to the pool section; the padded size is what the
// header records. The pool must not be interned into afterwards.
func (p *StringPool) Finish() []byte {
	for len(p.buf)%4 != 0 {
		p.buf = append(p.buf, 0)
	}
	return p.buf
}
