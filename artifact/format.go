package artifact

import (
	"encoding/binary"
	"errors"
)

const (
	// MagicNumber identifies lemma artifacts (ASCII "LEMA", little-endian).
	MagicNumber = 0x4C454D41

	// Version1 packs lemma index and POS only.
	Version1 = 1
	// Version2 adds grammatical case, gender and number.
	Version2 = 2

	// HeaderSize is the fixed byte size of the artifact header.
	HeaderSize = 32
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrTruncated      = errors.New("artifact truncated")
)

// Header is the 32-byte header at the start of every artifact.
// All section byte lengths are derived from these counts (see Layout).
type Header struct {
	Version        uint32
	StringPoolSize uint32 // pool byte size including trailing alignment padding
	LemmaCount     uint32
	WordCount      uint32
	EntryCount     uint32
	BigramCount    uint32
}

func (h *Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:], MagicNumber)
	binary.LittleEndian.PutUint32(buf[4:], h.Version)
	binary.LittleEndian.PutUint32(buf[8:], h.StringPoolSize)
	binary.LittleEndian.PutUint32(buf[12:], h.LemmaCount)
	binary.LittleEndian.PutUint32(buf[16:], h.WordCount)
	binary.LittleEndian.PutUint32(buf[20:], h.EntryCount)
	binary.LittleEndian.PutUint32(buf[24:], h.BigramCount)
	// buf[28:32] reserved, zero
	return buf
}

func DecodeHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, ErrTruncated
	}
	if binary.LittleEndian.Uint32(buf[0:]) != MagicNumber {
		return nil, ErrInvalidMagic
	}
	h := &Header{
		Version:        binary.LittleEndian.Uint32(buf[4:]),
		StringPoolSize: binary.LittleEndian.Uint32(buf[8:]),
		LemmaCount:     binary.LittleEndian.Uint32(buf[12:]),
		WordCount:      binary.LittleEndian.Uint32(buf[16:]),
		EntryCount:     binary.LittleEndian.Uint32(buf[20:]),
		BigramCount:    binary.LittleEndian.Uint32(buf[24:]),
	}
	if h.Version != Version1 && h.Version != Version2 {
		return nil, ErrInvalidVersion
	}
	return h, nil
}
