package artifact

import (
	"bytes"
	"encoding/binary"
	"sort"
)

// Reader serves lookups against a complete artifact held in memory,
// typically a mapped file. It never copies sections; every access
// slices into the original buffer.
type Reader struct {
	data   []byte
	header *Header
	layout Layout
}

// NewReader validates the header and the total size implied by it.
// Per-string bounds are not validated here; Verify does the deep scan.
func NewReader(data []byte) (*Reader, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	layout := ComputeLayout(h)
	if len(data) < layout.Size {
		return nil, ErrTruncated
	}
	return &Reader{data: data, header: h, layout: layout}, nil
}

// Header returns the decoded artifact header.
func (r *Reader) Header() *Header { return r.header }

// Layout returns the section offsets derived from the header.
func (r *Reader) Layout() Layout { return r.layout }

func (r *Reader) uint32At(section, i int) uint32 {
	return binary.LittleEndian.Uint32(r.data[section+4*i:])
}

func (r *Reader) uint8At(section, i int) uint8 {
	return r.data[section+i]
}

// str resolves a (offset, length) pair against the string pool.
// Out-of-pool references yield nil rather than a panic.
func (r *Reader) str(off uint32, ln uint8) []byte {
	end := int(off) + int(ln)
	if end > int(r.header.StringPoolSize) {
		return nil
	}
	return r.data[r.layout.StringPool+int(off) : r.layout.StringPool+end]
}

// WordAt returns the word form at table index i.
func (r *Reader) WordAt(i int) string {
	return string(r.str(r.uint32At(r.layout.WordOffsets, i), r.uint8At(r.layout.WordLengths, i)))
}

// Lemma returns the lemma at catalog index i.
func (r *Reader) Lemma(i uint32) string {
	return string(r.str(r.uint32At(r.layout.LemmaOffsets, int(i)), r.uint8At(r.layout.LemmaLengths, int(i))))
}

// EntriesAt decodes the packed readings of the word at table index i,
// in stored order (best lemma first).
func (r *Reader) EntriesAt(i int) []Entry {
	start := r.uint32At(r.layout.EntryOffsets, i)
	end := r.uint32At(r.layout.EntryOffsets, i+1)

	entries := make([]Entry, 0, end-start)
	for j := start; j < end; j++ {
		entries = append(entries, unpackEntry(r.header.Version, r.uint32At(r.layout.Entries, int(j))))
	}
	return entries
}

// LookupWord binary-searches the sorted word table for an exact byte
// match and returns its decoded readings. The match is byte-exact:
// case folding, when wanted, happens before the lookup.
func (r *Reader) LookupWord(word string) ([]Entry, bool) {
	target := []byte(word)
	n := int(r.header.WordCount)

	i := sort.Search(n, func(i int) bool {
		stored := r.str(r.uint32At(r.layout.WordOffsets, i), r.uint8At(r.layout.WordLengths, i))
		return bytes.Compare(stored, target) >= 0
	})
	if i == n {
		return nil, false
	}
	stored := r.str(r.uint32At(r.layout.WordOffsets, i), r.uint8At(r.layout.WordLengths, i))
	if !bytes.Equal(stored, target) {
		return nil, false
	}
	return r.EntriesAt(i), true
}

// BigramAt returns the pair and frequency at bigram table index i.
func (r *Reader) BigramAt(i int) (word1, word2 string, freq uint32) {
	word1 = string(r.str(r.uint32At(r.layout.BigramW1Offsets, i), r.uint8At(r.layout.BigramW1Lengths, i)))
	word2 = string(r.str(r.uint32At(r.layout.BigramW2Offsets, i), r.uint8At(r.layout.BigramW2Lengths, i)))
	freq = r.uint32At(r.layout.BigramFreqs, i)
	return
}

// LookupBigram binary-searches the bigram table, sorted by (word1,
// word2) byte order, for an exact pair match.
func (r *Reader) LookupBigram(word1, word2 string) (uint32, bool) {
	t1, t2 := []byte(word1), []byte(word2)
	n := int(r.header.BigramCount)

	i := sort.Search(n, func(i int) bool {
		w1 := r.str(r.uint32At(r.layout.BigramW1Offsets, i), r.uint8At(r.layout.BigramW1Lengths, i))
		if c := bytes.Compare(w1, t1); c != 0 {
			return c > 0
		}
		w2 := r.str(r.uint32At(r.layout.BigramW2Offsets, i), r.uint8At(r.layout.BigramW2Lengths, i))
		return bytes.Compare(w2, t2) >= 0
	})
	if i == n {
		return 0, false
	}
	w1 := r.str(r.uint32At(r.layout.BigramW1Offsets, i), r.uint8At(r.layout.BigramW1Lengths, i))
	w2 := r.str(r.uint32At(r.layout.BigramW2Offsets, i), r.uint8At(r.layout.BigramW2Lengths, i))
	if !bytes.Equal(w1, t1) || !bytes.Equal(w2, t2) {
		return 0, false
	}
	return r.uint32At(r.layout.BigramFreqs, i), true
}
