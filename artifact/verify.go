package artifact

import (
	"bytes"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// VerifyReport carries the non-fatal findings of a Verify pass.
type VerifyReport struct {
	// UnreferencedLemmas counts catalog lemmas no packed entry points at.
	UnreferencedLemmas int
	// DuplicateBigrams counts adjacent table rows with the same pair.
	DuplicateBigrams int
}

// Verify scans the whole artifact for structural defects: strings that
// escape the pool, a word table out of order, broken entry offset
// monotonicity, and lemma references past the catalog. Defects return
// an error; benign oddities land in the report.
func (r *Reader) Verify() (*VerifyReport, error) {
	poolSize := int(r.header.StringPoolSize)
	inPool := func(off uint32, ln uint8) bool {
		return int(off)+int(ln) <= poolSize
	}

	for i := 0; i < int(r.header.LemmaCount); i++ {
		if !inPool(r.uint32At(r.layout.LemmaOffsets, i), r.uint8At(r.layout.LemmaLengths, i)) {
			return nil, fmt.Errorf("lemma %d: string escapes pool", i)
		}
	}

	var prev []byte
	for i := 0; i < int(r.header.WordCount); i++ {
		off, ln := r.uint32At(r.layout.WordOffsets, i), r.uint8At(r.layout.WordLengths, i)
		if !inPool(off, ln) {
			return nil, fmt.Errorf("word %d: string escapes pool", i)
		}
		word := r.str(off, ln)
		if i > 0 && bytes.Compare(prev, word) >= 0 {
			return nil, fmt.Errorf("word table out of order at index %d (%q >= %q)", i, prev, word)
		}
		prev = word
	}

	if r.header.WordCount > 0 {
		if first := r.uint32At(r.layout.EntryOffsets, 0); first != 0 {
			return nil, fmt.Errorf("entry offsets start at %d, want 0", first)
		}
	}
	for i := 0; i < int(r.header.WordCount); i++ {
		lo := r.uint32At(r.layout.EntryOffsets, i)
		hi := r.uint32At(r.layout.EntryOffsets, i+1)
		if hi < lo {
			return nil, fmt.Errorf("entry offsets decrease at word %d (%d -> %d)", i, lo, hi)
		}
		if hi > r.header.EntryCount {
			return nil, fmt.Errorf("entry offset %d at word %d exceeds entry count %d", hi, i, r.header.EntryCount)
		}
	}
	if wc := int(r.header.WordCount); wc > 0 {
		if last := r.uint32At(r.layout.EntryOffsets, wc); last != r.header.EntryCount {
			return nil, fmt.Errorf("entry offsets end at %d, want %d", last, r.header.EntryCount)
		}
	}

	referenced := roaring.New()
	for i := 0; i < int(r.header.EntryCount); i++ {
		e := unpackEntry(r.header.Version, r.uint32At(r.layout.Entries, i))
		if e.LemmaIndex >= r.header.LemmaCount {
			return nil, fmt.Errorf("entry %d references lemma %d, catalog has %d", i, e.LemmaIndex, r.header.LemmaCount)
		}
		referenced.Add(e.LemmaIndex)
	}

	report := &VerifyReport{
		UnreferencedLemmas: int(r.header.LemmaCount) - int(referenced.GetCardinality()),
	}

	var prevW1, prevW2 []byte
	for i := 0; i < int(r.header.BigramCount); i++ {
		off1, ln1 := r.uint32At(r.layout.BigramW1Offsets, i), r.uint8At(r.layout.BigramW1Lengths, i)
		off2, ln2 := r.uint32At(r.layout.BigramW2Offsets, i), r.uint8At(r.layout.BigramW2Lengths, i)
		if !inPool(off1, ln1) || !inPool(off2, ln2) {
			return nil, fmt.Errorf("bigram %d: string escapes pool", i)
		}
		w1, w2 := r.str(off1, ln1), r.str(off2, ln2)
		if i > 0 {
			c := bytes.Compare(prevW1, w1)
			if c > 0 || (c == 0 && bytes.Compare(prevW2, w2) > 0) {
				return nil, fmt.Errorf("bigram table out of order at index %d", i)
			}
			if c == 0 && bytes.Equal(prevW2, w2) {
				report.DuplicateBigrams++
			}
		}
		prevW1, prevW2 = w1, w2
	}

	return report, nil
}
