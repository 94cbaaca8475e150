package artifact

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lemma-is/lemis/lexicon"
	"github.com/lemma-is/lemis/ngram"
)

// Stats summarizes what a Write produced.
type Stats struct {
	LemmaCount  int
	WordCount   int
	EntryCount  int
	BigramCount int
	PoolBytes   int // string pool size including padding
	TotalBytes  int
}

// Writer serializes a lexicon and its n-gram inputs into one artifact.
// A Writer is single-use: create one per artifact.
type Writer struct {
	w       io.Writer
	version uint32
}

// NewWriter creates a Writer targeting the given format version.
func NewWriter(w io.Writer, version uint32) (*Writer, error) {
	if version != Version1 && version != Version2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
	return &Writer{w: w, version: version}, nil
}

// Write builds every section in memory, then streams them out in
// layout order. The artifact's implicit layout means nothing can be
// emitted until all counts and the final pool size are known.
func (wr *Writer) Write(lex *lexicon.Lexicon, freqs map[string]uint64, bigrams []ngram.Bigram) (*Stats, error) {
	pool := NewStringPool()

	catalog, err := BuildCatalog(lex.Lemmas(), freqs)
	if err != nil {
		return nil, err
	}

	lemmaOffsets := make([]uint32, catalog.Len())
	lemmaLengths := make([]uint8, catalog.Len())
	for i := 0; i < catalog.Len(); i++ {
		lemma := catalog.Lemma(i)
		off, err := pool.Intern(lemma)
		if err != nil {
			return nil, err
		}
		lemmaOffsets[i] = off
		lemmaLengths[i] = uint8(len(lemma))
	}

	words := lex.SortedWords()
	wordOffsets := make([]uint32, len(words))
	wordLengths := make([]uint8, len(words))
	entryOffsets := make([]uint32, len(words)+1)
	var entries []uint32

	for i, word := range words {
		off, err := pool.Intern(word)
		if err != nil {
			return nil, err
		}
		wordOffsets[i] = off
		wordLengths[i] = uint8(len(word))

		packed, err := wr.packWord(catalog, lex.Tuples(word))
		if err != nil {
			return nil, err
		}
		entries = append(entries, packed...)
		entryOffsets[i+1] = uint32(len(entries))
	}

	bg, err := prepareBigrams(pool, bigrams)
	if err != nil {
		return nil, err
	}

	poolBytes := pool.Finish()
	header := &Header{
		Version:        wr.version,
		StringPoolSize: uint32(len(poolBytes)),
		LemmaCount:     uint32(catalog.Len()),
		WordCount:      uint32(len(words)),
		EntryCount:     uint32(len(entries)),
		BigramCount:    uint32(len(bg.freqs)),
	}
	layout := ComputeLayout(header)

	cw := &countingWriter{w: bufio.NewWriterSize(wr.w, 1<<20)}
	cw.write(header.Encode())
	cw.write(poolBytes)
	cw.writeUint32s(lemmaOffsets)
	cw.writeUint8sPadded(lemmaLengths)
	cw.writeUint32s(wordOffsets)
	cw.writeUint8sPadded(wordLengths)
	cw.writeUint32s(entryOffsets)
	cw.writeUint32s(entries)
	cw.writeUint32s(bg.w1Offsets)
	cw.writeUint8sPadded(bg.w1Lengths)
	cw.writeUint32s(bg.w2Offsets)
	cw.writeUint8sPadded(bg.w2Lengths)
	cw.writeUint32s(bg.freqs)
	if err := cw.flush(); err != nil {
		return nil, err
	}
	if cw.n != layout.Size {
		return nil, fmt.Errorf("wrote %d bytes, layout expects %d", cw.n, layout.Size)
	}

	return &Stats{
		LemmaCount:  catalog.Len(),
		WordCount:   len(words),
		EntryCount:  len(entries),
		BigramCount: len(bg.freqs),
		PoolBytes:   len(poolBytes),
		TotalBytes:  cw.n,
	}, nil
}

// packWord orders a word's readings and packs them. Readings sort by
// descending lemma frequency, then lemma text, then the feature codes,
// so the most likely lemma is always the first entry.
func (wr *Writer) packWord(catalog *Catalog, tuples []lexicon.FeatureTuple) ([]uint32, error) {
	type keyed struct {
		idx uint32
		ft  lexicon.FeatureTuple
	}
	ks := make([]keyed, len(tuples))
	for i, ft := range tuples {
		idx, ok := catalog.Index(ft.Lemma)
		if !ok {
			return nil, fmt.Errorf("lemma %q missing from catalog", ft.Lemma)
		}
		ks[i] = keyed{idx: idx, ft: ft}
	}

	sort.Slice(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		fa, fb := catalog.Frequency(int(a.idx)), catalog.Frequency(int(b.idx))
		if fa != fb {
			return fa > fb
		}
		if a.ft.Lemma != b.ft.Lemma {
			return a.ft.Lemma < b.ft.Lemma
		}
		if a.ft.POS != b.ft.POS {
			return a.ft.POS < b.ft.POS
		}
		if a.ft.Case != b.ft.Case {
			return a.ft.Case < b.ft.Case
		}
		if a.ft.Gender != b.ft.Gender {
			return a.ft.Gender < b.ft.Gender
		}
		return a.ft.Number < b.ft.Number
	})

	packed := make([]uint32, 0, len(ks))
	for _, k := range ks {
		w := packEntry(wr.version, Entry{
			LemmaIndex: k.idx,
			POS:        k.ft.POS,
			Case:       k.ft.Case,
			Gender:     k.ft.Gender,
			Number:     k.ft.Number,
		})
		// Version 1 drops the feature bits, so readings that differ
		// only in case, gender or number collapse to the same word.
		// The sort puts them adjacent; keep the first.
		if n := len(packed); n > 0 && packed[n-1] == w {
			continue
		}
		packed = append(packed, w)
	}
	return packed, nil
}

type bigramSections struct {
	w1Offsets []uint32
	w1Lengths []uint8
	w2Offsets []uint32
	w2Lengths []uint8
	freqs     []uint32
}

// prepareBigrams lower-cases, interns and sorts the bigram pairs. The
// table is binary-searched by (word1, word2) at query time, so the sort
// key is the pair's byte order after folding.
func prepareBigrams(pool *StringPool, bigrams []ngram.Bigram) (*bigramSections, error) {
	fold := cases.Lower(language.Icelandic)

	type pair struct {
		w1, w2 string
		freq   uint32
	}
	pairs := make([]pair, len(bigrams))
	for i, b := range bigrams {
		pairs[i] = pair{
			w1:   fold.String(b.Word1),
			w2:   fold.String(b.Word2),
			freq: b.Frequency,
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].w1 != pairs[j].w1 {
			return pairs[i].w1 < pairs[j].w1
		}
		return pairs[i].w2 < pairs[j].w2
	})

	bg := &bigramSections{
		w1Offsets: make([]uint32, len(pairs)),
		w1Lengths: make([]uint8, len(pairs)),
		w2Offsets: make([]uint32, len(pairs)),
		w2Lengths: make([]uint8, len(pairs)),
		freqs:     make([]uint32, len(pairs)),
	}
	for i, p := range pairs {
		off1, err := pool.Intern(p.w1)
		if err != nil {
			return nil, err
		}
		off2, err := pool.Intern(p.w2)
		if err != nil {
			return nil, err
		}
		bg.w1Offsets[i] = off1
		bg.w1Lengths[i] = uint8(len(p.w1))
		bg.w2Offsets[i] = off2
		bg.w2Lengths[i] = uint8(len(p.w2))
		bg.freqs[i] = p.freq
	}
	return bg, nil
}

// countingWriter batches section writes and tracks the byte count so
// the result can be checked against the computed layout. The first
// write error sticks; later writes become no-ops.
type countingWriter struct {
	w   *bufio.Writer
	n   int
	err error
}

func (cw *countingWriter) write(p []byte) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.Write(p)
	cw.n += n
	cw.err = err
}

func (cw *countingWriter) writeUint32s(vs []uint32) {
	var buf [4]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint32(buf[:], v)
		cw.write(buf[:])
	}
}

func (cw *countingWriter) writeUint8sPadded(vs []uint8) {
	cw.write(vs)
	if pad := align4(len(vs)) - len(vs); pad > 0 {
		cw.write(make([]byte, pad))
	}
}

func (cw *countingWriter) flush() error {
	if cw.err != nil {
		return cw.err
	}
	return cw.w.Flush()
}
