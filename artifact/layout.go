package artifact

// Layout holds the byte offset of every artifact section. The format
// stores no per-section lengths; writer and reader both derive section
// positions from the header counts through this single calculator, so
// the two sides cannot drift apart.
//
// Section order: string pool, lemma offsets, lemma lengths, word
// offsets, word lengths, entry offsets, packed entries, bigram word1
// offsets/lengths, bigram word2 offsets/lengths, bigram frequencies.
// Every u8 length section is zero-padded up to a 4-byte boundary; the
// string pool size in the header already includes its own padding.
type Layout struct {
	StringPool      int
	LemmaOffsets    int
	LemmaLengths    int
	WordOffsets     int
	WordLengths     int
	EntryOffsets    int
	Entries         int
	BigramW1Offsets int
	BigramW1Lengths int
	BigramW2Offsets int
	BigramW2Lengths int
	BigramFreqs     int

	// Size is the total artifact byte size implied by the header.
	Size int
}

// ComputeLayout derives all section offsets from the header counts.
func ComputeLayout(h *Header) Layout {
	var l Layout
	off := HeaderSize

	l.StringPool = off
	off += int(h.StringPoolSize)

	l.LemmaOffsets = off
	off += int(h.LemmaCount) * 4
	l.LemmaLengths = off
	off = align4(off + int(h.LemmaCount))

	l.WordOffsets = off
	off += int(h.WordCount) * 4
	l.WordLengths = off
	off = align4(off + int(h.WordCount))

	l.EntryOffsets = off
	off += (int(h.WordCount) + 1) * 4
	l.Entries = off
	off += int(h.EntryCount) * 4

	l.BigramW1Offsets = off
	off += int(h.BigramCount) * 4
	l.BigramW1Lengths = off
	off = align4(off + int(h.BigramCount))

	l.BigramW2Offsets = off
	off += int(h.BigramCount) * 4
	l.BigramW2Lengths = off
	off = align4(off + int(h.BigramCount))

	l.BigramFreqs = off
	off += int(h.BigramCount) * 4

	l.Size = off
	return l
}

func align4(n int) int {
	return (n + 3) &^ 3
}
