package artifact

import (
	"fmt"
	"sort"
)

// MaxLemmas is the largest lemma catalog the packed entry formats can
// reference: lemma indices occupy at most 20 bits.
const MaxLemmas = 1<<20 - 1

// CapacityError reports a lexicon whose distinct lemma count exceeds
// the packed index range.
type CapacityError struct {
	Lemmas int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("lexicon has %d lemmas, packed format supports at most %d", e.Lemmas, MaxLemmas)
}

// Catalog assigns every distinct lemma a dense index. Lemmas are
// ordered by descending corpus frequency, ties broken by lemma text
// ascending, so the most frequent lemmas take the smallest indices.
type Catalog struct {
	lemmas  []string
	freqs   []uint64
	indices map[string]uint32
}

// BuildCatalog builds the catalog for a set of lemmas. Lemmas absent
// from freqs get frequency zero and sort last, alphabetically.
func BuildCatalog(lemmas []string, freqs map[string]uint64) (*Catalog, error) {
	if len(lemmas) > MaxLemmas {
		return nil, &CapacityError{Lemmas: len(lemmas)}
	}

	c := &Catalog{
		lemmas:  make([]string, len(lemmas)),
		freqs:   make([]uint64, len(lemmas)),
		indices: make(map[string]uint32, len(lemmas)),
	}
	copy(c.lemmas, lemmas)

	sort.Slice(c.lemmas, func(i, j int) bool {
		fi, fj := freqs[c.lemmas[i]], freqs[c.lemmas[j]]
		if fi != fj {
			return fi > fj
		}
		return c.lemmas[i] < c.lemmas[j]
	})
	for i, lemma := range c.lemmas {
		c.freqs[i] = freqs[lemma]
		c.indices[lemma] = uint32(i)
	}
	return c, nil
}

// Len returns the number of lemmas in the catalog.
func (c *Catalog) Len() int { return len(c.lemmas) }

// Index returns the dense index assigned to lemma.
func (c *Catalog) Index(lemma string) (uint32, bool) {
	idx, ok := c.indices[lemma]
	return idx, ok
}

// Lemma returns the lemma at index i.
func (c *Catalog) Lemma(i int) string { return c.lemmas[i] }

// Frequency returns the corpus frequency of the lemma at index i.
func (c *Catalog) Frequency(i int) uint64 { return c.freqs[i] }
