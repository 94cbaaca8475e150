package lexicon

import (
	"bufio"
	"context"
	"io"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FeatureTuple is one (lemma, features) reading of a word form.
// It is a comparable value type; set semantics over it deduplicate
// identical readings contributed by different rows.
type FeatureTuple struct {
	Lemma  string
	POS    POS
	Case   Case
	Gender Gender
	Number Number
}

// Lexicon maps lower-cased word forms to their deduplicated readings.
type Lexicon struct {
	words map[string]map[FeatureTuple]struct{}
}

// NewLexicon creates an empty Lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{words: make(map[string]map[FeatureTuple]struct{})}
}

// Add records a reading for a word form.
func (l *Lexicon) Add(word string, ft FeatureTuple) {
	set, ok := l.words[word]
	if !ok {
		set = make(map[FeatureTuple]struct{})
		l.words[word] = set
	}
	set[ft] = struct{}{}
}

func (l *Lexicon) merge(other *Lexicon) {
	for word, set := range other.words {
		dst, ok := l.words[word]
		if !ok {
			l.words[word] = set
			continue
		}
		for ft := range set {
			dst[ft] = struct{}{}
		}
	}
}

// WordCount returns the number of distinct word forms.
func (l *Lexicon) WordCount() int { return len(l.words) }

// SortedWords returns all word forms in ascending byte order, the order
// the artifact's binary-searched word table requires.
func (l *Lexicon) SortedWords() []string {
	words := make([]string, 0, len(l.words))
	for w := range l.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Tuples returns the readings of a word form in unspecified order.
func (l *Lexicon) Tuples(word string) []FeatureTuple {
	set := l.words[word]
	out := make([]FeatureTuple, 0, len(set))
	for ft := range set {
		out = append(out, ft)
	}
	return out
}

// Lemmas returns the distinct lemma strings across all readings,
// in unspecified order.
func (l *Lexicon) Lemmas() []string {
	seen := make(map[string]struct{})
	for _, set := range l.words {
		for ft := range set {
			seen[ft.Lemma] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for lemma := range seen {
		out = append(out, lemma)
	}
	return out
}

// LoadStats reports what the loader saw.
type LoadStats struct {
	Rows    int // rows consumed, including skipped ones
	Skipped int // rows with fewer than five fields
}

type loadOptions struct {
	workers int
}

// LoadOption configures ParseRows.
type LoadOption func(*loadOptions)

// WithWorkers sets the number of parallel row-parsing workers.
// Values below 2 keep the loader single-threaded.
func WithWorkers(n int) LoadOption {
	return func(o *loadOptions) { o.workers = n }
}

const (
	maxLineBytes = 1 << 20
	batchRows    = 4096
)

// ParseRows reads `;`-separated lexicon rows and builds the word-form
// multimap. Rows with fewer than five fields are skipped and counted.
//
// Parsing may fan out across workers, but the returned Lexicon is only
// assembled after every worker has finished: lemma indices are assigned
// later from a globally sorted view, so no partial result may escape.
func ParseRows(ctx context.Context, r io.Reader, optFns ...LoadOption) (*Lexicon, *LoadStats, error) {
	o := loadOptions{workers: 1}
	for _, fn := range optFns {
		fn(&o)
	}

	if o.workers < 2 {
		return parseSerial(ctx, r)
	}
	return parseParallel(ctx, r, o.workers)
}

func parseSerial(ctx context.Context, r io.Reader) (*Lexicon, *LoadStats, error) {
	lex := NewLexicon()
	stats := &LoadStats{}
	fold := cases.Lower(language.Icelandic)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		stats.Rows++
		word, ft, ok := parseRow(fold, scanner.Text())
		if !ok {
			stats.Skipped++
			continue
		}
		lex.Add(word, ft)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return lex, stats, nil
}

func parseParallel(ctx context.Context, r io.Reader, workers int) (*Lexicon, *LoadStats, error) {
	g, ctx := errgroup.WithContext(ctx)
	batches := make(chan []string, workers)

	g.Go(func() error {
		defer close(batches)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

		batch := make([]string, 0, batchRows)
		for scanner.Scan() {
			batch = append(batch, scanner.Text())
			if len(batch) == batchRows {
				select {
				case batches <- batch:
				case <-ctx.Done():
					return ctx.Err()
				}
				batch = make([]string, 0, batchRows)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		if len(batch) > 0 {
			select {
			case batches <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	partialLex := make([]*Lexicon, workers)
	partialStats := make([]LoadStats, workers)
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			// The caser keeps internal state and is not safe for
			// concurrent use; each worker gets its own.
			fold := cases.Lower(language.Icelandic)
			lex := NewLexicon()
			stats := LoadStats{}

			for batch := range batches {
				for _, line := range batch {
					stats.Rows++
					word, ft, ok := parseRow(fold, line)
					if !ok {
						stats.Skipped++
						continue
					}
					lex.Add(word, ft)
				}
			}

			partialLex[i] = lex
			partialStats[i] = stats
			return nil
		})
	}

	// Barrier: lemma index assignment needs the complete lexicon.
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	lex := NewLexicon()
	stats := &LoadStats{}
	for i := 0; i < workers; i++ {
		if partialLex[i] != nil {
			lex.merge(partialLex[i])
		}
		stats.Rows += partialStats[i].Rows
		stats.Skipped += partialStats[i].Skipped
	}
	return lex, stats, nil
}

func parseRow(fold cases.Caser, line string) (string, FeatureTuple, bool) {
	fields := strings.Split(line, ";")
	if len(fields) < 5 {
		return "", FeatureTuple{}, false
	}

	wordClass := fields[2]
	ft := FeatureTuple{
		Lemma:  fold.String(fields[0]),
		POS:    POSFromWordClass(wordClass),
		Gender: GenderFromWordClass(wordClass),
	}
	if len(fields) >= 6 {
		ft.Case = CaseFromMark(fields[5])
		ft.Number = NumberFromMark(fields[5])
	}

	return fold.String(fields[4]), ft, true
}
