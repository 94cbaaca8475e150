package lemis

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lemma-is/lemis/artifact"
	"github.com/lemma-is/lemis/blobstore"
)

// Lemma is one resolved reading of a query word.
type Lemma struct {
	Text   string
	POS    string
	Case   string
	Gender string
	Number string
}

// DB serves lemma and bigram lookups against one opened artifact.
// Lookups are safe for concurrent use.
type DB struct {
	mu     sync.RWMutex
	reader *artifact.Reader
	blob   blobstore.Blob
	closed bool
	logger *Logger
}

// Open fetches the named artifact from the store and prepares it for
// lookups. Memory-mappable blobs are served zero-copy; everything else
// is read into memory. Gzip- and lz4-compressed artifacts are detected
// and inflated transparently.
func Open(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*DB, error) {
	o := applyOptions(optFns)

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open artifact %q: %w", name, err)
	}

	var data []byte
	if m, ok := blob.(blobstore.Mappable); ok {
		data, err = m.Bytes()
	} else {
		data = make([]byte, blob.Size())
		_, err = blob.ReadAt(ctx, data, 0)
	}
	if err != nil {
		blob.Close()
		return nil, fmt.Errorf("read artifact %q: %w", name, err)
	}

	inflated, err := decompress(data)
	if err != nil {
		blob.Close()
		return nil, err
	}

	reader, err := artifact.NewReader(inflated)
	if err != nil {
		blob.Close()
		return nil, fmt.Errorf("decode artifact %q: %w", name, err)
	}

	h := reader.Header()
	o.logger.WithArtifact(name).InfoContext(ctx, "artifact opened",
		"version", h.Version,
		"lemmas", h.LemmaCount,
		"words", h.WordCount,
		"entries", h.EntryCount,
		"bigrams", h.BigramCount,
	)

	return &DB{reader: reader, blob: blob, logger: o.logger}, nil
}

// Lemmas looks up the readings of word, most frequent lemma first.
// The query is lower-cased with Icelandic rules; the artifact stores
// folded forms only. A missing word yields an empty slice, not an
// error.
func (db *DB) Lemmas(word string) ([]Lemma, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return nil, ErrClosed
	}

	folded := cases.Lower(language.Icelandic).String(word)
	entries, ok := db.reader.LookupWord(folded)
	if !ok {
		return nil, nil
	}

	lemmas := make([]Lemma, len(entries))
	for i, e := range entries {
		lemmas[i] = Lemma{
			Text:   db.reader.Lemma(e.LemmaIndex),
			POS:    e.POS.String(),
			Case:   e.Case.String(),
			Gender: e.Gender.String(),
			Number: e.Number.String(),
		}
	}
	return lemmas, nil
}

// BigramFrequency returns the stored frequency of the folded word
// pair, or zero with ok=false when the pair is absent.
func (db *DB) BigramFrequency(word1, word2 string) (uint32, bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return 0, false, ErrClosed
	}

	fold := cases.Lower(language.Icelandic)
	freq, ok := db.reader.LookupBigram(fold.String(word1), fold.String(word2))
	return freq, ok, nil
}

// Header returns the opened artifact's header.
func (db *DB) Header() *artifact.Header {
	return db.reader.Header()
}

// Verify runs the full structural scan on the opened artifact.
func (db *DB) Verify() (*artifact.VerifyReport, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return nil, ErrClosed
	}
	return db.reader.Verify()
}

// Close releases the underlying blob. The DB must not be used after.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.closed {
		return nil
	}
	db.closed = true
	return db.blob.Close()
}
