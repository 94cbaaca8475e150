// Package ngram loads the auxiliary n-gram inputs of the artifact
// builder: a unigram frequency map used to rank lemmas, and a list of
// (word1, word2, frequency) bigram triples.
//
// Both inputs are JSON, usually gzip-compressed; compression is detected
// from the stream itself, not the file name.
package ngram

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/gzip"
)

// Bigram is one word-pair frequency observation. Pair uniqueness is an
// input contract of the upstream extraction, not enforced here.
type Bigram struct {
	Word1     string
	Word2     string
	Frequency uint32
}

// UnmarshalJSON accepts the `[word1, word2, frequency]` triple form.
func (b *Bigram) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("bigram triple has %d elements, want 3", len(raw))
	}
	if err := json.Unmarshal(raw[0], &b.Word1); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &b.Word2); err != nil {
		return err
	}
	var freq uint64
	if err := json.Unmarshal(raw[2], &freq); err != nil {
		return err
	}
	if freq > math.MaxUint32 {
		return fmt.Errorf("bigram frequency %d exceeds uint32", freq)
	}
	b.Frequency = uint32(freq)
	return nil
}

// LoadFrequencies reads a JSON object mapping words to non-negative
// frequencies. Words absent from the map default to frequency 0.
func LoadFrequencies(r io.Reader) (map[string]uint64, error) {
	dr, err := maybeGunzip(r)
	if err != nil {
		return nil, err
	}

	freqs := make(map[string]uint64)
	if err := json.NewDecoder(dr).Decode(&freqs); err != nil {
		return nil, fmt.Errorf("decode frequencies: %w", err)
	}
	return freqs, nil
}

// LoadBigrams reads a JSON array of [word1, word2, frequency] triples.
func LoadBigrams(r io.Reader) ([]Bigram, error) {
	dr, err := maybeGunzip(r)
	if err != nil {
		return nil, err
	}

	var bigrams []Bigram
	if err := json.NewDecoder(dr).Decode(&bigrams); err != nil {
		return nil, fmt.Errorf("decode bigrams: %w", err)
	}
	return bigrams, nil
}

// maybeGunzip sniffs the two-byte gzip magic and wraps the stream in a
// decompressor when present.
func maybeGunzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil {
		if err == io.EOF {
			return br, nil
		}
		return nil, err
	}
	if magic[0] == 0x1f && magic[1] == 0x8b {
		return gzip.NewReader(br)
	}
	return br, nil
}
