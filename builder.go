package lemis

import (
	"context"
	"fmt"
	"io"

	"github.com/lemma-is/lemis/artifact"
	"github.com/lemma-is/lemis/lexicon"
	"github.com/lemma-is/lemis/ngram"
)

// CompileInput bundles the three build inputs. Rows is required; the
// n-gram readers may be nil, which yields an artifact without lemma
// ranking or a bigram table.
type CompileInput struct {
	// Rows streams `;`-separated lexicon rows.
	Rows io.Reader
	// Frequencies streams the JSON unigram frequency map, optionally
	// gzip-compressed.
	Frequencies io.Reader
	// Bigrams streams the JSON bigram triples, optionally
	// gzip-compressed.
	Bigrams io.Reader
}

// BuildStats reports what a Compile consumed and produced.
type BuildStats struct {
	Rows    int
	Skipped int
	artifact.Stats
}

// Compile parses the lexicon inputs and writes one artifact to w.
func Compile(ctx context.Context, w io.Writer, input CompileInput, optFns ...Option) (*BuildStats, error) {
	o := applyOptions(optFns)
	logger := o.logger

	if input.Rows == nil {
		return nil, fmt.Errorf("compile: no lexicon rows input")
	}

	lex, loadStats, err := lexicon.ParseRows(ctx, input.Rows, lexicon.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if loadStats.Skipped > 0 {
		logger.WarnContext(ctx, "skipped malformed lexicon rows",
			"skipped", loadStats.Skipped,
			"rows", loadStats.Rows,
		)
	}

	freqs := map[string]uint64{}
	if input.Frequencies != nil {
		freqs, err = ngram.LoadFrequencies(input.Frequencies)
		if err != nil {
			return nil, fmt.Errorf("load frequencies: %w", err)
		}
	} else {
		logger.WarnContext(ctx, "no frequency input, lemma ranking disabled")
	}

	var bigrams []ngram.Bigram
	if input.Bigrams != nil {
		bigrams, err = ngram.LoadBigrams(input.Bigrams)
		if err != nil {
			return nil, fmt.Errorf("load bigrams: %w", err)
		}
	} else {
		logger.WarnContext(ctx, "no bigram input, bigram table will be empty")
	}

	cw, err := compressWriter(w, o.compression)
	if err != nil {
		return nil, err
	}

	wr, err := artifact.NewWriter(cw, o.version)
	if err != nil {
		return nil, err
	}
	artStats, err := wr.Write(lex, freqs, bigrams)
	if err != nil {
		return nil, err
	}
	if err := cw.Close(); err != nil {
		return nil, fmt.Errorf("finish compression: %w", err)
	}

	stats := &BuildStats{
		Rows:    loadStats.Rows,
		Skipped: loadStats.Skipped,
		Stats:   *artStats,
	}
	logger.LogCompile(ctx, stats, nil)
	return stats, nil
}
