package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lemma-is/lemis"
	"github.com/lemma-is/lemis/blobstore"
)

var (
	buildRows     string
	buildFreqs    string
	buildBigrams  string
	buildOut      string
	buildVersion  uint32
	buildWorkers  int
	buildCompress string

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Compile lexicon rows and n-gram inputs into an artifact",
		RunE:  runBuild,
	}
)

func init() {
	buildCmd.Flags().StringVar(&buildRows, "rows", "", "lexicon rows file (required)")
	buildCmd.Flags().StringVar(&buildFreqs, "frequencies", "", "unigram frequency JSON, optionally gzipped")
	buildCmd.Flags().StringVar(&buildBigrams, "bigrams", "", "bigram triples JSON, optionally gzipped")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "is.lemma", "output artifact path")
	buildCmd.Flags().Uint32Var(&buildVersion, "format-version", 2, "artifact format version (1 or 2)")
	buildCmd.Flags().IntVar(&buildWorkers, "workers", 1, "parallel lexicon-parsing workers")
	buildCmd.Flags().StringVar(&buildCompress, "compress", "none", "artifact compression (none, gzip, lz4)")
	_ = buildCmd.MarkFlagRequired("rows")
}

func runBuild(cmd *cobra.Command, args []string) error {
	input := lemis.CompileInput{}

	rows, err := os.Open(buildRows)
	if err != nil {
		return err
	}
	defer rows.Close()
	input.Rows = rows

	if buildFreqs != "" {
		f, err := os.Open(buildFreqs)
		if err != nil {
			return err
		}
		defer f.Close()
		input.Frequencies = f
	}
	if buildBigrams != "" {
		f, err := os.Open(buildBigrams)
		if err != nil {
			return err
		}
		defer f.Close()
		input.Bigrams = f
	}

	compression, err := parseCompression(buildCompress)
	if err != nil {
		return err
	}

	out, err := os.CreateTemp(filepath.Dir(buildOut), ".lemis-build-*")
	if err != nil {
		return err
	}
	defer os.Remove(out.Name())

	stats, err := lemis.Compile(cmd.Context(), out, input,
		lemis.WithVersion(buildVersion),
		lemis.WithWorkers(buildWorkers),
		lemis.WithCompression(compression),
		lemis.WithLogger(newCLILogger()),
	)
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := os.Rename(out.Name(), buildOut); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"wrote %s: %d lemmas, %d words, %d entries, %d bigrams (%d rows, %d skipped)\n",
		buildOut, stats.LemmaCount, stats.WordCount, stats.EntryCount,
		stats.BigramCount, stats.Rows, stats.Skipped)
	return nil
}

func parseCompression(s string) (lemis.Compression, error) {
	switch s {
	case "none", "":
		return lemis.CompressionNone, nil
	case "gzip":
		return lemis.CompressionGzip, nil
	case "lz4":
		return lemis.CompressionLZ4, nil
	}
	return 0, fmt.Errorf("unknown compression %q", s)
}

func newCLILogger() *lemis.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return lemis.NewTextLogger(level)
}

// openArtifact resolves an artifact path against a local blob store
// rooted at its directory.
func openArtifact(cmd *cobra.Command, path string) (*lemis.DB, error) {
	store := blobstore.NewLocalStore(filepath.Dir(path))
	return lemis.Open(cmd.Context(), store, filepath.Base(path),
		lemis.WithLogger(newCLILogger()))
}
