package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lemma-is/lemis/artifact"
)

var (
	inspectVerify bool

	inspectCmd = &cobra.Command{
		Use:   "inspect ARTIFACT",
		Short: "Print artifact header, section layout and optional verification",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
)

func init() {
	inspectCmd.Flags().BoolVar(&inspectVerify, "verify", false, "run the full structural scan")
}

func runInspect(cmd *cobra.Command, args []string) error {
	db, err := openArtifact(cmd, args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	h := db.Header()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "version:      %d\n", h.Version)
	fmt.Fprintf(out, "string pool:  %d bytes\n", h.StringPoolSize)
	fmt.Fprintf(out, "lemmas:       %d\n", h.LemmaCount)
	fmt.Fprintf(out, "words:        %d\n", h.WordCount)
	fmt.Fprintf(out, "entries:      %d\n", h.EntryCount)
	fmt.Fprintf(out, "bigrams:      %d\n", h.BigramCount)
	fmt.Fprintf(out, "total size:   %d bytes\n", artifact.ComputeLayout(h).Size)

	if !inspectVerify {
		return nil
	}

	report, err := db.Verify()
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	fmt.Fprintf(out, "verify:       ok (%d unreferenced lemmas, %d duplicate bigrams)\n",
		report.UnreferencedLemmas, report.DuplicateBigrams)
	return nil
}
