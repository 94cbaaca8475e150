package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lookupCmd = &cobra.Command{
		Use:   "lookup ARTIFACT WORD",
		Short: "Look up the lemmas of a word form",
		Args:  cobra.ExactArgs(2),
		RunE:  runLookup,
	}

	bigramCmd = &cobra.Command{
		Use:   "bigram ARTIFACT WORD1 WORD2",
		Short: "Look up the stored frequency of a word pair",
		Args:  cobra.ExactArgs(3),
		RunE:  runBigram,
	}
)

func runLookup(cmd *cobra.Command, args []string) error {
	db, err := openArtifact(cmd, args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	lemmas, err := db.Lemmas(args[1])
	if err != nil {
		return err
	}
	if len(lemmas) == 0 {
		return fmt.Errorf("word %q not found", args[1])
	}

	out := cmd.OutOrStdout()
	for _, l := range lemmas {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n", l.Text, l.POS, l.Case, l.Gender, l.Number)
	}
	return nil
}

func runBigram(cmd *cobra.Command, args []string) error {
	db, err := openArtifact(cmd, args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	freq, ok, err := db.BigramFrequency(args[1], args[2])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bigram %q %q not found", args[1], args[2])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", freq)
	return nil
}
