package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "lemis",
		Short: "Build and query Icelandic lemma artifacts",
		Long: `lemis compiles BÍN-style lexicon rows and n-gram frequency data
into a compact binary artifact, and answers lemma and bigram lookups
against an existing artifact.`,
		SilenceUsage: true,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(buildCmd, inspectCmd, lookupCmd, bigramCmd)
}
