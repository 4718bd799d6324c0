package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for corpusrank.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpusrank",
		Short: "Rank the pages of an HTML corpus with PageRank",
		Long: `CorpusRank estimates the relative importance of the pages in a directory
of HTML documents. It builds the hyperlink graph of the corpus and computes
the PageRank of every page twice: by simulating a long random surfer walk
and by iterating the PageRank equations to their fixed point. The two
results are reported side by side and should approximately agree.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRankCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
