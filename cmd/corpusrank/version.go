package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the corpusrank version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("corpusrank %s\n", version)
		},
	}
}
