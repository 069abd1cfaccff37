package main

import (
	"github.com/spf13/cobra"
)

var cmdRoot = &cobra.Command{
	Use:   "spiddy",
	Short: "a pipeline for an untyped lambda calculus extended with u64",
	Long: `spiddy lexes, parses, lowers, and evaluates a small untyped
lambda calculus extended with u64 literals and addition.`,
}

// Execute wires up the command tree and runs it, mirroring ottomap's
// cmdRoot.AddCommand wiring in its own Execute.
func Execute() error {
	cmdRoot.AddCommand(cmdCompile)
	cmdRoot.AddCommand(cmdBench)
	cmdRoot.AddCommand(cmdGen)
	return cmdRoot.Execute()
}
