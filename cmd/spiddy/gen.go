package main

import (
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spiddylang/spiddy/ast"
	"github.com/spiddylang/spiddy/internal/generate"
	"github.com/spiddylang/spiddy/pretty"
)

var argsGen struct {
	seed int64
}

var cmdGen = &cobra.Command{
	Use:   "gen <size> <outfile>",
	Short: "generate a random expression and write it to a file",
	Long: `Gen builds a random expression tree of the given syntactic depth
and pretty-prints it to outfile, replacing the original generate binary's
positional argv[1]/argv[2] with named args and a --seed flag for
reproducibility.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		size, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			log.Fatalf("gen: invalid size %q: %v", args[0], err)
		}

		g := generate.New(argsGen.seed)
		var b ast.Builder
		expr := g.Expr(&b, uint32(size))
		text := pretty.Syntax(&b.Arena, expr)

		if err := os.WriteFile(args[1], []byte(text), 0o644); err != nil {
			log.Fatalf("gen: %v", err)
		}
	},
}

func init() {
	cmdGen.Flags().Int64Var(&argsGen.seed, "seed", 1, "seed for the random expression generator")
}
