package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/spiddylang/spiddy/ast"
	"github.com/spiddylang/spiddy/debruijn"
	"github.com/spiddylang/spiddy/diag"
	"github.com/spiddylang/spiddy/lex"
	"github.com/spiddylang/spiddy/parser"
	"github.com/spiddylang/spiddy/span"
)

var cmdCompile = &cobra.Command{
	Use:   "compile <file>",
	Short: "lex, parse, and lower a source file",
	Long: `Compile lexes, parses, and lowers the given source file to a
nameless expression tree, reporting the first diagnostic it encounters and
exiting 1. Unlike the original compiler binary, it also runs lowering,
surfacing an unbound identifier as a diagnostic rather than leaving it
unreachable from the CLI.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runCompile(args[0]))
	},
}

func runCompile(path string) int {
	var files span.Files
	_, name, err := files.LoadSourceFile(path)
	if err != nil {
		log.Printf("compile: %v", err)
		return 1
	}
	file := files.GetByName(name)

	toks, lexErr := lex.Lex(file)
	if lexErr != nil {
		fmt.Print(diag.Render(lexErr.Diag(), &files))
		return 1
	}

	var b ast.Builder
	root, parseErr := parser.ParseExprEOF(&b, toks)
	if parseErr != nil {
		fmt.Print(diag.Render(parseErr.Diag(), &files))
		return 1
	}

	var db debruijn.Builder
	lowered, lowerErr := debruijn.FromAST(&db, &b.Arena, root)
	if lowerErr != nil {
		fmt.Print(diag.Render(lowerErr.Diag(), &files))
		return 1
	}
	_ = lowered

	fmt.Printf("%s: ok (%d named nodes, %d de Bruijn nodes)\n", path, b.Arena.Len(), db.Arena.Len())
	return 0
}
