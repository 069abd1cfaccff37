package main

import (
	"fmt"
	"log"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/spf13/cobra"

	"github.com/spiddylang/spiddy/ast"
	"github.com/spiddylang/spiddy/debruijn"
	"github.com/spiddylang/spiddy/eval"
	"github.com/spiddylang/spiddy/internal/arena"
	"github.com/spiddylang/spiddy/lex"
	"github.com/spiddylang/spiddy/parser"
	"github.com/spiddylang/spiddy/span"
)

var cmdBench = &cobra.Command{
	Use:   "bench",
	Short: "benchmark the lexer/parser or the evaluator",
	Long: `Bench replaces the original project's standalone benchmark
binary (which dispatched on argv[1] being "parse" or "eval_loop") with two
subcommands, reporting mean/stddev/min/max over the sampled iteration
timings via go-moremath's stats.Sample instead of a bare total.`,
}

var argsBenchParse struct {
	iterations int
}

var cmdBenchParse = &cobra.Command{
	Use:   "parse <file>",
	Short: "repeatedly lex and parse a fixture file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var files span.Files
		_, name, err := files.LoadSourceFile(args[0])
		if err != nil {
			log.Fatalf("bench parse: %v", err)
		}
		file := files.GetByName(name)

		xs := make([]float64, 0, argsBenchParse.iterations)
		for i := 0; i < argsBenchParse.iterations; i++ {
			start := time.Now()

			toks, lexErr := lex.Lex(file)
			if lexErr != nil {
				log.Fatalf("bench parse: %v", lexErr)
			}
			var b ast.Builder
			if _, parseErr := parser.ParseExprEOF(&b, toks); parseErr != nil {
				log.Fatalf("bench parse: %v", parseErr)
			}

			xs = append(xs, time.Since(start).Seconds()*1e6)
		}

		reportSample("parse", "µs/iter", xs)
	},
}

var argsBenchEval struct {
	iterations int
	direct     bool
}

var cmdBenchEval = &cobra.Command{
	Use:   "eval",
	Short: "repeatedly evaluate a fixed Church-list-sum expression",
	Long: `Eval builds the same "zero_to_5" Church-encoded list folded with
AddU64 that the original benchmark binary hardcoded, and evaluates it
repeatedly with EvalLoop by default, or with the direct recursive
evaluator under --direct — folding the original's commented-out "eval"
mode back in as a flag rather than a disabled code path.`,
	Run: func(cmd *cobra.Command, args []string) {
		var b debruijn.Builder
		expr := buildZeroTo5Sum(&b)

		xs := make([]float64, 0, argsBenchEval.iterations)
		for i := 0; i < argsBenchEval.iterations; i++ {
			start := time.Now()

			var heap eval.Heap
			if argsBenchEval.direct {
				eval.Eval(&heap, &b.Arena, nil, expr)
			} else {
				eval.EvalLoop(&heap, &b.Arena, expr)
			}

			xs = append(xs, time.Since(start).Seconds()*1e6)
		}

		mode := "eval_loop"
		if argsBenchEval.direct {
			mode = "eval_direct"
		}
		reportSample(mode, "µs/iter", xs)
	},
}

func reportSample(label, unit string, xs []float64) {
	s := stats.Sample{Xs: xs}
	lo, hi := s.Bounds()
	fmt.Printf("%s: n=%d mean=%.3f%s stddev=%.3f min=%.3f max=%.3f\n",
		label, len(xs), s.Mean(), unit, s.StdDev(), lo, hi)
}

// buildZeroTo5Sum builds App(App(zeroTo5, 0), add), the "zero_to_5" fixture
// from original_source/benchmark/src/main.rs: a Church-encoded list of
// [0,1,2,3,4,5] built from nil/cons, folded with a "+" combinator and seed
// 0.
func buildZeroTo5Sum(b *debruijn.Builder) arena.Pointer[debruijn.Expr] {
	// nil = \n -> \c -> n
	nilList := b.Lam(b.Lam(b.Var(1)))

	// cons = \a -> \b -> \n -> \c -> c a (b n c)
	cons := b.Lam(b.Lam(b.Lam(b.Lam(
		b.App(
			b.App(b.Var(0), b.Var(3)),
			b.App(b.App(b.Var(2), b.Var(1)), b.Var(0)),
		),
	))))

	list := nilList
	for k := 5; k >= 0; k-- {
		list = b.App(b.App(cons, b.U64(uint64(k))), list)
	}

	add := b.Lam(b.Lam(b.AddU64(b.Var(1), b.Var(0))))

	return b.App(b.App(list, b.U64(0)), add)
}

func init() {
	cmdBenchParse.Flags().IntVar(&argsBenchParse.iterations, "iterations", 1000, "number of lex+parse iterations")
	cmdBenchEval.Flags().IntVar(&argsBenchEval.iterations, "iterations", 1000, "number of evaluation iterations")
	cmdBenchEval.Flags().BoolVar(&argsBenchEval.direct, "direct", false, "use the direct recursive evaluator instead of EvalLoop")

	cmdBench.AddCommand(cmdBenchParse)
	cmdBench.AddCommand(cmdBenchEval)
}
