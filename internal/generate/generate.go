// Package generate produces pseudo-random, syntactically valid expression
// trees for fuzzing and benchmarking. Given the same seed, it returns
// exactly the same tree for the same code base, mirroring the determinism
// contract of wazero's module generator.
package generate

import (
	"math/rand"

	"github.com/spiddylang/spiddy/ast"
	"github.com/spiddylang/spiddy/internal/arena"
	"github.com/spiddylang/spiddy/span"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// identPoolSize is the number of distinct identifiers a [Generator]
// draws from, matching the original generator's fixed pool of 100.
const identPoolSize = 100

// Generator produces random expression trees out of a fixed pool of
// identifiers, built once at construction so that every generated
// identifier reference resolves to a previously-seen name.
type Generator struct {
	rng    *rand.Rand
	idents []string
}

// New creates a Generator seeded deterministically from seed: the same
// seed always produces the same identifier pool and, given the same
// sequence of [Generator.Expr] calls, the same trees.
func New(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	idents := make([]string, identPoolSize)
	for i := range idents {
		length := rng.Intn(10) + 1
		buf := make([]byte, length)
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		idents[i] = string(buf)
	}
	return &Generator{rng: rng, idents: idents}
}

func (g *Generator) ident() string {
	return g.idents[g.rng.Intn(len(g.idents))]
}

// Expr generates a random expression tree of roughly the given size into
// b, returning a pointer to the root node. Every allocated node is given
// a zero [span.Span]: generated trees have no source text to point at.
func (g *Generator) Expr(b *ast.Builder, size uint32) arena.Pointer[ast.Expr] {
	if size == 0 {
		return b.Ident(g.ident(), span.Span{})
	}
	if g.rng.Intn(2) == 0 {
		return g.lambda(b, size)
	}
	return g.app(b, size)
}

func (g *Generator) lambda(b *ast.Builder, size uint32) arena.Pointer[ast.Expr] {
	arg := g.ident()
	body := g.Expr(b, size-1)
	return b.Lam(arg, body, span.Span{})
}

func (g *Generator) app(b *ast.Builder, size uint32) arena.Pointer[ast.Expr] {
	l := g.Expr(b, size-1)
	r := g.Expr(b, size-1)
	return b.App(l, r, span.Span{})
}
