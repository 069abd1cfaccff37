// Package ast defines the named expression tree produced by the parser:
// identifiers, lambdas, applications, and parenthesized expressions, all
// allocated out of a caller-supplied arena.
package ast

import (
	"github.com/spiddylang/spiddy/internal/arena"
	"github.com/spiddylang/spiddy/span"
)

// Kind distinguishes the variants of [Expr].
type Kind uint8

const (
	// Ident is a bare identifier reference, e.g. "x".
	Ident Kind = iota
	// Lam is a lambda abstraction, e.g. "\x -> body".
	Lam
	// App is a function application, e.g. "f x".
	App
	// Parens is a parenthesized sub-expression, kept in the tree (rather
	// than discarded by the parser) so diagnostics and pretty-printing can
	// refer to the exact span the source author wrote.
	Parens
)

// Expr is one node of the named expression tree. Which fields are
// meaningful depends on Kind:
//
//   - Ident: Name holds the identifier text.
//   - Lam: Name holds the bound variable, Body the function body.
//   - App: Func and Arg hold the applied function and argument.
//   - Parens: Inner holds the parenthesized expression.
//
// Expr is allocated into an [arena.Arena]; references between nodes are
// [arena.Pointer] values rather than native pointers.
type Expr struct {
	Kind Kind
	Span span.Span

	Name string // Ident, Lam

	Body arena.Pointer[Expr] // Lam
	Func arena.Pointer[Expr] // App
	Arg  arena.Pointer[Expr] // App
	Inner arena.Pointer[Expr] // Parens
}

// Builder allocates [Expr] nodes into a single arena, mirroring the
// constructor set of the named AST this language's parser builds.
type Builder struct {
	Arena arena.Arena[Expr]
}

// Ident allocates an identifier node.
func (b *Builder) Ident(name string, s span.Span) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: Ident, Name: name, Span: s})
}

// Lam allocates a lambda node.
func (b *Builder) Lam(arg string, body arena.Pointer[Expr], s span.Span) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: Lam, Name: arg, Body: body, Span: s})
}

// App allocates a single application node `f x`.
func (b *Builder) App(f, x arena.Pointer[Expr], s span.Span) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: App, Func: f, Arg: x, Span: s})
}

// Apps left-folds a chain of arguments onto f: `Apps(f, [x, y, z])` builds
// `((f x) y) z`. Each intermediate App node's span runs from f's original
// start to the most recently applied argument's end.
func (b *Builder) Apps(f arena.Pointer[Expr], xs []arena.Pointer[Expr]) arena.Pointer[Expr] {
	expr := f
	start := f.In(&b.Arena).Span.Start
	for _, x := range xs {
		expr = b.App(expr, x, span.Between(start, x.In(&b.Arena).Span.End()))
	}
	return expr
}

// Parens allocates a parenthesized wrapper around inner.
func (b *Builder) Parens(inner arena.Pointer[Expr], s span.Span) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: Parens, Inner: inner, Span: s})
}

// Equal reports whether p and q denote structurally identical trees in
// their respective arenas, ignoring spans. Arena pointers are only
// meaningful within the arena that allocated them, so there is no useful
// notion of pointer identity across trees — tests and callers that need to
// compare two ASTs (e.g. one built by hand, one produced by the parser)
// must walk the structure, which is what Equal does.
func Equal(a *arena.Arena[Expr], p arena.Pointer[Expr], b *arena.Arena[Expr], q arena.Pointer[Expr]) bool {
	if p.Nil() || q.Nil() {
		return p.Nil() == q.Nil()
	}
	x, y := p.In(a), q.In(b)
	if x.Kind != y.Kind {
		return false
	}
	switch x.Kind {
	case Ident:
		return x.Name == y.Name
	case Lam:
		return x.Name == y.Name && Equal(a, x.Body, b, y.Body)
	case App:
		return Equal(a, x.Func, b, y.Func) && Equal(a, x.Arg, b, y.Arg)
	case Parens:
		return Equal(a, x.Inner, b, y.Inner)
	default:
		return false
	}
}
