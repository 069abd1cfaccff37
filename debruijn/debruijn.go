// Package debruijn defines the nameless expression tree the evaluator runs
// on, and the lowering pass that turns a named [ast.Expr] into one.
package debruijn

import (
	"fmt"

	"github.com/spiddylang/spiddy/ast"
	"github.com/spiddylang/spiddy/diag"
	"github.com/spiddylang/spiddy/internal/arena"
	"github.com/spiddylang/spiddy/span"
)

// Kind distinguishes the variants of [Expr].
type Kind uint8

const (
	// Var is a bound variable reference, counting binders outward from the
	// use site starting at 0.
	Var Kind = iota
	// Lam is a lambda abstraction; unlike ast.Lam it carries no name.
	Lam
	// App is a function application.
	App
	// U64 is an unsigned 64-bit integer literal. It has no surface syntax;
	// only tests and the bench command's fixture construct it directly.
	U64
	// AddU64 adds two U64-valued subexpressions. Like U64, it has no
	// surface syntax.
	AddU64
)

// Expr is one node of the nameless expression tree. Which fields are
// meaningful depends on Kind:
//
//   - Var: Index holds the de Bruijn index.
//   - Lam: Body holds the function body.
//   - App, AddU64: Left and Right hold the two subexpressions.
//   - U64: N holds the literal value.
type Expr struct {
	Kind Kind

	Index int    // Var
	N     uint64 // U64

	Body  arena.Pointer[Expr] // Lam
	Left  arena.Pointer[Expr] // App, AddU64
	Right arena.Pointer[Expr] // App, AddU64
}

// Builder allocates [Expr] nodes into a single arena.
type Builder struct {
	Arena arena.Arena[Expr]
}

func (b *Builder) Var(n int) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: Var, Index: n})
}

func (b *Builder) Lam(body arena.Pointer[Expr]) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: Lam, Body: body})
}

func (b *Builder) App(f, x arena.Pointer[Expr]) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: App, Left: f, Right: x})
}

func (b *Builder) U64(n uint64) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: U64, N: n})
}

func (b *Builder) AddU64(l, r arena.Pointer[Expr]) arena.Pointer[Expr] {
	return b.Arena.New(Expr{Kind: AddU64, Left: l, Right: r})
}

// Equal reports whether p and q denote structurally identical trees.
func Equal(a *arena.Arena[Expr], p arena.Pointer[Expr], b *arena.Arena[Expr], q arena.Pointer[Expr]) bool {
	if p.Nil() || q.Nil() {
		return p.Nil() == q.Nil()
	}
	x, y := p.In(a), q.In(b)
	if x.Kind != y.Kind {
		return false
	}
	switch x.Kind {
	case Var:
		return x.Index == y.Index
	case Lam:
		return Equal(a, x.Body, b, y.Body)
	case App, AddU64:
		return Equal(a, x.Left, b, y.Left) && Equal(a, x.Right, b, y.Right)
	case U64:
		return x.N == y.N
	default:
		return false
	}
}

// depths tracks, for each identifier currently in scope, a stack of
// shift-compensated depths — the de Bruijn index it would resolve to if
// referenced right now. The top of the stack belongs to the innermost
// binder with that name.
type depths map[string][]int

// UnboundError reports a reference to an identifier with no enclosing
// binder. Unlike an internal invariant violation, this is a condition a
// user's source program can actually trigger, so it is reported as a
// diagnostic rather than a panic.
type UnboundError struct {
	Name string
	Span span.Span
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("debruijn: unbound identifier %q", e.Name)
}

// Diag renders e as a [diag.Error] suitable for [diag.Render].
func (e *UnboundError) Diag() diag.Error {
	return diag.Error{
		Highlight: diag.AtSpan(e.Span),
		Message:   fmt.Sprintf("unbound identifier %q", e.Name),
	}
}

// FromAST lowers a named expression tree into b's arena. Returns an
// [*UnboundError] if expr (or a subexpression) references an identifier
// with no enclosing binder.
func FromAST(b *Builder, names *arena.Arena[ast.Expr], expr arena.Pointer[ast.Expr]) (arena.Pointer[Expr], *UnboundError) {
	d := make(depths)
	return fromAST(d, b, names, expr)
}

func fromAST(d depths, b *Builder, names *arena.Arena[ast.Expr], expr arena.Pointer[ast.Expr]) (arena.Pointer[Expr], *UnboundError) {
	node := expr.In(names)
	switch node.Kind {
	case ast.Parens:
		return fromAST(d, b, names, node.Inner)

	case ast.Ident:
		stack, ok := d[node.Name]
		if !ok || len(stack) == 0 {
			return arena.Pointer[Expr](0), &UnboundError{Name: node.Name, Span: node.Span}
		}
		return b.Var(stack[len(stack)-1]), nil

	case ast.App:
		l, err := fromAST(d, b, names, node.Func)
		if err != nil {
			return arena.Pointer[Expr](0), err
		}
		r, err := fromAST(d, b, names, node.Arg)
		if err != nil {
			return arena.Pointer[Expr](0), err
		}
		return b.App(l, r), nil

	case ast.Lam:
		for name, stack := range d {
			if name == node.Name {
				continue
			}
			stack[len(stack)-1]++
		}
		d[node.Name] = append(d[node.Name], 0)

		body, err := fromAST(d, b, names, node.Body)

		stack := d[node.Name]
		if len(stack) <= 1 {
			delete(d, node.Name)
		} else {
			d[node.Name] = stack[:len(stack)-1]
		}
		for name, stack := range d {
			if name == node.Name {
				continue
			}
			stack[len(stack)-1]--
		}

		if err != nil {
			return arena.Pointer[Expr](0), err
		}
		return b.Lam(body), nil

	default:
		panic("debruijn: unreachable ast.Kind")
	}
}
