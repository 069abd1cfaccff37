// Package pretty renders both expression trees back to source-like text:
// [Syntax] for the named [ast.Expr], [DeBruijn] for the lowered
// [debruijn.Expr].
package pretty

import (
	"strconv"
	"strings"

	"github.com/spiddylang/spiddy/ast"
	"github.com/spiddylang/spiddy/debruijn"
	"github.com/spiddylang/spiddy/internal/arena"
)

// Syntax renders a named expression tree as spiddy source text. Application
// is printed with a space between operands; a lambda operand of an
// application is parenthesized, and so is an application in argument
// position. An application in function position is left bare, since
// application is left-associative.
func Syntax(a *arena.Arena[ast.Expr], p arena.Pointer[ast.Expr]) string {
	var b strings.Builder
	writeSyntax(&b, a, p)
	return b.String()
}

func writeSyntax(b *strings.Builder, a *arena.Arena[ast.Expr], p arena.Pointer[ast.Expr]) {
	node := p.In(a)
	switch node.Kind {
	case ast.Ident:
		b.WriteString(node.Name)

	case ast.Lam:
		b.WriteByte('\\')
		b.WriteString(node.Name)
		b.WriteString(" -> ")
		writeSyntax(b, a, node.Body)

	case ast.App:
		writeAtomOf(b, a, node.Func, node.Func.In(a).Kind == ast.Lam)
		b.WriteByte(' ')
		l := node.Arg.In(a).Kind
		writeAtomOf(b, a, node.Arg, l == ast.Lam || l == ast.App)

	case ast.Parens:
		b.WriteByte('(')
		writeSyntax(b, a, node.Inner)
		b.WriteByte(')')
	}
}

func writeAtomOf(b *strings.Builder, a *arena.Arena[ast.Expr], p arena.Pointer[ast.Expr], parens bool) {
	if parens {
		b.WriteByte('(')
	}
	writeSyntax(b, a, p)
	if parens {
		b.WriteByte(')')
	}
}

// DeBruijn renders a nameless expression tree, writing variables as
// "#<index>" and binders without a name ("\. body").
func DeBruijn(a *arena.Arena[debruijn.Expr], p arena.Pointer[debruijn.Expr]) string {
	var b strings.Builder
	writeDeBruijn(&b, a, p)
	return b.String()
}

func writeDeBruijn(b *strings.Builder, a *arena.Arena[debruijn.Expr], p arena.Pointer[debruijn.Expr]) {
	node := p.In(a)
	switch node.Kind {
	case debruijn.Var:
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(node.Index))

	case debruijn.U64:
		b.WriteString(strconv.FormatUint(node.N, 10))

	case debruijn.Lam:
		b.WriteString("\\. ")
		writeDeBruijn(b, a, node.Body)

	case debruijn.App:
		writeDeBruijnAtom(b, a, node.Left, node.Left.In(a).Kind == debruijn.Lam)
		b.WriteByte(' ')
		r := node.Right.In(a).Kind
		writeDeBruijnAtom(b, a, node.Right, r == debruijn.Lam || r == debruijn.App)

	case debruijn.AddU64:
		writeDeBruijnAtom(b, a, node.Left, node.Left.In(a).Kind == debruijn.Lam)
		b.WriteString(" + ")
		r := node.Right.In(a).Kind
		writeDeBruijnAtom(b, a, node.Right, r == debruijn.Lam || r == debruijn.AddU64)
	}
}

func writeDeBruijnAtom(b *strings.Builder, a *arena.Arena[debruijn.Expr], p arena.Pointer[debruijn.Expr], parens bool) {
	if parens {
		b.WriteByte('(')
	}
	writeDeBruijn(b, a, p)
	if parens {
		b.WriteByte(')')
	}
}
