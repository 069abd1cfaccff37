// Package parser implements the recursive-descent parser from tokens to
// the named [ast.Expr] tree, with expected-set and follow-set tracking for
// precise "unexpected token" diagnostics.
package parser

import (
	"fmt"

	"github.com/spiddylang/spiddy/ast"
	"github.com/spiddylang/spiddy/diag"
	"github.com/spiddylang/spiddy/internal/arena"
	"github.com/spiddylang/spiddy/span"
	"github.com/spiddylang/spiddy/token"
)

// Error is a parse failure: the token actually found, and the set of token
// kinds that would have let parsing continue at that position.
type Error struct {
	Actual   token.Token
	Expected token.Set
}

func (e *Error) Error() string {
	return fmt.Sprintf("unexpected %s, expecting one of: %s", e.Actual.Kind, e.Expected.String())
}

// Diag renders e as a [diag.Error].
func (e *Error) Diag() diag.Error {
	return diag.Error{
		Highlight: diag.AtSpan(e.Actual.Span),
		Message:   e.Error(),
	}
}

// atomStart is the set of tokens that can begin an atom: the first-set of
// the atom production.
var atomStart = token.NewSet(token.Ident, token.LParen)

type parser struct {
	toks token.Tokens
	pos  int
	b    *ast.Builder

	expected token.Set
	follows  []token.Set
}

// ParseExprEOF parses a complete expression from toks, requiring it to be
// followed only by [token.Eof], and allocates the resulting tree into b.
func ParseExprEOF(b *ast.Builder, toks token.Tokens) (arena.Pointer[ast.Expr], *Error) {
	p := &parser{toks: toks, b: b}
	return p.withFollows(token.NewSet(token.Eof), func() (arena.Pointer[ast.Expr], *Error) {
		e, err := p.expr()
		if err != nil {
			return arena.Pointer[ast.Expr]{}, err
		}
		if _, ok := p.expect(token.Eof); !ok {
			return arena.Pointer[ast.Expr]{}, p.unexpected()
		}
		return e, nil
	})
}

// topFollows returns the innermost active follow set, or the empty set if
// none has been pushed.
func (p *parser) topFollows() token.Set {
	if len(p.follows) == 0 {
		return token.Set{}
	}
	return p.follows[len(p.follows)-1]
}

// withFollows replaces the follow set for the duration of fn, restoring the
// previous one on every exit path (success or error).
func (p *parser) withFollows(set token.Set, fn func() (arena.Pointer[ast.Expr], *Error)) (arena.Pointer[ast.Expr], *Error) {
	p.follows = append(p.follows, set)
	defer func() { p.follows = p.follows[:len(p.follows)-1] }()
	return fn()
}

// withFollowsExtended unions set into the enclosing follow set for the
// duration of fn, used for productions whose successor may be either
// another iteration of themselves or whatever the outer context expects.
func (p *parser) withFollowsExtended(set token.Set, fn func() (arena.Pointer[ast.Expr], *Error)) (arena.Pointer[ast.Expr], *Error) {
	return p.withFollows(p.topFollows().Union(set), fn)
}

func (p *parser) skipTrivia() {
	for p.pos < len(p.toks) {
		k := p.toks[p.pos].Kind
		if k != token.Space && k != token.Newline {
			return
		}
		p.pos++
	}
}

// peek returns the next significant (non-whitespace) token without
// consuming it.
func (p *parser) peek() token.Token {
	p.skipTrivia()
	return p.toks[p.pos]
}

// expect consumes the next significant token if it has the given kind.
// Every call, successful or not, grows the expected set; a success clears
// it, since the parser has advanced to a fresh position.
func (p *parser) expect(kind token.Kind) (token.Token, bool) {
	tok := p.peek()
	p.expected = p.expected.With(kind)
	if tok.Kind == kind {
		p.pos++
		p.expected = token.Set{}
		return tok, true
	}
	return token.Token{}, false
}

func (p *parser) unexpected() *Error {
	return &Error{
		Actual:   p.peek(),
		Expected: p.expected.Union(p.topFollows()),
	}
}

// expr ::= lambda | app
func (p *parser) expr() (arena.Pointer[ast.Expr], *Error) {
	if p.peek().Kind == token.Backslash {
		return p.lambda()
	}
	return p.app()
}

// lambda ::= '\' ident '->' expr
func (p *parser) lambda() (arena.Pointer[ast.Expr], *Error) {
	backslash, _ := p.expect(token.Backslash)

	ident, ok := p.expect(token.Ident)
	if !ok {
		return arena.Pointer[ast.Expr]{}, p.unexpected()
	}
	if _, ok := p.expect(token.RArrow); !ok {
		return arena.Pointer[ast.Expr]{}, p.unexpected()
	}
	body, err := p.expr()
	if err != nil {
		return arena.Pointer[ast.Expr]{}, err
	}

	bodyEnd := body.In(&p.b.Arena).Span.End()
	return p.b.Lam(ident.Payload, body, span.Between(backslash.Span.Start, bodyEnd)), nil
}

// app ::= atom atom*, left-associative.
func (p *parser) app() (arena.Pointer[ast.Expr], *Error) {
	return p.withFollowsExtended(atomStart, func() (arena.Pointer[ast.Expr], *Error) {
		first, err := p.atom()
		if err != nil {
			return arena.Pointer[ast.Expr]{}, err
		}

		var args []arena.Pointer[ast.Expr]
		for atomStart.Has(p.peek().Kind) {
			next, err := p.atom()
			if err != nil {
				return arena.Pointer[ast.Expr]{}, err
			}
			args = append(args, next)
		}

		if !p.topFollows().Has(p.peek().Kind) {
			return arena.Pointer[ast.Expr]{}, p.unexpected()
		}
		return p.b.Apps(first, args), nil
	})
}

// atom ::= ident | '(' expr ')'
func (p *parser) atom() (arena.Pointer[ast.Expr], *Error) {
	if tok, ok := p.expect(token.Ident); ok {
		return p.b.Ident(tok.Payload, tok.Span), nil
	}
	if open, ok := p.expect(token.LParen); ok {
		return p.parenExpr(open)
	}
	return arena.Pointer[ast.Expr]{}, p.unexpected()
}

func (p *parser) parenExpr(open token.Token) (arena.Pointer[ast.Expr], *Error) {
	return p.withFollows(token.NewSet(token.RParen), func() (arena.Pointer[ast.Expr], *Error) {
		inner, err := p.expr()
		if err != nil {
			return arena.Pointer[ast.Expr]{}, err
		}
		rparen, ok := p.expect(token.RParen)
		if !ok {
			return arena.Pointer[ast.Expr]{}, p.unexpected()
		}
		return p.b.Parens(inner, span.Between(open.Span.Start, rparen.Span.End())), nil
	})
}
