// Package lex turns a [span.SourceFile]'s bytes into a [token.Tokens]
// stream. The grammar is ASCII-only: punctuation single bytes, the two-byte
// "->" arrow, and lowercase-leading alphanumeric identifiers. Whitespace is
// tokenized, not skipped — the parser decides what to do with it.
package lex

import (
	"fmt"

	"github.com/spiddylang/spiddy/diag"
	"github.com/spiddylang/spiddy/span"
	"github.com/spiddylang/spiddy/token"
)

// Error is a lexical error: either an unrecognized byte, or end of input
// reached partway through the two-byte "->" token.
//
// Offset is the position of the byte that made the decision: for
// [Error.IsEOF] it is the offset immediately past the last byte read.
type Error struct {
	Offset     span.Offset
	Unexpected byte
	IsEOF      bool
}

func (e *Error) Error() string {
	if e.IsEOF {
		return fmt.Sprintf("lex: unexpected end of input at offset %d", e.Offset)
	}
	return fmt.Sprintf("lex: unexpected byte %q at offset %d", e.Unexpected, e.Offset)
}

// Diag renders e as a [diag.Error] suitable for [diag.Render].
func (e *Error) Diag() diag.Error {
	msg := fmt.Sprintf("unexpected byte %q", e.Unexpected)
	if e.IsEOF {
		msg = "unexpected end of input"
	}
	return diag.Error{
		Highlight: diag.AtPoint(e.Offset),
		Message:   msg,
	}
}

type lexer struct {
	file   *span.SourceFile
	cursor int
}

func (l *lexer) rest() []byte {
	return l.file.Content[l.cursor:]
}

func (l *lexer) done() bool {
	return l.cursor >= len(l.file.Content)
}

// pop consumes and returns the next byte. ok is false at end of input.
func (l *lexer) pop() (b byte, ok bool) {
	if l.done() {
		return 0, false
	}
	b = l.file.Content[l.cursor]
	l.cursor++
	return b, true
}

func (l *lexer) offsetAt(cursor int) span.Offset {
	return l.file.Start.Add(uint32(cursor))
}

func isIdentStart(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isIdentBody(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// consumeIdent assumes l.cursor is positioned just after the identifier's
// first byte, and extends the cursor across the rest of the identifier's
// body.
func (l *lexer) consumeIdent(start int) token.Token {
	for !l.done() && isIdentBody(l.file.Content[l.cursor]) {
		l.cursor++
	}
	text := string(l.file.Content[start:l.cursor])
	return token.Token{
		Kind:    token.Ident,
		Payload: text,
		Span:    span.Span{Start: l.offsetAt(start), Length: span.Offset(len(text))},
	}
}

func (l *lexer) tok1(start int, kind token.Kind) token.Token {
	return token.Token{Kind: kind, Span: span.Span{Start: l.offsetAt(start), Length: 1}}
}

// Lex tokenizes file in full, stopping at the first lexical error. A
// successful result always ends in a single [token.Eof] token whose span is
// a one-byte point at the offset immediately past the file's content.
func Lex(file *span.SourceFile) (token.Tokens, *Error) {
	l := &lexer{file: file}
	var toks token.Tokens

	for {
		start := l.cursor
		b, ok := l.pop()
		if !ok {
			toks = append(toks, token.Token{
				Kind: token.Eof,
				Span: span.Span{Start: l.offsetAt(start), Length: 1},
			})
			return toks, nil
		}

		switch {
		case b == '\n':
			toks = append(toks, l.tok1(start, token.Newline))
		case b == ' ':
			toks = append(toks, l.tok1(start, token.Space))
		case b == '\\':
			toks = append(toks, l.tok1(start, token.Backslash))
		case b == '(':
			toks = append(toks, l.tok1(start, token.LParen))
		case b == ')':
			toks = append(toks, l.tok1(start, token.RParen))
		case b == '=':
			toks = append(toks, l.tok1(start, token.Equals))
		case b == '-':
			next, ok := l.pop()
			if !ok {
				return nil, &Error{Offset: l.offsetAt(l.cursor), IsEOF: true}
			}
			if next != '>' {
				return nil, &Error{Offset: l.offsetAt(start + 1), Unexpected: next}
			}
			toks = append(toks, token.Token{
				Kind: token.RArrow,
				Span: span.Span{Start: l.offsetAt(start), Length: 2},
			})
		case isIdentStart(b):
			toks = append(toks, l.consumeIdent(start))
		default:
			return nil, &Error{Offset: l.offsetAt(start), Unexpected: b}
		}
	}
}
