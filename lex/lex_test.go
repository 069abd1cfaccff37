package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spiddylang/spiddy/lex"
	"github.com/spiddylang/spiddy/span"
	"github.com/spiddylang/spiddy/token"
)

func lexString(t *testing.T, content string) (token.Tokens, *lex.Error) {
	t.Helper()
	var files span.Files
	start := files.NewSourceFile("test", []byte(content))
	file := files.GetByOffset(start)
	return lex.Lex(file)
}

func TestLexArrow(t *testing.T) {
	toks, err := lexString(t, "->")
	assert.Nil(t, err)
	assert.Equal(t, token.Tokens{
		{Kind: token.RArrow, Span: span.Span{Start: 0, Length: 2}},
		{Kind: token.Eof, Span: span.Span{Start: 2, Length: 1}},
	}, toks)
}

func TestLexIdent(t *testing.T) {
	toks, err := lexString(t, "hello")
	assert.Nil(t, err)
	assert.Len(t, toks, 2)
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Payload)
	assert.Equal(t, token.Eof, toks[1].Kind)
}

func TestLexProgram(t *testing.T) {
	toks, err := lexString(t, `f = \input -> input`)
	assert.Nil(t, err)

	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.Ident, token.Space, token.Equals, token.Space,
		token.Backslash, token.Ident, token.Space, token.RArrow, token.Space,
		token.Ident, token.Eof,
	}, kinds)
}

// TestLexUnexpectedByte mirrors the original test suite's convention of
// appending a non-printable terminator byte to probe the lexer's error
// path: "  aa" followed by 0x19.
func TestLexUnexpectedByte(t *testing.T) {
	_, err := lexString(t, "  aa\x19")
	assert.NotNil(t, err)
	assert.Equal(t, byte(0x19), err.Unexpected)
	assert.Equal(t, span.Offset(4), err.Offset)
	assert.False(t, err.IsEOF)
}

func TestLexUnexpectedByteAfterNewline(t *testing.T) {
	_, err := lexString(t, "  aa\na\x19")
	assert.NotNil(t, err)
	assert.Equal(t, byte(0x19), err.Unexpected)
	assert.Equal(t, span.Offset(6), err.Offset)
}

func TestLexSpacesAndNewlines(t *testing.T) {
	toks, err := lexString(t, "  aa\naa")
	assert.Nil(t, err)

	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.Space, token.Space, token.Ident, token.Newline, token.Ident, token.Eof,
	}, kinds)
}

func TestLexArrowUnexpectedEOF(t *testing.T) {
	_, err := lexString(t, "-")
	assert.NotNil(t, err)
	assert.True(t, err.IsEOF)
	assert.Equal(t, span.Offset(1), err.Offset)
}

func TestLexArrowUnexpectedByte(t *testing.T) {
	_, err := lexString(t, "-x")
	assert.NotNil(t, err)
	assert.False(t, err.IsEOF)
	assert.Equal(t, byte('x'), err.Unexpected)
	assert.Equal(t, span.Offset(1), err.Offset)
}

func TestLexDiagRendersUnexpectedByte(t *testing.T) {
	var files span.Files
	start := files.NewSourceFile("test", []byte("  aa\x19"))
	file := files.GetByOffset(start)

	_, err := lex.Lex(file)
	assert.NotNil(t, err)
	assert.Equal(t, diagOffset(err), span.Offset(4))
}

func diagOffset(err *lex.Error) span.Offset {
	return err.Diag().Highlight.Start()
}
