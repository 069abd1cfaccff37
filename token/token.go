package token

import "github.com/spiddylang/spiddy/span"

// Token is a single lexed token. Only [Ident] tokens carry a non-empty
// Payload, a slice of the originating source file's identifier text.
type Token struct {
	Kind    Kind
	Payload string
	Span    span.Span
}

// Tokens is the output of the lexer: a sequence of tokens, always
// terminated by a single [Eof] token whose span is a one-byte point at the
// end of the input.
type Tokens []Token
