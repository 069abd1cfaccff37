// Package diag renders [Error] diagnostics — a source [Highlight] plus a
// message — as the five-line report described by spiddy's error format:
// file name, blank gutter, the numbered source line, a caret underline, and
// the message. It plays the role protocompile's experimental/report package
// plays for proto source, scaled down to this language's simpler needs.
package diag

import "github.com/spiddylang/spiddy/span"

// Highlight is a source location used for display: either a single point or
// a byte range. Len is 1 for a point, the span length otherwise.
type Highlight struct {
	start   span.Offset
	length  uint32
	isPoint bool
}

// AtPoint returns a Highlight for a single byte offset.
func AtPoint(o span.Offset) Highlight {
	return Highlight{start: o, isPoint: true}
}

// AtSpan returns a Highlight covering s.
func AtSpan(s span.Span) Highlight {
	return Highlight{start: s.Start, length: uint32(s.Length)}
}

// Start returns the first byte covered by h.
func (h Highlight) Start() span.Offset {
	return h.start
}

// Len returns the number of bytes covered by h: 1 for a point highlight,
// the underlying span's length otherwise.
func (h Highlight) Len() uint32 {
	if h.isPoint {
		return 1
	}
	return h.length
}

// End returns the offset immediately after the last byte covered by h.
func (h Highlight) End() span.Offset {
	return h.start.Add(h.Len())
}

// Error is a single diagnostic: a location to highlight and a message to
// report at that location.
type Error struct {
	Highlight Highlight
	Message   string
}
