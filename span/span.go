// Package span implements byte-addressed source locations: offsets, spans,
// and a registry of source files that maps a global offset back to the file
// and line it came from.
//
// Every file registered with a [Files] occupies a disjoint, contiguous range
// of the global [Offset] address space, in the order it was registered. This
// lets a [Span] be represented as a pair of offsets without carrying a file
// reference, the same trick protocompile's ast.FileInfo uses to keep token
// spans small.
package span

import "fmt"

// Offset is a byte address into the global address space spanning every
// [SourceFile] registered with a [Files].
type Offset uint32

// Add returns o shifted forward by n bytes.
func (o Offset) Add(n uint32) Offset {
	return Offset(uint32(o) + n)
}

// Sub returns o shifted backward by n bytes.
func (o Offset) Sub(n uint32) Offset {
	return Offset(uint32(o) - n)
}

// Span is a half-open byte range [Start, Start+Length) in the global address
// space. A Span never straddles a file boundary.
type Span struct {
	Start  Offset
	Length Offset
}

// End returns the offset immediately after the last byte covered by s.
func (s Span) End() Offset {
	return s.Start.Add(uint32(s.Length))
}

// Point returns a zero-length span at o.
func Point(o Offset) Span {
	return Span{Start: o, Length: 0}
}

// Between returns the span covering [start, end).
func Between(start, end Offset) Span {
	return Span{Start: start, Length: end.Sub(uint32(start))}
}

func (s Span) String() string {
	return fmt.Sprintf("%d+%d", s.Start, s.Length)
}
