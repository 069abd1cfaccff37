package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/spiddylang/spiddy/span"
)

// Render produces the five-line report for err against the given file
// registry:
//
//  1. the file name
//  2. a blank gutter, padded to the width of the line number
//  3. the line number, a gutter bar, and the source line
//  4. the same gutter, and a caret underline beneath the highlighted region
//  5. the error message
//
// Each line is terminated by a single newline. Column positions in the
// underline are computed in terms of grapheme clusters (via
// [uniseg.Graphemes]) rather than raw bytes, so that multi-byte UTF-8 in a
// source line — which spiddy permits outside of identifiers — still lines
// the carets up beneath the right characters.
func Render(err Error, files *span.Files) string {
	start := err.Highlight.Start()
	file := files.GetByOffset(start)
	line := file.GetLine(start)

	underline := buildUnderline(line, err.Highlight)

	lineNumber := strconv.Itoa(line.Number)
	gutterPad := strings.Repeat(" ", len(lineNumber))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", file.Name)
	fmt.Fprintf(&b, "%s |\n", gutterPad)
	fmt.Fprintf(&b, "%s | %s\n", lineNumber, line.Content)
	fmt.Fprintf(&b, "%s | %s\n", gutterPad, underline)
	fmt.Fprintf(&b, "%s\n", err.Message)
	return b.String()
}

// buildUnderline renders spaces up to the start of h, then one caret per
// grapheme cluster within h, stopping at the end of the line if the
// highlight extends past it.
func buildUnderline(line span.Line, h Highlight) string {
	lineStartOffset := uint32(line.Offset)
	startCol := int(uint32(h.Start()) - lineStartOffset)
	endCol := int(uint32(h.End()) - lineStartOffset)

	var b strings.Builder
	pos := 0
	wroteAnyCaret := false

	g := uniseg.NewGraphemes(string(line.Content))
	for g.Next() {
		clusterStart, _ := g.Positions()
		if clusterStart < startCol {
			b.WriteByte(' ')
		} else if clusterStart < endCol {
			b.WriteByte('^')
			wroteAnyCaret = true
		} else {
			break
		}
		pos = clusterStart
	}
	_ = pos

	// A highlight that covers no cluster of the line (one starting at or
	// past the end of the line, e.g. an Eof token, or a zero-length span)
	// still gets a single caret at its start column.
	if !wroteAnyCaret {
		for i := len(line.Content); i < startCol; i++ {
			b.WriteByte(' ')
		}
		b.WriteByte('^')
	}

	return b.String()
}
