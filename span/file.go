package span

// SourceFile holds the raw bytes of one registered source file along with
// the global offset at which its content begins.
//
// A SourceFile occupies the half-open global range [Start, Start+len(Content)).
type SourceFile struct {
	Name    string
	Start   Offset
	Content []byte
}

// Line describes one line of a SourceFile's content: its offset, its
// 1-based line number, and its bytes, excluding any trailing newline.
type Line struct {
	Offset  Offset
	Number  int
	Content []byte
}

// GetLine returns the line containing the global offset off.
//
// It walks the file's bytes once, tracking the current line's start offset
// and number, and stops as soon as it has both located off and found the
// end of that line (the next newline, or end of file). Multi-byte UTF-8 is
// counted in bytes, matching the byte-oriented [Offset] address space.
func (f *SourceFile) GetLine(off Offset) Line {
	target := int(off.Sub(uint32(f.Start)))

	lineStart := 0
	lineEnd := 0
	number := 1
	found := false

	for pos := 0; pos < len(f.Content); pos++ {
		c := f.Content[pos]
		if !found {
			if pos >= target {
				found = true
			} else if c == '\n' {
				number++
				lineStart = pos + 1
				continue
			}
		}
		if found {
			if c == '\n' {
				lineEnd = pos
				break
			}
			lineEnd = pos + 1
		}
	}
	if !found && target <= len(f.Content) {
		// off points at (or past) the last byte with no trailing newline;
		// the target line is whatever remains after the last line break.
		found = true
		lineEnd = len(f.Content)
	}
	if !found {
		panic("span: GetLine: no line containing the given offset")
	}

	return Line{
		Offset:  f.Start.Add(uint32(lineStart)),
		Number:  number,
		Content: f.Content[lineStart:lineEnd],
	}
}
