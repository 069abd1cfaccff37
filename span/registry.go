package span

import (
	"fmt"
	"os"
	"sort"
)

// Files is an append-only registry of [SourceFile]s, each occupying a
// disjoint, contiguous range of the global [Offset] address space in
// registration order.
//
// A zero Files is empty and ready to use.
type Files struct {
	nextAddr Offset
	files    []SourceFile
}

// NewSourceFile registers content under name, starting at the current end
// of the global address space, and returns the offset it was assigned.
//
// Names are not required to be unique; [Files.GetByName] returns the first
// match.
func (fs *Files) NewSourceFile(name string, content []byte) Offset {
	start := fs.nextAddr
	fs.files = append(fs.files, SourceFile{Name: name, Start: start, Content: content})
	fs.nextAddr = start.Add(uint32(len(content)))
	return start
}

// LoadSourceFile reads the file at path and registers it using path as its
// name. A failure to read the file is an operator-visible bug rather than a
// user error in the language being compiled, so callers are expected to
// treat a non-nil error as fatal (see cmd/spiddy, which logs and exits).
func (fs *Files) LoadSourceFile(path string) (Offset, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, "", fmt.Errorf("span: load source file %q: %w", path, err)
	}
	return fs.NewSourceFile(path, content), path, nil
}

// GetByOffset returns the file whose registered range contains o, found via
// binary search over the sorted, contiguous file starts. o may equal
// nextAddr, the one-past-the-end offset: every lexer terminates its token
// stream with an Eof token pointing exactly there, and diagnostics need to
// be able to highlight it without special-casing every caller. Panics if o
// lies strictly past the end of all registered content, or no file has
// been registered at all.
func (fs *Files) GetByOffset(o Offset) *SourceFile {
	if len(fs.files) == 0 || o > fs.nextAddr {
		panic(fmt.Sprintf("span: offset %d out of bounds (registered up to %d)", o, fs.nextAddr))
	}
	ix := sort.Search(len(fs.files), func(i int) bool {
		return fs.files[i].Start > o
	})
	return &fs.files[ix-1]
}

// GetByName returns the first registered file with the given name. Panics
// if no such file has been registered.
func (fs *Files) GetByName(name string) *SourceFile {
	for i := range fs.files {
		if fs.files[i].Name == name {
			return &fs.files[i]
		}
	}
	panic(fmt.Sprintf("span: no source file named %q", name))
}
