package span_test

import (
	"testing"

	"github.com/spiddylang/spiddy/span"
	"github.com/stretchr/testify/assert"
)

func TestGetByOffset(t *testing.T) {
	assert := assert.New(t)

	var fs span.Files
	fs.NewSourceFile("one", []byte("some letters"))
	fs.NewSourceFile("two", []byte("content"))
	fs.NewSourceFile("three", []byte("other letters"))

	for _, o := range []span.Offset{0, 1, 11} {
		assert.Equal("one", fs.GetByOffset(o).Name)
	}
	for _, o := range []span.Offset{12, 14, 18} {
		assert.Equal("two", fs.GetByOffset(o).Name)
	}
	for _, o := range []span.Offset{19, 24, 30} {
		assert.Equal("three", fs.GetByOffset(o).Name)
	}
}

func TestGetByOffsetOutOfRangePanics(t *testing.T) {
	var fs span.Files
	fs.NewSourceFile("one", []byte("abc"))
	assert.Panics(t, func() { fs.GetByOffset(4) })
}

// TestGetByOffsetAtTrailingBoundary checks that the one-past-the-end
// offset of the last registered file — exactly where a lexer's terminal
// Eof token always points — resolves to that file rather than panicking.
func TestGetByOffsetAtTrailingBoundary(t *testing.T) {
	var fs span.Files
	fs.NewSourceFile("one", []byte("abc"))
	fs.NewSourceFile("two", []byte("de"))

	assert.Equal(t, "two", fs.GetByOffset(5).Name)
}

func TestGetByOffsetEmptyRegistryPanics(t *testing.T) {
	var fs span.Files
	assert.Panics(t, func() { fs.GetByOffset(0) })
}

func TestGetByName(t *testing.T) {
	assert := assert.New(t)

	var fs span.Files
	fs.NewSourceFile("one", []byte("x"))
	fs.NewSourceFile("two", []byte("y"))

	assert.Equal(span.Offset(0), func() span.Offset {
		return fs.GetByName("one").Start
	}())
	assert.Equal(span.Offset(1), fs.GetByName("two").Start)
}

func TestGetLine(t *testing.T) {
	assert := assert.New(t)

	f := &span.SourceFile{Name: "test", Start: 0, Content: []byte("hello")}
	line := f.GetLine(0)
	assert.Equal(span.Offset(0), line.Offset)
	assert.Equal(1, line.Number)
	assert.Equal("hello", string(line.Content))

	f = &span.SourceFile{Name: "test", Start: 5, Content: []byte("hello\nworld")}
	line = f.GetLine(11)
	assert.Equal(span.Offset(11), line.Offset)
	assert.Equal(2, line.Number)
	assert.Equal("world", string(line.Content))
}
