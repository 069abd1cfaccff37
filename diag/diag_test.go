package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spiddylang/spiddy/diag"
	"github.com/spiddylang/spiddy/span"
)

func TestRenderPoint(t *testing.T) {
	var files span.Files
	files.NewSourceFile("test", []byte("this is a line\nthis is another line"))

	got := diag.Render(diag.Error{
		Highlight: diag.AtPoint(8),
		Message:   "Message",
	}, &files)

	assert.Equal(t,
		"test\n"+
			"  |\n"+
			"1 | this is a line\n"+
			"  |         ^\n"+
			"Message\n",
		got)
}

func TestRenderPointLaterLine(t *testing.T) {
	prefix := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\nthis is "
	aim := span.Offset(len(prefix))
	content := prefix + "another line"

	var files span.Files
	files.NewSourceFile("test", []byte(content))

	got := diag.Render(diag.Error{
		Highlight: diag.AtPoint(aim),
		Message:   "Message",
	}, &files)

	assert.Equal(t,
		"test\n"+
			"   |\n"+
			"11 | this is another line\n"+
			"   |         ^\n"+
			"Message\n",
		got)
}

func TestRenderSpan(t *testing.T) {
	var files span.Files
	files.NewSourceFile("test", []byte("this is a line"))

	got := diag.Render(diag.Error{
		Highlight: diag.AtSpan(span.Span{Start: 10, Length: 4}),
		Message:   "bad identifier",
	}, &files)

	assert.Equal(t,
		"test\n"+
			"  |\n"+
			"1 | this is a line\n"+
			"  |           ^^^^\n"+
			"bad identifier\n",
		got)
}

func TestHighlightAtPointHasLengthOne(t *testing.T) {
	h := diag.AtPoint(5)
	assert.Equal(t, span.Offset(5), h.Start())
	assert.Equal(t, uint32(1), h.Len())
	assert.Equal(t, span.Offset(6), h.End())
}

func TestHighlightAtSpan(t *testing.T) {
	h := diag.AtSpan(span.Span{Start: 3, Length: 7})
	assert.Equal(t, span.Offset(3), h.Start())
	assert.Equal(t, uint32(7), h.Len())
	assert.Equal(t, span.Offset(10), h.End())
}
