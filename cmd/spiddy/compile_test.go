package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCompileOK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.spd")
	assert.NoError(t, os.WriteFile(path, []byte(`\x -> x`), 0o644))

	assert.Equal(t, 0, runCompile(path))
}

func TestRunCompileLexError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.spd")
	assert.NoError(t, os.WriteFile(path, []byte("x\x19"), 0o644))

	assert.Equal(t, 1, runCompile(path))
}

func TestRunCompileParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.spd")
	assert.NoError(t, os.WriteFile(path, []byte(`(x`), 0o644))

	assert.Equal(t, 1, runCompile(path))
}

func TestRunCompileUnboundIdentifier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "free.spd")
	assert.NoError(t, os.WriteFile(path, []byte(`x`), 0o644))

	assert.Equal(t, 1, runCompile(path))
}

func TestRunCompileMissingFile(t *testing.T) {
	assert.Equal(t, 1, runCompile(filepath.Join(t.TempDir(), "does-not-exist.spd")))
}
