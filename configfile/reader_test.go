// Copyright © 2026 The kconf authors

package configfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	const src = `#
# Automatically generated file; DO NOT EDIT.
#
FOO=y
BAR=m
# BAZ is not set
NAME="hello world"
ESCAPED="a \"b\" c"
PORT=8080
ADDR=0xFF

# free comment that is not a not-set line
CONFIG_OLD=y
# CONFIG_OLDOFF is not set
`
	settings, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []Setting{
		{Name: "FOO", Value: "y"},
		{Name: "BAR", Value: "m"},
		{Name: "BAZ", Value: "n"},
		{Name: "NAME", Value: "hello world"},
		{Name: "ESCAPED", Value: `a "b" c`},
		{Name: "PORT", Value: "8080"},
		{Name: "ADDR", Value: "0xFF"},
		{Name: "OLD", Value: "y"},
		{Name: "OLDOFF", Value: "n"},
	}, settings)
}

func TestReadSkipsMalformed(t *testing.T) {
	settings, err := Read(strings.NewReader("no equals sign here\n# just a comment\n"))
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".config")
	require.NoError(t, os.WriteFile(path, []byte("X=y\n"), 0o644))
	settings, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Setting{{Name: "X", Value: "y"}}, settings)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(err))
}
