// Copyright © 2026 The kconf authors

package configfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbuildtools/kconf/kconfig"
	"github.com/kbuildtools/kconf/parser"
)

const testKconfig = `
config FOO
	bool "foo"

config BAR
	tristate "bar"

config BAZ
	bool "baz"

config NAME
	string "name"

config EMPTY
	string "empty"

config PORT
	int "port"

config ADDR
	hex "addr"
`

func testTable(t *testing.T) *kconfig.SymbolTable {
	t.Helper()
	file, err := parser.NewReader().Read("Kconfig", strings.NewReader(testKconfig))
	require.NoError(t, err)
	table, err := kconfig.Build(file)
	require.NoError(t, err)
	engine := kconfig.NewEngine(table)
	for _, set := range []struct{ name, value string }{
		{"FOO", "y"},
		{"BAR", "m"},
		{"NAME", `say "hi"`},
		{"PORT", "8080"},
		{"ADDR", "0xFF"},
	} {
		_, err := engine.Set(set.name, set.value)
		require.NoError(t, err)
	}
	return table
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testTable(t)))
	want := `#
# Automatically generated file; DO NOT EDIT.
#
FOO=y
BAR=m
# BAZ is not set
NAME="say \"hi\""
# EMPTY is not set
PORT=8080
ADDR=0xFF
`
	assert.Equal(t, want, buf.String())
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".config")
	require.NoError(t, WriteFile(path, testTable(t)))

	settings, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Setting{
		{Name: "FOO", Value: "y"},
		{Name: "BAR", Value: "m"},
		{Name: "BAZ", Value: "n"},
		{Name: "NAME", Value: `say "hi"`},
		{Name: "EMPTY", Value: "n"},
		{Name: "PORT", Value: "8080"},
		{Name: "ADDR", Value: "0xFF"},
	}, settings)
}

func TestWriteFileCreateError(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", ".config"), testTable(t))
	assert.True(t, os.IsNotExist(err))
}
