// Copyright © 2026 The kconf authors

package kconfig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbuildtools/kconf/kconfig"
	"github.com/kbuildtools/kconf/parser"
)

func buildErr(t *testing.T, src string) error {
	t.Helper()
	file, err := parser.NewReader().Read("Kconfig", strings.NewReader(src))
	require.NoError(t, err)
	_, err = kconfig.Build(file)
	require.Error(t, err)
	return err
}

func TestBuildRegistersSymbols(t *testing.T) {
	table := buildTable(t, `
mainmenu "Test Configuration"

config A
	bool "a"

config B
	tristate "b"
	depends on A
`)
	assert.Equal(t, "Test Configuration", table.MainMenu)
	assert.Equal(t, 2, table.Len())

	a, ok := table.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, kconfig.KindBool, a.Kind)
	assert.Equal(t, "a", a.Prompt)

	names := make([]string, 0, 2)
	for _, sym := range table.Symbols() {
		names = append(names, sym.Name)
	}
	assert.Equal(t, []string{"A", "B"}, names)

	require.NotNil(t, table.Depends("B"))
	assert.Equal(t, "A", table.Depends("B").String())
	assert.Nil(t, table.Depends("A"))
}

func TestBuildGuardConjunction(t *testing.T) {
	table := buildTable(t, `
config NET
	bool "net"

config IPV6
	bool "ipv6"

if NET
menu "protocols"
	depends on IPV6

config TCP
	bool "tcp"
	depends on NET
	default y if IPV6
	select CHECKSUM if IPV6
	imply OFFLOAD

config CHECKSUM
	bool

config OFFLOAD
	bool "offload"

endmenu
endif
`)
	// if and menu guards are conjoined into everything declared inside.
	assert.Equal(t, "(NET && IPV6) && NET", table.Depends("TCP").String())

	tcp, _ := table.Lookup("TCP")
	require.Len(t, tcp.Defaults, 1)
	assert.Equal(t, "(NET && IPV6) && IPV6", tcp.Defaults[0].Cond.String())

	selects := table.SelectsOf("TCP")
	require.Len(t, selects, 1)
	assert.Equal(t, "CHECKSUM", selects[0].Target)
	assert.Equal(t, "(NET && IPV6) && IPV6", selects[0].Cond.String())

	implies := table.ImpliesOf("TCP")
	require.Len(t, implies, 1)
	assert.Equal(t, "OFFLOAD", implies[0].Target)
	assert.Equal(t, "NET && IPV6", implies[0].Cond.String())
}

func TestBuildReverseSelects(t *testing.T) {
	table := buildTable(t, `
config A
	bool "a"
	select LIB

config B
	bool "b"
	select LIB
	select LIB if A

config LIB
	bool
`)
	assert.Equal(t, []string{"A", "B"}, table.SelectorsOf("LIB"))
	assert.Empty(t, table.SelectorsOf("A"))
	// The forward map keeps both guarded edges.
	assert.Len(t, table.SelectsOf("B"), 2)
}

func TestBuildChoice(t *testing.T) {
	table := buildTable(t, `
choice
	bool "compression"
	default XZ

config GZIP
	bool "gzip"

config XZ
	bool "xz"

endchoice
`)
	choices := table.Choices()
	require.Len(t, choices, 1)
	grp := choices[0]
	assert.Equal(t, []string{"GZIP", "XZ"}, grp.Members)
	assert.False(t, grp.Optional)
	require.Len(t, grp.Defaults, 1)
	assert.Equal(t, "XZ", grp.Defaults[0].Value)

	assert.Equal(t, grp, table.ChoiceOf("GZIP"))
	assert.Equal(t, grp, table.ChoiceOf("XZ"))
	assert.Nil(t, table.ChoiceOf("MISSING"))
}

func TestBuildChoiceKindFallback(t *testing.T) {
	// Members without their own type inherit the choice's declared kind.
	table := buildTable(t, `
choice
	tristate "codec"

config RAW
	prompt "raw"

endchoice
`)
	raw, ok := table.Lookup("RAW")
	require.True(t, ok)
	assert.Equal(t, kconfig.KindTristate, raw.Kind)
}

func TestBuildUntypedSymbol(t *testing.T) {
	err := buildErr(t, "config A\n\tdefault y\n")
	assert.Contains(t, err.Error(), "has no type")
}

func TestBuildDuplicateSymbol(t *testing.T) {
	err := buildErr(t, `
config A
	bool "first"

config A
	bool "second"
`)
	var dup *kconfig.DuplicateSymbolError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A", dup.Name)
	require.NotNil(t, dup.Source)
	assert.Equal(t, 5, dup.Source.Line)
}

func TestBuildUndefinedReference(t *testing.T) {
	err := buildErr(t, "config A\n\tbool \"a\"\n\tdepends on MISSING\n")
	var undef *kconfig.UndefinedSymbolError
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, "MISSING", undef.Name)
	assert.Equal(t, "A", undef.Ref)

	err = buildErr(t, "config A\n\tbool \"a\"\n\tselect MISSING\n")
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, "MISSING", undef.Name)

	err = buildErr(t, "config A\n\tbool \"a\"\n\tdefault y if MISSING\n")
	require.ErrorAs(t, err, &undef)
}

func TestBuildUnresolvedSource(t *testing.T) {
	err := buildErr(t, "source \"sub/Kconfig\"\n")
	assert.Contains(t, err.Error(), "unresolved source")
}
