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

// buildTable parses src and builds its symbol table.
func buildTable(t *testing.T, src string) *kconfig.SymbolTable {
	t.Helper()
	file, err := parser.NewReader().Read("Kconfig", strings.NewReader(src))
	require.NoError(t, err)
	table, err := kconfig.Build(file)
	require.NoError(t, err)
	return table
}

// mustSet applies a value through a throwaway engine, failing the test on
// rejection.
func mustSet(t *testing.T, table *kconfig.SymbolTable, name, value string) {
	t.Helper()
	_, err := kconfig.NewEngine(table).Set(name, value)
	require.NoError(t, err, "set %s=%s", name, value)
}

func TestTristateOps(t *testing.T) {
	assert.Equal(t, kconfig.Module, kconfig.Yes.And(kconfig.Module))
	assert.Equal(t, kconfig.No, kconfig.Module.And(kconfig.No))
	assert.Equal(t, kconfig.Yes, kconfig.Module.Or(kconfig.Yes))
	assert.Equal(t, kconfig.Module, kconfig.No.Or(kconfig.Module))
	assert.Equal(t, kconfig.No, kconfig.Yes.Not())
	assert.Equal(t, kconfig.Yes, kconfig.No.Not())
	assert.Equal(t, kconfig.Module, kconfig.Module.Not())
}

func TestParseTristate(t *testing.T) {
	for text, want := range map[string]kconfig.Tristate{
		"y": kconfig.Yes, "Y": kconfig.Yes,
		"m": kconfig.Module, "M": kconfig.Module,
		"n": kconfig.No, "N": kconfig.No,
	} {
		got, ok := kconfig.ParseTristate(text)
		assert.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}
	_, ok := kconfig.ParseTristate("yes")
	assert.False(t, ok)
}

const evalSrc = `
config A
	tristate "a"

config B
	tristate "b"

config C
	bool "c"

config VERSION
	int "version"

config NAME
	string "name"
`

func evalTable(t *testing.T) *kconfig.SymbolTable {
	t.Helper()
	table := buildTable(t, evalSrc)
	mustSet(t, table, "A", "y")
	mustSet(t, table, "B", "m")
	mustSet(t, table, "VERSION", "10")
	mustSet(t, table, "NAME", "fred")
	return table
}

func sym(name string) kconfig.Expr { return &kconfig.SymbolRef{Name: name} }
func lit(text string) kconfig.Expr { return &kconfig.Literal{Text: text} }
func not(x kconfig.Expr) kconfig.Expr { return &kconfig.Not{X: x} }
func and(x, y kconfig.Expr) kconfig.Expr { return &kconfig.And{X: x, Y: y} }
func or(x, y kconfig.Expr) kconfig.Expr { return &kconfig.Or{X: x, Y: y} }

func cmp(op kconfig.CompareOp, x, y kconfig.Expr) kconfig.Expr {
	return &kconfig.Compare{Op: op, X: x, Y: y}
}

func TestEval(t *testing.T) {
	table := evalTable(t)
	tests := []struct {
		expr kconfig.Expr
		want kconfig.Tristate
	}{
		{nil, kconfig.Yes},
		{sym("A"), kconfig.Yes},
		{sym("B"), kconfig.Module},
		{sym("C"), kconfig.No},
		{sym("VERSION"), kconfig.Yes}, // non-zero value coerces to y
		{not(sym("A")), kconfig.No},
		{not(sym("B")), kconfig.Module},
		{not(sym("C")), kconfig.Yes},
		{and(sym("A"), sym("B")), kconfig.Module},
		{and(sym("B"), sym("C")), kconfig.No},
		{or(sym("B"), sym("C")), kconfig.Module},
		{or(sym("A"), sym("C")), kconfig.Yes},
		{lit("y"), kconfig.Yes},
		{lit("m"), kconfig.Module},
		{lit("n"), kconfig.No},
		{lit("0"), kconfig.No},
		{lit(""), kconfig.No},
		{lit("anything"), kconfig.Yes},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, table.Eval(test.expr), "expr %v", test.expr)
	}
}

func TestEvalCompare(t *testing.T) {
	table := evalTable(t)
	tests := []struct {
		expr kconfig.Expr
		want kconfig.Tristate
	}{
		{cmp(kconfig.OpEqual, sym("VERSION"), lit("10")), kconfig.Yes},
		{cmp(kconfig.OpEqual, sym("VERSION"), lit("0xA")), kconfig.Yes}, // numeric, not textual
		{cmp(kconfig.OpUnequal, sym("VERSION"), lit("10")), kconfig.No},
		{cmp(kconfig.OpGreater, sym("VERSION"), lit("9")), kconfig.Yes},
		{cmp(kconfig.OpLess, sym("VERSION"), lit("9")), kconfig.No},
		{cmp(kconfig.OpLessEqual, sym("VERSION"), lit("10")), kconfig.Yes},
		{cmp(kconfig.OpGreaterEqual, sym("VERSION"), lit("11")), kconfig.No},
		{cmp(kconfig.OpEqual, sym("NAME"), lit("fred")), kconfig.Yes},
		{cmp(kconfig.OpUnequal, sym("NAME"), lit("fred")), kconfig.No},
		{cmp(kconfig.OpLess, lit("apple"), lit("banana")), kconfig.Yes}, // string ordering
		{cmp(kconfig.OpEqual, sym("A"), lit("y")), kconfig.Yes},
		{cmp(kconfig.OpEqual, sym("B"), lit("m")), kconfig.Yes},
		{cmp(kconfig.OpEqual, sym("C"), lit("n")), kconfig.Yes},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, table.Eval(test.expr), "expr %v", test.expr)
	}
}

func TestFalseLeaves(t *testing.T) {
	table := evalTable(t)
	expr := and(sym("A"), and(sym("C"), or(sym("C"), not(sym("B")))))
	assert.Equal(t, []string{"C"}, table.FalseLeaves(expr))

	expr = and(sym("A"), sym("B"))
	assert.Empty(t, table.FalseLeaves(expr))
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr kconfig.Expr
		want string
	}{
		{and(sym("A"), or(sym("B"), sym("C"))), "A && (B || C)"},
		{not(and(sym("A"), sym("B"))), "!(A && B)"},
		{cmp(kconfig.OpGreaterEqual, sym("VERSION"), lit("10")), "VERSION >= 10"},
		{cmp(kconfig.OpEqual, sym("NAME"), lit("fred")), `NAME = "fred"`},
		{or(lit("m"), sym("A")), "m || A"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.expr.String())
	}
}
