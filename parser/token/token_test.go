// Copyright © 2026 The kconf authors

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyword(t *testing.T) {
	tests := []struct {
		word string
		typ  Type
	}{
		{"config", CONFIG},
		{"menuconfig", MENUCONFIG},
		{"choice", CHOICE},
		{"endchoice", ENDCHOICE},
		{"menu", MENU},
		{"endmenu", ENDMENU},
		{"if", IF},
		{"endif", ENDIF},
		{"source", SOURCE},
		{"comment", COMMENT},
		{"mainmenu", MAINMENU},
		{"bool", BOOL},
		{"tristate", TRISTATE},
		{"string", STRING_TYPE},
		{"int", INT_TYPE},
		{"hex", HEX_TYPE},
		{"def_bool", DEF_BOOL},
		{"def_tristate", DEF_TRISTATE},
		{"prompt", PROMPT},
		{"default", DEFAULT},
		{"depends", DEPENDS},
		{"on", ON},
		{"select", SELECT},
		{"imply", IMPLY},
		{"optional", OPTIONAL},
		{"help", HELP},
		{"FOO", IDENT},
		{"y", IDENT},
		{"Config", IDENT}, // keywords are case sensitive
	}
	for _, test := range tests {
		assert.Equal(t, test.typ, Keyword(test.word), "word %q", test.word)
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "config", CONFIG.String())
	assert.Equal(t, "&&", AND.String())
	assert.Equal(t, "invalid", Type(numTokenTypes+1).String())
}

func TestTokenString(t *testing.T) {
	tok := &Token{Type: IDENT, Text: "FOO"}
	assert.Equal(t, "ident(FOO)", tok.String())
	tok = &Token{Type: EOF}
	assert.Equal(t, "EOF", tok.String())
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Location{File: "Kconfig", Pos: -1}, "Kconfig"},
		{Location{File: "Kconfig", Pos: 12}, "Kconfig[12]"},
		{Location{File: "Kconfig", Pos: 12, Line: 3}, "Kconfig:3"},
		{Location{File: "Kconfig", Pos: 12, Line: 3, Col: 7}, "Kconfig:3:7"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.loc.String())
	}
}
