// Copyright © 2026 The kconf authors

package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbuildtools/kconf/parser/token"
)

// lexAll drains the lexer, returning every token up to and including the
// first EOF or ERROR token.
func lexAll(t *testing.T, src string) []*token.Token {
	t.Helper()
	lex := New(token.NewScanner("test", strings.NewReader(src)))
	var tokens []*token.Token
	for i := 0; i < 1000; i++ {
		toks := lex.ReadToken()
		require.NotEmpty(t, toks)
		tokens = append(tokens, toks...)
		last := toks[len(toks)-1]
		if last.Type == token.EOF || last.Type == token.ERROR {
			return tokens
		}
	}
	t.Fatal("lexer did not terminate")
	return nil
}

type expectTok struct {
	typ  token.Type
	text string
}

func assertTokens(t *testing.T, src string, want []expectTok) {
	t.Helper()
	tokens := lexAll(t, src)
	require.Len(t, tokens, len(want))
	for i, w := range tokens {
		assert.Equal(t, want[i].typ, w.Type, "token %d: %s", i, w)
		assert.Equal(t, want[i].text, w.Text, "token %d: %s", i, w)
	}
}

func TestLexConfig(t *testing.T) {
	assertTokens(t, "config FOO\n\tbool \"enable foo\"\n", []expectTok{
		{token.CONFIG, "config"},
		{token.IDENT, "FOO"},
		{token.NEWLINE, "\n"},
		{token.BOOL, "bool"},
		{token.STRING, "enable foo"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	})
}

func TestLexOperators(t *testing.T) {
	assertTokens(t, "A && !B || (C != y) && D <= 0x1F\n", []expectTok{
		{token.IDENT, "A"},
		{token.AND, "&&"},
		{token.NOT, "!"},
		{token.IDENT, "B"},
		{token.OR, "||"},
		{token.PAREN_L, "("},
		{token.IDENT, "C"},
		{token.UNEQUAL, "!="},
		{token.IDENT, "y"},
		{token.PAREN_R, ")"},
		{token.AND, "&&"},
		{token.IDENT, "D"},
		{token.LESS_EQUAL, "<="},
		{token.IDENT, "0x1F"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	})
}

func TestLexComments(t *testing.T) {
	// Text from '#' to end of line is discarded; the newline survives.
	assertTokens(t, "# a file comment\nconfig FOO # trailing\n", []expectTok{
		{token.NEWLINE, "\n"},
		{token.CONFIG, "config"},
		{token.IDENT, "FOO"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	})
}

func TestLexLineContinuation(t *testing.T) {
	assertTokens(t, "depends on A && \\\n\tB\n", []expectTok{
		{token.DEPENDS, "depends"},
		{token.ON, "on"},
		{token.IDENT, "A"},
		{token.AND, "&&"},
		{token.IDENT, "B"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	})
}

func TestLexStrings(t *testing.T) {
	assertTokens(t, `prompt "a \"quoted\" word"`+"\n", []expectTok{
		{token.PROMPT, "prompt"},
		{token.STRING, `a "quoted" word`},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	})
	assertTokens(t, "default 'single'\n", []expectTok{
		{token.DEFAULT, "default"},
		{token.STRING, "single"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	})
}

func TestLexUnterminatedString(t *testing.T) {
	tokens := lexAll(t, "prompt \"no closing quote\n")
	last := tokens[len(tokens)-1]
	assert.Equal(t, token.ERROR, last.Type)
	assert.Contains(t, last.Text, "unterminated string")
}

func TestLexBadOperator(t *testing.T) {
	tokens := lexAll(t, "A & B\n")
	last := tokens[len(tokens)-1]
	assert.Equal(t, token.ERROR, last.Type)
}

func TestLexHelpBlock(t *testing.T) {
	src := "config FOO\n" +
		"\tbool \"foo\"\n" +
		"\thelp\n" +
		"\t  First line.\n" +
		"\t    Indented more.\n" +
		"\n" +
		"\t  After blank.\n" +
		"config BAR\n"
	tokens := lexAll(t, src)
	var help *token.Token
	for _, tok := range tokens {
		if tok.Type == token.HELP_TEXT {
			help = tok
		}
	}
	require.NotNil(t, help)
	assert.Equal(t, "First line.\n  Indented more.\n\nAfter blank.", help.Text)
	// Lexing resumes cleanly at the dedented directive.
	assert.Equal(t, token.CONFIG, tokens[len(tokens)-4].Type)
	assert.Equal(t, token.IDENT, tokens[len(tokens)-3].Type)
}

func TestLexHelpBlockTrailingBlanks(t *testing.T) {
	src := "help\n" +
		"  text\n" +
		"\n" +
		"\n"
	tokens := lexAll(t, src)
	var help *token.Token
	for _, tok := range tokens {
		if tok.Type == token.HELP_TEXT {
			help = tok
		}
	}
	require.NotNil(t, help)
	assert.Equal(t, "text", help.Text)
}

func TestLexHelpAtEOF(t *testing.T) {
	tokens := lexAll(t, "help")
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, token.HELP, tokens[0].Type)
	assert.Equal(t, token.HELP_TEXT, tokens[1].Type)
	assert.Equal(t, "", tokens[1].Text)
}

func TestLexLocations(t *testing.T) {
	tokens := lexAll(t, "config FOO\nconfig BAR\n")
	require.Len(t, tokens, 7)
	assert.Equal(t, 1, tokens[0].Source.Line)
	assert.Equal(t, 2, tokens[3].Source.Line)
	assert.Equal(t, "test", tokens[3].Source.File)
}
