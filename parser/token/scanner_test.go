// Copyright © 2026 The kconf authors

package token

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerAccept(t *testing.T) {
	s := NewScanner("test", strings.NewReader("ab cd"))
	require.NoError(t, s.Err())
	n := s.AcceptSeq(unicode.IsLetter)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ab", s.Text())
	tok := s.EmitToken(IDENT)
	assert.Equal(t, "ab", tok.Text)
	assert.Equal(t, IDENT, tok.Type)

	assert.True(t, s.AcceptRune(' '))
	s.Ignore()
	assert.Equal(t, "", s.Text())

	s.AcceptSeq(unicode.IsLetter)
	tok = s.EmitToken(IDENT)
	assert.Equal(t, "cd", tok.Text)
	assert.True(t, s.EOF())
	assert.False(t, s.Accept(func(rune) bool { return true }))
}

func TestScannerLineTracking(t *testing.T) {
	s := NewScanner("test", strings.NewReader("a\nb\nc"))
	s.AcceptSeq(func(rune) bool { return true })
	assert.Equal(t, 3, s.Loc().Line)

	s = NewScanner("test", strings.NewReader("a\nb"))
	s.AcceptRune('a')
	s.EmitToken(IDENT)
	s.AcceptRune('\n')
	s.Ignore()
	s.AcceptRune('b')
	tok := s.EmitToken(IDENT)
	assert.Equal(t, 2, tok.Source.Line)
	assert.Equal(t, "test", tok.Source.File)
}

func TestScannerAcceptString(t *testing.T) {
	s := NewScanner("test", strings.NewReader("endmenu"))
	n, ok := s.AcceptString("endmenu")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	s = NewScanner("test", strings.NewReader("endchoice"))
	n, ok = s.AcceptString("endmenu")
	assert.False(t, ok)
	assert.Equal(t, 3, n) // "end" matched before divergence
}

func TestScannerPeek(t *testing.T) {
	s := NewScanner("test", strings.NewReader("x"))
	c, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'x', c)
	// Peek does not consume.
	c, ok = s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'x', c)
	s.AcceptRune('x')
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestScannerSetPath(t *testing.T) {
	s := NewScanner("Kconfig", strings.NewReader("x"))
	s.SetPath("/src/Kconfig")
	s.AcceptRune('x')
	tok := s.EmitToken(IDENT)
	assert.Equal(t, "Kconfig", tok.Source.File)
	assert.Equal(t, "/src/Kconfig", tok.Source.Path)
}
