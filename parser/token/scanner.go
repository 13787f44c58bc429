// Copyright © 2026 The kconf authors

package token

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from a byte stream (io.Reader).
// Kconfig sources are small so the scanner buffers the entire stream up front
// and tracks line numbers as runes are accepted.
type Scanner struct {
	file string
	path string

	buf     []byte
	readErr error

	start     int // start byte of the current token
	pos       int // byte offset of the next rune to scan
	line      int // line number at pos
	startLine int // line number at start
}

// NewScanner initializes and returns a new Scanner reading from r.
func NewScanner(file string, r io.Reader) *Scanner {
	s := &Scanner{
		file:      file,
		line:      1,
		startLine: 1,
	}
	s.buf, s.readErr = io.ReadAll(r)
	return s
}

// SetPath associates a physical location (e.g. filesystem path) with s to aid
// in debugging projects which scan many ungrouped files.
func (s *Scanner) SetPath(path string) {
	s.path = path
}

// Err returns an error encountered reading the input stream.
func (s *Scanner) Err() error {
	return s.readErr
}

// EOF returns true once all input has been consumed.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.buf)
}

// Peek returns the next rune to be scanned, if there are any.
func (s *Scanner) Peek() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	c, n := utf8.DecodeRune(s.buf[s.pos:])
	if c == utf8.RuneError && n == 1 {
		return utf8.RuneError, false
	}
	return c, true
}

// Accept consumes the next rune when fn approves of it.
func (s *Scanner) Accept(fn func(rune) bool) bool {
	c, ok := s.Peek()
	if !ok || !fn(c) {
		return false
	}
	s.scan()
	return true
}

// AcceptRune consumes the next rune when it equals c.
func (s *Scanner) AcceptRune(c rune) bool {
	return s.Accept(func(peek rune) bool { return peek == c })
}

// AcceptAny consumes the next rune when charset contains it.
func (s *Scanner) AcceptAny(charset string) bool {
	return s.Accept(func(peek rune) bool { return strings.ContainsRune(charset, peek) })
}

// AcceptSeq consumes a maximal run of runes approved by fn and returns the
// length of the run.
func (s *Scanner) AcceptSeq(fn func(rune) bool) int {
	var n int
	for s.Accept(fn) {
		n++
	}
	return n
}

// AcceptString consumes the given literal in its entirety, or as much of a
// prefix as matches.
func (s *Scanner) AcceptString(literal string) (int, bool) {
	var n int
	for _, c := range literal {
		if !s.AcceptRune(c) {
			return n, false
		}
		n++
	}
	return n, true
}

func (s *Scanner) scan() {
	c, n := utf8.DecodeRune(s.buf[s.pos:])
	s.pos += n
	if c == '\n' {
		s.line++
	}
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return string(s.buf[s.start:s.pos])
}

// EmitToken returns a token containing the text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
	s.startLine = s.line
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Path: s.path,
		Line: s.startLine,
		Pos:  s.start,
	}
}

// Loc returns a Location referencing the current scanner position.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Path: s.path,
		Line: s.line,
		Pos:  s.pos,
	}
}

// ErrorToken wraps err in an ERROR token positioned at the scanner's current
// location.
func (s *Scanner) ErrorToken(err error) *Token {
	return &Token{
		Type:   ERROR,
		Text:   err.Error(),
		Source: s.LocStart(),
	}
}

func (s *Scanner) Errorf(format string, v ...interface{}) *Token {
	return s.ErrorToken(fmt.Errorf(format, v...))
}
