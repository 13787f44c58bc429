// Copyright © 2026 The kconf authors

package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kbuildtools/kconf/parser/token"
)

type LexFn func(*Lexer) []*token.Token

const wordRunes = "_-./"

// tabWidth is the tabstop used when measuring help text indentation.
const tabWidth = 8

// Lexer splits Kconfig source text into tokens.  Newlines are significant and
// emitted as tokens because every directive and property is line oriented.  A
// backslash immediately preceding a newline continues the logical line.  Text
// from '#' through the end of line is discarded as a comment.  After a help
// keyword the lexer switches states and captures the following indented block
// verbatim as a single HELP_TEXT token.
type Lexer struct {
	scanner *token.Scanner
	lex     LexFn
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{
		scanner: s,
		lex:     (*Lexer).readToken,
	}
}

func (lex *Lexer) ReadToken() []*token.Token {
	return lex.lex(lex)
}

func (lex *Lexer) resetState() {
	lex.lex = (*Lexer).readToken
}

func (lex *Lexer) readToken() []*token.Token {
	if toks := lex.skipInsignificant(); toks != nil {
		return toks
	}
	if lex.scanner.EOF() {
		if err := lex.scanner.Err(); err != nil {
			return lex.emitError(err)
		}
		return lex.emit(token.EOF, "")
	}
	switch {
	case lex.scanner.AcceptRune('\n'):
		return lex.emitText(token.NEWLINE)
	case lex.scanner.AcceptRune('('):
		return lex.emitText(token.PAREN_L)
	case lex.scanner.AcceptRune(')'):
		return lex.emitText(token.PAREN_R)
	case lex.scanner.AcceptRune('&'):
		if !lex.scanner.AcceptRune('&') {
			return lex.errorf("unexpected character %q following '&'", lex.peekRune())
		}
		return lex.emitText(token.AND)
	case lex.scanner.AcceptRune('|'):
		if !lex.scanner.AcceptRune('|') {
			return lex.errorf("unexpected character %q following '|'", lex.peekRune())
		}
		return lex.emitText(token.OR)
	case lex.scanner.AcceptRune('!'):
		if lex.scanner.AcceptRune('=') {
			return lex.emitText(token.UNEQUAL)
		}
		return lex.emitText(token.NOT)
	case lex.scanner.AcceptRune('='):
		return lex.emitText(token.EQUAL)
	case lex.scanner.AcceptRune('<'):
		if lex.scanner.AcceptRune('=') {
			return lex.emitText(token.LESS_EQUAL)
		}
		return lex.emitText(token.LESS)
	case lex.scanner.AcceptRune('>'):
		if lex.scanner.AcceptRune('=') {
			return lex.emitText(token.GREATER_EQUAL)
		}
		return lex.emitText(token.GREATER)
	case lex.scanner.AcceptAny(`"'`):
		return lex.readString()
	case lex.scanner.Accept(isWordStart):
		return lex.readWord()
	}
	return lex.errorf("unexpected character %q", lex.peekRune())
}

// skipInsignificant discards horizontal whitespace, comments, and
// backslash-newline continuations.  It returns a non-nil token slice only on
// a malformed continuation.
func (lex *Lexer) skipInsignificant() []*token.Token {
	for {
		lex.scanner.AcceptSeq(isBlank)
		switch {
		case lex.scanner.AcceptRune('\\'):
			if !lex.scanner.AcceptRune('\n') {
				return lex.errorf("unexpected character %q following line continuation", lex.peekRune())
			}
		case lex.scanner.AcceptRune('#'):
			lex.scanner.AcceptSeq(func(c rune) bool { return c != '\n' })
		default:
			lex.scanner.Ignore()
			return nil
		}
		lex.scanner.Ignore()
	}
}

func (lex *Lexer) readWord() []*token.Token {
	lex.scanner.AcceptSeq(isWord)
	word := lex.scanner.Text()
	typ := token.Keyword(word)
	if typ == token.HELP {
		lex.lex = (*Lexer).readHelpBlock
	}
	return lex.emitText(typ)
}

func (lex *Lexer) readString() []*token.Token {
	quote := rune(lex.scanner.Text()[0])
	var text strings.Builder
	for {
		lex.scanner.AcceptSeq(func(c rune) bool {
			return c != quote && c != '\\' && c != '\n'
		})
		text.WriteString(strings.TrimPrefix(lex.scanner.Text(), string(quote)))
		lex.scanner.Ignore()
		switch {
		case lex.scanner.AcceptRune(quote):
			lex.scanner.Ignore()
			return lex.emit(token.STRING, text.String())
		case lex.scanner.AcceptRune('\\'):
			lex.scanner.Ignore()
			if !lex.scanner.Accept(func(c rune) bool { return c != '\n' }) {
				return lex.errorf("unterminated string literal")
			}
			text.WriteString(lex.scanner.Text())
			lex.scanner.Ignore()
		default:
			return lex.errorf("unterminated string literal")
		}
	}
}

// readHelpBlock captures the indented block following a help keyword.  The
// indentation of the first non-blank line sets the block's margin; the block
// extends until the first non-blank line indented less than the margin.
// Interior indentation beyond the margin is preserved.
func (lex *Lexer) readHelpBlock() []*token.Token {
	lex.resetState()

	// The help keyword must end its line.
	lex.scanner.AcceptSeq(isBlank)
	if lex.scanner.AcceptRune('#') {
		lex.scanner.AcceptSeq(func(c rune) bool { return c != '\n' })
	}
	if !lex.scanner.AcceptRune('\n') {
		if lex.scanner.EOF() {
			return lex.emit(token.HELP_TEXT, "")
		}
		return lex.errorf("unexpected character %q following help", lex.peekRune())
	}
	lex.scanner.Ignore()

	loc := lex.scanner.LocStart()
	var lines []string
	margin := -1
	for !lex.scanner.EOF() {
		lex.scanner.AcceptSeq(isBlank)
		if lex.scanner.AcceptRune('\n') {
			lex.scanner.Ignore()
			lines = append(lines, "")
			continue
		}
		indent := indentWidth(lex.scanner.Text())
		if margin < 0 {
			if indent == 0 {
				break
			}
			margin = indent
		}
		if indent < margin {
			// The unconsumed whitespace is insignificant to the next
			// token so it is safe to leave behind.
			break
		}
		lex.scanner.Ignore()
		lex.scanner.AcceptSeq(func(c rune) bool { return c != '\n' })
		line := strings.Repeat(" ", indent-margin) + lex.scanner.Text()
		lex.scanner.AcceptRune('\n')
		lex.scanner.Ignore()
		lines = append(lines, line)
	}
	lex.scanner.Ignore()
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	tok := lex.emit(token.HELP_TEXT, strings.Join(lines, "\n"))
	tok[0].Source = loc
	return tok
}

func indentWidth(ws string) int {
	w := 0
	for _, c := range ws {
		if c == '\t' {
			w += tabWidth - w%tabWidth
		} else {
			w++
		}
	}
	return w
}

func (lex *Lexer) emit(typ token.Type, text string) []*token.Token {
	tok := []*token.Token{{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitText(typ token.Type) []*token.Token {
	return []*token.Token{lex.scanner.EmitToken(typ)}
}

func (lex *Lexer) emitError(err error) []*token.Token {
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) []*token.Token {
	return lex.emitError(fmt.Errorf(format, v...))
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func isBlank(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isWordStart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

func isWord(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || strings.ContainsRune(wordRunes, c)
}
