// Copyright © 2026 The kconf authors

package token

import "fmt"

// Source is an abstract stream of tokens which allows one token lookahead.
type Source interface {
	// Token returns the current token.  Token returns nil if Scan has not been
	// called.
	Token() *Token
	// Peek returns the next token in the stream.  At the end of the stream
	// Peek should return a value to indicate the lack of a token (EOF).
	Peek() *Token
	// Scan advances the token stream if possible.  If there are no tokens
	// remaining Scan returns false.
	Scan() bool
}

type Token struct {
	Type   Type
	Text   string
	Source *Location
}

func (tok *Token) String() string {
	if tok.Text == "" {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s(%s)", tok.Type, tok.Text)
}

type Type uint

// Type constants used by the kconf lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	NEWLINE

	// Words & literals
	IDENT
	STRING
	HELP_TEXT

	// Directive keywords
	MAINMENU
	CONFIG
	MENUCONFIG
	CHOICE
	ENDCHOICE
	MENU
	ENDMENU
	IF
	ENDIF
	SOURCE
	COMMENT

	// Property keywords
	BOOL
	TRISTATE
	STRING_TYPE
	INT_TYPE
	HEX_TYPE
	DEF_BOOL
	DEF_TRISTATE
	PROMPT
	DEFAULT
	DEPENDS
	ON
	SELECT
	IMPLY
	OPTIONAL
	HELP

	// Expression operators
	AND
	OR
	NOT
	EQUAL
	UNEQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	PAREN_L
	PAREN_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:       "invalid",
		ERROR:         "error",
		EOF:           "EOF",
		NEWLINE:       "newline",
		IDENT:         "ident",
		STRING:        "string",
		HELP_TEXT:     "help-text",
		MAINMENU:      "mainmenu",
		CONFIG:        "config",
		MENUCONFIG:    "menuconfig",
		CHOICE:        "choice",
		ENDCHOICE:     "endchoice",
		MENU:          "menu",
		ENDMENU:       "endmenu",
		IF:            "if",
		ENDIF:         "endif",
		SOURCE:        "source",
		COMMENT:       "comment",
		BOOL:          "bool",
		TRISTATE:      "tristate",
		STRING_TYPE:   "string-type",
		INT_TYPE:      "int",
		HEX_TYPE:      "hex",
		DEF_BOOL:      "def_bool",
		DEF_TRISTATE:  "def_tristate",
		PROMPT:        "prompt",
		DEFAULT:       "default",
		DEPENDS:       "depends",
		ON:            "on",
		SELECT:        "select",
		IMPLY:         "imply",
		OPTIONAL:      "optional",
		HELP:          "help",
		AND:           "&&",
		OR:            "||",
		NOT:           "!",
		EQUAL:         "=",
		UNEQUAL:       "!=",
		LESS:          "<",
		LESS_EQUAL:    "<=",
		GREATER:       ">",
		GREATER_EQUAL: ">=",
		PAREN_L:       "(",
		PAREN_R:       ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Keyword maps a word to its keyword token type.  Words which are not
// directive or property keywords map to IDENT.
func Keyword(word string) Type {
	typ, ok := keywords[word]
	if !ok {
		return IDENT
	}
	return typ
}

var keywords = map[string]Type{
	"mainmenu":     MAINMENU,
	"config":       CONFIG,
	"menuconfig":   MENUCONFIG,
	"choice":       CHOICE,
	"endchoice":    ENDCHOICE,
	"menu":         MENU,
	"endmenu":      ENDMENU,
	"if":           IF,
	"endif":        ENDIF,
	"source":       SOURCE,
	"comment":      COMMENT,
	"bool":         BOOL,
	"tristate":     TRISTATE,
	"string":       STRING_TYPE,
	"int":          INT_TYPE,
	"hex":          HEX_TYPE,
	"def_bool":     DEF_BOOL,
	"def_tristate": DEF_TRISTATE,
	"prompt":       PROMPT,
	"default":      DEFAULT,
	"depends":      DEPENDS,
	"on":           ON,
	"select":       SELECT,
	"imply":        IMPLY,
	"optional":     OPTIONAL,
	"help":         HELP,
}

type Location struct {
	File string // a name representing the source stream
	Path string // a physical location which may differ from File
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Pos < 0:
		return loc.File
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}

type LocationError struct {
	Err    error
	Source *Location
}

func (err *LocationError) Error() string {
	return fmt.Sprintf("%s: %s", err.Source, err.Err)
}

func (err *LocationError) Unwrap() error {
	return err.Err
}
