// Copyright © 2026 The kconf authors

// Package rdparser implements a recursive descent parser for the Kconfig
// configuration language with one token of lookahead.
package rdparser

import (
	"fmt"
	"io"

	"github.com/kbuildtools/kconf/kconfig"
	"github.com/kbuildtools/kconf/parser/token"
)

type reader struct{}

// NewReader returns a kconfig.Reader backed by this parser.
func NewReader() kconfig.Reader {
	return &reader{}
}

// Read implements kconfig.Reader.
func (*reader) Read(name string, r io.Reader) (*kconfig.File, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseFile(name)
}

// Parser is a Kconfig directive parser.
type Parser struct {
	src *TokenSource
}

// NewFromSource initializes and returns a Parser that reads tokens from src.
func NewFromSource(src *TokenSource) *Parser {
	return &Parser{src: src}
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	return NewFromSource(NewTokenSource(scanner))
}

// ParseFile parses a whole Kconfig stream into a directive tree.  Any syntax
// error, including a mismatched block terminator or an unknown directive, is
// fatal and reported with its source location.
func (p *Parser) ParseFile(name string) (*kconfig.File, error) {
	entries, err := p.parseEntries(token.EOF)
	if err != nil {
		return nil, err
	}
	return &kconfig.File{Name: name, Entries: entries}, nil
}

// parseEntries parses directives until the stop token (or EOF, which is an
// error when stop is a block terminator).  The stop token is left in the
// stream for the caller to consume.
func (p *Parser) parseEntries(stop token.Type) ([]kconfig.Entry, error) {
	var entries []kconfig.Entry
	for {
		p.skipBlankLines()
		next := p.src.Peek()
		if next.Type == stop {
			return entries, nil
		}
		switch next.Type {
		case token.EOF:
			return entries, nil
		case token.ERROR, token.INVALID:
			p.src.Scan()
			return nil, p.errorf(next.Source, "%s", next.Text)
		}
		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

func (p *Parser) parseEntry() (kconfig.Entry, error) {
	next := p.src.Peek()
	switch next.Type {
	case token.CONFIG, token.MENUCONFIG:
		return p.parseConfig()
	case token.CHOICE:
		return p.parseChoice()
	case token.MENU:
		return p.parseMenu()
	case token.IF:
		return p.parseIf()
	case token.SOURCE:
		return p.parseSource()
	case token.COMMENT:
		return p.parseComment()
	case token.MAINMENU:
		return p.parseMainMenu()
	case token.ENDMENU, token.ENDCHOICE, token.ENDIF:
		return nil, p.errorf(next.Source, "%s without matching block", next.Type)
	}
	return nil, p.errorf(next.Source, "unknown directive %s", next)
}

func (p *Parser) parseConfig() (*kconfig.Config, error) {
	p.src.Scan()
	tok := p.src.Token
	cfg := &kconfig.Config{
		EntryInfo:  kconfig.At(tok.Source),
		MenuConfig: tok.Type == token.MENUCONFIG,
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	cfg.Name = name.Text
	if err := p.lineEnd(); err != nil {
		return nil, err
	}
	return cfg, p.parseProperties(cfg)
}

// parseProperties consumes the property lines attached to a config entry.
// The property list ends at the first line that does not begin with a
// property keyword.
func (p *Parser) parseProperties(cfg *kconfig.Config) error {
	for {
		p.skipBlankLines()
		switch p.src.Peek().Type {
		case token.BOOL, token.TRISTATE, token.STRING_TYPE, token.INT_TYPE, token.HEX_TYPE:
			if err := p.parseType(cfg); err != nil {
				return err
			}
		case token.DEF_BOOL, token.DEF_TRISTATE:
			if err := p.parseDefType(cfg); err != nil {
				return err
			}
		case token.PROMPT:
			p.src.Scan()
			prompt, cond, err := p.parsePromptText()
			if err != nil {
				return err
			}
			cfg.Prompt = prompt
			cfg.PromptIf = cond
			if err := p.lineEnd(); err != nil {
				return err
			}
		case token.DEFAULT:
			p.src.Scan()
			def, err := p.parseDefault()
			if err != nil {
				return err
			}
			cfg.Defaults = append(cfg.Defaults, def)
		case token.DEPENDS:
			expr, err := p.parseDependsOn()
			if err != nil {
				return err
			}
			cfg.DependsOn = append(cfg.DependsOn, expr)
		case token.SELECT:
			edge, err := p.parseEdge()
			if err != nil {
				return err
			}
			cfg.Selects = append(cfg.Selects, edge)
		case token.IMPLY:
			edge, err := p.parseEdge()
			if err != nil {
				return err
			}
			cfg.Implies = append(cfg.Implies, edge)
		case token.HELP:
			help, err := p.parseHelp()
			if err != nil {
				return err
			}
			cfg.Help = help
		default:
			return nil
		}
	}
}

func (p *Parser) parseType(cfg *kconfig.Config) error {
	p.src.Scan()
	tok := p.src.Token
	kind := tokenKind(tok.Type)
	if cfg.Kind != kconfig.KindUnknown && cfg.Kind != kind {
		return p.errorf(tok.Source, "symbol %s redeclared as %s", cfg.Name, kind)
	}
	cfg.Kind = kind
	if p.src.Peek().Type == token.STRING {
		prompt, cond, err := p.parsePromptText()
		if err != nil {
			return err
		}
		cfg.Prompt = prompt
		cfg.PromptIf = cond
	}
	return p.lineEnd()
}

// parseDefType handles the def_bool/def_tristate sugar combining a type
// declaration with a default.
func (p *Parser) parseDefType(cfg *kconfig.Config) error {
	p.src.Scan()
	kind := kconfig.KindBool
	if p.src.Token.Type == token.DEF_TRISTATE {
		kind = kconfig.KindTristate
	}
	if cfg.Kind != kconfig.KindUnknown && cfg.Kind != kind {
		return p.errorf(p.src.Token.Source, "symbol %s redeclared as %s", cfg.Name, kind)
	}
	cfg.Kind = kind
	def, err := p.parseDefault()
	if err != nil {
		return err
	}
	cfg.Defaults = append(cfg.Defaults, def)
	return nil
}

// parsePromptText parses a quoted prompt with an optional trailing if guard.
func (p *Parser) parsePromptText() (string, kconfig.Expr, error) {
	tok, err := p.expect(token.STRING)
	if err != nil {
		return "", nil, err
	}
	cond, err := p.parseOptionalIf()
	if err != nil {
		return "", nil, err
	}
	return tok.Text, cond, nil
}

func (p *Parser) parseDefault() (kconfig.Default, error) {
	value, err := p.parseValue()
	if err != nil {
		return kconfig.Default{}, err
	}
	cond, err := p.parseOptionalIf()
	if err != nil {
		return kconfig.Default{}, err
	}
	if err := p.lineEnd(); err != nil {
		return kconfig.Default{}, err
	}
	return kconfig.Default{Value: value, Cond: cond}, nil
}

func (p *Parser) parseDependsOn() (kconfig.Expr, error) {
	p.src.Scan()
	if _, err := p.expect(token.ON); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return expr, p.lineEnd()
}

func (p *Parser) parseEdge() (kconfig.Edge, error) {
	p.src.Scan()
	target, err := p.expect(token.IDENT)
	if err != nil {
		return kconfig.Edge{}, err
	}
	cond, err := p.parseOptionalIf()
	if err != nil {
		return kconfig.Edge{}, err
	}
	if err := p.lineEnd(); err != nil {
		return kconfig.Edge{}, err
	}
	return kconfig.Edge{Target: target.Text, Cond: cond}, nil
}

func (p *Parser) parseHelp() (string, error) {
	p.src.Scan()
	tok, err := p.expect(token.HELP_TEXT)
	if err != nil {
		return "", err
	}
	return tok.Text, nil
}

func (p *Parser) parseChoice() (*kconfig.Choice, error) {
	p.src.Scan()
	choice := &kconfig.Choice{EntryInfo: kconfig.At(p.src.Token.Source)}
	opened := p.src.Token.Source
	if p.src.Peek().Type == token.IDENT {
		p.src.Scan()
		choice.Name = p.src.Token.Text
	}
	if err := p.lineEnd(); err != nil {
		return nil, err
	}

	for {
		p.skipBlankLines()
		switch p.src.Peek().Type {
		case token.BOOL, token.TRISTATE:
			p.src.Scan()
			choice.Kind = tokenKind(p.src.Token.Type)
			if p.src.Peek().Type == token.STRING {
				p.src.Scan()
				choice.Prompt = p.src.Token.Text
			}
			if err := p.lineEnd(); err != nil {
				return nil, err
			}
		case token.PROMPT:
			p.src.Scan()
			prompt, _, err := p.parsePromptText()
			if err != nil {
				return nil, err
			}
			choice.Prompt = prompt
			if err := p.lineEnd(); err != nil {
				return nil, err
			}
		case token.DEFAULT:
			p.src.Scan()
			def, err := p.parseDefault()
			if err != nil {
				return nil, err
			}
			choice.Defaults = append(choice.Defaults, def)
		case token.DEPENDS:
			expr, err := p.parseDependsOn()
			if err != nil {
				return nil, err
			}
			choice.DependsOn = append(choice.DependsOn, expr)
		case token.OPTIONAL:
			p.src.Scan()
			choice.Optional = true
			if err := p.lineEnd(); err != nil {
				return nil, err
			}
		case token.HELP:
			help, err := p.parseHelp()
			if err != nil {
				return nil, err
			}
			choice.Help = help
		default:
			entries, err := p.parseEntries(token.ENDCHOICE)
			if err != nil {
				return nil, err
			}
			choice.Entries = entries
			if !p.src.AcceptType(token.ENDCHOICE) {
				return nil, p.errorf(opened, "unterminated choice block: missing endchoice")
			}
			return choice, p.lineEnd()
		}
	}
}

func (p *Parser) parseMenu() (*kconfig.Menu, error) {
	p.src.Scan()
	menu := &kconfig.Menu{EntryInfo: kconfig.At(p.src.Token.Source)}
	opened := p.src.Token.Source
	prompt, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	menu.Prompt = prompt.Text
	if err := p.lineEnd(); err != nil {
		return nil, err
	}
	for {
		p.skipBlankLines()
		if p.src.Peek().Type != token.DEPENDS {
			break
		}
		expr, err := p.parseDependsOn()
		if err != nil {
			return nil, err
		}
		menu.DependsOn = append(menu.DependsOn, expr)
	}
	menu.Entries, err = p.parseEntries(token.ENDMENU)
	if err != nil {
		return nil, err
	}
	if !p.src.AcceptType(token.ENDMENU) {
		return nil, p.errorf(opened, "unterminated menu block: missing endmenu")
	}
	return menu, p.lineEnd()
}

func (p *Parser) parseIf() (*kconfig.If, error) {
	p.src.Scan()
	node := &kconfig.If{EntryInfo: kconfig.At(p.src.Token.Source)}
	opened := p.src.Token.Source
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	node.Cond = cond
	if err := p.lineEnd(); err != nil {
		return nil, err
	}
	node.Entries, err = p.parseEntries(token.ENDIF)
	if err != nil {
		return nil, err
	}
	if !p.src.AcceptType(token.ENDIF) {
		return nil, p.errorf(opened, "unterminated if block: missing endif")
	}
	return node, p.lineEnd()
}

func (p *Parser) parseSource() (*kconfig.Source, error) {
	p.src.Scan()
	node := &kconfig.Source{EntryInfo: kconfig.At(p.src.Token.Source)}
	path := p.src.Peek()
	if path.Type != token.STRING && path.Type != token.IDENT {
		return nil, p.errorf(path.Source, "source requires a file path, got %s", path)
	}
	p.src.Scan()
	node.Path = path.Text
	return node, p.lineEnd()
}

func (p *Parser) parseComment() (*kconfig.Comment, error) {
	p.src.Scan()
	node := &kconfig.Comment{EntryInfo: kconfig.At(p.src.Token.Source)}
	prompt, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	node.Prompt = prompt.Text
	if err := p.lineEnd(); err != nil {
		return nil, err
	}
	for {
		p.skipBlankLines()
		if p.src.Peek().Type != token.DEPENDS {
			return node, nil
		}
		expr, err := p.parseDependsOn()
		if err != nil {
			return nil, err
		}
		node.DependsOn = append(node.DependsOn, expr)
	}
}

func (p *Parser) parseMainMenu() (*kconfig.MainMenu, error) {
	p.src.Scan()
	node := &kconfig.MainMenu{EntryInfo: kconfig.At(p.src.Token.Source)}
	title, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	node.Title = title.Text
	return node, p.lineEnd()
}

// parseValue reads a default/def_bool value: a bare word or a quoted string.
func (p *Parser) parseValue() (string, error) {
	next := p.src.Peek()
	if next.Type != token.IDENT && next.Type != token.STRING {
		return "", p.errorf(next.Source, "expected a value, got %s", next)
	}
	p.src.Scan()
	return p.src.Token.Text, nil
}

// parseOptionalIf parses the trailing "if <expr>" guard permitted on
// prompts, defaults, selects, and implies.
func (p *Parser) parseOptionalIf() (kconfig.Expr, error) {
	if !p.src.AcceptType(token.IF) {
		return nil, nil
	}
	return p.parseExpr()
}

func (p *Parser) skipBlankLines() {
	for p.src.AcceptType(token.NEWLINE) {
	}
}

// lineEnd consumes the newline terminating a directive line.  EOF is an
// acceptable terminator for the final line of a file.
func (p *Parser) lineEnd() error {
	if p.src.AcceptType(token.NEWLINE) || p.src.IsEOF() {
		return nil
	}
	next := p.src.Peek()
	if next.Type == token.ERROR {
		return p.errorf(next.Source, "%s", next.Text)
	}
	return p.errorf(next.Source, "expected end of line, got %s", next)
}

func (p *Parser) expect(typ token.Type) (*token.Token, error) {
	next := p.src.Peek()
	if next.Type != typ {
		if next.Type == token.ERROR {
			return nil, p.errorf(next.Source, "%s", next.Text)
		}
		return nil, p.errorf(next.Source, "expected %s, got %s", typ, next)
	}
	p.src.Scan()
	return p.src.Token, nil
}

func (p *Parser) errorf(loc *token.Location, format string, v ...interface{}) error {
	return &token.LocationError{
		Err:    fmt.Errorf(format, v...),
		Source: loc,
	}
}

func tokenKind(typ token.Type) kconfig.Kind {
	switch typ {
	case token.BOOL:
		return kconfig.KindBool
	case token.TRISTATE:
		return kconfig.KindTristate
	case token.STRING_TYPE:
		return kconfig.KindString
	case token.INT_TYPE:
		return kconfig.KindInt
	case token.HEX_TYPE:
		return kconfig.KindHex
	}
	return kconfig.KindUnknown
}
