// Copyright © 2026 The kconf authors

package rdparser

import (
	"strconv"
	"strings"

	"github.com/kbuildtools/kconf/kconfig"
	"github.com/kbuildtools/kconf/parser/token"
)

// Expression grammar, loosest binding first:
//
//	expr    := and { '||' and }
//	and     := not { '&&' not }
//	not     := '!' not | compare
//	compare := primary [ ( '=' | '!=' | '<' | '<=' | '>' | '>=' ) primary ]
//	primary := '(' expr ')' | word | string
//
// Bare words are symbol references unless they match a tristate constant
// (case-insensitive) or parse as a number, in which case they are literals.
func (p *Parser) parseExpr() (kconfig.Expr, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.src.AcceptType(token.OR) {
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &kconfig.Or{X: lhs, Y: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (kconfig.Expr, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.src.AcceptType(token.AND) {
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &kconfig.And{X: lhs, Y: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseNot() (kconfig.Expr, error) {
	if p.src.AcceptType(token.NOT) {
		x, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &kconfig.Not{X: x}, nil
	}
	return p.parseCompare()
}

func (p *Parser) parseCompare() (kconfig.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	op, ok := compareOp(p.src.Peek().Type)
	if !ok {
		return lhs, nil
	}
	p.src.Scan()
	rhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &kconfig.Compare{Op: op, X: lhs, Y: rhs}, nil
}

func (p *Parser) parsePrimary() (kconfig.Expr, error) {
	next := p.src.Peek()
	switch next.Type {
	case token.PAREN_L:
		p.src.Scan()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.PAREN_R); err != nil {
			return nil, err
		}
		return inner, nil
	case token.STRING:
		p.src.Scan()
		return &kconfig.Literal{Text: p.src.Token.Text}, nil
	case token.IDENT:
		p.src.Scan()
		return wordExpr(p.src.Token.Text), nil
	}
	return nil, p.errorf(next.Source, "expected an expression, got %s", next)
}

func wordExpr(word string) kconfig.Expr {
	if _, ok := kconfig.ParseTristate(word); ok {
		return &kconfig.Literal{Text: word}
	}
	if isNumber(word) {
		return &kconfig.Literal{Text: word}
	}
	return &kconfig.SymbolRef{Name: word}
}

func isNumber(word string) bool {
	lower := strings.ToLower(word)
	if strings.HasPrefix(lower, "0x") {
		_, err := strconv.ParseUint(lower[2:], 16, 64)
		return err == nil
	}
	_, err := strconv.ParseInt(word, 10, 64)
	return err == nil
}

func compareOp(typ token.Type) (kconfig.CompareOp, bool) {
	switch typ {
	case token.EQUAL:
		return kconfig.OpEqual, true
	case token.UNEQUAL:
		return kconfig.OpUnequal, true
	case token.LESS:
		return kconfig.OpLess, true
	case token.LESS_EQUAL:
		return kconfig.OpLessEqual, true
	case token.GREATER:
		return kconfig.OpGreater, true
	case token.GREATER_EQUAL:
		return kconfig.OpGreaterEqual, true
	}
	return 0, false
}
