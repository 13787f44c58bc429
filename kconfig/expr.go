// Copyright © 2026 The kconf authors

package kconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is a node in the dependency expression tree.  The variant set is
// closed; evaluation dispatches by structural recursion over the concrete
// types below.
type Expr interface {
	exprNode()
	String() string
}

// SymbolRef references a symbol by name.  References are checked against the
// symbol table when it is built, so evaluation of an unresolvable reference
// indicates an internal error.
type SymbolRef struct {
	Name string
}

// Literal is a constant operand: a tristate token (y/m/n, matched
// case-insensitively), or a string/numeric constant.
type Literal struct {
	Text string
}

type Not struct {
	X Expr
}

type And struct {
	X, Y Expr
}

type Or struct {
	X, Y Expr
}

// CompareOp enumerates the comparison operators.
type CompareOp int

const (
	OpEqual CompareOp = iota
	OpUnequal
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

func (op CompareOp) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpUnequal:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	}
	return "?"
}

type Compare struct {
	Op   CompareOp
	X, Y Expr
}

func (*SymbolRef) exprNode() {}
func (*Literal) exprNode()   {}
func (*Not) exprNode()       {}
func (*And) exprNode()       {}
func (*Or) exprNode()        {}
func (*Compare) exprNode()   {}

func (e *SymbolRef) String() string { return e.Name }

func (e *Literal) String() string {
	if _, ok := ParseTristate(e.Text); ok {
		return e.Text
	}
	if _, ok := parseNumber(e.Text); ok {
		return e.Text
	}
	return strconv.Quote(e.Text)
}

func (e *Not) String() string { return fmt.Sprintf("!%s", subString(e.X)) }

func (e *And) String() string {
	return fmt.Sprintf("%s && %s", subString(e.X), subString(e.Y))
}

func (e *Or) String() string {
	return fmt.Sprintf("%s || %s", subString(e.X), subString(e.Y))
}

func (e *Compare) String() string {
	return fmt.Sprintf("%s %s %s", subString(e.X), e.Op, subString(e.Y))
}

func subString(e Expr) string {
	switch e.(type) {
	case *And, *Or, *Compare:
		return fmt.Sprintf("(%s)", e)
	}
	return e.String()
}

// conjoin combines guards into a conjunction, treating nil as "always true".
func conjoin(a, b Expr) Expr {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &And{X: a, Y: b}
}

// Eval computes the tristate value of e against the table's current state.  A
// nil expression evaluates to y.  Evaluation is pure; it never mutates the
// table.  Unresolvable symbol references evaluate through a zero-valued
// symbol, a state the builder is responsible for making unreachable.
func (t *SymbolTable) Eval(e Expr) Tristate {
	if e == nil {
		return Yes
	}
	switch e := e.(type) {
	case *SymbolRef:
		sym, ok := t.Lookup(e.Name)
		if !ok {
			return No
		}
		return sym.Tristate()
	case *Literal:
		if tri, ok := ParseTristate(e.Text); ok {
			return tri
		}
		switch e.Text {
		case "", "0":
			return No
		}
		return Yes
	case *Not:
		return t.Eval(e.X).Not()
	case *And:
		return t.Eval(e.X).And(t.Eval(e.Y))
	case *Or:
		return t.Eval(e.X).Or(t.Eval(e.Y))
	case *Compare:
		return t.evalCompare(e)
	}
	panic(fmt.Sprintf("kconfig: unknown expression node %T", e))
}

// evalCompare compares the operands' textual values.  Tristate constants are
// matched case-insensitively, and relational operators fall back to string
// ordering when either operand is not numeric.  The result is always y or n,
// never m.
func (t *SymbolTable) evalCompare(e *Compare) Tristate {
	lhs := t.operandText(e.X)
	rhs := t.operandText(e.Y)

	var cmp int
	ln, lok := parseNumber(lhs)
	rn, rok := parseNumber(rhs)
	switch {
	case lok && rok:
		cmp = compareInts(ln, rn)
	case isTristateToken(lhs) || isTristateToken(rhs):
		cmp = strings.Compare(strings.ToLower(lhs), strings.ToLower(rhs))
	default:
		cmp = strings.Compare(lhs, rhs)
	}

	var res bool
	switch e.Op {
	case OpEqual:
		res = cmp == 0
	case OpUnequal:
		res = cmp != 0
	case OpLess:
		res = cmp < 0
	case OpLessEqual:
		res = cmp <= 0
	case OpGreater:
		res = cmp > 0
	case OpGreaterEqual:
		res = cmp >= 0
	}
	if res {
		return Yes
	}
	return No
}

func (t *SymbolTable) operandText(e Expr) string {
	switch e := e.(type) {
	case *SymbolRef:
		sym, ok := t.Lookup(e.Name)
		if !ok {
			return ""
		}
		return sym.Value()
	case *Literal:
		return e.Text
	default:
		return t.Eval(e).String()
	}
}

func isTristateToken(text string) bool {
	_, ok := ParseTristate(text)
	return ok
}

// parseNumber accepts decimal and 0x-prefixed hexadecimal text, the numeric
// forms int and hex symbols hold.
func parseNumber(text string) (int64, bool) {
	if text == "" {
		return 0, false
	}
	if digits, ok := trimHexPrefix(text); ok {
		n, err := strconv.ParseInt(digits, 16, 64)
		return n, err == nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	return n, err == nil
}

func trimHexPrefix(text string) (string, bool) {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "0x") {
		return lower[2:], true
	}
	return text, false
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// FalseLeaves walks e and reports the leaf symbol references which currently
// evaluate to n.  The list lets a caller present the specific unmet
// dependencies instead of the whole boolean expression.
func (t *SymbolTable) FalseLeaves(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch e := e.(type) {
		case *SymbolRef:
			if !seen[e.Name] && t.Eval(e) == No {
				seen[e.Name] = true
				names = append(names, e.Name)
			}
		case *Not:
			walk(e.X)
		case *And:
			walk(e.X)
			walk(e.Y)
		case *Or:
			walk(e.X)
			walk(e.Y)
		case *Compare:
			walk(e.X)
			walk(e.Y)
		}
	}
	walk(e)
	return names
}
