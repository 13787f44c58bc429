// Copyright © 2026 The kconf authors

package kconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Tristate is the three valued domain of bool and tristate symbols, ordered
// No < Module < Yes.
type Tristate int

const (
	No Tristate = iota
	Module
	Yes
)

func (t Tristate) String() string {
	switch t {
	case Module:
		return "m"
	case Yes:
		return "y"
	default:
		return "n"
	}
}

// ParseTristate matches the constant tokens y, m, and n case-insensitively.
func ParseTristate(text string) (Tristate, bool) {
	switch strings.ToLower(text) {
	case "y":
		return Yes, true
	case "m":
		return Module, true
	case "n":
		return No, true
	}
	return No, false
}

// And is the meet of two tristates (min).
func (t Tristate) And(u Tristate) Tristate {
	if u < t {
		return u
	}
	return t
}

// Or is the join of two tristates (max).
func (t Tristate) Or(u Tristate) Tristate {
	if u > t {
		return u
	}
	return t
}

// Not swaps y and n while m remains m.
func (t Tristate) Not() Tristate {
	switch t {
	case Yes:
		return No
	case No:
		return Yes
	default:
		return Module
	}
}

// Kind enumerates the value domains a symbol may have.
type Kind int

const (
	KindUnknown Kind = iota
	KindBool
	KindTristate
	KindString
	KindInt
	KindHex
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindTristate:
		return "tristate"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindHex:
		return "hex"
	default:
		return "unknown"
	}
}

// IsValueKind returns true for kinds holding raw text rather than a tristate.
func (k Kind) IsValueKind() bool {
	switch k {
	case KindString, KindInt, KindHex:
		return true
	}
	return false
}

// Default is an ordered (value, guard) pair; the first default whose guard
// evaluates true supplies the symbol's configured value.
type Default struct {
	Value string
	Cond  Expr
}

// Edge is a guarded select or imply relation to a target symbol.
type Edge struct {
	Target string
	Cond   Expr
}

// Symbol is one configuration option.  A symbol with no prompt is not user
// visible.  The current value is mutated exclusively through Engine.Set; all
// other components read it through the owning SymbolTable.
type Symbol struct {
	Name     string
	Kind     Kind
	Prompt   string
	PromptIf Expr
	Help     string

	Defaults  []Default
	DependsOn Expr // nil when unconditional
	Selects   []Edge
	Implies   []Edge

	// Choice names the owning choice group, when the symbol is a member.
	Choice string

	tri  Tristate
	text string
}

// Tristate returns the symbol's current value coerced to a tristate.  Value
// kinds coerce to y when non-empty and non-zero, else n.
func (s *Symbol) Tristate() Tristate {
	if !s.Kind.IsValueKind() {
		return s.tri
	}
	switch s.text {
	case "", "0", "0x0":
		return No
	}
	return Yes
}

// Text returns the raw text value of a string/int/hex symbol.
func (s *Symbol) Text() string {
	return s.text
}

// Value returns the serialized current value: y/m/n for bool and tristate
// symbols, raw text otherwise.
func (s *Symbol) Value() string {
	if s.Kind.IsValueKind() {
		return s.text
	}
	return s.tri.String()
}

// Visible reports whether the symbol carries a prompt, making it user
// editable.
func (s *Symbol) Visible() bool {
	return s.Prompt != ""
}

// normalizeValue validates text against the symbol's kind and returns the
// canonical form to commit.
func (s *Symbol) normalizeValue(text string) (string, error) {
	switch s.Kind {
	case KindBool:
		tri, ok := ParseTristate(text)
		if !ok || tri == Module {
			return "", &InvalidValueError{Symbol: s.Name, Kind: s.Kind, Value: text}
		}
		return tri.String(), nil
	case KindTristate:
		tri, ok := ParseTristate(text)
		if !ok {
			return "", &InvalidValueError{Symbol: s.Name, Kind: s.Kind, Value: text}
		}
		return tri.String(), nil
	case KindString:
		return text, nil
	case KindInt:
		if text == "" {
			return "", nil
		}
		if _, err := strconv.ParseInt(text, 10, 64); err != nil {
			return "", &InvalidValueError{Symbol: s.Name, Kind: s.Kind, Value: text}
		}
		return text, nil
	case KindHex:
		if text == "" {
			return "", nil
		}
		digits := strings.TrimPrefix(strings.ToLower(text), "0x")
		if _, err := strconv.ParseUint(digits, 16, 64); err != nil {
			return "", &InvalidValueError{Symbol: s.Name, Kind: s.Kind, Value: text}
		}
		return text, nil
	}
	return "", fmt.Errorf("symbol %s has no type", s.Name)
}

func (s *Symbol) setValue(canonical string) {
	if s.Kind.IsValueKind() {
		s.text = canonical
		return
	}
	tri, _ := ParseTristate(canonical)
	s.tri = tri
}
