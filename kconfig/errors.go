// Copyright © 2026 The kconf authors

package kconfig

import (
	"fmt"
	"strings"

	"github.com/kbuildtools/kconf/parser/token"
)

// Load-time errors (SourceCycleError, DuplicateSymbolError,
// UndefinedSymbolError from the builder, and parse errors carried as
// token.LocationError) are fatal: no symbol table is exposed when any occurs.
// Request-time errors (DependencyUnmetError, SelectedByError,
// ChoiceExclusivityError, InvalidValueError) reject a single Set call and
// leave the table untouched.

// SourceCycleError reports a source directive whose target is already being
// included.  Chain holds the full inclusion chain ending in the repeated
// file.
type SourceCycleError struct {
	Chain []string
}

func (err *SourceCycleError) Error() string {
	return fmt.Sprintf("source cycle: %s", strings.Join(err.Chain, " -> "))
}

// DuplicateSymbolError reports a symbol defined more than once in the
// resolved tree.
type DuplicateSymbolError struct {
	Name   string
	Source *token.Location
}

func (err *DuplicateSymbolError) Error() string {
	if err.Source != nil {
		return fmt.Sprintf("%s: symbol %s redefined", err.Source, err.Name)
	}
	return fmt.Sprintf("symbol %s redefined", err.Name)
}

// UndefinedSymbolError reports a reference to a symbol never defined anywhere
// in the resolved tree.  The builder raises it for depends/select/imply
// references; the engine raises it defensively for unknown Set targets.
type UndefinedSymbolError struct {
	Name string
	// Ref names the symbol whose properties contain the dangling reference,
	// when known.
	Ref    string
	Source *token.Location
}

func (err *UndefinedSymbolError) Error() string {
	msg := fmt.Sprintf("undefined symbol %s", err.Name)
	if err.Ref != "" {
		msg = fmt.Sprintf("%s (referenced by %s)", msg, err.Ref)
	}
	if err.Source != nil {
		return fmt.Sprintf("%s: %s", err.Source, msg)
	}
	return msg
}

// DependencyUnmetError rejects enabling a symbol whose depends expression
// evaluates below the required threshold.  Unmet lists the leaf references
// currently evaluating false.
type DependencyUnmetError struct {
	Symbol string
	Expr   Expr
	Unmet  []string
}

func (err *DependencyUnmetError) Error() string {
	if len(err.Unmet) > 0 {
		return fmt.Sprintf("%s depends on %s: unmet dependencies: %s",
			err.Symbol, err.Expr, strings.Join(err.Unmet, ", "))
	}
	return fmt.Sprintf("%s depends on %s", err.Symbol, err.Expr)
}

// SelectedByError rejects disabling a symbol still forced on by enabled
// selectors.
type SelectedByError struct {
	Symbol    string
	Selectors []string
}

func (err *SelectedByError) Error() string {
	return fmt.Sprintf("%s is selected by %s", err.Symbol, strings.Join(err.Selectors, ", "))
}

// ChoiceExclusivityError rejects setting a second member of a choice group to
// y.
type ChoiceExclusivityError struct {
	Symbol   string
	Conflict string
	Choice   string
}

func (err *ChoiceExclusivityError) Error() string {
	return fmt.Sprintf("%s conflicts with %s in choice %s", err.Symbol, err.Conflict, err.Choice)
}

// InvalidValueError rejects a value which is not well formed for the
// symbol's kind.
type InvalidValueError struct {
	Symbol string
	Kind   Kind
	Value  string
}

func (err *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q for symbol %s", err.Kind, err.Value, err.Symbol)
}
