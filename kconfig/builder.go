// Copyright © 2026 The kconf authors

package kconfig

import "fmt"

// Build walks a resolved directive tree once and produces the authoritative
// symbol table.  Enclosing if and menu guards are conjoined into each
// symbol's depends expression and into the guards of its default, select,
// and imply properties, so an included file's symbols inherit the context
// they were spliced into.  All symbol references are checked here; a
// reference to a symbol never defined anywhere in the tree is a fatal
// configuration error rather than something discovered lazily during
// evaluation.
func Build(file *File) (*SymbolTable, error) {
	b := &builder{table: newSymbolTable()}
	if err := b.walk(file.Entries, nil, nil); err != nil {
		return nil, err
	}
	if err := b.check(); err != nil {
		return nil, err
	}
	return b.table, nil
}

type builder struct {
	table      *SymbolTable
	numChoices int
}

// walk visits entries under the given guard expression.  choice is non-nil
// while visiting the members of a choice block.
func (b *builder) walk(entries []Entry, guard Expr, choice *choiceCtx) error {
	for _, e := range entries {
		switch e := e.(type) {
		case *Config:
			if err := b.addConfig(e, guard, choice); err != nil {
				return err
			}
		case *Menu:
			inner := conjoin(guard, conjoinAll(e.DependsOn))
			if err := b.walk(e.Entries, inner, choice); err != nil {
				return err
			}
		case *If:
			if err := b.walk(e.Entries, conjoin(guard, e.Cond), choice); err != nil {
				return err
			}
		case *Choice:
			if err := b.addChoice(e, guard); err != nil {
				return err
			}
		case *Source:
			return fmt.Errorf("%s: unresolved source directive %q", e.Loc(), e.Path)
		case *MainMenu:
			b.table.MainMenu = e.Title
		case *Comment:
			// Comments carry no configuration state.
		default:
			return fmt.Errorf("%s: unknown directive node %T", e.Loc(), e)
		}
	}
	return nil
}

type choiceCtx struct {
	group *ChoiceGroup
	kind  Kind
}

func (b *builder) addConfig(e *Config, guard Expr, choice *choiceCtx) error {
	kind := e.Kind
	if kind == KindUnknown && choice != nil {
		kind = choice.kind
	}
	if kind == KindUnknown {
		return fmt.Errorf("%s: symbol %s has no type", e.Loc(), e.Name)
	}

	deps := conjoin(guard, conjoinAll(e.DependsOn))
	sym := &Symbol{
		Name:      e.Name,
		Kind:      kind,
		Prompt:    e.Prompt,
		PromptIf:  conjoin(guard, e.PromptIf),
		Help:      e.Help,
		DependsOn: deps,
	}
	for _, def := range e.Defaults {
		sym.Defaults = append(sym.Defaults, Default{
			Value: def.Value,
			Cond:  conjoin(guard, def.Cond),
		})
	}
	for _, edge := range e.Selects {
		sym.Selects = append(sym.Selects, Edge{
			Target: edge.Target,
			Cond:   conjoin(guard, edge.Cond),
		})
	}
	for _, edge := range e.Implies {
		sym.Implies = append(sym.Implies, Edge{
			Target: edge.Target,
			Cond:   conjoin(guard, edge.Cond),
		})
	}
	if choice != nil {
		sym.Choice = choice.group.Name
		choice.group.Members = append(choice.group.Members, sym.Name)
	}

	if err := b.table.register(sym); err != nil {
		if dup, ok := err.(*DuplicateSymbolError); ok {
			dup.Source = e.Loc()
		}
		return err
	}
	if sym.DependsOn != nil {
		b.table.depends[sym.Name] = sym.DependsOn
	}
	b.table.selects[sym.Name] = sym.Selects
	b.table.implies[sym.Name] = sym.Implies
	return nil
}

func (b *builder) addChoice(e *Choice, guard Expr) error {
	b.numChoices++
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("<choice-%d>", b.numChoices)
	}
	group := &ChoiceGroup{
		Name:     name,
		Prompt:   e.Prompt,
		Optional: e.Optional,
	}
	for _, def := range e.Defaults {
		group.Defaults = append(group.Defaults, Default{
			Value: def.Value,
			Cond:  conjoin(guard, def.Cond),
		})
	}
	b.table.choices = append(b.table.choices, group)

	kind := e.Kind
	if kind == KindUnknown {
		kind = KindBool
	}
	inner := conjoin(guard, conjoinAll(e.DependsOn))
	return b.walk(e.Entries, inner, &choiceCtx{group: group, kind: kind})
}

func conjoinAll(exprs []Expr) Expr {
	var all Expr
	for _, e := range exprs {
		all = conjoin(all, e)
	}
	return all
}

// check type-checks every symbol reference in the table and inverts the
// select map.  The reverse map records existence only; guard precision is
// recovered through the forward map when a disable request is checked.
func (b *builder) check() error {
	t := b.table
	for _, name := range t.order {
		sym := t.symbols[name]
		if err := b.checkExpr(sym.DependsOn, name); err != nil {
			return err
		}
		if err := b.checkExpr(sym.PromptIf, name); err != nil {
			return err
		}
		for _, def := range sym.Defaults {
			if err := b.checkExpr(def.Cond, name); err != nil {
				return err
			}
		}
		for _, edge := range sym.Selects {
			if err := b.checkEdge(edge, name); err != nil {
				return err
			}
			t.revSelects[edge.Target] = appendUnique(t.revSelects[edge.Target], name)
		}
		for _, edge := range sym.Implies {
			if err := b.checkEdge(edge, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) checkEdge(edge Edge, ref string) error {
	if _, ok := b.table.symbols[edge.Target]; !ok {
		return &UndefinedSymbolError{Name: edge.Target, Ref: ref}
	}
	return b.checkExpr(edge.Cond, ref)
}

func (b *builder) checkExpr(e Expr, ref string) error {
	switch e := e.(type) {
	case nil:
		return nil
	case *SymbolRef:
		if _, ok := b.table.symbols[e.Name]; !ok {
			return &UndefinedSymbolError{Name: e.Name, Ref: ref}
		}
		return nil
	case *Literal:
		return nil
	case *Not:
		return b.checkExpr(e.X, ref)
	case *And:
		return firstErr(b.checkExpr(e.X, ref), b.checkExpr(e.Y, ref))
	case *Or:
		return firstErr(b.checkExpr(e.X, ref), b.checkExpr(e.Y, ref))
	case *Compare:
		return firstErr(b.checkExpr(e.X, ref), b.checkExpr(e.Y, ref))
	}
	return fmt.Errorf("unknown expression node %T", e)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func appendUnique(names []string, name string) []string {
	for _, have := range names {
		if have == name {
			return names
		}
	}
	return append(names, name)
}
