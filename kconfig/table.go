// Copyright © 2026 The kconf authors

package kconfig

// ChoiceGroup is a set of symbols with radio semantics: at most one member
// holds y at a time.  An optional group additionally permits all members to
// be off.
type ChoiceGroup struct {
	Name     string
	Prompt   string
	Optional bool
	Members  []string
	// Defaults name member symbols; the first guard-true entry is the
	// group's default selection.
	Defaults []Default
}

// SymbolTable is the authoritative configuration aggregate: the symbol
// registry plus the derived dependency maps.  It is built once from a
// resolved directive tree and mutated in place, exclusively through
// Engine.Set, for the life of the process.  Consumers must read through the
// table after every mutation; holding a copy of symbol state across a Set
// call reintroduces the stale-view defect this engine exists to prevent.
type SymbolTable struct {
	MainMenu string

	symbols map[string]*Symbol
	order   []string
	choices []*ChoiceGroup

	depends    map[string]Expr
	selects    map[string][]Edge
	implies    map[string][]Edge
	revSelects map[string][]string
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols:    make(map[string]*Symbol),
		depends:    make(map[string]Expr),
		selects:    make(map[string][]Edge),
		implies:    make(map[string][]Edge),
		revSelects: make(map[string][]string),
	}
}

// Lookup returns the symbol registered under name.
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// Symbols returns all symbols in declaration order.
func (t *SymbolTable) Symbols() []*Symbol {
	syms := make([]*Symbol, len(t.order))
	for i, name := range t.order {
		syms[i] = t.symbols[name]
	}
	return syms
}

// Len returns the number of registered symbols.
func (t *SymbolTable) Len() int {
	return len(t.order)
}

// Choices returns the choice groups in declaration order.
func (t *SymbolTable) Choices() []*ChoiceGroup {
	return t.choices
}

// ChoiceOf returns the choice group owning the named symbol, or nil.
func (t *SymbolTable) ChoiceOf(name string) *ChoiceGroup {
	sym, ok := t.symbols[name]
	if !ok || sym.Choice == "" {
		return nil
	}
	for _, grp := range t.choices {
		if grp.Name == sym.Choice {
			return grp
		}
	}
	return nil
}

// Depends returns the symbol's visibility expression (nil when
// unconditional).
func (t *SymbolTable) Depends(name string) Expr {
	return t.depends[name]
}

// SelectsOf returns the guarded select edges out of the named symbol.
func (t *SymbolTable) SelectsOf(name string) []Edge {
	return t.selects[name]
}

// ImpliesOf returns the guarded imply edges out of the named symbol.
func (t *SymbolTable) ImpliesOf(name string) []Edge {
	return t.implies[name]
}

// SelectorsOf returns the names of symbols with a select edge targeting
// name.  The reverse map is existence-only; callers needing guard precision
// re-evaluate through the forward map.
func (t *SymbolTable) SelectorsOf(name string) []string {
	return t.revSelects[name]
}

// Visibility evaluates the symbol's depends expression against the current
// table state.
func (t *SymbolTable) Visibility(name string) Tristate {
	return t.Eval(t.depends[name])
}

func (t *SymbolTable) register(sym *Symbol) error {
	if _, ok := t.symbols[sym.Name]; ok {
		return &DuplicateSymbolError{Name: sym.Name}
	}
	t.symbols[sym.Name] = sym
	t.order = append(t.order, sym.Name)
	return nil
}
