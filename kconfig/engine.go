// Copyright © 2026 The kconf authors

package kconfig

// Tracer observes engine and resolver operations.  A host that wants spans or
// timing installs one; the zero state is no tracing.
type Tracer interface {
	// Begin marks the start of a named operation on a symbol or file and
	// returns a function marking its end.
	Begin(op, name string) func()
}

// Effects bundles everything a successful Set produced beyond the directly
// targeted symbol.
type Effects struct {
	// Cascaded lists symbols force-enabled by the select cascade, in the
	// order they were committed.
	Cascaded []string
	// Suggested lists imply targets whose guard holds but which are below
	// the implied strength.  The engine never applies a suggestion; the
	// caller re-issues Set for each one it accepts.
	Suggested []string
	// Advisory, populated on a disable, lists symbols that were only enabled
	// through this symbol's select cascade and are not required by any other
	// enabled selector.  The engine does not disable them.
	Advisory []string
}

// Engine applies value changes to a symbol table while keeping it internally
// consistent.  All mutation of the table funnels through Set.
//
// Set is synchronous and atomic: a rejected request leaves the table exactly
// as it was, and a successful request returns only after every cascade
// commit.  Consequently any view of symbol state derived before a Set call
// is stale after it; callers must re-read the table.  When embedded in a
// multi-threaded host the engine and its table form one unit requiring
// exclusive access for the duration of each call.
type Engine struct {
	table  *SymbolTable
	tracer Tracer
}

func NewEngine(table *SymbolTable) *Engine {
	return &Engine{table: table}
}

// Table returns the engine's authoritative symbol table.
func (e *Engine) Table() *SymbolTable {
	return e.table
}

// SetTracer installs an operation tracer.  A nil tracer disables tracing.
func (e *Engine) SetTracer(tracer Tracer) {
	e.tracer = tracer
}

// Set requests that the named symbol take a new value.
//
// The request is first checked against the table as it stood before the
// call: enabling requires the symbol's depends expression to evaluate at or
// above the requested strength, disabling requires that no enabled selector
// still forces the symbol on, and a choice member may not take y while a
// sibling holds it.  Any violated check rejects the request with a
// structured error and no mutation.
//
// Once the checks pass the value is committed, guard-true select edges are
// cascaded transitively (each forced target committed through the same
// path), and guard-true imply edges are collected as suggestions.  Setting a
// symbol to the value it already holds is a no-op with empty effects.
func (e *Engine) Set(name, value string) (*Effects, error) {
	if e.tracer != nil {
		defer e.tracer.Begin("set", name)()
	}
	t := e.table
	sym, ok := t.Lookup(name)
	if !ok {
		return nil, &UndefinedSymbolError{Name: name}
	}
	canonical, err := sym.normalizeValue(value)
	if err != nil {
		return nil, err
	}
	if canonical == sym.Value() {
		return &Effects{}, nil
	}

	oldTri := sym.Tristate()
	newTri := valueTristate(sym.Kind, canonical)

	if newTri > oldTri {
		if err := e.checkVisible(sym, newTri); err != nil {
			return nil, err
		}
	}
	if newTri == Yes && sym.Choice != "" {
		if err := e.checkChoice(sym); err != nil {
			return nil, err
		}
	}
	var advisory []string
	if newTri < oldTri {
		if err := e.checkSelectors(sym, newTri); err != nil {
			return nil, err
		}
		advisory = e.orphans(name)
	}

	// Commit.  Everything above read the pre-request state; nothing below
	// can fail.
	sym.setValue(canonical)

	effects := &Effects{Advisory: advisory}
	if newTri > oldTri && newTri > No {
		visited := map[string]bool{name: true}
		e.cascade(sym, newTri, visited, effects)
		e.suggest(sym, newTri, effects)
	}
	return effects, nil
}

// checkVisible rejects an enable request whose depends expression evaluates
// below the required threshold.  A tristate symbol needs its dependency to
// reach the requested strength; bool and value symbols need at least m.
func (e *Engine) checkVisible(sym *Symbol, newTri Tristate) error {
	expr := e.table.Depends(sym.Name)
	if expr == nil {
		return nil
	}
	required := Module
	if sym.Kind == KindTristate {
		required = newTri
	}
	if e.table.Eval(expr) >= required {
		return nil
	}
	return &DependencyUnmetError{
		Symbol: sym.Name,
		Expr:   expr,
		Unmet:  e.table.FalseLeaves(expr),
	}
}

// checkSelectors rejects lowering a symbol below the strength any enabled
// selector currently forces on it.
func (e *Engine) checkSelectors(sym *Symbol, newTri Tristate) error {
	var blockers []string
	for _, src := range e.table.SelectorsOf(sym.Name) {
		forced := e.forcedBy(src, sym)
		if newTri < forced {
			blockers = append(blockers, src)
		}
	}
	if len(blockers) > 0 {
		return &SelectedByError{Symbol: sym.Name, Selectors: blockers}
	}
	return nil
}

// forcedBy returns the strength the enabled selector src currently forces on
// target, or n when the selector is off or its guard does not hold.
func (e *Engine) forcedBy(src string, target *Symbol) Tristate {
	srcSym, ok := e.table.Lookup(src)
	if !ok || srcSym.Tristate() == No {
		return No
	}
	forced := No
	for _, edge := range e.table.SelectsOf(src) {
		if edge.Target != target.Name {
			continue
		}
		guard := e.table.Eval(edge.Cond)
		if guard == No {
			continue
		}
		forced = forced.Or(srcSym.Tristate().And(guard))
	}
	if target.Kind == KindBool && forced > No {
		forced = Yes
	}
	return forced
}

func (e *Engine) checkChoice(sym *Symbol) error {
	group := e.table.ChoiceOf(sym.Name)
	if group == nil {
		return nil
	}
	for _, member := range group.Members {
		if member == sym.Name {
			continue
		}
		other, ok := e.table.Lookup(member)
		if ok && other.Tristate() == Yes {
			return &ChoiceExclusivityError{
				Symbol:   sym.Name,
				Conflict: member,
				Choice:   group.Name,
			}
		}
	}
	return nil
}

// cascade walks guard-true select edges depth-first, forcing each target to
// at least the selecting symbol's strength and recursing through the
// target's own selects.  The visited set spans the whole walk so a cyclic
// select graph terminates silently at the revisit.
func (e *Engine) cascade(src *Symbol, strength Tristate, visited map[string]bool, effects *Effects) {
	for _, edge := range e.table.SelectsOf(src.Name) {
		if visited[edge.Target] {
			continue
		}
		guard := e.table.Eval(edge.Cond)
		if guard == No {
			continue
		}
		target, ok := e.table.Lookup(edge.Target)
		if !ok || target.Kind.IsValueKind() {
			continue
		}
		forced := strength.And(guard)
		if target.Kind == KindBool {
			forced = Yes
		}
		visited[edge.Target] = true
		if target.Tristate() >= forced {
			continue
		}
		target.setValue(forced.String())
		effects.Cascaded = append(effects.Cascaded, target.Name)
		e.cascade(target, forced, visited, effects)
	}
}

// suggest collects guard-true imply targets below the implied strength.
func (e *Engine) suggest(src *Symbol, strength Tristate, effects *Effects) {
	for _, edge := range e.table.ImpliesOf(src.Name) {
		guard := e.table.Eval(edge.Cond)
		if guard == No {
			continue
		}
		target, ok := e.table.Lookup(edge.Target)
		if !ok || target.Kind.IsValueKind() {
			continue
		}
		implied := strength.And(guard)
		if target.Kind == KindBool {
			implied = Yes
		}
		if target.Tristate() < implied {
			effects.Suggested = append(effects.Suggested, target.Name)
		}
	}
}

// orphans computes, against the pre-commit state, the enabled symbols
// reachable from root through guard-true select edges which no enabled
// symbol outside the reachable set still requires.  The caller receives the
// list as an advisory; only the targeted symbol itself is mutated.
func (e *Engine) orphans(root string) []string {
	t := e.table
	reach := make(map[string]bool)
	var walk func(src string)
	walk = func(src string) {
		for _, edge := range t.SelectsOf(src) {
			if reach[edge.Target] || t.Eval(edge.Cond) == No {
				continue
			}
			target, ok := t.Lookup(edge.Target)
			if !ok || target.Tristate() == No {
				continue
			}
			reach[edge.Target] = true
			walk(edge.Target)
		}
	}
	walk(root)

	var out []string
	for _, name := range t.order {
		if !reach[name] {
			continue
		}
		required := false
		for _, src := range t.SelectorsOf(name) {
			if src == root || reach[src] {
				continue
			}
			target, _ := t.Lookup(name)
			if e.forcedBy(src, target) > No {
				required = true
				break
			}
		}
		if !required {
			out = append(out, name)
		}
	}
	return out
}

// valueTristate coerces a canonical value to the tristate strength it
// represents for the given kind.
func valueTristate(kind Kind, canonical string) Tristate {
	if !kind.IsValueKind() {
		tri, _ := ParseTristate(canonical)
		return tri
	}
	switch canonical {
	case "", "0", "0x0":
		return No
	}
	return Yes
}

// ApplyDefaults assigns declared default values through the normal commit
// path, in declaration order: for each symbol the first default whose guard
// holds supplies the value, and for each non-optional choice group with no
// active member the first guard-true default member (or failing that the
// first member) is raised to y.  Requests rejected by dependency or
// exclusivity checks are skipped, matching the tolerance of defconfig-style
// flows.  The returned effects aggregate all cascades and suggestions.
func (e *Engine) ApplyDefaults() *Effects {
	combined := &Effects{}
	for _, sym := range e.table.Symbols() {
		for _, def := range sym.Defaults {
			if e.table.Eval(def.Cond) == No {
				continue
			}
			effects, err := e.Set(sym.Name, def.Value)
			if err == nil {
				mergeEffects(combined, effects)
			}
			break
		}
	}
	for _, group := range e.table.Choices() {
		if group.Optional || e.activeChoice(group) != "" {
			continue
		}
		if member := e.defaultChoice(group); member != "" {
			effects, err := e.Set(member, Yes.String())
			if err == nil {
				mergeEffects(combined, effects)
			}
		}
	}
	return combined
}

func (e *Engine) activeChoice(group *ChoiceGroup) string {
	for _, member := range group.Members {
		if sym, ok := e.table.Lookup(member); ok && sym.Tristate() == Yes {
			return member
		}
	}
	return ""
}

func (e *Engine) defaultChoice(group *ChoiceGroup) string {
	for _, def := range group.Defaults {
		if e.table.Eval(def.Cond) == No {
			continue
		}
		for _, member := range group.Members {
			if member == def.Value {
				return member
			}
		}
	}
	if len(group.Members) > 0 {
		return group.Members[0]
	}
	return ""
}

func mergeEffects(into, from *Effects) {
	into.Cascaded = append(into.Cascaded, from.Cascaded...)
	into.Suggested = append(into.Suggested, from.Suggested...)
	into.Advisory = append(into.Advisory, from.Advisory...)
}
