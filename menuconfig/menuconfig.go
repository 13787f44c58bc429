// Copyright © 2026 The kconf authors

// Package menuconfig implements the interactive configuration editor: a
// readline driven command loop over the dependency resolution engine.  The
// editor owns all prompting; every mutation goes through Engine.Set and the
// display is re-derived from the symbol table after each call, never from a
// cached view.
package menuconfig

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kbuildtools/kconf/kconfig"
)

const helpWidth = 72

type config struct {
	stdin       io.ReadCloser
	stdout      io.Writer
	historyFile string
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		stdout:      os.Stdout,
		historyFile: historyPath(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

type Option func(*config)

// WithStdin overrides the input to the editor.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStdout overrides the output of the editor.
func WithStdout(stdout io.Writer) Option {
	return func(c *config) {
		c.stdout = stdout
	}
}

// WithHistoryFile overrides the readline history location.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

// Editor is one interactive session over an engine.
type Editor struct {
	engine   *kconfig.Engine
	save     func(*kconfig.SymbolTable) error
	out      io.Writer
	modified map[string]bool
}

// Run drives an interactive session until the user quits.  The save callback
// is invoked by the save command with the authoritative table.
func Run(engine *kconfig.Engine, save func(*kconfig.SymbolTable) error, opts ...Option) error {
	cfg := newConfig(opts...)
	ed := &Editor{
		engine:   engine,
		save:     save,
		out:      cfg.stdout,
		modified: make(map[string]bool),
	}

	rlCfg := &readline.Config{
		Prompt:            "kconf> ",
		HistoryFile:       cfg.historyFile,
		HistorySearchFold: true,
		Stdout:            writeCloser(cfg.stdout),
		Stderr:            writeCloser(cfg.stdout),
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	if title := engine.Table().MainMenu; title != "" {
		ed.printf("%s\n", title)
	}
	ed.printf("type \"help\" for commands\n")

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		if done := ed.dispatch(strings.Fields(string(line))); done {
			return nil
		}
	}
}

// dispatch runs one command; it returns true when the session should end.
func (ed *Editor) dispatch(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "list", "ls":
		ed.list("")
	case "search":
		if len(args) < 2 {
			ed.printf("usage: search TEXT\n")
			break
		}
		ed.list(strings.Join(args[1:], " "))
	case "show":
		if len(args) != 2 {
			ed.printf("usage: show SYMBOL\n")
			break
		}
		ed.show(args[1])
	case "set":
		if len(args) != 3 {
			ed.printf("usage: set SYMBOL VALUE\n")
			break
		}
		ed.set(args[1], args[2])
	case "save":
		if err := ed.save(ed.engine.Table()); err != nil {
			ed.printf("save failed: %v\n", err)
			break
		}
		ed.modified = make(map[string]bool)
		ed.printf("configuration saved\n")
	case "help":
		ed.commandHelp()
	case "quit", "exit", "q":
		if len(ed.modified) > 0 {
			ed.printf("warning: %d unsaved change(s) discarded\n", len(ed.modified))
		}
		return true
	default:
		ed.printf("unknown command %q (type \"help\")\n", args[0])
	}
	return false
}

// list prints the visible symbols, filtered by a case-insensitive substring
// match on name and prompt when filter is non-empty.
func (ed *Editor) list(filter string) {
	table := ed.engine.Table()
	filter = strings.ToLower(filter)
	for _, sym := range table.Symbols() {
		if !sym.Visible() {
			continue
		}
		if filter != "" &&
			!strings.Contains(strings.ToLower(sym.Name), filter) &&
			!strings.Contains(strings.ToLower(sym.Prompt), filter) {
			continue
		}
		mark := " "
		if ed.modified[sym.Name] {
			mark = "*"
		}
		gated := ""
		if table.Visibility(sym.Name) == kconfig.No {
			gated = " [unmet deps]"
		}
		ed.printf("%s %-8s %-24s = %-8s %s%s\n", mark, sym.Kind, sym.Name, sym.Value(), sym.Prompt, gated)
	}
}

func (ed *Editor) show(name string) {
	table := ed.engine.Table()
	sym, ok := table.Lookup(name)
	if !ok {
		ed.printf("no such symbol %s\n", name)
		return
	}
	ed.printf("%s (%s) = %s\n", sym.Name, sym.Kind, sym.Value())
	if sym.Prompt != "" {
		ed.printf("  prompt: %s\n", sym.Prompt)
	}
	if dep := table.Depends(sym.Name); dep != nil {
		ed.printf("  depends on: %s (currently %s)\n", dep, table.Eval(dep))
	}
	for _, edge := range table.SelectsOf(sym.Name) {
		ed.printf("  selects: %s%s\n", edge.Target, guardSuffix(edge.Cond))
	}
	for _, edge := range table.ImpliesOf(sym.Name) {
		ed.printf("  implies: %s%s\n", edge.Target, guardSuffix(edge.Cond))
	}
	if selectors := table.SelectorsOf(sym.Name); len(selectors) > 0 {
		ed.printf("  selected by: %s\n", strings.Join(selectors, ", "))
	}
	if grp := table.ChoiceOf(sym.Name); grp != nil {
		ed.printf("  choice group: %s (%s)\n", grp.Name, strings.Join(grp.Members, ", "))
	}
	if sym.Help != "" {
		ed.printf("\n%s\n", indent(wordwrap.String(sym.Help, helpWidth), "  "))
	}
}

func (ed *Editor) set(name, value string) {
	effects, err := ed.engine.Set(name, value)
	if err != nil {
		ed.printf("rejected: %v\n", err)
		return
	}
	ed.modified[name] = true
	sym, _ := ed.engine.Table().Lookup(name)
	ed.printf("%s = %s\n", name, sym.Value())
	for _, cascaded := range effects.Cascaded {
		ed.modified[cascaded] = true
		ed.printf("  selected: %s = %s\n", cascaded, ed.value(cascaded))
	}
	for _, suggested := range effects.Suggested {
		ed.printf("  suggestion: %s (apply with: set %s y)\n", suggested, suggested)
	}
	for _, orphan := range effects.Advisory {
		ed.printf("  note: %s was only enabled by this symbol and may no longer be needed\n", orphan)
	}
}

func (ed *Editor) value(name string) string {
	sym, ok := ed.engine.Table().Lookup(name)
	if !ok {
		return ""
	}
	return sym.Value()
}

func (ed *Editor) commandHelp() {
	ed.printf("commands:\n")
	ed.printf("  list               show visible symbols and current values\n")
	ed.printf("  search TEXT        filter symbols by name or prompt\n")
	ed.printf("  show SYMBOL        show a symbol's dependencies and help\n")
	ed.printf("  set SYMBOL VALUE   change a value (y/m/n, text, or number)\n")
	ed.printf("  save               write the configuration\n")
	ed.printf("  quit               leave the editor\n")
}

func (ed *Editor) printf(format string, v ...interface{}) {
	fmt.Fprintf(ed.out, format, v...)
}

func guardSuffix(cond kconfig.Expr) string {
	if cond == nil {
		return ""
	}
	return fmt.Sprintf(" if %s", cond)
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kconf_history")
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func writeCloser(w io.Writer) io.WriteCloser {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{w}
}
