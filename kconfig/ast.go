// Copyright © 2026 The kconf authors

package kconfig

import (
	"io"

	"github.com/kbuildtools/kconf/parser/token"
)

// Reader abstracts the parser so it can live in a separate package as a
// swappable component.
type Reader interface {
	// Read parses the contents of r and returns the file's directive tree.
	Read(name string, r io.Reader) (*File, error)
}

// File is the parsed directive tree of one Kconfig source file.  After source
// resolution it holds the fully spliced tree for the whole configuration.
type File struct {
	Name    string
	Entries []Entry
}

// Entry is a single directive in a Kconfig file.  The variant set is closed.
type Entry interface {
	entryNode()
	Loc() *token.Location
}

// EntryInfo carries the source location common to all directives.
type EntryInfo struct {
	Pos *token.Location
}

func (e *EntryInfo) entryNode()           {}
func (e *EntryInfo) Loc() *token.Location { return e.Pos }

// Config declares a configuration symbol (a config or menuconfig directive)
// together with its property list.
type Config struct {
	EntryInfo
	Name       string
	MenuConfig bool
	Kind       Kind
	Prompt     string
	PromptIf   Expr
	Defaults   []Default
	DependsOn  []Expr
	Selects    []Edge
	Implies    []Edge
	Help       string
}

// Menu is a menu/endmenu block.
type Menu struct {
	EntryInfo
	Prompt    string
	DependsOn []Expr
	Entries   []Entry
}

// Choice is a choice/endchoice block.  Its config members are subject to the
// group's exclusivity invariant unless the group is marked optional.
type Choice struct {
	EntryInfo
	Name      string
	Prompt    string
	Kind      Kind
	Optional  bool
	Defaults  []Default
	DependsOn []Expr
	Entries   []Entry
	Help      string
}

// If is an if/endif block guarding the entries within.
type If struct {
	EntryInfo
	Cond    Expr
	Entries []Entry
}

// Source includes another Kconfig file, resolved relative to the source tree
// root unless the path is absolute.
type Source struct {
	EntryInfo
	Path string
}

// Comment is a comment directive displayed in menus.
type Comment struct {
	EntryInfo
	Prompt    string
	DependsOn []Expr
}

// MainMenu sets the configuration's title.
type MainMenu struct {
	EntryInfo
	Title string
}

// At builds the embedded location record for an AST node.
func At(pos *token.Location) EntryInfo {
	return EntryInfo{Pos: pos}
}
