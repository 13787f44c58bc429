// Copyright © 2026 The kconf authors

package configfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kbuildtools/kconf/kconfig"
)

const header = "#\n# Automatically generated file; DO NOT EDIT.\n#\n"

// Write serializes the table's symbols in declaration order as a .config
// file.  Bool and tristate symbols with value n, and value symbols with no
// committed value, are written as "# ID is not set" comment lines.  String
// values are quoted.
func Write(w io.Writer, table *kconfig.SymbolTable) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for _, sym := range table.Symbols() {
		if err := writeSymbol(w, sym); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the table to a .config file on disk.
func WriteFile(path string, table *kconfig.SymbolTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, table); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeSymbol(w io.Writer, sym *kconfig.Symbol) error {
	var err error
	switch sym.Kind {
	case kconfig.KindBool, kconfig.KindTristate:
		if tri := sym.Tristate(); tri == kconfig.No {
			_, err = fmt.Fprintf(w, "# %s is not set\n", sym.Name)
		} else {
			_, err = fmt.Fprintf(w, "%s=%s\n", sym.Name, tri)
		}
	case kconfig.KindString:
		if sym.Text() == "" {
			_, err = fmt.Fprintf(w, "# %s is not set\n", sym.Name)
		} else {
			_, err = fmt.Fprintf(w, "%s=%s\n", sym.Name, quote(sym.Text()))
		}
	default:
		if sym.Text() == "" {
			_, err = fmt.Fprintf(w, "# %s is not set\n", sym.Name)
		} else {
			_, err = fmt.Fprintf(w, "%s=%s\n", sym.Name, sym.Text())
		}
	}
	return err
}

func quote(text string) string {
	var q strings.Builder
	q.WriteByte('"')
	for _, c := range text {
		if c == '"' || c == '\\' {
			q.WriteByte('\\')
		}
		q.WriteRune(c)
	}
	q.WriteByte('"')
	return q.String()
}
