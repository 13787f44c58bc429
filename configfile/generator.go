// Copyright © 2026 The kconf authors

package configfile

import (
	"fmt"
	"io"
	"os"

	"github.com/kbuildtools/kconf/kconfig"
)

const cHeader = "/*\n * Automatically generated file; DO NOT EDIT.\n */\n\n"

// WriteAutoConf serializes the table as the auto.conf makefile fragment.
// Disabled and unset symbols are omitted entirely, and string values are
// written raw.
func WriteAutoConf(w io.Writer, table *kconfig.SymbolTable) error {
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for _, sym := range table.Symbols() {
		if sym.Kind.IsValueKind() {
			if sym.Text() == "" {
				continue
			}
		} else if sym.Tristate() == kconfig.No {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", sym.Name, sym.Value()); err != nil {
			return err
		}
	}
	return nil
}

// WriteAutoConfHeader serializes the table as the autoconf.h C header.
// Built-in and module symbols are defined as 1 (modules are treated as
// built-in), disabled symbols are left undefined, and value symbols are
// defined as quoted strings.
func WriteAutoConfHeader(w io.Writer, table *kconfig.SymbolTable) error {
	if _, err := io.WriteString(w, cHeader); err != nil {
		return err
	}
	for _, sym := range table.Symbols() {
		var err error
		switch sym.Kind {
		case kconfig.KindBool, kconfig.KindTristate:
			if sym.Tristate() != kconfig.No {
				_, err = fmt.Fprintf(w, "#define %s 1\n", sym.Name)
			}
		default:
			if sym.Text() != "" {
				_, err = fmt.Fprintf(w, "#define %s %q\n", sym.Name, sym.Text())
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Generate writes both auto.conf and autoconf.h to the given paths.
func Generate(autoConfPath, autoConfHPath string, table *kconfig.SymbolTable) error {
	if err := writeFileWith(autoConfPath, table, WriteAutoConf); err != nil {
		return err
	}
	return writeFileWith(autoConfHPath, table, WriteAutoConfHeader)
}

func writeFileWith(path string, table *kconfig.SymbolTable, write func(io.Writer, *kconfig.SymbolTable) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, table); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
