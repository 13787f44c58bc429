// Copyright © 2026 The kconf authors

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse the Kconfig tree and list its symbols",
	Long: `Parse the Kconfig tree rooted at --kconfig, resolve every source
directive, build the symbol table, and print one line per symbol in
declaration order.  Syntax errors, source cycles, duplicate symbols, and
references to undefined symbols are fatal and reported with their file
location.`,
	Run: func(cmd *cobra.Command, args []string) {
		table := loadTable()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, sym := range table.Symbols() {
			dep := ""
			if expr := table.Depends(sym.Name); expr != nil {
				dep = fmt.Sprintf("depends on %s", expr)
			}
			fmt.Fprintf(w, "%s\t%s\t%q\t%s\n", sym.Name, sym.Kind, sym.Prompt, dep)
		}
		if err := w.Flush(); err != nil {
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
