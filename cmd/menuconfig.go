// Copyright © 2026 The kconf authors

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kbuildtools/kconf/configfile"
	"github.com/kbuildtools/kconf/kconfig"
	"github.com/kbuildtools/kconf/menuconfig"
)

// menuconfigCmd represents the menuconfig command
var menuconfigCmd = &cobra.Command{
	Use:   "menuconfig",
	Short: "Edit the configuration interactively",
	Long: `Start an interactive editor over the Kconfig tree.  An existing
.config is loaded first; the save command writes back to the same path.

Line editing and in-session command history are supported via readline.
Use Ctrl-D or the quit command to exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine()
		if err := replayConfig(engine, dotConfig); err != nil {
			fatal(err)
		}
		save := func(table *kconfig.SymbolTable) error {
			return configfile.WriteFile(dotConfig, table)
		}
		if err := menuconfig.Run(engine, save); err != nil {
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(menuconfigCmd)
}
