// Copyright © 2026 The kconf authors

package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kbuildtools/kconf/configfile"
)

// defconfigCmd represents the defconfig command
var defconfigCmd = &cobra.Command{
	Use:   "defconfig",
	Short: "Write a .config built from declared defaults",
	Long: `Build the symbol table, apply every symbol's first satisfied default
in declaration order, resolve choice groups that declare no explicit member,
and write the result to the .config path.  Defaults whose dependencies are
unmet are skipped, not errors.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine()
		effects := engine.ApplyDefaults()
		for _, name := range effects.Cascaded {
			log.Debug().Str("symbol", name).Msg("enabled by select cascade")
		}
		if err := configfile.WriteFile(dotConfig, engine.Table()); err != nil {
			fatal(err)
		}
		log.Info().Str("path", dotConfig).Msg("wrote default configuration")
	},
}

func init() {
	rootCmd.AddCommand(defconfigCmd)
}
