// Copyright © 2026 The kconf authors

package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kbuildtools/kconf/configfile"
)

var (
	autoConfPath  string
	autoConfHPath string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Emit auto.conf and autoconf.h from the .config",
	Long: `Read the .config file, replay it through the dependency resolution
engine, and emit the build system artifacts: auto.conf (makefile fragment,
disabled symbols omitted) and autoconf.h (C header, module symbols defined
as built-in).`,
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine()
		if err := replayConfig(engine, dotConfig); err != nil {
			fatal(err)
		}
		if err := configfile.Generate(autoConfPath, autoConfHPath, engine.Table()); err != nil {
			fatal(err)
		}
		log.Info().
			Str("auto_conf", autoConfPath).
			Str("autoconf_h", autoConfHPath).
			Msg("generated build artifacts")
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&autoConfPath, "auto-conf", "auto.conf", "output path of the makefile fragment")
	generateCmd.Flags().StringVar(&autoConfHPath, "autoconf-h", "autoconf.h", "output path of the C header")
}
