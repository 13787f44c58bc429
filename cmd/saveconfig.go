// Copyright © 2026 The kconf authors

package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kbuildtools/kconf/configfile"
)

// saveconfigCmd represents the saveconfig command
var saveconfigCmd = &cobra.Command{
	Use:   "saveconfig OUTPUT",
	Short: "Normalize the current .config to a new file",
	Long: `Read the .config file, replay it through the dependency resolution
engine, and write the normalized result to OUTPUT.  The source file is left
untouched; use oldconfig to update it in place.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine()
		if err := replayConfig(engine, dotConfig); err != nil {
			fatal(err)
		}
		if err := configfile.WriteFile(args[0], engine.Table()); err != nil {
			fatal(err)
		}
		log.Info().Str("path", args[0]).Msg("saved configuration")
	},
}

func init() {
	rootCmd.AddCommand(saveconfigCmd)
}
