// Copyright © 2026 The kconf authors

package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kbuildtools/kconf/configfile"
	"github.com/kbuildtools/kconf/kconfig"
)

// oldconfigCmd represents the oldconfig command
var oldconfigCmd = &cobra.Command{
	Use:   "oldconfig",
	Short: "Update an existing .config against the current tree",
	Long: `Read the .config file, replay its settings through the dependency
resolution engine, apply declared defaults for symbols the file does not
mention, and write the normalized result back.

Settings naming symbols no longer present in the tree, and settings the
engine rejects (unmet dependencies, reverse-select conflicts, choice
exclusivity), are logged as warnings and dropped rather than failing the
whole update.  Stale configs are expected input here.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine := loadEngine()
		if err := replayConfig(engine, dotConfig); err != nil {
			fatal(err)
		}
		engine.ApplyDefaults()
		if err := configfile.WriteFile(dotConfig, engine.Table()); err != nil {
			fatal(err)
		}
		log.Info().Str("path", dotConfig).Msg("updated configuration")
	},
}

// replayConfig applies a .config file's settings through the engine, warning
// on (and skipping) anything the current tree cannot accept.  A missing file
// is not an error; the caller proceeds from an all-default state.
func replayConfig(engine *kconfig.Engine, path string) error {
	settings, err := configfile.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("no existing configuration")
		return nil
	}
	if err != nil {
		return err
	}
	for _, setting := range settings {
		if _, ok := engine.Table().Lookup(setting.Name); !ok {
			log.Warn().Str("symbol", setting.Name).Msg("dropping unknown symbol")
			continue
		}
		if _, err := engine.Set(setting.Name, setting.Value); err != nil {
			log.Warn().
				Str("symbol", setting.Name).
				Str("value", setting.Value).
				Err(err).
				Msg("dropping rejected setting")
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(oldconfigCmd)
}
