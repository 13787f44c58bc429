// Copyright © 2026 The kconf authors

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kbuildtools/kconf/kconfig"
	"github.com/kbuildtools/kconf/parser"
)

var (
	cfgFile     string
	kconfigFile string
	srcTree     string
	dotConfig   string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kconf",
	Short: "kconf — Kconfig configuration system",
	Long: `kconf parses Kconfig configuration trees and resolves symbol
dependencies.

Getting started:
  kconf parse                  Parse the tree and list its symbols
  kconf defconfig              Write a .config from declared defaults
  kconf oldconfig              Update an existing .config against the tree
  kconf saveconfig out.config  Normalize the current .config to a new file
  kconf generate               Emit auto.conf and autoconf.h
  kconf menuconfig             Edit the configuration interactively

The tree root defaults to the file Kconfig in the source tree (--srctree);
source directives inside the tree resolve relative to the same root.

More information:
  https://github.com/kbuildtools/kconf`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file (default is $HOME/.kconf.yaml)")
	rootCmd.PersistentFlags().StringVarP(&kconfigFile, "kconfig", "k", "Kconfig", "root Kconfig file, relative to the source tree")
	rootCmd.PersistentFlags().StringVarP(&srcTree, "srctree", "s", ".", "source tree that source directives resolve against")
	rootCmd.PersistentFlags().StringVarP(&dotConfig, "dotconfig", "c", ".config", "path of the .config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".kconf")
	}

	viper.SetEnvPrefix("kconf")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("path", viper.ConfigFileUsed()).Msg("using config file")
	}
	for _, flag := range []struct {
		name string
		dest *string
	}{
		{"kconfig", &kconfigFile},
		{"srctree", &srcTree},
		{"dotconfig", &dotConfig},
	} {
		if !rootCmd.PersistentFlags().Changed(flag.name) && viper.IsSet(flag.name) {
			*flag.dest = viper.GetString(flag.name)
		}
	}
}

func initLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// loadTable resolves the configured tree root and builds its symbol table.
func loadTable() *kconfig.SymbolTable {
	resolver := kconfig.NewResolver(parser.NewReader(), &kconfig.FileSystemLoader{}, srcTree)
	resolver.SetLogger(log.Logger)
	file, err := resolver.Resolve(kconfigFile)
	if err != nil {
		fatal(err)
	}
	table, err := kconfig.Build(file)
	if err != nil {
		fatal(err)
	}
	return table
}

// loadEngine builds the table and wraps it in a resolution engine.
func loadEngine() *kconfig.Engine {
	return kconfig.NewEngine(loadTable())
}

func fatal(err error) {
	log.Error().Err(err).Msg("kconf failed")
	os.Exit(1)
}
