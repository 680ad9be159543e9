// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperscope CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperscope CLI.
var rootCmd = &cobra.Command{
	Use:   "paperscope",
	Short: "Descriptive statistics over research publication metadata",
	Long: `paperscope loads a publication metadata CSV (title, authors, journal,
publish date, abstract), cleans it, and computes descriptive statistics:
publication counts by year, top journals, and title word frequencies.

Two launch modes: 'analyze' renders charts and a summary export to the
output directory; 'dashboard' serves the same views interactively on a
local port with year-range and journal filters. 'catalog' snapshots a
cleaned dataset into SQLite so later runs skip the CSV entirely.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperscope.yaml or ~/.config/paperscope/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperscope"))
		}
	}

	viper.SetEnvPrefix("PAPERSCOPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
