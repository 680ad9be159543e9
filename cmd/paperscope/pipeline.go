// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscope/internal/catalog"
	"github.com/pdiddy/paperscope/internal/dataset"
	"github.com/pdiddy/paperscope/pkg/types"
)

// Setting resolution: an explicitly set flag wins, otherwise the viper
// value (config file or PAPERSCOPE_* env) with its default.

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return viper.GetInt(key)
}

func init() {
	viper.SetDefault("data.path", "metadata.csv")
	viper.SetDefault("clean.min_year", 0)
	viper.SetDefault("clean.max_year", 0)
	viper.SetDefault("stats.top_journals", 10)
	viper.SetDefault("stats.top_words", 20)
	viper.SetDefault("report.output_dir", "output")
	viper.SetDefault("dashboard.addr", "localhost:8510")
	viper.SetDefault("catalog.dir", "catalog")
}

// pipelineConfig assembles the stage configs for a command.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	return types.PipelineConfig{
		Data: types.DataConfig{
			Path: stringSetting(cmd, "data", "data.path"),
		},
		Clean: types.CleanConfig{
			MinYear: intSetting(cmd, "min-year", "clean.min_year"),
			MaxYear: intSetting(cmd, "max-year", "clean.max_year"),
		},
		Stats: types.StatsConfig{
			TopJournals: intSetting(cmd, "top-journals", "stats.top_journals"),
			TopWords:    intSetting(cmd, "top-words", "stats.top_words"),
			Stopwords:   viper.GetStringSlice("stats.stopwords"),
		},
		Report: types.ReportConfig{
			OutputDir: stringSetting(cmd, "output-dir", "report.output_dir"),
		},
		Dashboard: types.DashboardConfig{
			Addr: stringSetting(cmd, "addr", "dashboard.addr"),
		},
		Catalog: types.CatalogConfig{
			Dir: stringSetting(cmd, "catalog-dir", "catalog.dir"),
		},
	}
}

// addDatasetFlags registers the flags shared by commands that build a
// cleaned dataset.
func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().String("data", "", "metadata CSV to load (default metadata.csv)")
	cmd.Flags().Int("min-year", 0, "drop records published before this year (0 = no bound)")
	cmd.Flags().Int("max-year", 0, "drop records published after this year (0 = no bound)")
	cmd.Flags().String("catalog-dir", "", "catalog directory (default catalog)")
	cmd.Flags().Bool("catalog", false, "load the dataset from the catalog snapshot instead of the CSV")
}

// loadRecords produces the cleaned dataset for a command, either by
// running the load/clean pipeline on the CSV or by reading the catalog
// snapshot. The returned source names where the data came from.
func loadRecords(cmd *cobra.Command, cfg types.PipelineConfig) (source string, records []types.Record, report types.CleaningReport, err error) {
	fromCatalog, _ := cmd.Flags().GetBool("catalog")
	if fromCatalog {
		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return "", nil, types.CleaningReport{}, err
		}
		defer store.Close()

		ctx := context.Background()
		records, err := store.Load(ctx)
		if err != nil {
			return "", nil, types.CleaningReport{}, err
		}
		info, err := store.Info(ctx)
		if err != nil {
			return "", nil, types.CleaningReport{}, err
		}
		return info.Source + " (catalog)", records, info.Cleaning, nil
	}

	table, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		return "", nil, types.CleaningReport{}, err
	}
	records, report, err = dataset.Clean(table, cfg.Clean)
	if err != nil {
		return "", nil, report, err
	}
	dataset.WriteReport(report, os.Stderr)
	return cfg.Data.Path, records, report, nil
}
