// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscope/internal/catalog"
	"github.com/pdiddy/paperscope/internal/dataset"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQLite dataset snapshot (build, info)",
	Long: `Catalog keeps a cleaned dataset snapshot in a local SQLite database.
Build runs the load/clean pipeline and stores the result; analyze and
dashboard can then start from the snapshot with --catalog instead of
re-reading the CSV.`,
}

var catalogBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Clean the metadata CSV and store it as the catalog snapshot",
	RunE:  runCatalogBuild,
}

func runCatalogBuild(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	table, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		return err
	}
	records, report, err := dataset.Clean(table, cfg.Clean)
	if err != nil {
		return err
	}
	dataset.WriteReport(report, os.Stderr)

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(context.Background(), cfg.Data.Path, records, report); err != nil {
		return err
	}
	fmt.Printf("stored %d records from %s\n", len(records), cfg.Data.Path)
	return nil
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the stored snapshot's source, age, and cleaning report",
	RunE:  runCatalogInfo,
}

func runCatalogInfo(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	info, err := store.Info(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("source:   %s\n", info.Source)
	fmt.Printf("created:  %s\n", info.CreatedAt.Format(time.RFC3339))
	fmt.Printf("records:  %d\n", info.Records)
	fmt.Println()
	dataset.WriteReport(info.Cleaning, os.Stdout)
	return nil
}

func init() {
	catalogBuildCmd.Flags().String("data", "", "metadata CSV to load (default metadata.csv)")
	catalogBuildCmd.Flags().Int("min-year", 0, "drop records published before this year (0 = no bound)")
	catalogBuildCmd.Flags().Int("max-year", 0, "drop records published after this year (0 = no bound)")
	catalogBuildCmd.Flags().String("catalog-dir", "", "catalog directory (default catalog)")
	catalogInfoCmd.Flags().String("catalog-dir", "", "catalog directory (default catalog)")

	catalogCmd.AddCommand(catalogBuildCmd)
	catalogCmd.AddCommand(catalogInfoCmd)

	rootCmd.AddCommand(catalogCmd)
}
