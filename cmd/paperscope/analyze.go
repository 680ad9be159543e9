package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscope/internal/report"
	"github.com/pdiddy/paperscope/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis and write charts plus a summary export",
	Long: `Analyze loads the metadata CSV (or the catalog snapshot with --catalog),
cleans it, and writes four chart files (publications by year, top journals,
top title words, word cloud) plus a summary export to the output directory.
The cleaning report and ranked tables are printed to the terminal.`,
	RunE: runAnalyze,
}

// validateFormat checks the summary export format flag.
func validateFormat(format string) error {
	switch format {
	case "", "yaml", "json":
		return nil
	}
	return fmt.Errorf("%w: unsupported format %q: use yaml or json", types.ErrInvalidArgument, format)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := validateFormat(format); err != nil {
		return err
	}

	cfg := pipelineConfig(cmd)

	source, records, cleaning, err := loadRecords(cmd, cfg)
	if err != nil {
		return err
	}

	export, err := report.Build(source, records, cleaning, cfg.Stats)
	if err != nil {
		return err
	}

	written, err := report.WriteCharts(cfg.Report.OutputDir, export.YearCounts, export.TopJournals, export.TopWords)
	if err != nil {
		return err
	}

	if format == "json" {
		path, err := report.WriteJSON(cfg.Report.OutputDir, export)
		if err != nil {
			return err
		}
		written = append(written, path)
	} else {
		path, err := report.WriteYAML(cfg.Report.OutputDir, export)
		if err != nil {
			return err
		}
		written = append(written, path)
	}

	report.FormatTables(export, os.Stdout)

	fmt.Println()
	for _, path := range written {
		fmt.Println("wrote", path)
	}
	return nil
}

func init() {
	addDatasetFlags(analyzeCmd)
	analyzeCmd.Flags().String("output-dir", "", "directory for charts and exports (default output)")
	analyzeCmd.Flags().Int("top-journals", 0, "journals shown in rankings (default 10)")
	analyzeCmd.Flags().Int("top-words", 0, "title words shown in rankings (default 20)")
	analyzeCmd.Flags().String("format", "yaml", "summary export format: yaml or json")

	rootCmd.AddCommand(analyzeCmd)
}
