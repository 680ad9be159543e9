package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscope/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve the interactive explorer on a local port",
	Long: `Dashboard loads and cleans the dataset once, then serves an interactive
explorer with year-range and journal filters. Every filter change recomputes
the aggregations over the cached dataset; the dataset itself is read-only
for the lifetime of the session.`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	source, records, cleaning, err := loadRecords(cmd, cfg)
	if err != nil {
		return err
	}

	session := dashboard.NewSession(source, records, cleaning, cfg.Stats)
	return session.Serve(cfg.Dashboard.Addr, os.Stderr)
}

func init() {
	addDatasetFlags(dashboardCmd)
	dashboardCmd.Flags().String("addr", "", "listen address (default localhost:8510)")
	dashboardCmd.Flags().Int("top-journals", 0, "journals shown in rankings (default 10)")
	dashboardCmd.Flags().Int("top-words", 0, "title words shown in rankings (default 20)")

	rootCmd.AddCommand(dashboardCmd)
}
