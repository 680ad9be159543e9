// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscope/internal/stats"
	"github.com/pdiddy/paperscope/pkg/types"
)

// Export is the full analysis result written alongside the charts.
type Export struct {
	GeneratedAt time.Time            `json:"generated_at" yaml:"generated_at"`
	Source      string               `json:"source" yaml:"source"`
	Summary     stats.Summary        `json:"summary" yaml:"summary"`
	Cleaning    types.CleaningReport `json:"cleaning" yaml:"cleaning"`
	YearCounts  []stats.YearCount    `json:"year_counts" yaml:"year_counts"`
	TopJournals []stats.JournalCount `json:"top_journals" yaml:"top_journals"`
	TopWords    []stats.WordCount    `json:"top_words" yaml:"top_words"`
}

// Build assembles an Export from cleaned records. The top-N sizes come
// from cfg; zero values fall back to 10 journals and 20 words.
func Build(source string, records []types.Record, cleaning types.CleaningReport, cfg types.StatsConfig) (Export, error) {
	topJournals := cfg.TopJournals
	if topJournals == 0 {
		topJournals = 10
	}
	topWords := cfg.TopWords
	if topWords == 0 {
		topWords = 20
	}

	journals, err := stats.TopJournals(records, topJournals)
	if err != nil {
		return Export{}, err
	}
	freq := stats.WordFrequencies(records, stats.Stopwords(cfg.Stopwords))
	words, err := stats.TopWords(freq, topWords)
	if err != nil {
		return Export{}, err
	}

	return Export{
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Summary:     stats.Summarize(records),
		Cleaning:    cleaning,
		YearCounts:  stats.CountsByYear(records),
		TopJournals: journals,
		TopWords:    words,
	}, nil
}

// WriteYAML writes the export to dir/summary.yaml.
func WriteYAML(dir string, e Export) (string, error) {
	data, err := yaml.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(dir, "summary.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// WriteJSON writes the export to dir/summary.json.
func WriteJSON(dir string, e Export) (string, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(dir, "summary.json")
	return path, os.WriteFile(path, data, 0o644)
}

// FormatTables writes the ranked journal and word tables in a
// human-readable form.
func FormatTables(e Export, w io.Writer) {
	fmt.Fprintf(w, "%d papers, %d journals, %d years covered (peak: %d papers in %d)\n\n",
		e.Summary.TotalPapers, e.Summary.UniqueJournals, e.Summary.YearsCovered,
		e.Summary.PeakCount, e.Summary.PeakYear)

	fmt.Fprintf(w, "%-4s  %-50s  %s\n", "Rank", "Journal", "Papers")
	fmt.Fprintln(w, strings.Repeat("-", 64))
	for i, jc := range e.TopJournals {
		journal := jc.Journal
		if r := []rune(journal); len(r) > 50 {
			journal = string(r[:47]) + "..."
		}
		fmt.Fprintf(w, "%-4d  %-50s  %d\n", i+1, journal, jc.Count)
	}

	fmt.Fprintf(w, "\n%-4s  %-20s  %s\n", "Rank", "Title word", "Count")
	fmt.Fprintln(w, strings.Repeat("-", 34))
	for i, wc := range e.TopWords {
		fmt.Fprintf(w, "%-4d  %-20s  %d\n", i+1, wc.Word, wc.Count)
	}
}
