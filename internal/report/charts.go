// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders aggregation results as charts and summary
// exports. Chart builders are shared with the interactive dashboard.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pdiddy/paperscope/internal/stats"
)

// YearChart builds a vertical bar chart of publication counts per year.
func YearChart(counts []stats.YearCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Publications by Year"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Publications by Year"}),
	)

	years := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, yc := range counts {
		years[i] = strconv.Itoa(yc.Year)
		data[i] = opts.BarData{Value: yc.Count}
	}
	bar.SetXAxis(years).AddSeries("publications", data)
	return bar
}

// JournalChart builds a horizontal bar chart of the top journals,
// largest at the top.
func JournalChart(counts []stats.JournalCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top Publishing Journals"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Top Publishing Journals"}),
	)

	// Reverse so the highest count renders as the top bar.
	names := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, jc := range counts {
		j := len(counts) - 1 - i
		names[j] = jc.Journal
		data[j] = opts.BarData{Value: jc.Count}
	}
	bar.SetXAxis(names).AddSeries("publications", data)
	bar.XYReversal()
	return bar
}

// WordChart builds a bar chart of the most common title words.
func WordChart(counts []stats.WordCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Most Common Title Words"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Most Common Title Words"}),
	)

	tokens := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, wc := range counts {
		tokens[i] = wc.Word
		data[i] = opts.BarData{Value: wc.Count}
	}
	bar.SetXAxis(tokens).AddSeries("occurrences", data)
	return bar
}

// CloudChart builds a word cloud of title word frequencies.
func CloudChart(counts []stats.WordCount) *charts.WordCloud {
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Title Word Cloud"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Title Word Cloud"}),
	)

	data := make([]opts.WordCloudData, len(counts))
	for i, w := range counts {
		data[i] = opts.WordCloudData{Name: w.Word, Value: w.Count}
	}
	wc.AddSeries("titles", data,
		// The option constructor really is named "WorldCloud" upstream.
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{SizeRange: []float32{14, 72}}),
	)
	return wc
}

// Output filenames for the rendered charts.
const (
	yearsFile    = "years.html"
	journalsFile = "journals.html"
	wordsFile    = "words.html"
	cloudFile    = "wordcloud.html"
)

// renderable is the piece of the go-echarts chart API the writer needs.
type renderable interface {
	Render(w io.Writer) error
}

// WriteCharts renders all four charts into dir and returns the written
// file paths in a fixed order.
func WriteCharts(dir string, years []stats.YearCount, journals []stats.JournalCount, topWords []stats.WordCount) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	chartsByFile := []struct {
		file  string
		chart renderable
	}{
		{yearsFile, YearChart(years)},
		{journalsFile, JournalChart(journals)},
		{wordsFile, WordChart(topWords)},
		{cloudFile, CloudChart(topWords)},
	}

	var written []string
	for _, c := range chartsByFile {
		path := filepath.Join(dir, c.file)
		f, err := os.Create(path)
		if err != nil {
			return written, fmt.Errorf("creating %s: %w", path, err)
		}
		if err := c.chart.Render(f); err != nil {
			f.Close()
			return written, fmt.Errorf("rendering %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return written, fmt.Errorf("closing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
