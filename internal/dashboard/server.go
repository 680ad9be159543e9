// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard serves the interactive explorer. A Session holds
// the cleaned dataset read-only; every request re-runs aggregation
// over it with the filter from the query string, so rendering is a
// pure function of (session state, request filter).
package dashboard

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/paperscope/internal/report"
	"github.com/pdiddy/paperscope/internal/stats"
	"github.com/pdiddy/paperscope/pkg/types"
)

// sampleSize is the number of records shown in the sample table.
const sampleSize = 10

// Session holds everything the dashboard needs to answer a request.
// The record slice is built once at startup and never mutated.
type Session struct {
	source   string
	records  []types.Record
	cleaning types.CleaningReport
	cfg      types.StatsConfig
	journals []string
}

// NewSession builds a dashboard session over a cleaned dataset.
func NewSession(source string, records []types.Record, cleaning types.CleaningReport, cfg types.StatsConfig) *Session {
	return &Session{
		source:   source,
		records:  records,
		cleaning: cleaning,
		cfg:      cfg,
		journals: stats.JournalNames(records),
	}
}

// Handler returns the HTTP routes for the session.
func (s *Session) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/chart/years", s.chartHandler(s.yearChart))
	mux.HandleFunc("/chart/journals", s.chartHandler(s.journalChart))
	mux.HandleFunc("/chart/words", s.chartHandler(s.wordChart))
	mux.HandleFunc("/chart/cloud", s.chartHandler(s.cloudChart))
	return mux
}

// Serve blocks listening on addr.
func (s *Session) Serve(addr string, w io.Writer) error {
	fmt.Fprintf(w, "dashboard listening on http://%s (%d records)\n", addr, len(s.records))
	return http.ListenAndServe(addr, s.Handler())
}

// parseFilter builds the aggregation filter from query parameters.
// Errors wrap types.ErrInvalidArgument and leave the session usable.
func parseFilter(q url.Values) (stats.Filter, error) {
	var f stats.Filter
	var err error

	if v := q.Get("from"); v != "" {
		if f.FromYear, err = strconv.Atoi(v); err != nil {
			return f, fmt.Errorf("%w: from year %q is not a number", types.ErrInvalidArgument, v)
		}
	}
	if v := q.Get("to"); v != "" {
		if f.ToYear, err = strconv.Atoi(v); err != nil {
			return f, fmt.Errorf("%w: to year %q is not a number", types.ErrInvalidArgument, v)
		}
	}
	f.Journals = q["journal"]

	if err := f.Validate(); err != nil {
		return f, err
	}
	return f, nil
}

// --- chart endpoints ---

// chartHandler wraps a chart builder with filter parsing. Invalid
// filters are a client error, not a session failure.
func (s *Session) chartHandler(build func(records []types.Record, w io.Writer) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseFilter(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := build(f.Apply(s.records), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func (s *Session) yearChart(records []types.Record, w io.Writer) error {
	return report.YearChart(stats.CountsByYear(records)).Render(w)
}

func (s *Session) journalChart(records []types.Record, w io.Writer) error {
	counts, err := stats.TopJournals(records, s.topJournals())
	if err != nil {
		return err
	}
	return report.JournalChart(counts).Render(w)
}

func (s *Session) wordChart(records []types.Record, w io.Writer) error {
	counts, err := s.topWordCounts(records)
	if err != nil {
		return err
	}
	return report.WordChart(counts).Render(w)
}

func (s *Session) cloudChart(records []types.Record, w io.Writer) error {
	counts, err := s.topWordCounts(records)
	if err != nil {
		return err
	}
	return report.CloudChart(counts).Render(w)
}

func (s *Session) topWordCounts(records []types.Record) ([]stats.WordCount, error) {
	freq := stats.WordFrequencies(records, stats.Stopwords(s.cfg.Stopwords))
	return stats.TopWords(freq, s.topWords())
}

func (s *Session) topJournals() int {
	if s.cfg.TopJournals > 0 {
		return s.cfg.TopJournals
	}
	return 10
}

func (s *Session) topWords() int {
	if s.cfg.TopWords > 0 {
		return s.cfg.TopWords
	}
	return 20
}

// --- index page ---

type journalOption struct {
	Name     string
	Selected bool
}

type indexData struct {
	Source    string
	FilterErr string
	From      string
	To        string
	Journals  []journalOption
	Query     template.URL
	Summary   stats.Summary
	Cleaning  types.CleaningReport
	Sample    []types.Record
}

func (s *Session) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	data := indexData{
		Source: s.source,
		From:   q.Get("from"),
		To:     q.Get("to"),
	}

	f, err := parseFilter(q)
	if err != nil {
		if !errors.Is(err, types.ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		// Recoverable: show the message, keep the controls usable.
		data.FilterErr = err.Error()
		f = stats.Filter{}
	}

	selected := make(map[string]bool, len(f.Journals))
	for _, j := range f.Journals {
		selected[j] = true
	}
	for _, name := range s.journals {
		data.Journals = append(data.Journals, journalOption{Name: name, Selected: selected[name]})
	}

	filtered := f.Apply(s.records)
	data.Summary = stats.Summarize(filtered)
	data.Cleaning = s.cleaning
	if len(filtered) > sampleSize {
		data.Sample = filtered[:sampleSize]
	} else {
		data.Sample = filtered
	}
	if data.FilterErr == "" {
		data.Query = template.URL(q.Encode())
	}

	if err := indexTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Publication Metadata Explorer</title>
<style>
body { font-family: sans-serif; margin: 1.5em; }
fieldset { display: inline-block; margin-bottom: 1em; }
.metrics span { display: inline-block; margin-right: 2em; font-size: 1.1em; }
.error { color: #b00020; margin: 0.5em 0; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; text-align: left; }
iframe { border: none; width: 48%; height: 480px; }
</style>
</head>
<body>
<h1>Publication Metadata Explorer</h1>
<p>Source: {{.Source}} &mdash; {{.Cleaning.RowsOut}} records ({{.Cleaning.Discarded}} of {{.Cleaning.RowsIn}} rows discarded during cleaning)</p>

<form method="get" action="/">
<fieldset>
<legend>Filters</legend>
<label>From year <input type="number" name="from" value="{{.From}}"></label>
<label>To year <input type="number" name="to" value="{{.To}}"></label>
<label>Journals
<select name="journal" multiple size="4">
{{range .Journals}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select>
</label>
<button type="submit">Apply</button>
</fieldset>
</form>

{{if .FilterErr}}<p class="error">{{.FilterErr}}</p>{{end}}

<div class="metrics">
<span><b>{{.Summary.TotalPapers}}</b> papers</span>
<span><b>{{.Summary.UniqueJournals}}</b> journals</span>
<span><b>{{printf "%.1f" .Summary.AvgTitleWords}}</b> avg title words</span>
<span><b>{{.Summary.YearsCovered}}</b> years covered</span>
<span>peak: <b>{{.Summary.PeakCount}}</b> in <b>{{.Summary.PeakYear}}</b></span>
</div>

<div>
<iframe src="/chart/years?{{.Query}}"></iframe>
<iframe src="/chart/journals?{{.Query}}"></iframe>
<iframe src="/chart/words?{{.Query}}"></iframe>
<iframe src="/chart/cloud?{{.Query}}"></iframe>
</div>

<h2>Sample</h2>
<table>
<tr><th>Title</th><th>Authors</th><th>Journal</th><th>Year</th><th>Title words</th></tr>
{{range .Sample}}<tr><td>{{.Title}}</td><td>{{.Authors}}</td><td>{{.Journal}}</td><td>{{.PublishYear}}</td><td>{{.TitleWordCount}}</td></tr>
{{end}}</table>
</body>
</html>
`))
