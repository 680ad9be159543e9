// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes descriptive statistics over cleaned
// publication records. Every function is a pure function of its
// inputs: no I/O, no hidden state.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/pdiddy/paperscope/pkg/types"
)

// minTokenLen is the shortest title token counted by WordFrequencies.
const minTokenLen = 3

// YearCount is the number of publications in one year.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// JournalCount is the number of publications in one journal.
type JournalCount struct {
	Journal string `json:"journal" yaml:"journal"`
	Count   int    `json:"count" yaml:"count"`
}

// WordCount is the number of occurrences of one title token.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// CountsByYear groups records by publication year and returns the
// counts in ascending year order.
func CountsByYear(records []types.Record) []YearCount {
	byYear := make(map[int]int)
	for _, r := range records {
		byYear[r.PublishYear]++
	}

	counts := make([]YearCount, 0, len(byYear))
	for year, n := range byYear {
		counts = append(counts, YearCount{Year: year, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Year < counts[j].Year })
	return counts
}

// TopJournals returns the n journals with the most publications, in
// descending count order. Ties are broken by first occurrence in the
// record sequence. Records without a journal are skipped.
func TopJournals(records []types.Record, n int) ([]JournalCount, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: top journal count must be positive, got %d", types.ErrInvalidArgument, n)
	}

	byJournal := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, r := range records {
		if r.Journal == "" {
			continue
		}
		if _, ok := byJournal[r.Journal]; !ok {
			firstSeen[r.Journal] = i
		}
		byJournal[r.Journal]++
	}

	counts := make([]JournalCount, 0, len(byJournal))
	for journal, c := range byJournal {
		counts = append(counts, JournalCount{Journal: journal, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return firstSeen[counts[i].Journal] < firstSeen[counts[j].Journal]
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts, nil
}

// WordFrequencies tokenizes every record title and counts tokens.
// Titles are lowercased, segmented on word boundaries, and further
// split on any non-alphanumeric rune the segmenter keeps word-internal
// (so "don't" counts "don", not "don't"). Tokens shorter than three
// characters or in the stopword set are dropped. The returned map is
// unordered.
func WordFrequencies(records []types.Record, stopwords map[string]struct{}) map[string]int {
	freq := make(map[string]int)
	for _, r := range records {
		tokens := words.FromString(strings.ToLower(r.Title))
		for tokens.Next() {
			for _, part := range splitAlnum(tokens.Value()) {
				if countable(part, stopwords) {
					freq[part]++
				}
			}
		}
	}
	return freq
}

// splitAlnum breaks a token into its alphanumeric runs.
func splitAlnum(token string) []string {
	return strings.FieldsFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// countable reports whether a token participates in frequency counts.
func countable(token string, stopwords map[string]struct{}) bool {
	if utf8.RuneCountInString(token) < minTokenLen {
		return false
	}
	_, stopped := stopwords[token]
	return !stopped
}

// TopWords ranks a frequency map and returns the n most common tokens
// in descending count order, ties broken alphabetically so the result
// is deterministic.
func TopWords(freq map[string]int, n int) ([]WordCount, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: top word count must be positive, got %d", types.ErrInvalidArgument, n)
	}

	counts := make([]WordCount, 0, len(freq))
	for word, c := range freq {
		counts = append(counts, WordCount{Word: word, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts, nil
}

// Summary holds the headline metrics shown above the charts.
type Summary struct {
	TotalPapers    int     `json:"total_papers" yaml:"total_papers"`
	UniqueJournals int     `json:"unique_journals" yaml:"unique_journals"`
	AvgTitleWords  float64 `json:"avg_title_words" yaml:"avg_title_words"`
	YearsCovered   int     `json:"years_covered" yaml:"years_covered"`
	PeakYear       int     `json:"peak_year" yaml:"peak_year"`
	PeakCount      int     `json:"peak_count" yaml:"peak_count"`
}

// Summarize computes the headline metrics for a record set.
func Summarize(records []types.Record) Summary {
	var s Summary
	s.TotalPapers = len(records)
	if len(records) == 0 {
		return s
	}

	journals := make(map[string]struct{})
	totalWords := 0
	minYear, maxYear := records[0].PublishYear, records[0].PublishYear
	for _, r := range records {
		if r.Journal != "" {
			journals[r.Journal] = struct{}{}
		}
		totalWords += r.TitleWordCount
		if r.PublishYear < minYear {
			minYear = r.PublishYear
		}
		if r.PublishYear > maxYear {
			maxYear = r.PublishYear
		}
	}

	s.UniqueJournals = len(journals)
	s.AvgTitleWords = float64(totalWords) / float64(len(records))
	s.YearsCovered = maxYear - minYear + 1

	for _, yc := range CountsByYear(records) {
		if yc.Count > s.PeakCount {
			s.PeakYear = yc.Year
			s.PeakCount = yc.Count
		}
	}
	return s
}
