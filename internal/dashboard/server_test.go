// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/paperscope/pkg/types"
)

func testSession() *Session {
	records := []types.Record{
		{Title: "Viral dynamics of SARS", Authors: "Smith, J.", Journal: "Nature", PublishYear: 2019, TitleWordCount: 4},
		{Title: "Viral load in patients", Authors: "Doe, A.", Journal: "Lancet", PublishYear: 2020, TitleWordCount: 4},
		{Title: "Mask efficacy studies", Authors: "Roe, C.", Journal: "Nature", PublishYear: 2021, TitleWordCount: 3},
	}
	cleaning := types.CleaningReport{RowsIn: 5, DiscardedBadDate: 2, RowsOut: 3}
	return NewSession("metadata.csv", records, cleaning, types.StatsConfig{})
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestIndexPage(t *testing.T) {
	srv := httptest.NewServer(testSession().Handler())
	defer srv.Close()

	status, body := get(t, srv, "/")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	for _, want := range []string{
		"metadata.csv",
		"<b>3</b> papers",
		"<b>2</b> journals",
		"Viral dynamics of SARS",
		`option value="Nature"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}
}

func TestIndexFiltered(t *testing.T) {
	srv := httptest.NewServer(testSession().Handler())
	defer srv.Close()

	status, body := get(t, srv, "/?from=2020&to=2021")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "<b>2</b> papers") {
		t.Error("year filter not applied to summary")
	}
	if strings.Contains(body, "Viral dynamics of SARS") {
		t.Error("2019 record should be filtered out of the sample")
	}
}

func TestIndexJournalFilter(t *testing.T) {
	srv := httptest.NewServer(testSession().Handler())
	defer srv.Close()

	status, body := get(t, srv, "/?journal=Lancet")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "<b>1</b> papers") {
		t.Error("journal filter not applied")
	}
}

func TestIndexInvalidRangeIsRecoverable(t *testing.T) {
	srv := httptest.NewServer(testSession().Handler())
	defer srv.Close()

	// Inverted range: the page still renders, with an inline message
	// and the unfiltered dataset.
	status, body := get(t, srv, "/?from=2021&to=2020")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "year range start 2021 is after end 2020") {
		t.Error("validation message not shown inline")
	}
	if !strings.Contains(body, "<b>3</b> papers") {
		t.Error("invalid filter should fall back to the full dataset")
	}
}

func TestChartEndpoints(t *testing.T) {
	srv := httptest.NewServer(testSession().Handler())
	defer srv.Close()

	for _, path := range []string{"/chart/years", "/chart/journals", "/chart/words", "/chart/cloud"} {
		status, body := get(t, srv, path+"?from=2020")
		if status != http.StatusOK {
			t.Errorf("%s status = %d, want 200", path, status)
		}
		if !strings.Contains(body, "echarts") {
			t.Errorf("%s did not render a chart", path)
		}
	}
}

func TestChartInvalidFilter(t *testing.T) {
	srv := httptest.NewServer(testSession().Handler())
	defer srv.Close()

	status, _ := get(t, srv, "/chart/years?from=2021&to=2020")
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}

	status, _ = get(t, srv, "/chart/years?from=abc")
	if status != http.StatusBadRequest {
		t.Errorf("non-numeric year: status = %d, want 400", status)
	}
}

func TestUnknownPath(t *testing.T) {
	srv := httptest.NewServer(testSession().Handler())
	defer srv.Close()

	status, _ := get(t, srv, "/nope")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}
