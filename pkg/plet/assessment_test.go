package plet

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// stubRegions is a fixed two-region source for matrix harvest tests.
type stubRegions struct{}

func (stubRegions) AllIDs() []string { return []string{"AAA", "BBB"} }

func (stubRegions) WKT(id string, simplify bool) (string, error) {
	switch id {
	case "AAA":
		return "POLYGON((0 0,1 0,1 1,0 1,0 0))", nil
	case "BBB":
		return "POLYGON((2 2,3 2,3 3,2 3,2 2))", nil
	}
	return "", fmt.Errorf("no region %q", id)
}

func TestHarvestForAssessment(t *testing.T) {
	dataHits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/site", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage("Dataset One"))
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		dataHits++
		fmt.Fprint(w, "taxon,count\ncopepoda,7\n")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	outDir := t.TempDir()
	client := newTestClient(srv.URL+"/data", srv.URL+"/site")
	opts := AssessmentOptions{HarvestOptions: fastOptions(1), OutDir: outDir}

	report, err := client.HarvestForAssessment(context.Background(),
		stubRegions{}, testStart, testEnd, opts)
	if err != nil {
		t.Fatalf("HarvestForAssessment failed: %v", err)
	}

	if len(report.Entries) != 2 {
		t.Fatalf("expected 2 entries (1 dataset x 2 regions), got %d", len(report.Entries))
	}
	if failed := report.Failed(); len(failed) != 0 {
		t.Fatalf("unexpected failures: %+v", failed)
	}
	if dataHits != 2 {
		t.Errorf("expected 2 data requests, got %d", dataHits)
	}

	for _, entry := range report.Entries {
		if entry.Cached {
			t.Errorf("first run should not report cached entries: %+v", entry)
		}
		if _, statErr := os.Stat(entry.Path); statErr != nil {
			t.Errorf("output file missing for %s/%s: %v", entry.Dataset, entry.Region, statErr)
		}
		base := filepath.Base(entry.Path)
		want := fmt.Sprintf("Dataset_Dataset_One_Region_%s_START_2010-01-01_STOP_2021-01-01.csv", entry.Region)
		if base != want {
			t.Errorf("filename = %q, want %q", base, want)
		}
	}

	// Second run must reuse the cache and never hit the data endpoint again.
	report, err = client.HarvestForAssessment(context.Background(),
		stubRegions{}, testStart, testEnd, opts)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if dataHits != 2 {
		t.Errorf("cached run issued %d extra data requests", dataHits-2)
	}
	for _, entry := range report.Entries {
		if !entry.Cached {
			t.Errorf("expected cached entry, got %+v", entry)
		}
	}

	// With Overwrite set, everything is harvested again.
	opts.Overwrite = true
	if _, err := client.HarvestForAssessment(context.Background(),
		stubRegions{}, testStart, testEnd, opts); err != nil {
		t.Fatalf("overwrite run failed: %v", err)
	}
	if dataHits != 4 {
		t.Errorf("overwrite run made %d data requests in total, want 4", dataHits)
	}
}

func TestHarvestForAssessmentRecordsFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/site", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage("Dataset One"))
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no data", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv.URL+"/data", srv.URL+"/site")
	report, err := client.HarvestForAssessment(context.Background(),
		stubRegions{}, testStart, testEnd,
		AssessmentOptions{HarvestOptions: fastOptions(1), OutDir: t.TempDir()})
	if err != nil {
		t.Fatalf("run should not abort on per-combination failures: %v", err)
	}

	if len(report.Failed()) != 2 {
		t.Errorf("expected 2 failed entries, got %d", len(report.Failed()))
	}
	if len(report.Succeeded()) != 0 {
		t.Errorf("expected no successes, got %d", len(report.Succeeded()))
	}
}

func TestAssessmentStem(t *testing.T) {
	start := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	stem := assessmentStem("BE Flanders Marine Institute (VLIZ) - LW_VLIZ_zoo", "SNS", start, end)
	want := "Dataset_BE_Flanders_Marine_Institute_VLIZ_LW_VLIZ_zoo_Region_SNS_START_2010-01-01_STOP_2021-01-01"
	if stem != want {
		t.Errorf("stem = %q, want %q", stem, want)
	}

	long := assessmentStem(strings.Repeat("Very Long Dataset Name ", 10), "NNS", start, end)
	if len(long) != maxStemLen+9 {
		t.Errorf("capped stem length = %d, want %d", len(long), maxStemLen+9)
	}
	if long[:maxStemLen] == want[:min(len(want), maxStemLen)] {
		t.Error("capped stem should derive from its own input")
	}

	// Same input always yields the same stem.
	if again := assessmentStem(strings.Repeat("Very Long Dataset Name ", 10), "NNS", start, end); again != long {
		t.Errorf("stem is not deterministic: %q vs %q", again, long)
	}
}

func TestSafeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Dataset One", "Dataset_One"},
		{"BE (VLIZ) - LW_zoo", "BE_VLIZ_LW_zoo"},
		{"Küste données", "Kuste_donnees"},
		{"trailing punctuation!!", "trailing_punctuation"},
		{"__keep_underscores__", "__keep_underscores__"},
	}
	for _, c := range cases {
		if got := safeName(c.in); got != c.want {
			t.Errorf("safeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
