package plet

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// batchServer serves the portal listing on /site and harvest data on /data,
// failing every dataset name in broken.
func batchServer(t *testing.T, names []string, broken map[string]bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/site", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage(names...))
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("abundance_dataset")
		if broken[name] {
			http.Error(w, "no data", http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "taxon,count\nsample for %s,1\n", name)
	})
	return httptest.NewServer(mux)
}

func TestHarvestAll(t *testing.T) {
	names := []string{"Dataset One", "Dataset Two", "Dataset Three"}
	srv := batchServer(t, names, map[string]bool{"Dataset Two": true})
	defer srv.Close()

	client := newTestClient(srv.URL+"/data", srv.URL+"/site")
	result, err := client.HarvestAll(context.Background(),
		testStart, testEnd, testWKT, t.TempDir(), fastOptions(2))
	if err != nil {
		t.Fatalf("HarvestAll failed: %v", err)
	}

	if result.Total() != len(names) {
		t.Errorf("Total() = %d, want %d", result.Total(), len(names))
	}
	if len(result.Results) != 2 {
		t.Errorf("got %d successes, want 2: %v", len(result.Results), result.Results)
	}
	if len(result.Failures) != 1 {
		t.Errorf("got %d failures, want 1: %v", len(result.Failures), result.Failures)
	}
	if _, ok := result.Failures["Dataset Two"]; !ok {
		t.Error("expected Dataset Two among the failures")
	}
	for name := range result.Results {
		if _, both := result.Failures[name]; both {
			t.Errorf("dataset %q appears in both Results and Failures", name)
		}
	}
}

func TestHarvestAllListingFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	if _, err := client.HarvestAll(context.Background(),
		testStart, testEnd, testWKT, t.TempDir(), fastOptions(1)); err == nil {
		t.Fatal("expected error when the listing cannot be fetched")
	}
}

func TestHarvestAllCancellation(t *testing.T) {
	names := []string{"Dataset One", "Dataset Two"}
	srv := batchServer(t, names, nil)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(srv.URL+"/data", srv.URL+"/site")
	_, err := client.HarvestAll(ctx, testStart, testEnd, testWKT, t.TempDir(), fastOptions(1))
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
