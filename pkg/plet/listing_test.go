package plet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// listingPage renders a minimal portal page exposing the given dataset names
// in its query form.
func listingPage(names ...string) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><form><select id="abundance_dataset" name="abundance_dataset">`)
	sb.WriteString(`<option value="">-- select a dataset --</option>`)
	for i, name := range names {
		fmt.Fprintf(&sb, `<option value="%d">%s</option>`, i+1, name)
	}
	sb.WriteString(`</select></form></body></html>`)
	return sb.String()
}

func TestDatasetNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage("Dataset One", "Dataset Two", "Dataset Three"))
	}))
	defer srv.Close()

	names, err := newTestClient("", srv.URL).DatasetNames(context.Background())
	if err != nil {
		t.Fatalf("DatasetNames failed: %v", err)
	}

	want := []string{"Dataset One", "Dataset Two", "Dataset Three"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d: %v", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDatasetNamesSkipsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage("Only Dataset"))
	}))
	defer srv.Close()

	names, err := newTestClient("", srv.URL).DatasetNames(context.Background())
	if err != nil {
		t.Fatalf("DatasetNames failed: %v", err)
	}
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), "select a dataset") {
			t.Errorf("placeholder leaked into names: %q", name)
		}
	}
}

func TestDatasetNamesMissingSelect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>maintenance</p></body></html>")
	}))
	defer srv.Close()

	if _, err := newTestClient("", srv.URL).DatasetNames(context.Background()); err == nil {
		t.Fatal("expected error when the dataset selector is absent")
	}
}

func TestDatasetNamesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient("", srv.URL).DatasetNames(context.Background())

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
}
