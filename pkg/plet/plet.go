// Package plet is a client for the Plankton Lifeform Extraction Tool (PLET),
// the DASSH data portal serving plankton lifeform abundance datasets.
//
// The portal exposes a single form-style automation endpoint: a GET request
// carrying a date range, a WKT polygon and a dataset name returns the matching
// records as CSV text. There is no listing API; the available datasets are
// scraped from the query form itself.
//
// # Basic Usage
//
//	client := plet.NewClient(plet.DefaultClientOptions())
//
//	names, err := client.DatasetNames(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	csv, err := client.Harvest(ctx, plet.HarvestRequest{
//	    Start:   time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
//	    End:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
//	    WKT:     "POLYGON((-180 -90,-180 90,180 90,180 -90,-180 -90))",
//	    Dataset: names[0],
//	}, plet.DefaultHarvestOptions())
//
// Spatial filters are usually taken from the pkg/ospar region catalog, with
// simplification enabled so the query URL stays within upstream limits.
package plet

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the PLET automation endpoint.
	DefaultBaseURL = "https://www.dassh.ac.uk/plet/cgi-bin/get_form.py"

	// DefaultSiteURL is the query form page the dataset listing is scraped from.
	DefaultSiteURL = "https://www.dassh.ac.uk/lifeforms/"
)

// dateLayout is the ISO date encoding the endpoint expects.
const dateLayout = "2006-01-02"

// ClientOptions configures a Client.
type ClientOptions struct {
	// BaseURL overrides the PLET automation endpoint.
	BaseURL string

	// SiteURL overrides the page used for dataset listing.
	SiteURL string

	// HTTPClient allows injecting a custom client (for tests/stubs).
	// Per-request timeouts are applied via context, so the client itself
	// should not set one.
	HTTPClient *http.Client

	// Logger receives progress and retry diagnostics.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// RequestsPerSecond limits the request rate toward the portal.
	// The endpoint evaluates spatial queries slowly and is shared
	// infrastructure. Default is 1.
	RequestsPerSecond float64

	// Burst is the rate limiter burst size. Default is 1.
	Burst int
}

// DefaultClientOptions returns options pointing at the live portal.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		BaseURL:           DefaultBaseURL,
		SiteURL:           DefaultSiteURL,
		RequestsPerSecond: 1,
		Burst:             1,
	}
}

// Client issues requests against the PLET portal.
//
// A Client is safe for use from a single goroutine; harvest calls block for
// the duration of the HTTP exchange plus any retries.
type Client struct {
	baseURL    string
	siteURL    string
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
}

// NewClient creates a Client from the given options. Zero-valued fields fall
// back to DefaultClientOptions.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.SiteURL == "" {
		opts.SiteURL = DefaultSiteURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RequestsPerSecond == 0 {
		opts.RequestsPerSecond = 1
	}
	if opts.Burst == 0 {
		opts.Burst = 1
	}

	return &Client{
		baseURL:    opts.BaseURL,
		siteURL:    opts.SiteURL,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
	}
}

// formatDate renders a query date in the endpoint's encoding.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
