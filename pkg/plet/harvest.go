package plet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// maxQueryURLLen is the point past which the portal starts rejecting requests
// with HTTP 414. Callers passing detailed polygons should simplify them first
// (see pkg/ospar).
const maxQueryURLLen = 8000

// HarvestRequest describes one harvest: a date range, a spatial filter and a
// dataset name. Immutable once formed; consumed exactly once per call.
type HarvestRequest struct {
	Start   time.Time // inclusive, must not be after End
	End     time.Time // inclusive
	WKT     string    // POLYGON or MULTIPOLYGON in well-known text
	Dataset string    // display name as returned by DatasetNames
}

// validate checks the date range and parses the spatial filter.
func (r HarvestRequest) validate() error {
	if r.End.Before(r.Start) {
		return fmt.Errorf("end date %s precedes start date %s",
			formatDate(r.End), formatDate(r.Start))
	}

	geom, err := wkt.Unmarshal(r.WKT)
	if err != nil {
		return fmt.Errorf("invalid WKT filter: %w", err)
	}
	switch geom.(type) {
	case orb.Polygon, orb.MultiPolygon:
	default:
		return fmt.Errorf("WKT filter must be a polygon, got %s", geom.GeoJSONType())
	}

	return nil
}

// queryURL builds the request URL for the fixed schema of the PLET endpoint.
func (c *Client) queryURL(r HarvestRequest) string {
	v := url.Values{}
	v.Set("startdate", formatDate(r.Start))
	v.Set("enddate", formatDate(r.End))
	v.Set("wkt", r.WKT)
	v.Set("abundance_dataset", r.Dataset)
	v.Set("format", "csv")
	return c.baseURL + "?" + v.Encode()
}

// Harvest retrieves one dataset for the given date range and spatial filter
// and returns the response body verbatim (CSV text).
//
// Each attempt is bounded by opts.Timeout. Transport failures are retried up
// to opts.Retries total attempts with exponential backoff; on exhaustion the
// returned error is a *HarvestError wrapping the final *TransportError.
func (c *Client) Harvest(ctx context.Context, req HarvestRequest, opts HarvestOptions) (string, error) {
	opts = opts.withDefaults()

	if err := req.validate(); err != nil {
		return "", err
	}

	if opts.VerifyDataset {
		names, err := c.DatasetNames(ctx)
		if err != nil {
			return "", fmt.Errorf("verify dataset: %w", err)
		}
		if !slices.Contains(names, req.Dataset) {
			return "", &UnknownDatasetError{Name: req.Dataset}
		}
	}

	u := c.queryURL(req)
	if len(u) > maxQueryURLLen {
		c.logger.Warn("query URL is very long; the portal may reject it",
			"dataset", req.Dataset, "len", len(u))
	}

	var lastErr error
	for attempt := 1; attempt <= opts.Retries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		body, err := c.fetch(ctx, u, opts.Timeout)
		if err == nil {
			return body, nil
		}
		lastErr = err

		c.logger.Warn("harvest attempt failed",
			"dataset", req.Dataset, "attempt", attempt, "of", opts.Retries, "error", err)

		if attempt == opts.Retries {
			break
		}

		delay := opts.Backoff << (attempt - 1)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", &HarvestError{
		Dataset: req.Dataset,
		Err:     &TransportError{URL: u, Attempts: opts.Retries, Err: lastErr},
	}
}

// fetch performs a single GET bounded by timeout and returns the body.
// Any non-200 status is an error.
func (c *Client) fetch(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("HTTP %d from portal", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}

// HarvestToCSV harvests a dataset and writes the result into outDir, creating
// the directory if absent. The filename is derived from the dataset name and
// date range. Returns the written path.
func (c *Client) HarvestToCSV(ctx context.Context, req HarvestRequest, outDir string, opts HarvestOptions) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	text, err := c.Harvest(ctx, req, opts)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s_%s.csv",
		sanitizeName(req.Dataset), formatDate(req.Start), formatDate(req.End))
	path := filepath.Join(outDir, name)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	c.logger.Info("harvest written", "dataset", req.Dataset, "path", path)
	return path, nil
}

var unsafeChars = regexp.MustCompile(`[^\w-]`)

// sanitizeName makes a dataset name safe for use as a filename: spaces become
// underscores, anything outside [A-Za-z0-9_-] is dropped, and the result is
// lowercased.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.ToLower(name)
}
