package plet

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/beetlebugorg/plet/internal/scrape"
)

// DatasetNames returns the dataset names currently exposed by the portal, in
// page order. Each call re-queries the source; there is no caching and no
// retry. Transport errors are surfaced as *TransportError.
//
// The names come from the <select id="abundance_dataset"> element of the
// query form; the "select a dataset" placeholder is skipped.
func (c *Client) DatasetNames(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.siteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: c.siteURL, Attempts: 1, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			URL:      c.siteURL,
			Attempts: 1,
			Err:      fmt.Errorf("HTTP %d from portal", resp.StatusCode),
		}
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse portal page: %w", err)
	}

	options := scrape.SelectOptions(doc, "abundance_dataset")
	if options == nil {
		return nil, fmt.Errorf("dataset selector not found on %s", c.siteURL)
	}

	var names []string
	for _, opt := range options {
		if opt.Text == "" || strings.Contains(strings.ToLower(opt.Text), "select a dataset") {
			continue
		}
		names = append(names, opt.Text)
	}

	return names, nil
}
