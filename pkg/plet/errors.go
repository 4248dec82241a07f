package plet

import (
	"fmt"
)

// TransportError indicates a network failure, timeout or error response from
// the portal. Harvest calls retry transport errors up to the configured
// attempt limit before surfacing them.
type TransportError struct {
	URL      string // request URL (query string included)
	Attempts int    // attempts made before giving up
	Err      error  // last underlying error
}

func (e *TransportError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HarvestError indicates a dataset could not be harvested. It carries the
// dataset name and wraps the final TransportError.
type HarvestError struct {
	Dataset string
	Err     error
}

func (e *HarvestError) Error() string {
	return fmt.Sprintf("harvest %q: %v", e.Dataset, e.Err)
}

func (e *HarvestError) Unwrap() error { return e.Err }

// UnknownDatasetError indicates a dataset name not present in the portal
// listing at harvest time. Not retried.
type UnknownDatasetError struct {
	Name string
}

func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset: %q", e.Name)
}
