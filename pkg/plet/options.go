package plet

import "time"

// HarvestOptions controls timeout and retry behaviour of a harvest call.
type HarvestOptions struct {
	// Timeout bounds each individual attempt. The endpoint evaluates large
	// polygons slowly, so the default is generous: 10 minutes.
	Timeout time.Duration

	// Retries is the total number of attempts made before giving up.
	// Default is 3.
	Retries int

	// Backoff is the delay before the second attempt; it doubles after every
	// further failure. Default is 60 seconds.
	Backoff time.Duration

	// VerifyDataset re-fetches the dataset listing before harvesting and
	// fails with UnknownDatasetError when the requested name is absent.
	// Costs one extra request per call, so off by default.
	VerifyDataset bool
}

// DefaultHarvestOptions returns the defaults used against the live portal.
func DefaultHarvestOptions() HarvestOptions {
	return HarvestOptions{
		Timeout: 10 * time.Minute,
		Retries: 3,
		Backoff: 60 * time.Second,
	}
}

// withDefaults fills zero values so a zero HarvestOptions behaves like
// DefaultHarvestOptions.
func (o HarvestOptions) withDefaults() HarvestOptions {
	def := DefaultHarvestOptions()
	if o.Timeout == 0 {
		o.Timeout = def.Timeout
	}
	if o.Retries == 0 {
		o.Retries = def.Retries
	}
	if o.Backoff == 0 {
		o.Backoff = def.Backoff
	}
	return o
}
