package plet

import (
	"context"
	"time"
)

// BatchResult aggregates the outcome of a multi-dataset harvest.
//
// Every dataset name from the listing appears in exactly one of the two maps:
// Results maps names to written file paths, Failures maps names to the error
// that exhausted their retries. One dataset's failure never aborts the batch.
type BatchResult struct {
	Results  map[string]string
	Failures map[string]error
}

// Total returns the number of datasets attempted.
func (r *BatchResult) Total() int {
	return len(r.Results) + len(r.Failures)
}

// HarvestAll harvests every dataset in the portal listing for the given date
// range and spatial filter, writing one CSV file per dataset into outDir.
//
// Datasets are processed strictly sequentially. Per-dataset failures are
// collected in the result, not raised; the returned error is non-nil only
// when the listing itself cannot be fetched or the context is cancelled.
// On cancellation the partial result is returned alongside ctx.Err().
func (c *Client) HarvestAll(ctx context.Context, start, end time.Time, wktFilter, outDir string, opts HarvestOptions) (*BatchResult, error) {
	names, err := c.DatasetNames(ctx)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Results:  make(map[string]string, len(names)),
		Failures: make(map[string]error),
	}

	for _, name := range names {
		c.logger.Info("harvesting dataset", "dataset", name)

		path, err := c.HarvestToCSV(ctx, HarvestRequest{
			Start:   start,
			End:     end,
			WKT:     wktFilter,
			Dataset: name,
		}, outDir, opts)

		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			c.logger.Warn("dataset failed", "dataset", name, "error", err)
			result.Failures[name] = err
			continue
		}

		result.Results[name] = path
	}

	return result, nil
}
