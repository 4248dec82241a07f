package plet

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// RegionSource yields named spatial regions for matrix harvests.
// *ospar.Catalog satisfies it.
type RegionSource interface {
	// AllIDs returns the region ids in stable order.
	AllIDs() []string

	// WKT returns the boundary of a region as well-known text, optionally
	// simplified to keep query URLs short.
	WKT(id string, simplify bool) (string, error)
}

// AssessmentOptions configures HarvestForAssessment.
type AssessmentOptions struct {
	HarvestOptions

	// OutDir is the cache/output directory. Default ".cache".
	OutDir string

	// Overwrite re-harvests combinations whose output file already exists.
	Overwrite bool
}

// AssessmentEntry records the outcome of one dataset/region combination.
type AssessmentEntry struct {
	Dataset string
	Region  string
	Path    string // written (or cached) file, empty on failure
	Cached  bool   // true when an existing file was reused
	Err     error  // nil on success
}

// AssessmentReport aggregates a full dataset x region harvest run.
type AssessmentReport struct {
	Entries []AssessmentEntry
}

// Failed returns the entries that ended in an error.
func (r *AssessmentReport) Failed() []AssessmentEntry {
	var out []AssessmentEntry
	for _, e := range r.Entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

// Succeeded returns the entries with a usable output file, cached included.
func (r *AssessmentReport) Succeeded() []AssessmentEntry {
	var out []AssessmentEntry
	for _, e := range r.Entries {
		if e.Err == nil {
			out = append(out, e)
		}
	}
	return out
}

// HarvestForAssessment harvests every dataset in the portal listing for every
// region in the source, writing one CSV per combination into the cache
// directory. Combinations whose output file already exists are skipped unless
// opts.Overwrite is set, so an interrupted run can be resumed.
//
// Regions are queried with simplification enabled; detailed COMP boundaries
// otherwise push the query URL over the portal's length limit.
//
// Failures are recorded per combination and never abort the run. The returned
// error is non-nil only when the listing cannot be fetched or the context is
// cancelled (partial report returned).
func (c *Client) HarvestForAssessment(ctx context.Context, regions RegionSource, start, end time.Time, opts AssessmentOptions) (*AssessmentReport, error) {
	outDir := opts.OutDir
	if outDir == "" {
		outDir = ".cache"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	names, err := c.DatasetNames(ctx)
	if err != nil {
		return nil, err
	}
	ids := regions.AllIDs()

	c.logger.Info("starting assessment harvest",
		"datasets", len(names), "regions", len(ids), "out", outDir, "overwrite", opts.Overwrite)

	report := &AssessmentReport{}
	for di, dataset := range names {
		c.logger.Info("dataset", "index", di+1, "of", len(names), "name", dataset)

		for ri, id := range ids {
			entry := AssessmentEntry{Dataset: dataset, Region: id}
			stem := assessmentStem(dataset, id, start, end)
			path := filepath.Join(outDir, stem+".csv")

			if !opts.Overwrite {
				if _, statErr := os.Stat(path); statErr == nil {
					entry.Path = path
					entry.Cached = true
					report.Entries = append(report.Entries, entry)
					c.logger.Info("region cached", "index", ri+1, "of", len(ids), "region", id, "path", path)
					continue
				}
			}

			wktFilter, err := regions.WKT(id, true)
			if err != nil {
				entry.Err = err
				report.Entries = append(report.Entries, entry)
				c.logger.Warn("region lookup failed", "region", id, "error", err)
				continue
			}

			t0 := time.Now()
			text, err := c.Harvest(ctx, HarvestRequest{
				Start:   start,
				End:     end,
				WKT:     wktFilter,
				Dataset: dataset,
			}, opts.HarvestOptions)
			if err != nil {
				if ctx.Err() != nil {
					entry.Err = err
					report.Entries = append(report.Entries, entry)
					return report, ctx.Err()
				}
				entry.Err = err
				report.Entries = append(report.Entries, entry)
				c.logger.Warn("region failed",
					"index", ri+1, "of", len(ids), "region", id, "error", err)
				continue
			}

			if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
				entry.Err = fmt.Errorf("write %s: %w", path, err)
				report.Entries = append(report.Entries, entry)
				continue
			}

			entry.Path = path
			report.Entries = append(report.Entries, entry)
			c.logger.Info("region harvested",
				"index", ri+1, "of", len(ids), "region", id,
				"duration", time.Since(t0).Round(time.Second), "path", path)
		}
	}

	return report, nil
}

// maxStemLen caps assessment filename stems; longer stems get an md5 suffix
// to stay unique.
const maxStemLen = 100

// assessmentStem builds the deterministic filename stem for one
// dataset/region combination. MergeDir parses these stems back, so the
// format is load-bearing.
func assessmentStem(dataset, region string, start, end time.Time) string {
	stem := fmt.Sprintf("Dataset_%s_Region_%s_START_%s_STOP_%s",
		safeName(dataset), safeName(region), formatDate(start), formatDate(end))
	return limitFilename(stem, maxStemLen)
}

// safeName folds a string to ASCII and collapses every run of non-word
// characters to a single underscore.
func safeName(s string) string {
	folded := norm.NFKD.String(s)

	var sb strings.Builder
	pendingSep := false
	for _, r := range folded {
		if r > unicode.MaxASCII || unicode.IsMark(r) {
			continue
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return sb.String()
}

// limitFilename truncates a stem to max bytes, appending a short hash of the
// full stem to preserve uniqueness.
func limitFilename(name string, max int) string {
	if len(name) <= max {
		return name
	}
	sum := md5.Sum([]byte(name))
	return name[:max] + "_" + hex.EncodeToString(sum[:])[:8]
}
