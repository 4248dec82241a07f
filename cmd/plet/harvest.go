package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beetlebugorg/plet/pkg/ospar"
	"github.com/beetlebugorg/plet/pkg/plet"
)

// worldWKT is the default spatial filter: everything.
const worldWKT = "POLYGON((-180 -90,-180 90,180 90,180 -90,-180 -90))"

// harvestFlags are the flags shared by harvest and harvest-all.
type harvestFlags struct {
	start, end string
	wkt        string
	region     string
	out        string
	timeout    time.Duration
	retries    int
	backoff    time.Duration
}

func (hf *harvestFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&hf.start, "start", "", "start date (YYYY-MM-DD)")
	fs.StringVar(&hf.end, "end", "", "end date (YYYY-MM-DD)")
	fs.StringVar(&hf.wkt, "wkt", "", "spatial filter as a WKT polygon")
	fs.StringVar(&hf.region, "region", "", "OSPAR COMP area id to use as spatial filter (simplified)")
	fs.StringVar(&hf.out, "out", ".", "output directory")
	fs.DurationVar(&hf.timeout, "timeout", 0, "per-attempt timeout (default 10m)")
	fs.IntVar(&hf.retries, "retries", 0, "total attempts per request (default 3)")
	fs.DurationVar(&hf.backoff, "backoff", 0, "initial retry delay, doubles per attempt (default 1m)")
}

// resolve validates the date range and picks the spatial filter: -wkt wins,
// then -region (simplified), then the whole world.
func (hf *harvestFlags) resolve() (start, end time.Time, wktFilter string, opts plet.HarvestOptions, err error) {
	start, err = parseDate("start", hf.start)
	if err != nil {
		return
	}
	end, err = parseDate("end", hf.end)
	if err != nil {
		return
	}

	switch {
	case hf.wkt != "":
		wktFilter = hf.wkt
	case hf.region != "":
		wktFilter, err = ospar.NewCatalog().WKT(hf.region, true)
		if err != nil {
			return
		}
	default:
		wktFilter = worldWKT
	}

	opts = plet.HarvestOptions{
		Timeout: hf.timeout,
		Retries: hf.retries,
		Backoff: hf.backoff,
	}
	return
}

func cmdDatasets(args []string) error {
	fs := flag.NewFlagSet("datasets", flag.ExitOnError)
	fs.Parse(args)

	names, err := newClient().DatasetNames(context.Background())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func cmdHarvest(args []string) error {
	fs := flag.NewFlagSet("harvest", flag.ExitOnError)
	var hf harvestFlags
	hf.register(fs)
	dataset := fs.String("dataset", "", "dataset display name (required)")
	stdout := fs.Bool("stdout", false, "print CSV to stdout instead of writing a file")
	fs.Parse(args)

	if *dataset == "" {
		return fmt.Errorf("-dataset is required")
	}

	start, end, wktFilter, opts, err := hf.resolve()
	if err != nil {
		return err
	}

	req := plet.HarvestRequest{Start: start, End: end, WKT: wktFilter, Dataset: *dataset}
	client := newClient()

	if *stdout {
		text, err := client.Harvest(context.Background(), req, opts)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	path, err := client.HarvestToCSV(context.Background(), req, hf.out, opts)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func cmdHarvestAll(args []string) error {
	fs := flag.NewFlagSet("harvest-all", flag.ExitOnError)
	var hf harvestFlags
	hf.register(fs)
	fs.Parse(args)

	start, end, wktFilter, opts, err := hf.resolve()
	if err != nil {
		return err
	}

	result, err := newClient().HarvestAll(context.Background(), start, end, wktFilter, hf.out, opts)
	if err != nil {
		return err
	}

	for name, path := range result.Results {
		fmt.Printf("ok\t%s\t%s\n", name, path)
	}
	for name, ferr := range result.Failures {
		fmt.Printf("failed\t%s\t%v\n", name, ferr)
	}
	fmt.Fprintf(os.Stderr, "%d harvested, %d failed\n", len(result.Results), len(result.Failures))
	return nil
}

func cmdAssess(args []string) error {
	fs := flag.NewFlagSet("assess", flag.ExitOnError)
	var hf harvestFlags
	hf.register(fs)
	overwrite := fs.Bool("overwrite", false, "re-harvest combinations with existing output files")
	fs.Parse(args)

	start, err := parseDate("start", hf.start)
	if err != nil {
		return err
	}
	end, err := parseDate("end", hf.end)
	if err != nil {
		return err
	}

	out := hf.out
	if out == "." {
		out = ".cache"
	}

	report, err := newClient().HarvestForAssessment(context.Background(),
		ospar.NewCatalog(), start, end, plet.AssessmentOptions{
			HarvestOptions: plet.HarvestOptions{
				Timeout: hf.timeout,
				Retries: hf.retries,
				Backoff: hf.backoff,
			},
			OutDir:    out,
			Overwrite: *overwrite,
		})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d succeeded, %d failed\n",
		len(report.Succeeded()), len(report.Failed()))
	return nil
}
