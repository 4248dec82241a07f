// Command plet harvests plankton lifeform datasets from the PLET portal and
// works with the bundled OSPAR COMP area catalog.
//
// Usage:
//
//	plet datasets
//	plet harvest -dataset NAME -start 2010-01-01 -end 2021-01-01 [-region SNS | -wkt POLYGON(...)] [-out DIR]
//	plet harvest-all -start 2010-01-01 -end 2021-01-01 [-region SNS | -wkt POLYGON(...)] -out DIR
//	plet assess -start 2015-01-01 -end 2025-01-01 [-out DIR] [-overwrite]
//	plet regions
//	plet wkt -region SNS [-simplify]
//	plet plot [-region SNS] -o map.svg
//	plet merge -dir .cache -o merged.csv [-parquet]
//	plet upload -file merged.parquet [-key data/merged.parquet]
//
// The portal endpoint can be overridden with PLET_BASE_URL / PLET_SITE_URL;
// upload credentials come from PLET_S3_* (a .env file is honoured).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/beetlebugorg/plet/pkg/plet"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "datasets":
		err = cmdDatasets(args)
	case "harvest":
		err = cmdHarvest(args)
	case "harvest-all":
		err = cmdHarvestAll(args)
	case "assess":
		err = cmdAssess(args)
	case "regions":
		err = cmdRegions(args)
	case "wkt":
		err = cmdWKT(args)
	case "plot":
		err = cmdPlot(args)
	case "merge":
		err = cmdMerge(args)
	case "upload":
		err = cmdUpload(args)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "plet: unknown subcommand %q\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		slog.Error("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: plet <command> [flags]

Commands:
  datasets     list the datasets exposed by the portal
  harvest      harvest one dataset to CSV
  harvest-all  harvest every dataset to CSV files
  assess       dataset x region matrix harvest with a file cache
  regions      list the bundled OSPAR COMP areas
  wkt          print a COMP area boundary as WKT
  plot         render COMP areas to an SVG map
  merge        merge harvested CSV files into one CSV or Parquet file
  upload       upload a file to the configured object store

Run 'plet <command> -h' for command flags.`)
}

// newClient builds a portal client honouring endpoint overrides from the
// environment.
func newClient() *plet.Client {
	opts := plet.DefaultClientOptions()
	if v := os.Getenv("PLET_BASE_URL"); v != "" {
		opts.BaseURL = v
	}
	if v := os.Getenv("PLET_SITE_URL"); v != "" {
		opts.SiteURL = v
	}
	return plet.NewClient(opts)
}

// parseDate parses the ISO date format used throughout the portal.
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("-%s is required", flag)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("-%s: %w", flag, err)
	}
	return t, nil
}
