package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/beetlebugorg/plet/pkg/plet"
)

func main() {
	// Create client
	client := plet.NewClient(plet.DefaultClientOptions())

	// List available datasets
	names, err := client.DatasetNames(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Datasets: %d\n", len(names))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}

	if len(names) == 0 {
		return
	}

	// Harvest the first dataset for one year, whole world
	path, err := client.HarvestToCSV(context.Background(), plet.HarvestRequest{
		Start:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		WKT:     "POLYGON((-180 -90,-180 90,180 90,180 -90,-180 -90))",
		Dataset: names[0],
	}, ".", plet.DefaultHarvestOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wrote: %s\n", path)
}
