package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/beetlebugorg/plet/pkg/ospar"
	"github.com/beetlebugorg/plet/pkg/plet"
)

func main() {
	client := plet.NewClient(plet.DefaultClientOptions())

	// Every dataset crossed with every COMP area; existing files in the
	// cache directory are skipped, so interrupted runs resume.
	report, err := client.HarvestForAssessment(context.Background(),
		ospar.NewCatalog(),
		time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		plet.AssessmentOptions{
			HarvestOptions: plet.DefaultHarvestOptions(),
			OutDir:         ".cache",
		})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Succeeded: %d\n", len(report.Succeeded()))
	for _, entry := range report.Failed() {
		fmt.Printf("Failed: %s / %s: %v\n", entry.Dataset, entry.Region, entry.Err)
	}
}
