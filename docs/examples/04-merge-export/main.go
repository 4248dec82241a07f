package main

import (
	"context"
	"fmt"
	"log"

	"github.com/beetlebugorg/plet/pkg/plet"
)

func main() {
	// Merge every harvested CSV in the cache directory into one table
	table, err := plet.MergeDir(".cache")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Merged %d rows, %d columns\n", len(table.Rows), len(table.Columns))

	if err := table.WriteCSVFile("merged.csv"); err != nil {
		log.Fatal(err)
	}
	if err := table.WriteParquetFile("merged.parquet"); err != nil {
		log.Fatal(err)
	}

	// Upload to the bucket configured via PLET_S3_* (or a .env file)
	cfg, err := plet.StoreConfigFromEnv()
	if err != nil {
		log.Printf("skipping upload: %v", err)
		return
	}
	store, err := plet.NewObjectStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := store.EnsureBucket(ctx); err != nil {
		log.Fatal(err)
	}
	uri, err := store.UploadFile(ctx, "merged.parquet", "merged.parquet")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Uploaded: %s\n", uri)
}
