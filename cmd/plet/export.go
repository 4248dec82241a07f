package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/beetlebugorg/plet/pkg/plet"
)

func cmdMerge(args []string) error {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	dir := fs.String("dir", ".cache", "directory of harvested CSV files")
	out := fs.String("o", "merged.csv", "output file")
	parquet := fs.Bool("parquet", false, "write Parquet instead of CSV")
	fs.Parse(args)

	table, err := plet.MergeDir(*dir)
	if err != nil {
		return err
	}

	if *parquet {
		if err := table.WriteParquetFile(*out); err != nil {
			return err
		}
	} else {
		if err := table.WriteCSVFile(*out); err != nil {
			return err
		}
	}

	fmt.Printf("merged %d rows, %d columns into %s\n", len(table.Rows), len(table.Columns), *out)
	return nil
}

func cmdUpload(args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	file := fs.String("file", "", "local file to upload (required)")
	key := fs.String("key", "", "object key (defaults to the file's base name)")
	fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("-file is required")
	}
	objectKey := *key
	if objectKey == "" {
		objectKey = filepath.Base(*file)
	}

	cfg, err := plet.StoreConfigFromEnv()
	if err != nil {
		return err
	}
	store, err := plet.NewObjectStore(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := store.EnsureBucket(ctx); err != nil {
		return err
	}
	uri, err := store.UploadFile(ctx, objectKey, *file)
	if err != nil {
		return err
	}

	fmt.Println(uri)
	return nil
}
