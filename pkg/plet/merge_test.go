package plet

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestMergeDir(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir,
		"Dataset_ds_one_Region_SNS_START_2010-01-01_STOP_2021-01-01.csv",
		"taxon,count\ncopepoda,3\ndiatom,9\n")
	writeTestFile(t, dir,
		"Dataset_ds_two_Region_NNS_START_2010-01-01_STOP_2021-01-01.csv",
		"taxon,biomass\ncopepoda,1.5\n")
	writeTestFile(t, dir, "error_page.csv",
		"<html><body><h1>500 Internal Server Error</h1></body></html>")
	writeTestFile(t, dir, "notes.txt", "not part of the merge")

	table, err := MergeDir(dir)
	if err != nil {
		t.Fatalf("MergeDir failed: %v", err)
	}

	wantColumns := []string{"dataset_name", "region_id", "taxon", "count", "biomass"}
	if len(table.Columns) != len(wantColumns) {
		t.Fatalf("columns = %v, want %v", table.Columns, wantColumns)
	}
	for i := range wantColumns {
		if table.Columns[i] != wantColumns[i] {
			t.Errorf("columns[%d] = %q, want %q", i, table.Columns[i], wantColumns[i])
		}
	}

	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}

	byDataset := map[string]int{}
	for _, row := range table.Rows {
		byDataset[row["dataset_name"]]++
	}
	if byDataset["ds_one"] != 2 || byDataset["ds_two"] != 1 {
		t.Errorf("rows per dataset = %v", byDataset)
	}

	for _, row := range table.Rows {
		switch row["dataset_name"] {
		case "ds_one":
			if row["region_id"] != "SNS" {
				t.Errorf("ds_one region = %q, want SNS", row["region_id"])
			}
			if row["biomass"] != "" {
				t.Errorf("ds_one should have empty biomass, got %q", row["biomass"])
			}
		case "ds_two":
			if row["region_id"] != "NNS" {
				t.Errorf("ds_two region = %q, want NNS", row["region_id"])
			}
			if row["biomass"] != "1.5" {
				t.Errorf("ds_two biomass = %q, want 1.5", row["biomass"])
			}
		}
	}
}

func TestMergeDirUnparsableStem(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "adhoc_export.csv", "taxon,count\ncopepoda,3\n")

	table, err := MergeDir(dir)
	if err != nil {
		t.Fatalf("MergeDir failed: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if got := table.Rows[0]["dataset_name"]; got != "unknown_dataset" {
		t.Errorf("dataset_name = %q, want unknown_dataset", got)
	}
	if got := table.Rows[0]["region_id"]; got != "unknown_region" {
		t.Errorf("region_id = %q, want unknown_region", got)
	}
}

func TestMergeDirNoUsableFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "error_page.csv", "<html><body>broken</body></html>")

	if _, err := MergeDir(dir); err == nil {
		t.Fatal("expected error when no file yields usable rows")
	}
}

func TestLooksLikeHTML(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"<html><body>err</body></html>", true},
		{"  \n\t<!DOCTYPE html>", true},
		{"\uFEFF<html>", true},
		{"taxon,count\n", false},
		{"", false},
	}
	for _, c := range cases {
		if got := looksLikeHTML([]byte(c.in)); got != c.want {
			t.Errorf("looksLikeHTML(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	table := &MergedTable{
		Columns: []string{"dataset_name", "region_id", "taxon"},
		Rows: []map[string]string{
			{"dataset_name": "ds", "region_id": "SNS", "taxon": "copepoda"},
			{"dataset_name": "ds", "region_id": "NNS"},
		},
	}

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "dataset_name" || records[0][1] != "region_id" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[2][2] != "" {
		t.Errorf("missing cell should serialize empty, got %q", records[2][2])
	}
}
