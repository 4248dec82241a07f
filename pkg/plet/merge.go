package plet

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MergedTable is the union of a directory of harvested CSV files, with
// dataset_name and region_id columns injected from the filename stems.
//
// Columns holds the header in output order (dataset_name and region_id
// first, then every source column in first-seen order). Rows are keyed by
// column name; missing cells read as "".
type MergedTable struct {
	Columns []string
	Rows    []map[string]string
}

// stemPattern recovers the dataset and region from an assessment filename
// stem (see assessmentStem).
var stemPattern = regexp.MustCompile(`^Dataset_(.+?)_Region_(.+?)_START_`)

// MergeDir loads every .csv file in dir into a single table.
//
// Files whose payload is an HTML error page (the portal answers some bad
// queries with HTTP 200 and a <html> body) are skipped with a warning, as are
// files that fail CSV parsing. An error is returned only when the directory
// cannot be read or no file yields any usable rows.
func MergeDir(dir string) (*MergedTable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	table := &MergedTable{Columns: []string{"dataset_name", "region_id"}}
	seen := map[string]bool{"dataset_name": true, "region_id": true}
	merged := 0

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable file", "file", entry.Name(), "error", err)
			continue
		}
		if looksLikeHTML(data) {
			slog.Warn("skipping HTML/error payload", "file", entry.Name())
			continue
		}

		records, err := readCSV(data)
		if err != nil || len(records) < 2 {
			slog.Warn("skipping unparseable file", "file", entry.Name(), "error", err)
			continue
		}

		dataset, region := "unknown_dataset", "unknown_region"
		stem := strings.TrimSuffix(entry.Name(), ".csv")
		if m := stemPattern.FindStringSubmatch(stem); m != nil {
			dataset, region = m[1], m[2]
		}

		header := records[0]
		for _, col := range header {
			if !seen[col] {
				seen[col] = true
				table.Columns = append(table.Columns, col)
			}
		}

		for _, rec := range records[1:] {
			row := make(map[string]string, len(header)+2)
			row["dataset_name"] = dataset
			row["region_id"] = region
			for i, col := range header {
				if i < len(rec) {
					row[col] = rec[i]
				}
			}
			table.Rows = append(table.Rows, row)
		}
		merged++
	}

	if merged == 0 {
		return nil, fmt.Errorf("no usable CSV files in %s", dir)
	}

	return table, nil
}

// looksLikeHTML reports whether a payload starts with markup rather than a
// CSV header row.
func looksLikeHTML(data []byte) bool {
	trimmed := strings.TrimLeftFunc(string(data[:min(len(data), 64)]), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\uFEFF'
	})
	return strings.HasPrefix(trimmed, "<")
}

// readCSV parses a payload leniently: harvested files occasionally have
// ragged rows, which FieldsPerRecord = -1 tolerates.
func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// WriteCSV writes the merged table as a single CSV document.
func (t *MergedTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the merged table to path.
func (t *MergedTable) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
