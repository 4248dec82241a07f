package plet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	writerfile "github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet writes the merged table as a Parquet file with one optional
// UTF8 column per merged column, SNAPPY compressed.
//
// Parquet field names must be identifiers, so column names are folded with
// safeName; colliding columns keep the last value.
func (t *MergedTable) WriteParquet(w io.Writer) error {
	pf := writerfile.NewWriterFile(w)

	fields := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		fields[i] = parquetField(col)
	}

	pw, err := writer.NewJSONWriter(parquetSchema(fields), pf, 2)
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range t.Rows {
		obj := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			obj[fields[i]] = row[col]
		}
		encoded, err := json.Marshal(obj)
		if err != nil {
			return fmt.Errorf("encode row: %w", err)
		}
		if err := pw.Write(string(encoded)); err != nil {
			pw.WriteStop()
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finalize parquet: %w", err)
	}
	return pf.Close()
}

// WriteParquetFile writes the merged table to path.
func (t *MergedTable) WriteParquetFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := t.WriteParquet(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parquetField folds a CSV column name into a parquet-safe identifier.
func parquetField(col string) string {
	name := safeName(col)
	if name == "" {
		name = "column"
	}
	return name
}

// parquetSchema builds a parquet-go JSON schema with one optional string
// field per column.
func parquetSchema(fields []string) string {
	type tag struct {
		Tag string `json:"Tag"`
	}
	schema := struct {
		Tag    string `json:"Tag"`
		Fields []tag  `json:"Fields"`
	}{
		Tag: "name=parquet_go_root, repetitiontype=REQUIRED",
	}
	for _, f := range fields {
		schema.Fields = append(schema.Fields, tag{
			Tag: fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL", f),
		})
	}
	b, _ := json.Marshal(schema)
	return string(b)
}
