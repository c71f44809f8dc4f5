package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nthakkar/basketballref/internal/table"
)

// WriteJSON renders the table as an indented JSON array of row objects.
func WriteJSON(w io.Writer, t *table.Table) error {
	rows := make([]map[string]table.Value, 0, t.Len())
	for _, row := range t.Rows {
		obj := make(map[string]table.Value, len(t.Columns))
		for _, c := range t.Columns {
			obj[c] = row.Get(c)
		}
		rows = append(rows, obj)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

// WriteCSV renders the table as CSV with a header row. Missing cells render
// as empty fields.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			record[i] = row.Get(c).String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes the table to path, choosing the representation from the file
// extension (.json or .csv). Parent directories are created and a leading
// ~/ expands to the home directory.
func Save(path string, t *table.Table) error {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = WriteJSON(&buf, t)
	case ".csv":
		err = WriteCSV(&buf, t)
	default:
		return fmt.Errorf("unsupported output extension %q (want .json or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
