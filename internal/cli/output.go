package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nthakkar/basketballref/internal/export"
	"github.com/nthakkar/basketballref/internal/table"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)

// Result contains one command's output: the table plus whatever scalar
// metadata the component produced.
type Result struct {
	Title       string                   `json:"title,omitempty"`
	Description string                   `json:"description,omitempty"`
	FinalScore  map[string]float64       `json:"final_score,omitempty"`
	RowCount    int                      `json:"row_count"`
	Rows        []map[string]table.Value `json:"rows"`

	Table *table.Table `json:"-"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return export.WriteCSV(w, result.Table)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the result as a single JSON object with metadata and
// one object per row.
func writeJSON(w io.Writer, result *Result) error {
	result.RowCount = result.Table.Len()
	result.Rows = make([]map[string]table.Value, 0, result.Table.Len())
	for _, row := range result.Table.Rows {
		obj := make(map[string]table.Value, len(result.Table.Columns))
		for _, c := range result.Table.Columns {
			obj[c] = row.Get(c)
		}
		result.Rows = append(result.Rows, obj)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the result as human-readable text: metadata lines, then
// an aligned table.
func writeText(w io.Writer, result *Result) error {
	if result.Title != "" {
		fmt.Fprintln(w, result.Title)
	}
	if result.Description != "" {
		fmt.Fprintf(w, "\n%s\n", result.Description)
	}
	if len(result.FinalScore) > 0 {
		fmt.Fprintln(w)
		for team, points := range result.FinalScore {
			fmt.Fprintf(w, "%s: %.0f\n", team, points)
		}
	}
	if result.Title != "" || result.Description != "" || len(result.FinalScore) > 0 {
		fmt.Fprintln(w)
	}

	t := result.Table
	if t.Len() == 0 {
		fmt.Fprintln(w, "No rows.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range t.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, row.Get(c).String())
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal: %d rows\n", t.Len())
	return nil
}
