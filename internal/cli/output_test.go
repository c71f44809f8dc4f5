package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nthakkar/basketballref/internal/table"
)

func sampleResult() *Result {
	t := table.New("player", "PTS")
	t.Append(table.Row{"player": table.Str("Stephen Curry"), "PTS": table.Num(37)})
	t.Append(table.Row{"player": table.Str("Nick Young"), "PTS": table.Num(6)})
	return &Result{
		Title:      "Golden State Warriors at Cleveland Cavaliers Box Score, June 8, 2018",
		FinalScore: map[string]float64{"Golden State Warriors": 43},
		Table:      t,
	}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Box Score, June 8, 2018",
		"Golden State Warriors: 43",
		"Stephen Curry",
		"Total: 2 rows",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOutputTextEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{Table: table.New("date")}
	if err := WriteOutput(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No rows.") {
		t.Errorf("expected empty-table message, got %q", buf.String())
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded struct {
		Title    string                   `json:"title"`
		RowCount int                      `json:"row_count"`
		Rows     []map[string]interface{} `json:"rows"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.RowCount != 2 || len(decoded.Rows) != 2 {
		t.Errorf("expected 2 rows, got count=%d len=%d", decoded.RowCount, len(decoded.Rows))
	}
	if decoded.Rows[0]["player"] != "Stephen Curry" {
		t.Errorf("unexpected first row %v", decoded.Rows[0])
	}
}

func TestWriteOutputCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatCSV); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "player,PTS" {
		t.Errorf("unexpected CSV header %q", lines[0])
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("yaml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
