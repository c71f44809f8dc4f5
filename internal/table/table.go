package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Row maps a column name to a cell value. Columns absent from the map are
// treated as missing.
type Row map[string]Value

// Table is an ordered set of named columns over rows of cells. Column order
// is first-seen order; appending a row with an unseen column extends the
// column set.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates a table with the given initial columns.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds a row, extending the column set with any unseen column names.
// order gives the caller's column order for unseen names (typically the
// source table's cell order); unseen names not covered by order are added
// sorted so column order stays deterministic.
func (t *Table) Append(r Row, order ...string) {
	delete(r, "") // cells with no column tag carry no data
	for _, name := range order {
		if _, ok := r[name]; ok && !t.HasColumn(name) {
			t.Columns = append(t.Columns, name)
		}
	}
	var rest []string
	for name := range r {
		if !t.HasColumn(name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	t.Columns = append(t.Columns, rest...)
	t.Rows = append(t.Rows, r)
}

// Extend appends all rows of other, unioning the column sets.
func (t *Table) Extend(other *Table) {
	for _, c := range other.Columns {
		if !t.HasColumn(c) {
			t.Columns = append(t.Columns, c)
		}
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// Get returns the cell for the named column, or the missing sentinel if the
// row has no such cell.
func (r Row) Get(name string) Value {
	if v, ok := r[name]; ok {
		return v
	}
	return Missing()
}

// Rename renames columns per the mapping. Unmapped columns and mappings to
// an empty label are left alone; cell keys move with their column.
func (t *Table) Rename(mapping map[string]string) {
	renamed := make(map[string]string)
	for i, c := range t.Columns {
		if to, ok := mapping[c]; ok && to != "" && to != c {
			t.Columns[i] = to
			renamed[c] = to
		}
	}
	if len(renamed) == 0 {
		return
	}
	for _, row := range t.Rows {
		for from, to := range renamed {
			if v, ok := row[from]; ok {
				delete(row, from)
				row[to] = v
			}
		}
	}
}

// Select reduces the table to the named columns, in the given order.
// Unknown names become empty (all-missing) columns.
func (t *Table) Select(columns ...string) {
	keep := make(map[string]bool, len(columns))
	for _, c := range columns {
		keep[c] = true
	}
	for _, row := range t.Rows {
		for name := range row {
			if !keep[name] {
				delete(row, name)
			}
		}
	}
	t.Columns = append([]string(nil), columns...)
}

// DropColumn removes the named column and its cells.
func (t *Table) DropColumn(name string) {
	for i, c := range t.Columns {
		if c == name {
			t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
			break
		}
	}
	for _, row := range t.Rows {
		delete(row, name)
	}
}

// Filter keeps only rows for which pred returns true.
func (t *Table) Filter(pred func(Row) bool) {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if pred(row) {
			kept = append(kept, row)
		}
	}
	t.Rows = kept
}

// Dedupe collapses rows whose cells are identical across all columns,
// keeping the first occurrence. Source roster pages repeat rows sometimes.
func (t *Table) Dedupe() {
	seen := make(map[string]bool, len(t.Rows))
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		var b strings.Builder
		for _, c := range t.Columns {
			v := row.Get(c)
			fmt.Fprintf(&b, "%d\x1f%s\x1e", v.Kind, v.String())
		}
		key := b.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}
	t.Rows = kept
}

// DropMissing removes rows with a missing cell in any column.
func (t *Table) DropMissing() {
	t.Filter(func(r Row) bool {
		for _, c := range t.Columns {
			if r.Get(c).IsMissing() {
				return false
			}
		}
		return true
	})
}

// CoerceNumeric converts text columns to numbers, column by column. A column
// converts only if every non-missing text cell parses as a float; otherwise
// the whole column is left as-is. Columns named in skip, and columns already
// holding non-text kinds, are never touched.
func (t *Table) CoerceNumeric(skip ...string) {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}
	for _, c := range t.Columns {
		if skipped[c] {
			continue
		}
		convertible := true
		numeric := false
		for _, row := range t.Rows {
			v := row.Get(c)
			if v.IsMissing() {
				continue
			}
			if v.Kind != KindText {
				convertible = false
				break
			}
			if _, err := strconv.ParseFloat(v.Text, 64); err != nil {
				convertible = false
				break
			}
			numeric = true
		}
		if !convertible || !numeric {
			continue
		}
		for _, row := range t.Rows {
			v := row.Get(c)
			if v.IsMissing() {
				continue
			}
			f, _ := strconv.ParseFloat(v.Text, 64)
			row[c] = Num(f)
		}
	}
}

// CoerceBool converts the named column to booleans: a text cell equal to
// literal becomes true, any other cell (missing included) becomes false.
// Used for the "@" away-game marker.
func (t *Table) CoerceBool(column, literal string) {
	if !t.HasColumn(column) {
		return
	}
	for _, row := range t.Rows {
		v := row.Get(column)
		row[column] = BoolVal(v.Kind == KindText && v.Text == literal)
	}
}

// CoerceDate converts the named column to dates. Unlike numeric coercion
// this is not best-effort: a non-missing cell that matches no known layout
// is an error, since an unparseable date means the page structure shifted.
func (t *Table) CoerceDate(column string) error {
	if !t.HasColumn(column) {
		return nil
	}
	for _, row := range t.Rows {
		v := row.Get(column)
		if v.IsMissing() || v.Kind == KindDate {
			continue
		}
		d := ParseDate(v.Text)
		if d.IsZero() {
			return fmt.Errorf("unparseable date in column %q: %q", column, v.Text)
		}
		row[column] = DateVal(d)
	}
	return nil
}

// MergeColumns merges other into t by column union with t taking priority:
// only columns absent from t are appended. Rows align on the rendered value
// of the on column; rows of other with no match in t are appended so the
// result is an outer alignment.
func (t *Table) MergeColumns(other *Table, on string) {
	var added []string
	for _, c := range other.Columns {
		if !t.HasColumn(c) {
			added = append(added, c)
			t.Columns = append(t.Columns, c)
		}
	}
	if len(added) == 0 {
		return
	}
	byKey := make(map[string]Row, len(t.Rows))
	for _, row := range t.Rows {
		byKey[row.Get(on).String()] = row
	}
	for _, orow := range other.Rows {
		key := orow.Get(on).String()
		if row, ok := byKey[key]; ok {
			for _, c := range added {
				if v, ok := orow[c]; ok {
					row[c] = v
				}
			}
			continue
		}
		nrow := Row{on: orow.Get(on)}
		for _, c := range added {
			if v, ok := orow[c]; ok {
				nrow[c] = v
			}
		}
		t.Rows = append(t.Rows, nrow)
	}
}
