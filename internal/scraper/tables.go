package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nthakkar/basketballref/internal/table"
)

// DataTableClass marks tables actually carrying row-wise statistics, as
// opposed to the layout-only tables scattered through the pages.
const DataTableClass = "row_summable"

// DataTables returns the document's data tables in page order.
func DataTables(doc *goquery.Document) *goquery.Selection {
	return doc.Find("table").Filter("." + DataTableClass)
}

// HeaderLabels reads the tag-to-label map from every header cell of the
// table, keyed by the data-stat attribute.
func HeaderLabels(tbl *goquery.Selection) map[string]string {
	return headerLabels(tbl.Find("thead th"))
}

// HeaderLabelsRow reads the tag-to-label map from a single header row. Box
// score tables need this because their first header row is a grouping row
// with no usable tags.
func HeaderLabelsRow(tbl *goquery.Selection, row int) map[string]string {
	return headerLabels(tbl.Find("thead tr").Eq(row).Find("th"))
}

func headerLabels(cells *goquery.Selection) map[string]string {
	labels := make(map[string]string)
	cells.Each(func(i int, th *goquery.Selection) {
		tag, ok := th.Attr("data-stat")
		if !ok {
			return
		}
		labels[tag] = strings.TrimSpace(th.Text())
	})
	return labels
}

// BodyRows returns the table's body rows with sub-heading separator rows
// (class "thead", repeated periodically in long tables) filtered out.
func BodyRows(tbl *goquery.Selection) *goquery.Selection {
	return tbl.Find("tbody tr").Not(".thead")
}

// RowCells extracts one body row's data cells as a tag-to-value mapping,
// with blank cells mapped to the missing sentinel. The returned order is
// the cells' order in the row, for stable column ordering downstream.
func RowCells(tr *goquery.Selection) (table.Row, []string) {
	row := table.Row{}
	var order []string
	tr.Find("td").Each(func(i int, td *goquery.Selection) {
		tag, ok := td.Attr("data-stat")
		if !ok {
			return
		}
		row[tag] = CellValue(td.Text())
		order = append(order, tag)
	})
	return row, order
}

// CellValue converts raw cell text to a table value, substituting the
// missing sentinel for blank cells.
func CellValue(text string) table.Value {
	text = strings.TrimSpace(text)
	if text == "" {
		return table.Missing()
	}
	return table.Str(text)
}
