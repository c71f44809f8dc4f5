package player

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nthakkar/basketballref/internal/scraper"
	"github.com/nthakkar/basketballref/internal/table"
)

// ListPath is the alphabetical player index page, parameterized by letter.
const ListPath = "/players/%s/"

// DefaultLetters omits x: no player surname in the site's history starts
// with it, and the page does not exist.
const DefaultLetters = "abcdefghijklmnopqrstuvwyz"

// FetchList builds the player directory for the given letters, one index
// page per letter, concatenated in letter order. Each row carries the
// player's URI token, display name, active-year range, and physical
// attributes.
func FetchList(c *scraper.Client, letters string) (*table.Table, error) {
	list := table.New("uri", "player")
	for _, letter := range letters {
		doc, err := c.Get(fmt.Sprintf(ListPath, string(letter)))
		if err != nil {
			return nil, fmt.Errorf("fetching player index %q: %w", string(letter), err)
		}
		page, err := parseListPage(doc)
		if err != nil {
			return nil, fmt.Errorf("parsing player index %q: %w", string(letter), err)
		}
		list.Extend(page)
	}
	list.CoerceNumeric("uri", "player")
	return list, nil
}

// parseListPage extracts one letter page's player table. Column names come
// from each header cell's aria-label, lower-cased with spaces replaced by
// underscores; the URI comes from the row header's data-append-csv
// attribute and the display name from the row header text with the
// active-player asterisk suffix stripped.
func parseListPage(doc *goquery.Document) (*table.Table, error) {
	tbl := doc.Find("table").First()

	rename := make(map[string]string)
	tbl.Find("thead th").Each(func(i int, th *goquery.Selection) {
		tag, ok := th.Attr("data-stat")
		if !ok {
			return
		}
		label, ok := th.Attr("aria-label")
		if !ok {
			return
		}
		rename[tag] = strings.ReplaceAll(strings.ToLower(label), " ", "_")
	})

	t := table.New("uri", "player")
	scraper.BodyRows(tbl).Each(func(i int, tr *goquery.Selection) {
		row, order := scraper.RowCells(tr)
		th := tr.Find("th").First()
		if uri, ok := th.Attr("data-append-csv"); ok {
			row["uri"] = table.Str(uri)
		}
		row["player"] = scraper.CellValue(strings.ReplaceAll(th.Text(), "*", ""))
		t.Append(row, order...)
	})

	delete(rename, "player") // the name cell is extracted from the row header
	t.Rename(rename)
	return t, nil
}
