package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nthakkar/basketballref/internal/logger"
	"github.com/nthakkar/basketballref/internal/scraper"
	"github.com/nthakkar/basketballref/internal/table"
)

// Path is the monthly schedule page, parameterized by season year and
// lower-case month name.
const Path = "/leagues/NBA_%d_games-%s.html"

// Months lists a full season's schedule pages in season order.
var Months = []string{
	"october", "november", "december", "january",
	"february", "march", "april", "may", "june",
}

// Columns retained from the monthly tables, under fixed names.
var columns = []string{
	"date", "away", "home", "home_points", "away_points", "attendance", "game_uri",
}

// Schedule is one season's calendar with results and attendance.
type Schedule struct {
	Season int
	Months []string
	Name   string
	Table  *table.Table
}

// Fetch aggregates the monthly schedule pages for a season (named by the
// calendar year it concludes in) in month order. Months whose page does not
// exist are skipped: shortened seasons simply omit them. An empty month
// list yields an empty, well-typed table.
func Fetch(c *scraper.Client, season int, months []string) (*Schedule, error) {
	t := table.New(columns...)
	for _, month := range months {
		doc, err := c.Get(fmt.Sprintf(Path, season, strings.ToLower(month)))
		if err != nil {
			if errors.Is(err, scraper.ErrNotFound) {
				logger.Debug("no schedule page for month", logger.Fields{
					"season": season,
					"month":  month,
				})
				continue
			}
			return nil, fmt.Errorf("fetching %d schedule for %s: %w", season, month, err)
		}
		page, err := parseMonth(doc)
		if err != nil {
			return nil, fmt.Errorf("parsing %d schedule for %s: %w", season, month, err)
		}
		t.Extend(page)
	}

	return &Schedule{
		Season: season,
		Months: months,
		Name:   fmt.Sprintf("%d-%d season schedule", season-1, season),
		Table:  t,
	}, nil
}

// parseMonth extracts one month page's games. The date comes from the row
// header text and the game URI from its csk attribute, which is the token
// the box score pages are addressed by.
func parseMonth(doc *goquery.Document) (*table.Table, error) {
	t := table.New()
	tbl := doc.Find("table").First()
	scraper.BodyRows(tbl).Each(func(i int, tr *goquery.Selection) {
		row, order := scraper.RowCells(tr)
		th := tr.Find("th").First()
		date := strings.TrimSpace(th.Text())
		if date == "Playoffs" {
			// Inline section divider, not a game.
			return
		}
		row["date"] = scraper.CellValue(date)
		if uri, ok := th.Attr("csk"); ok {
			row["uri"] = table.Str(uri)
		}
		t.Append(row, order...)
	})

	t.Rename(map[string]string{
		"visitor_team_name": "away",
		"home_team_name":    "home",
		"home_pts":          "home_points",
		"visitor_pts":       "away_points",
		"uri":               "game_uri",
	})
	t.Select(columns...)
	if err := t.CoerceDate("date"); err != nil {
		return nil, err
	}
	t.CoerceNumeric("away", "home", "game_uri")
	return t, nil
}
