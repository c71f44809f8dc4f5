package boxscore

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/nthakkar/basketballref/internal/scraper"
	"github.com/nthakkar/basketballref/internal/table"
)

// Path is the box score page, parameterized by game URI (e.g. "201806080CLE").
const Path = "/boxscores/%s.html"

// Delimiters in the page heading, e.g.
// "Golden State Warriors at Cleveland Cavaliers Box Score, June 8, 2018".
const (
	titleAt   = " at "
	titleDate = " Box Score,"
)

// BoxScore is one game's per-player statistics with teams, date, and the
// final score per team.
type BoxScore struct {
	URI        string
	URL        string
	Title      string
	HomeTeam   string
	AwayTeam   string
	Date       time.Time
	Table      *table.Table
	FinalScore map[string]float64
}

// Fetch retrieves and parses the box score for a game URI. Game URIs come
// from the season schedule's game_uri column.
func Fetch(c *scraper.Client, uri string) (*BoxScore, error) {
	path := fmt.Sprintf(Path, uri)
	doc, err := c.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetching box score %s: %w", uri, err)
	}

	bs, err := parsePage(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing box score %s: %w", uri, err)
	}
	bs.URI = uri
	bs.URL = scraper.BaseURL + path
	return bs, nil
}

// parsePage parses a full box score document.
func parsePage(doc *goquery.Document) (*BoxScore, error) {
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	homeTeam, awayTeam, date, err := parseTitle(title)
	if err != nil {
		return nil, err
	}

	// The page layout guarantees four data tables in role order: away
	// basic, away advanced, home basic, home advanced. Validate the count
	// up front so a layout change fails loudly instead of misattributing
	// stats to the wrong team.
	tables := scraper.DataTables(doc)
	if n := tables.Length(); n != 4 {
		return nil, fmt.Errorf("expected 4 data tables (away/home basic and advanced), got %d", n)
	}
	parsed := make([]*table.Table, 4)
	tables.Each(func(i int, tbl *goquery.Selection) {
		parsed[i] = parseStatTable(tbl)
	})

	away, home := parsed[0], parsed[2]
	// Minutes appear in both statistic sets; keep the basic copy.
	parsed[1].DropColumn("MP")
	parsed[3].DropColumn("MP")
	away.MergeColumns(parsed[1], "player")
	home.MergeColumns(parsed[3], "player")
	tagTeam(away, awayTeam)
	tagTeam(home, homeTeam)

	t := table.New()
	t.Extend(away)
	t.Extend(home)

	t.CoerceNumeric("player", "Team", "MP")
	if err := coerceMinutes(t); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		row["date"] = table.DateVal(date)
	}
	if !t.HasColumn("date") {
		t.Columns = append(t.Columns, "date")
	}

	return &BoxScore{
		Title:      title,
		HomeTeam:   homeTeam,
		AwayTeam:   awayTeam,
		Date:       date,
		Table:      t,
		FinalScore: finalScore(t),
	}, nil
}

// parseTitle splits the heading into away team, home team, and date.
func parseTitle(title string) (home, away string, date time.Time, err error) {
	at := strings.Index(title, titleAt)
	box := strings.Index(title, titleDate)
	if at < 0 || box < 0 || box < at {
		return "", "", time.Time{}, fmt.Errorf("unexpected page heading %q", title)
	}
	away = title[:at]
	home = title[at+len(titleAt) : box]
	date = table.ParseDate(strings.TrimSpace(title[box+len(titleDate):]))
	if date.IsZero() {
		return "", "", time.Time{}, fmt.Errorf("unparseable date in page heading %q", title)
	}
	return home, away, date, nil
}

// parseStatTable extracts one side's basic or advanced table, keyed by
// player name. Headers come from the second header row: the first is a
// grouping row with no usable tags. Players flagged with a reason cell did
// not play and are dropped along with the flag column itself.
func parseStatTable(tbl *goquery.Selection) *table.Table {
	labels := scraper.HeaderLabelsRow(tbl, 1)
	// The player tag labels as "Starters"/"Reserves" in the source header;
	// the name column keeps its own name.
	delete(labels, "player")

	t := table.New("player")
	scraper.BodyRows(tbl).Each(func(i int, tr *goquery.Selection) {
		row, order := scraper.RowCells(tr)
		row["player"] = scraper.CellValue(tr.Find("th").Text())
		t.Append(row, order...)
	})
	t.Rename(labels)

	if t.HasColumn("reason") {
		t.Filter(func(r table.Row) bool {
			return r.Get("reason").IsMissing()
		})
		t.DropColumn("reason")
	}
	return t
}

// tagTeam adds a Team column with a fixed value to every row.
func tagTeam(t *table.Table, team string) {
	for _, row := range t.Rows {
		row["Team"] = table.Str(team)
	}
	if !t.HasColumn("Team") {
		t.Columns = append(t.Columns, "Team")
	}
}

// coerceMinutes converts the MP column from "m:ss" text to fractional
// minutes, e.g. "34:30" -> 34.5.
func coerceMinutes(t *table.Table) error {
	if !t.HasColumn("MP") {
		return nil
	}
	for _, row := range t.Rows {
		v := row.Get("MP")
		if v.IsMissing() {
			continue
		}
		sep := strings.Index(v.Text, ":")
		if sep < 0 {
			return fmt.Errorf("unexpected minutes value %q", v.Text)
		}
		minutes, err := strconv.Atoi(v.Text[:sep])
		if err != nil {
			return fmt.Errorf("unexpected minutes value %q", v.Text)
		}
		seconds, err := strconv.Atoi(v.Text[sep+1:])
		if err != nil {
			return fmt.Errorf("unexpected minutes value %q", v.Text)
		}
		row["MP"] = table.Num(float64(minutes) + float64(seconds)/60)
	}
	return nil
}

// finalScore sums the points column per team.
func finalScore(t *table.Table) map[string]float64 {
	score := make(map[string]float64)
	for _, row := range t.Rows {
		pts := row.Get("PTS")
		if pts.Kind != table.KindNumber {
			continue
		}
		score[row.Get("Team").Text] += pts.Number
	}
	return score
}
