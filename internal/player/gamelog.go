package player

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/nthakkar/basketballref/internal/scraper"
	"github.com/nthakkar/basketballref/internal/table"
)

// Per-season game log pages. The basic and advanced statistic sets live on
// separate pages with the same shape.
const (
	GameLogPath         = "/players/%s/%s/gamelog/%d"
	AdvancedGameLogPath = "/players/%s/%s/gamelog-advanced/%d"
)

// GameLog is a player's per-game statistic table across a span of seasons,
// one row per game in season then in-page order, keyed by date.
type GameLog struct {
	URI   string
	Title string
	Table *table.Table
}

// FetchGameLog aggregates the basic (and, when advanced is set, advanced)
// game log pages for each season into one table. Advanced columns that the
// basic table already has are never overwritten; only the new ones are
// appended, aligned on date.
//
// A season page that fails to fetch is an error, unlike schedule months:
// game log pages exist for every season the directory lists for a player,
// so a missing one means the caller asked for the wrong thing.
func FetchGameLog(c *scraper.Client, uri string, seasons []int, advanced bool) (*GameLog, error) {
	if uri == "" {
		return nil, fmt.Errorf("empty player URI")
	}

	paths := []string{GameLogPath}
	if advanced {
		paths = append(paths, AdvancedGameLogPath)
	}

	categories := make([]*table.Table, 0, len(paths))
	for _, path := range paths {
		acc := table.New()
		for _, season := range seasons {
			doc, err := c.Get(fmt.Sprintf(path, uri[:1], uri, season))
			if err != nil {
				return nil, fmt.Errorf("fetching %s game log for season %d: %w", uri, season, err)
			}
			page, err := parseGameLogPage(doc)
			if err != nil {
				return nil, fmt.Errorf("parsing %s game log for season %d: %w", uri, season, err)
			}
			acc.Extend(page)
		}
		categories = append(categories, acc)
	}

	t := categories[0]
	if advanced {
		t.MergeColumns(categories[1], "date")
	}

	return &GameLog{URI: uri, Title: gameLogTitle(uri, seasons, advanced), Table: t}, nil
}

func gameLogTitle(uri string, seasons []int, advanced bool) string {
	var title string
	switch len(seasons) {
	case 0:
		title = fmt.Sprintf("%s game-log", uri)
	case 1:
		title = fmt.Sprintf("%s, %d game-log", uri, seasons[0])
	default:
		title = fmt.Sprintf("%s, %d-%d game-log", uri, seasons[0], seasons[len(seasons)-1])
	}
	if !advanced {
		title += " (basic only)"
	}
	return title
}

// parseGameLogPage extracts one season page's data tables (regular season
// plus, when present, the comment-hidden playoff table) into a single
// normalized table. A page with no data tables (a season the player did not
// play) yields an empty table, not an error.
func parseGameLogPage(doc *goquery.Document) (*table.Table, error) {
	t := table.New()
	tables := scraper.DataTables(doc)
	if tables.Length() == 0 {
		return t, nil
	}

	rename := make(map[string]string)
	tables.Each(func(i int, tbl *goquery.Selection) {
		for tag, label := range scraper.HeaderLabels(tbl) {
			rename[tag] = label
		}
		scraper.BodyRows(tbl).Each(func(j int, tr *goquery.Selection) {
			row, order := scraper.RowCells(tr)
			t.Append(row, order...)
		})
	})

	// Several header labels are blank or unhelpful on the source; give the
	// ones the aggregation depends on stable names.
	rename["game_location"] = "away_game"
	rename["game_result"] = "game_result"
	rename["date_game"] = "date"
	rename["gs"] = "started"
	t.Rename(rename)

	t.CoerceBool("away_game", "@")
	t.CoerceNumeric("date")
	if err := t.CoerceDate("date"); err != nil {
		return nil, err
	}
	return t, nil
}
