package roster

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nthakkar/basketballref/internal/scraper"
	"github.com/nthakkar/basketballref/internal/table"
)

// Path is the team roster page, parameterized by team code and season year.
const Path = "/teams/%s/%d.html"

// Text landmarks bounding the team description in the page's visible text.
// Fragile by nature, but the page structure has been stable for years.
const (
	descriptionStart = "About logos"
	descriptionEnd   = "More Team Info"
)

// Roster holds one team-season's active roster and page description.
type Roster struct {
	Team        string
	Season      int
	URL         string
	Description string
	Table       *table.Table
}

// Fetch retrieves the roster for a team code (three-letter abbreviation,
// e.g. "PHO") and season year. dropMissing removes rows with any missing
// field, typically players without a listed jersey number.
func Fetch(c *scraper.Client, team string, season int, dropMissing bool) (*Roster, error) {
	path := fmt.Sprintf(Path, team, season)
	doc, err := c.Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetching roster for %s %d: %w", team, season, err)
	}

	description, t := parsePage(doc)
	if dropMissing {
		t.DropMissing()
	}

	return &Roster{
		Team:        team,
		Season:      season,
		URL:         scraper.BaseURL + path,
		Description: description,
		Table:       t,
	}, nil
}

// parsePage extracts the team description and the roster table.
func parsePage(doc *goquery.Document) (string, *table.Table) {
	description := parseDescription(doc.Text())

	t := table.New("number", "player", "uri")
	tbl := doc.Find("table").First()
	scraper.BodyRows(tbl).Each(func(i int, tr *goquery.Selection) {
		name := tr.Find("td").Eq(0)
		href, _ := name.Find("a").Attr("href")
		t.Append(table.Row{
			"number": scraper.CellValue(tr.Find("th").Text()),
			"player": scraper.CellValue(name.Text()),
			"uri":    scraper.CellValue(uriFromHref(href)),
		})
	})

	t.CoerceNumeric("player", "uri")
	t.Dedupe()
	return description, t
}

// parseDescription slices the visible page text between the fixed landmarks.
func parseDescription(text string) string {
	if i := strings.Index(text, descriptionStart); i >= 0 {
		text = text[i+len(descriptionStart):]
	}
	if i := strings.Index(text, descriptionEnd); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// uriFromHref extracts the player URI token from a profile link target,
// e.g. "/players/b/bookede01.html" -> "bookede01".
func uriFromHref(href string) string {
	if i := strings.LastIndex(href, "/"); i >= 0 {
		href = href[i+1:]
	}
	if i := strings.Index(href, "."); i >= 0 {
		href = href[:i]
	}
	return href
}
