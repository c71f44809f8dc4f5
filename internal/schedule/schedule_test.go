package schedule

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nthakkar/basketballref/internal/scraper"
	"github.com/nthakkar/basketballref/internal/table"
)

const octoberPage = `
<html><body>
<table class="stats_table" id="schedule">
  <thead>
    <tr>
      <th data-stat="date_game">Date</th>
      <th data-stat="visitor_team_name">Visitor</th>
      <th data-stat="visitor_pts">PTS</th>
      <th data-stat="home_team_name">Home</th>
      <th data-stat="home_pts">PTS</th>
      <th data-stat="attendance">Attend.</th>
    </tr>
  </thead>
  <tbody>
    <tr>
      <th data-stat="date_game" csk="201710170CLE">Tue, Oct 17, 2017</th>
      <td data-stat="visitor_team_name">Boston Celtics</td>
      <td data-stat="visitor_pts">99</td>
      <td data-stat="home_team_name">Cleveland Cavaliers</td>
      <td data-stat="home_pts">102</td>
      <td data-stat="attendance">20562</td>
    </tr>
    <tr>
      <th data-stat="date_game" csk="201710180PHO">Wed, Oct 18, 2017</th>
      <td data-stat="visitor_team_name">Portland Trail Blazers</td>
      <td data-stat="visitor_pts">124</td>
      <td data-stat="home_team_name">Phoenix Suns</td>
      <td data-stat="home_pts">76</td>
      <td data-stat="attendance">18055</td>
    </tr>
  </tbody>
</table>
</body></html>`

const aprilPage = `
<html><body>
<table class="stats_table" id="schedule">
  <thead>
    <tr>
      <th data-stat="date_game">Date</th>
      <th data-stat="visitor_team_name">Visitor</th>
      <th data-stat="visitor_pts">PTS</th>
      <th data-stat="home_team_name">Home</th>
      <th data-stat="home_pts">PTS</th>
      <th data-stat="attendance">Attend.</th>
    </tr>
  </thead>
  <tbody>
    <tr>
      <th data-stat="date_game" csk="201804110CHI">Wed, Apr 11, 2018</th>
      <td data-stat="visitor_team_name">Detroit Pistons</td>
      <td data-stat="visitor_pts">87</td>
      <td data-stat="home_team_name">Chicago Bulls</td>
      <td data-stat="home_pts">119</td>
      <td data-stat="attendance">21433</td>
    </tr>
    <tr>
      <th data-stat="date_game">Playoffs</th>
    </tr>
    <tr>
      <th data-stat="date_game" csk="201804140CLE">Sat, Apr 14, 2018</th>
      <td data-stat="visitor_team_name">Indiana Pacers</td>
      <td data-stat="visitor_pts">98</td>
      <td data-stat="home_team_name">Cleveland Cavaliers</td>
      <td data-stat="home_pts">80</td>
      <td data-stat="attendance">20562</td>
    </tr>
  </tbody>
</table>
</body></html>`

func newScheduleServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, page)
	}))
}

func TestFetchSkipsMissingMonths(t *testing.T) {
	// 2018 here stands in for a shortened season: only october exists and
	// the other requested month must be skipped silently.
	server := newScheduleServer(t, map[string]string{
		"/leagues/NBA_2018_games-october.html": octoberPage,
	})
	defer server.Close()

	s, err := Fetch(scraper.NewWithBaseURL(server.URL), 2018, []string{"october", "november"})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if s.Name != "2017-2018 season schedule" {
		t.Errorf("unexpected season name %q", s.Name)
	}
	if s.Table.Len() != 2 {
		t.Fatalf("expected 2 games from the one existing month, got %d", s.Table.Len())
	}
}

func TestFetchColumnsAndTypes(t *testing.T) {
	server := newScheduleServer(t, map[string]string{
		"/leagues/NBA_2018_games-october.html": octoberPage,
	})
	defer server.Close()

	s, err := Fetch(scraper.NewWithBaseURL(server.URL), 2018, []string{"october"})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	want := []string{"date", "away", "home", "home_points", "away_points", "attendance", "game_uri"}
	if len(s.Table.Columns) != len(want) {
		t.Fatalf("expected columns %v, got %v", want, s.Table.Columns)
	}
	for i, c := range want {
		if s.Table.Columns[i] != c {
			t.Errorf("column %d: expected %q, got %q", i, c, s.Table.Columns[i])
		}
	}

	first := s.Table.Rows[0]
	if v := first.Get("date"); v.Kind != table.KindDate {
		t.Errorf("expected date coerced, got %+v", v)
	}
	if got := first.Get("game_uri").Text; got != "201710170CLE" {
		t.Errorf("expected game uri from csk attribute, got %q", got)
	}
	if v := first.Get("home_points"); v.Kind != table.KindNumber || v.Number != 102 {
		t.Errorf("expected home points numeric, got %+v", v)
	}
	if got := first.Get("away").Text; got != "Boston Celtics" {
		t.Errorf("expected away team name, got %q", got)
	}
}

func TestFetchDiscardsPlayoffsDivider(t *testing.T) {
	server := newScheduleServer(t, map[string]string{
		"/leagues/NBA_2018_games-april.html": aprilPage,
	})
	defer server.Close()

	s, err := Fetch(scraper.NewWithBaseURL(server.URL), 2018, []string{"april"})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if s.Table.Len() != 2 {
		t.Fatalf("expected the Playoffs divider discarded, got %d rows", s.Table.Len())
	}
	for _, row := range s.Table.Rows {
		if row.Get("date").Kind != table.KindDate {
			t.Errorf("every surviving row must have a valid date, got %+v", row.Get("date"))
		}
	}
}

func TestFetchEmptyMonthsYieldsTypedTable(t *testing.T) {
	server := newScheduleServer(t, nil)
	defer server.Close()

	for _, months := range [][]string{nil, {"october", "november"}} {
		s, err := Fetch(scraper.NewWithBaseURL(server.URL), 2012, months)
		if err != nil {
			t.Fatalf("Fetch with months %v failed: %v", months, err)
		}
		if s.Table.Len() != 0 {
			t.Errorf("expected empty table, got %d rows", s.Table.Len())
		}
		if len(s.Table.Columns) != 7 {
			t.Errorf("empty table must keep its column set, got %v", s.Table.Columns)
		}
	}
}

func TestFetchServerErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := Fetch(scraper.NewWithBaseURL(server.URL), 2018, []string{"october"}); err == nil {
		t.Fatal("only 404 is skippable; other transport errors must propagate")
	}
}
