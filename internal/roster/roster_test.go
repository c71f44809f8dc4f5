package roster

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nthakkar/basketballref/internal/scraper"
	"github.com/nthakkar/basketballref/internal/table"
)

// rosterPage repeats the Booker row on purpose: source roster pages do this
// sometimes, and duplicates must collapse.
const rosterPage = `
<html><body>
<div>
About logos
The Phoenix Suns finished 19-63 in the Western Conference.
More Team Info
</div>
<table class="stats_table" id="roster">
  <thead>
    <tr><th data-stat="number">No.</th><th data-stat="player">Player</th><th data-stat="pos">Pos</th></tr>
  </thead>
  <tbody>
    <tr>
      <th data-stat="number">1</th>
      <td data-stat="player"><a href="/players/b/bookede01.html">Devin Booker</a></td>
      <td data-stat="pos">SG</td>
    </tr>
    <tr>
      <th data-stat="number">1</th>
      <td data-stat="player"><a href="/players/b/bookede01.html">Devin Booker</a></td>
      <td data-stat="pos">SG</td>
    </tr>
    <tr>
      <th data-stat="number"></th>
      <td data-stat="player"><a href="/players/o/okobael01.html">Elie Okobo</a></td>
      <td data-stat="pos">PG</td>
    </tr>
  </tbody>
</table>
</body></html>`

func newRosterServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams/PHO/2019.html" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, rosterPage)
	}))
}

func TestFetch(t *testing.T) {
	server := newRosterServer(t)
	defer server.Close()

	r, err := Fetch(scraper.NewWithBaseURL(server.URL), "PHO", 2019, false)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !strings.Contains(r.Description, "Phoenix Suns finished 19-63") {
		t.Errorf("expected description between landmarks, got %q", r.Description)
	}
	if strings.Contains(r.Description, "About logos") || strings.Contains(r.Description, "More Team Info") {
		t.Errorf("landmarks must not appear in the description: %q", r.Description)
	}

	// Duplicate rows collapse to one.
	if r.Table.Len() != 2 {
		t.Fatalf("expected 2 unique players, got %d", r.Table.Len())
	}

	booker := r.Table.Rows[0]
	if got := booker.Get("uri").Text; got != "bookede01" {
		t.Errorf("expected uri parsed from href, got %q", got)
	}
	if got := booker.Get("player").Text; got != "Devin Booker" {
		t.Errorf("expected player name from first data cell, got %q", got)
	}
	if v := booker.Get("number"); v.Kind != table.KindNumber || v.Number != 1 {
		t.Errorf("expected jersey number coerced, got %+v", v)
	}

	// A player without a listed number keeps a missing cell.
	if v := r.Table.Rows[1].Get("number"); !v.IsMissing() {
		t.Errorf("expected missing jersey number, got %+v", v)
	}
}

func TestFetchDropMissing(t *testing.T) {
	server := newRosterServer(t)
	defer server.Close()

	r, err := Fetch(scraper.NewWithBaseURL(server.URL), "PHO", 2019, true)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if r.Table.Len() != 1 {
		t.Fatalf("expected the numberless row dropped, got %d rows", r.Table.Len())
	}
	if got := r.Table.Rows[0].Get("player").Text; got != "Devin Booker" {
		t.Errorf("wrong row kept: %q", got)
	}
}

func TestFetchMissingTeamPropagates(t *testing.T) {
	server := newRosterServer(t)
	defer server.Close()

	if _, err := Fetch(scraper.NewWithBaseURL(server.URL), "LAL", 2019, false); err == nil {
		t.Fatal("expected error for a missing team page")
	}
}

func TestURIFromHref(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"/players/b/bookede01.html", "bookede01"},
		{"/players/o/okobael01.html", "okobael01"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := uriFromHref(tt.href); got != tt.want {
			t.Errorf("uriFromHref(%q) = %q, want %q", tt.href, got, tt.want)
		}
	}
}
