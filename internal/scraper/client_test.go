package scraper

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientGet(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    bool
		wantNotFnd bool
	}{
		{
			name:       "successful fetch",
			statusCode: http.StatusOK,
			body:       `<html><body><table class="row_summable"><tbody></tbody></table></body></html>`,
		},
		{
			name:       "not found is the typed sentinel",
			statusCode: http.StatusNotFound,
			wantErr:    true,
			wantNotFnd: true,
		},
		{
			name:       "server error is a plain error",
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); ua != UserAgent {
					t.Errorf("expected User-Agent %q, got %q", UserAgent, ua)
				}
				w.WriteHeader(tt.statusCode)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			doc, err := NewWithBaseURL(server.URL).Get("/leagues/NBA_2018_games-october.html")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantNotFnd != errors.Is(err, ErrNotFound) {
					t.Errorf("errors.Is(err, ErrNotFound) = %v, want %v (err: %v)",
						errors.Is(err, ErrNotFound), tt.wantNotFnd, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if doc == nil {
				t.Fatal("expected a parsed document")
			}
		})
	}
}

func TestClientGetUncommentsHiddenTables(t *testing.T) {
	page := "<html><body>\n<!--\n<table class=\"row_summable\" id=\"playoffs\"><tbody></tbody></table>\n-->\n</body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	doc, err := NewWithBaseURL(server.URL).Get("/players/j/jamesle01/gamelog/2018")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if DataTables(doc).Length() != 1 {
		t.Error("expected the comment-hidden table to be visible after fetch")
	}
}
