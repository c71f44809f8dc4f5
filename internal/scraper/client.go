package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/nthakkar/basketballref/internal/logger"
)

const (
	BaseURL   = "https://www.basketball-reference.com"
	UserAgent = "basketballref-cli/1.0 (github.com/nthakkar/basketballref)"
	Timeout   = 30 * time.Second
)

// ErrNotFound reports a 404 response. Schedule aggregation checks for it
// with errors.Is to skip months that short seasons omit; everything else
// treats it as any other fetch failure.
var ErrNotFound = errors.New("page not found")

// Client fetches and parses pages from basketball-reference.com
type Client struct {
	client  *http.Client
	baseURL string
}

// New creates a new Client instance
func New() *Client {
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
	}
}

// NewWithBaseURL creates a Client against an alternate base URL, used by
// tests to point at an httptest server.
func NewWithBaseURL(baseURL string) *Client {
	c := New()
	c.baseURL = baseURL
	return c
}

// Get fetches the page at path (relative to the base URL), uncomments any
// comment-hidden table regions, and parses the result.
func (c *Client) Get(path string) (*goquery.Document, error) {
	url := c.baseURL + path
	logger.Debug("fetching page", logger.Fields{"url": url})

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	return Parse(strings.NewReader(Uncomment(string(body))))
}

// Parse parses raw HTML into a queryable document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// Uncomment strips the comment delimiter lines the site wraps around some
// tables (playoff breakdowns in particular, presumably to keep them from
// colliding with the regular-season copy). Without this the hidden tables
// never appear in the parsed tree.
func Uncomment(html string) string {
	html = strings.ReplaceAll(html, "\n<!--\n", "\n")
	html = strings.ReplaceAll(html, "\n-->\n", "\n")
	return html
}
