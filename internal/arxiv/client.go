package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MnacsM/papnt/internal/record"
)

const (
	// BaseURL is the arXiv Atom API endpoint.
	BaseURL = "https://export.arxiv.org/api/query"

	// RateLimit follows arXiv's request of one call every three seconds.
	RateLimit = 1.0 / 3.0

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a rate-limited HTTP client for the arXiv Atom API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithRateLimit overrides the request rate, in requests per second.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates an arXiv API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// atom mirrors the slice of the Atom feed this client reads.
type atom struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
}

// Lookup fetches metadata for one arXiv identifier.
func (c *Client) Lookup(ctx context.Context, arxivID string) (Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}

	query := url.Values{}
	query.Set("id_list", arxivID)
	query.Set("max_results", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Result{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, &record.UpstreamError{Source: record.SourceArxiv, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, &record.UpstreamError{
			Source: record.SourceArxiv,
			Status: resp.StatusCode,
			Detail: strings.TrimSpace(string(body)),
		}
	}

	var feed atom
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return Result{}, fmt.Errorf("arXiv %q: %w: %v", arxivID, record.ErrMalformedResponse, err)
	}
	if len(feed.Entries) == 0 {
		return Result{}, fmt.Errorf("arXiv %q: %w", arxivID, record.ErrNotFound)
	}

	entry := feed.Entries[0]
	// The API signals an unknown identifier with an entry whose id points
	// at the api/errors page instead of returning an empty feed.
	if strings.Contains(entry.ID, "api/errors") {
		return Result{}, fmt.Errorf("arXiv %q: %w", arxivID, record.ErrNotFound)
	}

	res := Result{Title: normalizeFeedTitle(entry.Title)}
	for _, a := range entry.Authors {
		res.Authors = append(res.Authors, a.Name)
	}
	if entry.Published != "" {
		published, err := time.Parse(time.RFC3339, entry.Published)
		if err != nil {
			return Result{}, fmt.Errorf("arXiv %q: %w: bad published date %q", arxivID, record.ErrMalformedResponse, entry.Published)
		}
		res.Published = published
	}
	return res, nil
}

// normalizeFeedTitle collapses the line breaks and indentation the Atom
// feed inserts into long titles.
func normalizeFeedTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}
