package crossref

import (
	"context"
	"encoding/json"
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
	// BaseURL is the CrossRef REST API base URL.
	BaseURL = "https://api.crossref.org"

	// RateLimit keeps requests inside CrossRef's polite-pool guidance.
	RateLimit = 2.0

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a rate-limited HTTP client for the CrossRef REST API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
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

// WithMailto sets the contact address sent in the User-Agent, which moves
// requests into CrossRef's polite pool.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// NewClient creates a CrossRef API client.
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

// Work fetches the work registered for doi. A DOI unknown to the registry
// yields record.ErrNotFound.
func (c *Client) Work(ctx context.Context, doi string) (Work, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Work{}, err
	}

	// Double slashes show up in DOIs scraped from PDFs.
	doi = strings.ReplaceAll(doi, "//", "/")

	reqURL := c.baseURL + "/works/" + url.PathEscape(doi)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Work{}, err
	}
	req.Header.Set("Accept", "application/json")
	userAgent := "papnt/1.0"
	if c.mailto != "" {
		userAgent += " (mailto:" + c.mailto + ")"
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Work{}, &record.UpstreamError{Source: record.SourceCrossref, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Work{}, fmt.Errorf("DOI %q: %w", doi, record.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Work{}, &record.UpstreamError{
			Source: record.SourceCrossref,
			Status: resp.StatusCode,
			Detail: strings.TrimSpace(string(body)),
		}
	}

	var envelope struct {
		Message Work `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Work{}, fmt.Errorf("DOI %q: %w: %v", doi, record.ErrMalformedResponse, err)
	}
	return envelope.Message, nil
}
