package jalc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MnacsM/papnt/internal/record"
)

const (
	// BaseURL is the Japan Link Center API base URL.
	BaseURL = "https://api.japanlinkcenter.org"

	// RateLimit is a conservative request rate; JaLC documents no hard
	// quota.
	RateLimit = 2.0

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a rate-limited HTTP client for the JaLC API.
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

// NewClient creates a JaLC API client.
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

// Lookup fetches metadata for one JaLC DOI. Transport and HTTP failures
// surface as UpstreamError, unparseable bodies as ErrMalformedResponse and
// an empty metadata payload as ErrNotFound.
func (c *Client) Lookup(ctx context.Context, doi string) (Metadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Metadata{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dois/"+doi, nil)
	if err != nil {
		return Metadata{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Metadata{}, &record.UpstreamError{Source: record.SourceJaLC, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Metadata{}, &record.UpstreamError{
			Source: record.SourceJaLC,
			Status: resp.StatusCode,
			Detail: strings.TrimSpace(string(body)),
		}
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Metadata{}, fmt.Errorf("DOI %q: %w: %v", doi, record.ErrMalformedResponse, err)
	}

	if emptyPayload(envelope.Data) {
		return Metadata{}, fmt.Errorf("DOI %q: no metadata in JaLC response: %w", doi, record.ErrNotFound)
	}

	var meta Metadata
	if err := json.Unmarshal(envelope.Data, &meta); err != nil {
		return Metadata{}, fmt.Errorf("DOI %q: %w: %v", doi, record.ErrMalformedResponse, err)
	}
	return meta, nil
}

// emptyPayload reports whether the data element is missing, null or an
// empty object.
func emptyPayload(data json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(data))
	return trimmed == "" || trimmed == "null" || trimmed == "{}"
}
