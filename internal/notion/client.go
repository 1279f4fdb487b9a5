package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/MnacsM/papnt/internal/notionprop"
)

const (
	// BaseURL is the Notion API base URL.
	BaseURL = "https://api.notion.com/v1"

	// APIVersion is the Notion-Version header sent with every request.
	APIVersion = "2022-06-28"

	// RateLimit is Notion's documented average of three requests per second.
	RateLimit = 3.0

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// APIError is an error response from the Notion API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

// Client is a rate-limited Notion API client.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	token      string
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

// NewClient creates a Notion API client using the given integration token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// QueryDatabase returns every page of databaseID matching filter, following
// pagination cursors. filter uses the Notion filter-object shape; nil
// fetches all pages.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter any) ([]Page, error) {
	var pages []Page
	cursor := ""

	for {
		body := map[string]any{}
		if filter != nil {
			body["filter"] = filter
		}
		if cursor != "" {
			body["start_cursor"] = cursor
		}

		var result struct {
			Results    []Page `json:"results"`
			HasMore    bool   `json:"has_more"`
			NextCursor string `json:"next_cursor"`
		}
		if err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", body, &result); err != nil {
			return nil, err
		}

		pages = append(pages, result.Results...)
		if !result.HasMore {
			return pages, nil
		}
		cursor = result.NextCursor
	}
}

// CreatePage creates a page in databaseID with the given properties and
// returns its ID.
func (c *Client) CreatePage(ctx context.Context, databaseID string, props map[string]*notionprop.Value) (string, error) {
	body := map[string]any{
		"parent":     map[string]string{"database_id": databaseID},
		"properties": props,
	}
	var result struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/pages", body, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

// UpdatePage replaces the given properties on an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, props map[string]*notionprop.Value) error {
	body := map[string]any{"properties": props}
	return c.do(ctx, http.MethodPatch, "/pages/"+pageID, body, nil)
}

// AppendParagraph appends one paragraph block to a page. It is used to
// surface serializer notes (author truncation) on the record itself.
func (c *Client) AppendParagraph(ctx context.Context, pageID, text string) error {
	body := map[string]any{
		"children": []any{
			map[string]any{
				"object": "block",
				"type":   "paragraph",
				"paragraph": map[string]any{
					"rich_text": []any{
						map[string]any{
							"type": "text",
							"text": map[string]string{"content": text},
						},
					},
				},
			},
		},
	}
	return c.do(ctx, http.MethodPatch, "/blocks/"+pageID+"/children", body, nil)
}

// do issues one API request and decodes the response into out when out is
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", APIVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = "unreadable error body"
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("notion: decoding response: %w", err)
	}
	return nil
}
