package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a feedback service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a feedback client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Stats fetches the current aggregate counts for an article.
func (c *Client) Stats(ctx context.Context, articleID string) (Counts, error) {
	u := fmt.Sprintf("%s/article/stats?articleId=%s", c.baseURL, url.QueryEscape(articleID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Counts{}, fmt.Errorf("building stats request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Counts{}, fmt.Errorf("fetching stats for %s: %w", articleID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Counts{}, fmt.Errorf("stats for %s: unexpected status %d", articleID, resp.StatusCode)
	}

	var counts Counts
	if err := json.NewDecoder(resp.Body).Decode(&counts); err != nil {
		return Counts{}, fmt.Errorf("decoding stats for %s: %w", articleID, err)
	}
	return counts, nil
}

// Submit records one vote and returns the service's updated counts.
func (c *Client) Submit(ctx context.Context, articleID string, action Action) (Counts, error) {
	body, err := json.Marshal(counterRequest{ArticleID: articleID, Action: action})
	if err != nil {
		return Counts{}, fmt.Errorf("encoding vote for %s: %w", articleID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/article/counter", bytes.NewReader(body))
	if err != nil {
		return Counts{}, fmt.Errorf("building vote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Counts{}, fmt.Errorf("submitting vote for %s: %w", articleID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Counts{}, fmt.Errorf("vote for %s: unexpected status %d", articleID, resp.StatusCode)
	}

	var counts Counts
	if err := json.NewDecoder(resp.Body).Decode(&counts); err != nil {
		return Counts{}, fmt.Errorf("decoding vote response for %s: %w", articleID, err)
	}
	return counts, nil
}
