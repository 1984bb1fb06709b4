// Package statsapi is the client for the optional server-side
// statistics service. Its failures are never fatal: callers fall back
// to local computation.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"chartcore/domain/stats"
	"chartcore/ports"
)

// Client implements ports.StatsService over HTTP JSON endpoints.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a stats service client. client == nil uses a
// default with a 10s timeout.
func NewClient(baseURL string, client *http.Client) ports.StatsService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, client: client}
}

// Describe fetches server-side descriptive statistics for one field.
func (c *Client) Describe(ctx context.Context, query, field string) (stats.Summary, error) {
	var summary stats.Summary
	err := c.get(ctx, "/v1/describe", url.Values{"q": {query}, "field": {field}}, &summary)
	return summary, err
}

// Correlate fetches a server-side correlation for a field pair.
func (c *Client) Correlate(ctx context.Context, query, fieldX, fieldY string) (stats.Correlation, error) {
	var corr stats.Correlation
	err := c.get(ctx, "/v1/correlate", url.Values{"q": {query}, "x": {fieldX}, "y": {fieldY}}, &corr)
	return corr, err
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build stats request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("stats service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stats service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode stats response: %w", err)
	}
	return nil
}
