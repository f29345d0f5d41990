// Package socrata fetches collision records from the NYC Open Data API.
package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rk-304/nyc-collision-dashboard/internal/domain"
)

// Client fetches raw collision records over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a Socrata client for the given resource URL. limit is
// passed through as the $limit query parameter on every request.
func NewClient(baseURL string, limit int, userAgent string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		limit:     limit,
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch issues one GET to the resource endpoint and decodes the JSON array
// of records. A non-success status is returned as a *domain.TransportError
// carrying the status code.
func (c *Client) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	params := url.Values{
		"$limit": {strconv.Itoa(c.limit)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch accident data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode}
	}

	var records []domain.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("fetched accident data", "records", len(records), "limit", c.limit)
	return records, nil
}
