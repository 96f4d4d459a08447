package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Client fetches the India states GeoJSON used by the choropleth map. The
// document never changes within a deployment, so the first successful fetch
// is cached for the life of the process; failures are retried on the next
// request.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.Mutex
	cached []byte
}

func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// IndiaStates returns the raw GeoJSON document.
func (c *Client) IndiaStates(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch geojson: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geojson source error: status %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("geojson source returned invalid JSON")
	}

	c.cached = body
	c.logger.Info("geojson cached", "bytes", len(body))
	return body, nil
}
