package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"property-listing-service/internal/refdata"
)

// Client is the HTTP wrapper for the remote service's reference-data
// endpoints (cities and property types).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new reference-data HTTP client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Cities fetches the city name index via GET /api/v1/cities.
func (c *Client) Cities(ctx context.Context) ([]refdata.Entry, error) {
	return c.getEntries(ctx, "/api/v1/cities", "cities")
}

// PropertyTypes fetches the property-type name index via
// GET /api/v1/property-types.
func (c *Client) PropertyTypes(ctx context.Context) ([]refdata.Entry, error) {
	return c.getEntries(ctx, "/api/v1/property-types", "property_types")
}

func (c *Client) getEntries(ctx context.Context, path, field string) ([]refdata.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build reference data request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call reference data API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("reference data API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var page map[string][]refdata.Entry
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode reference data response: %w", err)
	}
	return page[field], nil
}
