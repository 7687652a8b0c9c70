package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"property-listing-service/internal/listing/repository"
)

// Client is the HTTP wrapper for the remote listing data service. It is
// constructed with a base address and timeout so it can be pointed at a
// test server directly, without a web-server fixture.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new listing service HTTP client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListQuery carries the filter dimensions supported by the remote list
// and search endpoints.
type ListQuery struct {
	Term     string
	CityID   string
	TypeID   string
	MaxPrice *decimal.Decimal
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Term != "" {
		v.Set("term", q.Term)
	}
	if q.CityID != "" {
		v.Set("city_id", q.CityID)
	}
	if q.TypeID != "" {
		v.Set("type_id", q.TypeID)
	}
	if q.MaxPrice != nil {
		v.Set("max_price", q.MaxPrice.String())
	}
	return v
}

// ListListings is the bulk read via GET /api/v1/listings.
func (c *Client) ListListings(ctx context.Context, q ListQuery) ([]ListingObject, error) {
	return c.getListingPage(ctx, "/api/v1/listings", q.values())
}

// SearchListings is the criteria search via GET /api/v1/listings/search.
func (c *Client) SearchListings(ctx context.Context, q ListQuery) ([]ListingObject, error) {
	return c.getListingPage(ctx, "/api/v1/listings/search", q.values())
}

// ListByAgent fetches an agent's listings via the dedicated endpoint.
func (c *Client) ListByAgent(ctx context.Context, agentID string) ([]ListingObject, error) {
	return c.getListingPage(ctx, fmt.Sprintf("/api/v1/agents/%s/listings", url.PathEscape(agentID)), nil)
}

// ListByCity fetches a city's listings via the dedicated endpoint.
func (c *Client) ListByCity(ctx context.Context, cityID string) ([]ListingObject, error) {
	return c.getListingPage(ctx, fmt.Sprintf("/api/v1/cities/%s/listings", url.PathEscape(cityID)), nil)
}

// ListFeatured fetches the featured listings.
func (c *Client) ListFeatured(ctx context.Context) ([]ListingObject, error) {
	return c.getListingPage(ctx, "/api/v1/listings/featured", nil)
}

// GetListing fetches a single listing by its ID. A 404 is reported as
// repository.ErrNotFound.
func (c *Client) GetListing(ctx context.Context, id string) (*ListingObject, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/v1/listings/%s", url.PathEscape(id)), nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, repository.ErrNotFound
	}
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	var obj ListingObject
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return nil, fmt.Errorf("failed to decode listing response: %w", err)
	}
	return &obj, nil
}

// CreateListing creates a new listing via POST /api/v1/listings.
func (c *Client) CreateListing(ctx context.Context, payload ListingPayload) (*ListingObject, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/listings", nil, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	var obj ListingObject
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return nil, fmt.Errorf("failed to decode create listing response: %w", err)
	}
	return &obj, nil
}

// UpdateListing updates an existing listing via PUT /api/v1/listings/{id}.
func (c *Client) UpdateListing(ctx context.Context, id string, payload ListingPayload) error {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/v1/listings/%s", url.PathEscape(id)), nil, payload)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return classifyStatus(resp)
}

// DeleteListing removes a listing via DELETE /api/v1/listings/{id}.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/listings/%s", url.PathEscape(id)), nil, nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return classifyStatus(resp)
}

func (c *Client) getListingPage(ctx context.Context, path string, query url.Values) ([]ListingObject, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	var page struct {
		Listings []ListingObject `json:"listings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode listings response: %w", err)
	}
	return page.Listings, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing service request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	return req, nil
}

// do executes the request, folding transport failures into
// repository.ErrUnreachable so callers never see net-level error types.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUnreachable, err)
	}
	return resp, nil
}

// classifyStatus maps any non-2xx response to a StatusError carrying the
// code, so orchestration can recognize the known-defect code.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(resp.Body)
	return &repository.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
}

// ---- Wire types scoped to this package ----

// ListingObject is the remote service's listing record.
type ListingObject struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	CityID      string           `json:"city_id"`
	TypeID      string           `json:"type_id"`
	AgentID     string           `json:"agent_id"`
	Beds        int              `json:"beds"`
	Baths       int              `json:"baths"`
	Area        *decimal.Decimal `json:"area,omitempty"`
	Featured    *bool            `json:"featured,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

// ListingPayload is the body for create and update calls. Pointer
// fields are omitted when nil so updates stay partial.
type ListingPayload struct {
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CityID      string           `json:"city_id,omitempty"`
	TypeID      string           `json:"type_id,omitempty"`
	AgentID     string           `json:"agent_id,omitempty"`
	Beds        *int             `json:"beds,omitempty"`
	Baths       *int             `json:"baths,omitempty"`
	Area        *decimal.Decimal `json:"area,omitempty"`
	Featured    *bool            `json:"featured,omitempty"`
	Status      *string          `json:"status,omitempty"`
}
