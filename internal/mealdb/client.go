package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the public TheMealDB v1 endpoint.
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

	defaultTimeout = 10 * time.Second
)

var (
	// ErrNoResults indicates the API answered with an empty or null meal list.
	ErrNoResults = errors.New("mealdb: no results found")
	// ErrNotFound indicates a lookup by id matched no meal.
	ErrNotFound = errors.New("mealdb: meal not found")
	// ErrInvalidResponse indicates the response body could not be decoded.
	ErrInvalidResponse = errors.New("mealdb: invalid response")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mealdb: unexpected status %d", e.Code)
}

// Client calls the upstream recipe API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL. An empty baseURL selects
// the public endpoint; a zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type categoryListResponse struct {
	Categories []RawCategory `json:"categories"`
}

type mealListResponse struct {
	Meals []RawMealSummary `json:"meals"`
}

type mealDetailResponse struct {
	Meals []RawMealDetail `json:"meals"`
}

// GetCategoryList fetches all meal categories.
func (c *Client) GetCategoryList(ctx context.Context) ([]RawCategory, error) {
	var resp categoryListResponse
	if err := c.get(ctx, "/categories.php", nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Categories) == 0 {
		return nil, ErrNoResults
	}
	return resp.Categories, nil
}

// GetMeals fetches the meal summaries for a category name.
func (c *Client) GetMeals(ctx context.Context, category string) ([]RawMealSummary, error) {
	var resp mealListResponse
	if err := c.get(ctx, "/filter.php", url.Values{"c": {category}}, &resp); err != nil {
		return nil, err
	}
	// The API reports an unknown category as "meals": null.
	if len(resp.Meals) == 0 {
		return nil, ErrNoResults
	}
	return resp.Meals, nil
}

// GetMealDetail fetches the full record for a single meal id.
func (c *Client) GetMealDetail(ctx context.Context, id string) (*RawMealDetail, error) {
	var resp mealDetailResponse
	if err := c.get(ctx, "/lookup.php", url.Values{"i": {id}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Meals) == 0 {
		return nil, ErrNotFound
	}
	return &resp.Meals[0], nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("mealdb: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Context and network errors stay wrapped so callers can classify
		// them with errors.Is / errors.As.
		return fmt.Errorf("mealdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return nil
}
