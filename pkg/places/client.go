// Package places provides campground lookup via the Google Places text
// search API.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const searchTextPath = "/places:searchText"

// fieldMask limits the response to the fields the verification display needs.
const fieldMask = "places.id,places.displayName,places.location,places.formattedAddress"

// ErrNoAPIKey is returned before any request is sent when the client has no
// API key configured.
var ErrNoAPIKey = eris.New("places: api key not configured")

// ErrNoResults is returned when the search matched no places.
var ErrNoResults = eris.New("places: no results")

// Client performs text searches against the Places API.
type Client interface {
	// SearchText runs a free-text search and returns the best match.
	SearchText(ctx context.Context, query string) (*Place, error)
}

// Place is the subset of a Places result the tool consumes.
type Place struct {
	ID               string
	DisplayName      string
	FormattedAddress string
	Latitude         float64
	Longitude        float64
}

// Option configures the client.
type Option func(*client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(c *client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

type client struct {
	key        string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Places client with the given API key and options.
func NewClient(key string, opts ...Option) Client {
	c := &client{
		key:        key,
		baseURL:    "https://places.googleapis.com/v1",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(10, 10),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchTextRequest struct {
	TextQuery      string `json:"textQuery"`
	MaxResultCount int    `json:"maxResultCount"`
}

type searchTextResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string `json:"formattedAddress"`
		Location         struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
	} `json:"places"`
}

// SearchText runs a single synchronous text search, requesting at most one
// result. No retries: any failure surfaces once.
func (c *client) SearchText(ctx context.Context, query string) (*Place, error) {
	if c.key == "" {
		return nil, ErrNoAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "places: rate limit")
	}

	body, err := json.Marshal(searchTextRequest{TextQuery: query, MaxResultCount: 1})
	if err != nil {
		return nil, eris.Wrap(err, "places: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchTextPath, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "places: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.key)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "places: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("places: search returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "places: read body")
	}

	var searchResp searchTextResponse
	if err := json.Unmarshal(respBody, &searchResp); err != nil {
		return nil, eris.Wrap(err, "places: parse response")
	}

	if len(searchResp.Places) == 0 {
		return nil, ErrNoResults
	}

	place := searchResp.Places[0]
	return &Place{
		ID:               place.ID,
		DisplayName:      place.DisplayName.Text,
		FormattedAddress: place.FormattedAddress,
		Latitude:         place.Location.Latitude,
		Longitude:        place.Location.Longitude,
	}, nil
}
