// Package geocode proxies address-autocomplete requests to the Google Places
// API. The upstream JSON body is relayed to callers verbatim.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MinInputLength is the shortest input the autocomplete endpoint accepts.
const MinInputLength = 3

const defaultRequestTimeout = 10 * time.Second

var (
	// ErrInputTooShort indicates the query input is under MinInputLength.
	ErrInputTooShort = errors.New("geocode: input must be at least 3 characters long")
	// ErrUpstream indicates the mapping service call failed.
	ErrUpstream = errors.New("geocode: upstream request failed")

	errMissingAPIKey  = errors.New("geocode: places api key required")
	errMissingBaseURL = errors.New("geocode: places base url required")
)

// ClientConfig bundles configuration for the autocomplete client.
type ClientConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client issues autocomplete requests against the mapping service.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client with validated configuration.
func NewClient(cfg ClientConfig) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errMissingAPIKey
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errMissingBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, httpClient: httpClient}, nil
}

// Autocomplete forwards the input to the mapping service and returns the raw
// upstream JSON body.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]byte, error) {
	if len(input) < MinInputLength {
		return nil, ErrInputTooShort
	}

	query := url.Values{}
	query.Set("input", input)
	query.Set("key", c.apiKey)
	requestURL := c.baseURL + "?" + query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return body, nil
}
