package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public MetaWeather endpoint.
const DefaultBaseURL = "https://www.metaweather.com"

// Client talks to the MetaWeather API. The zero value is not usable; create
// one with New. A Client is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	log      *zap.Logger
	selector Selector
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSelector sets how SearchCity disambiguates multiple hits.
func WithSelector(s Selector) Option {
	return func(c *Client) {
		c.selector = s
	}
}

// New returns a configured client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// getJSON issues a GET for path below the base URL and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("failed to build url: %w", err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("requesting", zap.String("url", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("response", zap.String("url", endpoint), zap.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, URL: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
