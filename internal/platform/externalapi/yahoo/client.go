// Package yahoo provides a client for Yahoo Finance quote fundamentals.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bguntupallics/TradingSandbox/internal/shared/apperr"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=yahoo_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fundamentals carries quote fundamentals for a single symbol. Fields absent
// from the upstream payload stay nil; absence is not an error at this layer.
type Fundamentals struct {
	MarketCap          *float64 `json:"marketCap"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	PreviousClose      *float64 `json:"regularMarketPreviousClose"`
	Currency           *string  `json:"currency"`
}

// Client is a client for the Yahoo Finance quote API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP client used for requests.
	httpClient HTTPClient
}

// Option is a configuration option for the Yahoo client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Yahoo Finance quote client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// quoteResponse is the envelope of /v7/finance/quote.
type quoteResponse struct {
	QuoteResponse struct {
		Result []Fundamentals `json:"result"`
	} `json:"quoteResponse"`
}

// GetFundamentals fetches quote fundamentals for symbol. A symbol unknown to
// Yahoo yields a zero Fundamentals value with all fields nil.
func (c *Client) GetFundamentals(ctx context.Context, symbol string) (Fundamentals, error) {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Fundamentals{}, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Fundamentals{}, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return Fundamentals{}, &apperr.UpstreamStatusError{StatusCode: res.StatusCode, URL: u}
	}

	var body quoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return Fundamentals{}, fmt.Errorf("yahoo decode: %w", err)
	}
	if len(body.QuoteResponse.Result) == 0 {
		return Fundamentals{}, nil
	}
	return body.QuoteResponse.Result[0], nil
}
