package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"

	"stockprices/internal/ratelimit"
)

const baseURL = "https://www.alphavantage.co/query"

// ErrNoTimeSeries reports a 2xx upstream response whose body lacks the
// expected time-series object. Alpha Vantage answers unknown tickers and
// throttled keys this way ("Note" / "Error Message" bodies), so callers can
// treat it as "no data" rather than a transport failure.
var ErrNoTimeSeries = errors.New("response has no time series")

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=alphavantage_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Alpha Vantage query API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// limiter, when set, gates every request. Alpha Vantage's free tier
	// allows only a handful of requests per minute.
	limiter *ratelimit.TokenBucket
	// query contains query parameters sent with each request (the API key).
	query url.Values
}

// ClientOption is a configuration option for the Alpha Vantage client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLimiter gates requests through a token bucket.
func WithLimiter(tb *ratelimit.TokenBucket) ClientOption {
	return func(c *Client) {
		c.limiter = tb
	}
}

// NewClient creates a new Alpha Vantage client.
func NewClient(apiKey string, options ...ClientOption) (*Client, error) {
	var client = &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		query:      url.Values{},
	}
	if apiKey != "" {
		client.query.Set("apikey", apiKey)
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// get issues one query-API request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, function, symbol string, extra url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	query := maps.Clone(c.query)
	query.Set("function", function)
	query.Set("symbol", symbol)
	for k, vs := range extra {
		for _, v := range vs {
			query.Add(k, v)
		}
	}

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "stockprices/1.0")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited")
	default:
		return fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
