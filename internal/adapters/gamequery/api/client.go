package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gamestatus-bot/internal/adapters/metrics"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.mcsrvstat.us"
	userAgent      = "gamestatus-bot/1.0"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient returns a client that sends at most ratePerSecond requests per second,
// shared by every status being refreshed.
func NewClient(ratePerSecond float64) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: NewMetricsRoundTripper(http.DefaultTransport),
		},
		baseURL: DefaultBaseURL,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), max(1, int(ratePerSecond))),
	}
}

// NewTestClient creates an unlimited client with custom base URL for testing.
func NewTestClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
}

func (c *Client) GetJavaStatus(ctx context.Context, address string) (*StatusResponse, error) {
	u := fmt.Sprintf("%s/3/%s", c.baseURL, url.PathEscape(address))

	var data StatusResponse
	if err := c.getAndDecode(ctx, u, &data); err != nil {
		return nil, fmt.Errorf("fetch java status: %w", err)
	}

	return &data, nil
}

func (c *Client) GetBedrockStatus(ctx context.Context, address string) (*StatusResponse, error) {
	u := fmt.Sprintf("%s/bedrock/3/%s", c.baseURL, url.PathEscape(address))

	var data StatusResponse
	if err := c.getAndDecode(ctx, u, &data); err != nil {
		return nil, fmt.Errorf("fetch bedrock status: %w", err)
	}

	return &data, nil
}

func (c *Client) getAndDecode(ctx context.Context, url string, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// -- Middleware --

type MetricsRoundTripper struct {
	Proxied http.RoundTripper
}

func NewMetricsRoundTripper(proxied http.RoundTripper) *MetricsRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	return &MetricsRoundTripper{Proxied: proxied}
}

func (mrt *MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mrt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	endpoint := endpointLabel(req.URL.Path)
	metrics.ServerQueryDuration.WithLabelValues(endpoint, status).Observe(duration)
	metrics.ServerQueries.WithLabelValues(endpoint, status).Inc()

	return resp, err
}

func endpointLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/bedrock/"):
		return "bedrock"
	case strings.HasPrefix(path, "/3/"):
		return "java"
	default:
		return "unknown"
	}
}
