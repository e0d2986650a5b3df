package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"ourshelves/internal/metrics"
)

const DefaultBaseURL = "https://openlibrary.org"

// StatusError reports a non-2xx answer from Open Library.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RPS throttles outbound calls; zero disables the limiter.
	RPS float64
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
		baseURL:   baseURL,
		limiter:   limiter,
	}
}

// Search calls search.json with query as the q parameter. The query is
// escaped once here; callers pass it decoded. There are no retries.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	u := fmt.Sprintf("%s/search.json?q=%s", c.baseURL, url.QueryEscape(query))

	var res SearchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.OpenLibraryRequests.WithLabelValues(metrics.OutcomeTransport).Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.OpenLibraryRequests.WithLabelValues(metrics.OutcomeStatus).Inc()
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		metrics.OpenLibraryRequests.WithLabelValues(metrics.OutcomeDecode).Inc()
		return fmt.Errorf("decode search response: %w", err)
	}
	metrics.OpenLibraryRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	return nil
}
