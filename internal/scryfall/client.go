package scryfall

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/karnai/cardir/internal/cache"
	"github.com/karnai/cardir/internal/model"
	"github.com/karnai/cardir/internal/util"
	"github.com/karnai/cardir/internal/worker"
)

// maxAttempts bounds retries on 429/5xx/transport errors; 4xx responses
// fail immediately
const maxAttempts = 3

// sleepFunc performs retry backoff; overridden in tests
var sleepFunc = time.Sleep

// Client downloads card records from the Scryfall API. Responses are
// cached (Scryfall asks consumers to cache for at least 24 hours) and
// requests are paced per host and checked against robots.txt.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxBytes   int64
	cache      cache.Cache // nil when caching is disabled
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
}

// NewClient creates a client from the runtime configuration
func NewClient(cfg *model.Config) *Client {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, ""),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var responseCache cache.Cache
	if cfg.Cache.Enabled {
		responseCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		baseURL:   strings.TrimSuffix(cfg.HTTP.BaseURL, "/"),
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		cache:     responseCache,
		robots:    util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter:   worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
	}
}

// CardByName fetches a single card record by exact name and returns the
// raw JSON response
func (c *Client) CardByName(ctx context.Context, name string) ([]byte, error) {
	endpoint := c.baseURL + "/cards/named?exact=" + url.QueryEscape(name)
	return c.fetchJSON(ctx, endpoint)
}

// fetchJSON retrieves a JSON document with caching, robots.txt and rate
// limit compliance, and bounded retries
func (c *Client) fetchJSON(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.Key(rawURL)
	if c.cache != nil {
		if data, found := c.cache.Get(key); found {
			return data, nil
		}
	}

	allowed, crawlDelay, err := c.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	if err := c.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			sleepFunc(time.Duration(attempt-1) * time.Second)
		}

		data, retryable, err := c.doRequest(ctx, rawURL)
		if err == nil {
			if c.cache != nil {
				_ = c.cache.Set(key, data, 0) // Use configured default TTL
			}
			return data, nil
		}

		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("fetch failed after %d attempts: %w", maxAttempts, lastErr)
}

// doRequest performs a single HTTP round trip. The second return value
// reports whether the failure is worth retrying.
func (c *Client) doRequest(ctx context.Context, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}

	// Scryfall requires both headers on API requests
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Fall through to the body read below
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	default:
		return nil, false, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, true, fmt.Errorf("read body: %w", err)
	}

	return body, false, nil
}

// Slug derives the filename slug for a card name: lowercased, spaces to
// underscores, punctuation dropped. "Lightning Bolt" becomes
// "lightning_bolt", matching the sample_card_<slug>.json convention.
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('_')
		}
	}
	return b.String()
}
