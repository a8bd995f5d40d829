// Package settings talks to the external application-settings service.
// The signup policy consults it for the allowSignups feature flag.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"storefront/pkg/helpers"
)

// Client is the capability the signup policy depends on. Implementations
// must fail with an error rather than guess when the flag is unreadable.
type Client interface {
	AllowSignups(ctx context.Context) (bool, error)
}

const cacheKey = "settings:allow_signups"

// HTTPClient fetches settings over HTTP and caches the flag in Redis for a
// short TTL so the login page does not pay the settings hop on every view.
type HTTPClient struct {
	URL      string
	Client   *http.Client
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewHTTPClient(url string, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *HTTPClient {
	return &HTTPClient{
		URL:      url,
		Client:   &http.Client{Timeout: 3 * time.Second},
		Redis:    rdb,
		CacheTTL: cacheTTL,
		Logger:   logger,
	}
}

func (c *HTTPClient) AllowSignups(ctx context.Context) (bool, error) {
	if c.Redis != nil && c.CacheTTL > 0 {
		var cached bool
		if ok, err := helpers.RedisGetJSON(ctx, c.Redis, cacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	allow, err := c.fetch(ctx)
	if err != nil {
		return false, err
	}

	if c.Redis != nil && c.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, c.Redis, cacheKey, allow, c.CacheTTL); err != nil && c.Logger != nil {
			c.Logger.WithError(err).Warn("settings cache write failed")
		}
	}
	return allow, nil
}

func (c *HTTPClient) fetch(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("settings service returned %s", resp.Status)
	}

	var body struct {
		AllowSignups bool `json:"allowSignups"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}
	return body.AllowSignups, nil
}

var _ Client = (*HTTPClient)(nil)
