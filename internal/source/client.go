// Package source implements the fetch-and-parse boundary against the
// upstream social analytics API. The core pipeline consumes it through the
// Source interface and never performs network calls itself.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// ErrCreatorNotFound is returned when the upstream creator lookup yields no
// record. It is the only fetch failure that aborts report generation.
var ErrCreatorNotFound = errors.New("creator not found")

// Config holds the upstream API client settings.
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"api_key"`
	Network        string        `yaml:"network"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RPS            float64       `yaml:"rps"`
	Burst          int           `yaml:"burst"`
}

// DefaultConfig returns the production client settings minus the API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "https://lunarcrush.com/api4",
		Network:        "twitter",
		RequestTimeout: 10 * time.Second,
		RPS:            2,
		Burst:          4,
	}
}

// Client is a rate-limited, circuit-broken HTTP client for the upstream
// creator analytics API.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	onError func(endpoint string)
}

// NewClient builds a Client from config, filling unset fields from
// DefaultConfig.
func NewClient(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Network == "" {
		cfg.Network = def.Network
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = def.RequestTimeout
	}
	if cfg.RPS <= 0 {
		cfg.RPS = def.RPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}

	settings := gobreaker.Settings{
		Name:    "creator-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("upstream circuit breaker state change")
		},
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// WithErrorHook registers a callback invoked with the endpoint name
// (creator, time_series, posts) on every failed fetch.
func (c *Client) WithErrorHook(fn func(endpoint string)) *Client {
	c.onError = fn
	return c
}

// NormalizeHandle strips a leading '@', lowercases and trims the handle.
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(handle), "@")))
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
}

// fetch performs one rate-limited, breaker-guarded GET and returns the
// envelope's data payload. endpoint labels the call for the error hook.
func (c *Client) fetch(ctx context.Context, endpoint, path string) (json.RawMessage, error) {
	data, err := c.doFetch(ctx, path)
	if err != nil && c.onError != nil {
		c.onError(endpoint)
	}
	return data, err
}

func (c *Client) doFetch(ctx context.Context, path string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := fmt.Sprintf("%s%s?key=%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), path, url.QueryEscape(c.cfg.APIKey))

	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("upstream request failed")
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrCreatorNotFound
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if env.Error != nil {
			return nil, fmt.Errorf("upstream error: %s: %w", env.Error.Message, ErrCreatorNotFound)
		}
		if len(env.Data) == 0 || string(env.Data) == "null" {
			return nil, ErrCreatorNotFound
		}

		log.Debug().
			Str("path", path).
			Dur("duration", time.Since(start)).
			Msg("upstream request completed")

		return env.Data, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(json.RawMessage), nil
}

func (c *Client) creatorPath(handle, suffix string) string {
	return fmt.Sprintf("/public/creator/%s/%s%s/v1", c.cfg.Network, url.PathEscape(NormalizeHandle(handle)), suffix)
}
