package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the English endpoint of the Free Dictionary API.
	// The word is appended to it as the last path segment.
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"

	// DefaultTimeout bounds a single lookup; zero disables the bound
	DefaultTimeout = 15 * time.Second

	maxBodyBytes = 2 << 20
)

// BreakerSettings configures the circuit breaker around the API
type BreakerSettings struct {
	MaxFailures uint32        // consecutive failures before the breaker opens
	Cooldown    time.Duration // how long the breaker stays open
}

// DefaultBreakerSettings returns the breaker settings used when none are given
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxFailures: 5,
		Cooldown:    30 * time.Second,
	}
}

// Client looks words up in the dictionary API
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	breaker    BreakerSettings
	logger     *zap.Logger
}

// WithBaseURL sets the URL the word is appended to
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithTimeout sets the per-lookup timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithBreaker sets the circuit breaker parameters
func WithBreaker(s BreakerSettings) Option {
	return func(o *clientOptions) { o.breaker = s }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// NewClient creates a new dictionary client
func NewClient(opts ...Option) *Client {
	o := &clientOptions{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		breaker: DefaultBreakerSettings(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}
	if o.breaker.MaxFailures == 0 {
		o.breaker.MaxFailures = DefaultBreakerSettings().MaxFailures
	}

	c := &Client{
		baseURL:    o.baseURL,
		httpClient: o.httpClient,
		logger:     o.logger,
	}

	maxFailures := o.breaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "dictionary",
		Timeout: o.breaker.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: isHealthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return c
}

// BaseURL returns the URL words are appended to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Lookup fetches the entries for a word. It fails with ErrNotFound when the
// API knows no such word and with ErrMalformedResponse when the body lacks
// the fields the caller depends on.
func (c *Client) Lookup(ctx context.Context, word string) ([]Entry, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, word)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}
	return result.([]Entry), nil
}

func (c *Client) fetch(ctx context.Context, word string) ([]Entry, error) {
	reqURL := c.baseURL + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("dictionary lookup",
		zap.String("word", word),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// The error body is informational only
		_ = json.Unmarshal(body, apiErr)
		return nil, apiErr
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validate(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// validate checks the fields of the first entry the UI reads
func validate(entries []Entry) error {
	if len(entries) == 0 {
		return ErrNotFound
	}

	first := entries[0]
	if first.Meanings == nil {
		return fmt.Errorf("%w: entry has no meanings", ErrMalformedResponse)
	}
	if first.Phonetics == nil {
		return fmt.Errorf("%w: entry has no phonetics", ErrMalformedResponse)
	}
	for i, m := range first.Meanings {
		if m.Definitions == nil {
			return fmt.Errorf("%w: meaning %d has no definitions", ErrMalformedResponse, i)
		}
	}

	return nil
}

// isHealthy decides which outcomes count against the breaker. Unknown words
// and abandoned lookups say nothing about the service's health.
func isHealthy(err error) bool {
	return err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrMalformedResponse) ||
		errors.Is(err, context.Canceled)
}
