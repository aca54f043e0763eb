package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"
)

// ErrTransport marks an upstream call that kept failing with a transient
// error (network, timeout, 5xx) until every retry was used.
var ErrTransport = errors.New("upstream transport failure")

// ErrBadRequestURL marks a request that could not be built, usually from a
// misconfigured base URL. It is never retried.
var ErrBadRequestURL = errors.New("cannot build upstream request")

// Config holds transport configuration.
type Config struct {
	Policy      Policy
	UserAgent   string
	LogRequests bool
}

// Response is a completed upstream exchange that is not eligible for retry.
// Non-2xx statuses are reported here, not as errors.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client issues GET requests under a Policy. It is safe for concurrent use
// and is meant to be built once per process.
type Client struct {
	httpClient  *http.Client
	policy      Policy
	userAgent   string
	slots       *semaphore.Weighted
	logRequests bool
	logger      *slog.Logger
}

// NewHTTPClient builds the shared *http.Client with a connection pool sized
// to the policy's concurrency cap. Timeouts are applied per attempt, not here.
func NewHTTPClient(p Policy) *http.Client {
	p = p.withDefaults()
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxConnsPerHost:     p.MaxConcurrent,
			MaxIdleConnsPerHost: p.MaxConcurrent,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

// New creates a transport client around httpClient.
func New(httpClient *http.Client, cfg Config, logger *slog.Logger) *Client {
	p := cfg.Policy.withDefaults()
	if httpClient == nil {
		httpClient = NewHTTPClient(p)
	}
	return &Client{
		httpClient:  httpClient,
		policy:      p,
		userAgent:   cfg.UserAgent,
		slots:       semaphore.NewWeighted(int64(p.MaxConcurrent)),
		logRequests: cfg.LogRequests,
		logger:      logger.With("component", "transport"),
	}
}

// Policy returns the effective policy after defaults.
func (c *Client) Policy() Policy {
	return c.policy
}

// Get performs a GET against url. Transient failures are retried with
// exponential backoff; everything else comes back as a Response.
//
// The returned error wraps ErrTransport when retries are exhausted, or the
// context error when ctx is cancelled while a request or a backoff wait is
// in flight. A request that cannot be built fails with ErrBadRequestURL.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	attempt := 0

	operation := func() (*Response, error) {
		attempt++
		resp, err := c.do(ctx, url)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, backoff.Permanent(ctxErr)
			}
			return nil, err
		}
		if isTransientStatus(resp.StatusCode) {
			return resp, fmt.Errorf("unexpected status: %d", resp.StatusCode)
		}
		return resp, nil
	}

	notify := func(err error, delay time.Duration) {
		c.logger.Warn("upstream request failed, retrying",
			"url", url,
			"attempt", attempt,
			"max_retries", c.policy.MaxRetries,
			"backoff", delay,
			"error", err,
		)
	}

	resp, err := backoff.RetryNotifyWithData(operation, c.backOff(ctx), notify)
	if err == nil {
		return resp, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("upstream request cancelled: %w", ctxErr)
	}
	if errors.Is(err, ErrBadRequestURL) {
		c.logger.Error("upstream request rejected", "url", url, "error", err)
		return nil, err
	}

	c.logger.Error("upstream request failed",
		"url", url,
		"attempts", attempt,
		"error", err,
	)
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrTransport, attempt, err)
}

func (c *Client) do(ctx context.Context, url string) (*Response, error) {
	if err := c.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.slots.Release(1)

	attemptCtx, cancel := context.WithTimeout(ctx, c.policy.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %w", ErrBadRequestURL, err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("request timed out after %s: %w", c.policy.Timeout, err)
		}
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if c.logRequests {
		c.logger.Debug("upstream response",
			"url", url,
			"status", resp.StatusCode,
			"bytes", len(body),
			"duration", time.Since(start),
		)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *Client) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.policy.BaseDelay
	b.Multiplier = c.policy.Multiplier
	b.RandomizationFactor = 0
	b.MaxInterval = c.policy.Delay(max(c.policy.MaxRetries, 1))
	b.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.policy.MaxRetries)), ctx)
}

func isTransientStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusRequestTimeout
}
