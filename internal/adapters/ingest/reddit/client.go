// Package reddit provides a resilient client for a user's public comment listing
package reddit

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "sailormouth/internal/platform/errors"
	"sailormouth/internal/platform/logger"
)

const (
	baseURLDefault   = "https://www.reddit.com"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "sailormouth word profiler"
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
	defaultPageSize  = 100
	maxPageSize      = 100
	maxBackoff       = 30 * time.Second
)

// Options configures a Client, zero fields take the defaults above
type Options struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int // negative disables retries
	RetryBase  time.Duration
	PageSize   int // at most 100
}

// Client is a minimal read-only Reddit listing client
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.PageSize <= 0 || o.PageSize > maxPageSize {
		o.PageSize = defaultPageSize
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("reddit"),
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Options returns the effective options after defaults
func (c *Client) Options() Options { return c.opts }

// StatusError is an unexpected upstream status with the start of its body
type StatusError struct {
	Status int
	Body   string
	Err    error
}

func (e *StatusError) Error() string { return e.Err.Error() }
func (e *StatusError) Unwrap() error { return e.Err }

// Do GETs path, retrying transport failures, 5xx and 429 up to MaxRetries times.
// The caller closes the body on success
func (c *Client) Do(ctx context.Context, path string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, wait, err := c.try(ctx, path, attempt)
		if err == nil {
			return resp, nil
		}
		if wait < 0 || attempt >= c.opts.MaxRetries || ctx.Err() != nil {
			return nil, err
		}
		c.log.Warn().Err(err).Str("path", path).Dur("retry_in", wait).Int("attempt", attempt).Msg("reddit retrying")
		if serr := c.sleep(ctx, wait); serr != nil {
			return nil, perr.Wrap(serr, perr.CodeOf(err), "reddit retry canceled")
		}
	}
}

// try makes a single request. A negative wait means err is final
func (c *Client) try(ctx context.Context, path string, attempt int) (*http.Response, time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return nil, -1, perr.Wrap(err, perr.ErrorCodeUnavailable, "reddit request canceled")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+path, nil)
	if err != nil {
		return nil, -1, perr.Wrap(err, perr.ErrorCodeUnknown, "reddit build request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.backoff(attempt), perr.Wrap(err, perr.ErrorCodeUnavailable, "reddit request failed")
	}
	rl := readRate(resp.Header, c.now())
	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("attempt", attempt).
		Dur("latency", c.now().Sub(start)).
		Int("rate_remaining", rl.remaining).
		Msg("reddit response")

	if resp.StatusCode == http.StatusOK {
		return resp, 0, nil
	}
	tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	_ = resp.Body.Close()

	switch code := resp.StatusCode; code {
	case http.StatusNotFound:
		return nil, -1, perr.NotFoundf("reddit user not found")
	case http.StatusForbidden:
		// suspended or private
		return nil, -1, perr.SourceUnavailablef("reddit user is not accessible")
	case http.StatusTooManyRequests:
		wait := rl.wait(c.now())
		if wait <= 0 {
			wait = c.backoff(attempt)
		}
		return nil, min(wait, maxBackoff), perr.New(perr.ErrorCodeTooManyRequests, "reddit rate limited")
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return nil, c.backoff(attempt), perr.Newf(perr.ErrorCodeUnavailable, "reddit server error %d", code)
	default:
		return nil, -1, &StatusError{
			Status: code,
			Body:   string(tail),
			Err:    perr.SourceUnavailablef("reddit unexpected status %d", code),
		}
	}
}

// backoff doubles RetryBase per attempt up to maxBackoff
func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
