package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "sailormouth/internal/platform/errors"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := NewClient(Options{BaseURL: srv.URL, MaxRetries: 2, RetryBase: time.Millisecond, PageSize: 2})
	slept := &[]time.Duration{}
	c.sleep = func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
	return c, slept
}

func page(after string, bodies ...string) []byte {
	var l listing
	l.Kind = "Listing"
	l.Data.After = after
	for i, b := range bodies {
		l.Data.Children = append(l.Data.Children, thing{Kind: "t1", Data: commentData{
			ID: fmt.Sprintf("c%d", i), Body: b, Subreddit: "pics", CreatedUTC: 1700000000,
		}})
	}
	out, _ := json.Marshal(l)
	return out
}

func TestComments_PagesUntilLimit(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/user/bob/comments.json", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("raw_json"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		switch r.URL.Query().Get("after") {
		case "":
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			_, _ = w.Write(page("t1_b", "one", "two"))
		case "t1_b":
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			_, _ = w.Write(page("t1_c", "three"))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("after"))
		}
	}))

	got, err := c.Comments(context.Background(), "bob", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "three", got[2].Body)
	assert.Equal(t, "pics", got[0].Subreddit)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), got[0].CreatedAt)
	assert.EqualValues(t, 2, calls.Load())
}

func TestComments_StopsWhenHistoryEnds(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(page("", "only"))
	}))
	got, err := c.Comments(context.Background(), "bob", 100)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestComments_ZeroLimitAndMissingUser(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	}))
	got, err := c.Comments(context.Background(), "bob", 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = c.Comments(context.Background(), "", 10)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestComments_NotFoundAndForbidden(t *testing.T) {
	for status, code := range map[int]perr.ErrorCode{
		http.StatusNotFound:  perr.ErrorCodeNotFound,
		http.StatusForbidden: perr.ErrorCodeSourceUnavailable,
		http.StatusTeapot:    perr.ErrorCodeSourceUnavailable,
	} {
		c, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		_, err := c.Comments(context.Background(), "ghost", 5)
		require.Error(t, err, status)
		assert.True(t, perr.IsCode(err, code), "status %d: %v", status, err)
		assert.Empty(t, *slept, "status %d must not retry", status)
	}
}

func TestDo_RetriesTransientThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	c, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(page("", "ok"))
	}))

	got, err := c.Comments(context.Background(), "bob", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond}, *slept)
}

func TestDo_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.Comments(context.Background(), "bob", 1)
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	assert.True(t, perr.Retryable(err))
	assert.EqualValues(t, 3, calls.Load())
}

func TestDo_RateLimitHonoursRetryAfter(t *testing.T) {
	var calls atomic.Int32
	c, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", strconv.Itoa(2))
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write(page("", "ok"))
	}))

	_, err := c.Comments(context.Background(), "bob", 1)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{2 * time.Second}, *slept)
}

func TestDo_BadJSON(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	_, err := c.Comments(context.Background(), "bob", 1)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeSourceUnavailable))
}

func TestDo_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(page("", "ok"))
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Comments(ctx, "bob", 1)
	require.Error(t, err)
}

func TestReadRate(t *testing.T) {
	now := time.Unix(1000, 0)
	h := http.Header{}
	h.Set("X-Ratelimit-Remaining", "0.0")
	h.Set("X-Ratelimit-Reset", "42")
	rl := readRate(h, now)
	assert.Equal(t, 0, rl.remaining)
	assert.Equal(t, now.Add(42*time.Second).UTC(), rl.reset)
	assert.Equal(t, 42*time.Second, rl.wait(now))

	h.Set("Retry-After", "3")
	assert.Equal(t, 3*time.Second, readRate(h, now).wait(now), "Retry-After wins")

	rl = readRate(http.Header{}, now)
	assert.Equal(t, -1, rl.remaining)
	assert.Zero(t, rl.wait(now))
}

func TestDo_UnexpectedStatusKeepsBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	_, err := c.Do(context.Background(), "/user/bob/comments.json")

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTeapot, se.Status)
	assert.Equal(t, "short and stout", se.Body)
}

func TestNewClient_Defaults(t *testing.T) {
	o := NewClient(Options{PageSize: 500}).Options()
	assert.Equal(t, baseURLDefault, o.BaseURL)
	assert.Equal(t, defaultPageSize, o.PageSize)
	assert.Equal(t, defaultMaxRetry, o.MaxRetries)

	assert.Equal(t, 0, NewClient(Options{MaxRetries: -1}).Options().MaxRetries)
}
