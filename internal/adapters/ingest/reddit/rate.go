package reddit

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// rate is what a response says about the remaining request budget
type rate struct {
	// remaining is -1 when the header is absent
	remaining  int
	reset      time.Time
	retryAfter time.Duration
}

// readRate parses X-Ratelimit-Remaining (a decimal), X-Ratelimit-Reset (seconds from
// now) and Retry-After (seconds)
func readRate(h http.Header, now time.Time) rate {
	rl := rate{remaining: -1}
	if f, err := strconv.ParseFloat(strings.TrimSpace(h.Get("X-Ratelimit-Remaining")), 64); err == nil {
		rl.remaining = int(f)
	}
	if n := seconds(h.Get("X-Ratelimit-Reset")); n > 0 {
		rl.reset = now.Add(n).UTC()
	}
	rl.retryAfter = seconds(h.Get("Retry-After"))
	return rl
}

// wait is how long the server asked us to hold off, zero when it did not say
func (rl rate) wait(now time.Time) time.Duration {
	switch {
	case rl.retryAfter > 0:
		return rl.retryAfter
	case rl.remaining == 0 && rl.reset.After(now):
		return rl.reset.Sub(now)
	}
	return 0
}

func seconds(s string) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
