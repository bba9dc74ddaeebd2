// Package config reads settings from the environment through prefixed views, e.g.
// config.New().Prefix("CORE_PROFILE_").MayInt("LIMIT", 100) reads CORE_PROFILE_LIMIT.
// Malformed values never fail startup: they are logged and the default is used
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"sailormouth/internal/platform/logger"
)

// Conf is a prefixed view over the environment
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix narrows the view, prefixes accumulate
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key is the full variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

// may parses key with parse, falling back to def when unset or malformed
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := strings.TrimSpace(os.Getenv(c.Key(key)))
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Err(err).Msg("bad config value, using default")
		return def
	}
	return v
}

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string {
	return may(c, key, def, func(s string) (string, error) { return s, nil })
}

// MayInt returns the value or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayIntRange is MayInt clamped into [lo, hi]
func (c Conf) MayIntRange(key string, def, lo, hi int) int {
	return min(max(c.MayInt(key, def), lo), hi)
}

// MayBool returns the value or def, accepting strconv.ParseBool spellings
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration returns the value or def, e.g. "15s"
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayURL returns an absolute URL without its trailing slash, or def
func (c Conf) MayURL(key, def string) string {
	return may(c, key, def, func(s string) (string, error) {
		u, err := url.Parse(s)
		if err != nil {
			return "", err
		}
		if !u.IsAbs() {
			return "", strconv.ErrSyntax
		}
		return strings.TrimRight(s, "/"), nil
	})
}

// MayPort returns a listen address such as ":4000" from "4000" or ":4000", or def
func (c Conf) MayPort(key, def string) string {
	return may(c, key, def, func(s string) (string, error) {
		p, err := strconv.Atoi(strings.TrimPrefix(s, ":"))
		if err != nil || p < 1 || p > 65535 {
			return "", strconv.ErrRange
		}
		return ":" + strconv.Itoa(p), nil
	})
}

// MayCSV splits a comma separated value, dropping blanks, or returns def
func (c Conf) MayCSV(key string, def []string) []string {
	out := may(c, key, nil, func(s string) ([]string, error) {
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		return parts, nil
	})
	if len(out) == 0 {
		return def
	}
	return out
}
