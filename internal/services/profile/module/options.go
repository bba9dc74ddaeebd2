package module

import (
	"math"

	"sailormouth/internal/adapters/ingest/reddit"
	"sailormouth/internal/core/wordlist"
	"sailormouth/internal/platform/config"
)

// Options holds configuration settings for the profile module
type Options struct {
	Limit    int
	ListsDir string
	Dict     string
	Fold     bool

	Reddit reddit.Options
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	pf := cfg.Prefix("CORE_PROFILE_")
	rd := cfg.Prefix("SERVICE_REDDIT_")
	return Options{
		Limit:    pf.MayIntRange("LIMIT", 100, 1, math.MaxInt),
		ListsDir: pf.MayString("LISTS_DIR", "lists"),
		Dict:     pf.MayString("DICT", wordlist.DefaultName),
		Fold:     pf.MayBool("FOLD", false),
		Reddit: reddit.Options{
			BaseURL:    rd.MayURL("BASE_URL", "https://www.reddit.com"),
			UserAgent:  rd.MayString("USER_AGENT", "sailormouth word profiler"),
			Timeout:    rd.MayDuration("TIMEOUT", 0),
			MaxRetries: rd.MayInt("MAX_RETRIES", 0),
			RetryBase:  rd.MayDuration("RETRY_BASE", 0),
			PageSize:   rd.MayIntRange("PAGE_SIZE", 100, 1, 100),
		},
	}
}

// merge applies non-zero overrides on top of o
func (o Options) merge(ov Options) Options {
	if ov.Limit != 0 {
		o.Limit = ov.Limit
	}
	if ov.ListsDir != "" {
		o.ListsDir = ov.ListsDir
	}
	if ov.Dict != "" {
		o.Dict = ov.Dict
	}
	// bool override wins only when set
	if ov.Fold {
		o.Fold = true
	}
	if ov.Reddit.BaseURL != "" {
		o.Reddit.BaseURL = ov.Reddit.BaseURL
	}
	if ov.Reddit.UserAgent != "" {
		o.Reddit.UserAgent = ov.Reddit.UserAgent
	}
	if ov.Reddit.Timeout != 0 {
		o.Reddit.Timeout = ov.Reddit.Timeout
	}
	if ov.Reddit.MaxRetries != 0 {
		o.Reddit.MaxRetries = ov.Reddit.MaxRetries
	}
	if ov.Reddit.RetryBase != 0 {
		o.Reddit.RetryBase = ov.Reddit.RetryBase
	}
	if ov.Reddit.PageSize != 0 {
		o.Reddit.PageSize = ov.Reddit.PageSize
	}
	return o
}
