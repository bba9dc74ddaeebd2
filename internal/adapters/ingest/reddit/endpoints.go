package reddit

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"

	perr "sailormouth/internal/platform/errors"
)

// Comments returns up to limit of user's most recent comments, newest first.
// Fewer are returned when the history runs out
func (c *Client) Comments(ctx context.Context, user string, limit int) ([]Comment, error) {
	if user == "" {
		return nil, perr.WithField(perr.InvalidArgf("user is required"), "user")
	}
	if limit <= 0 {
		return []Comment{}, nil
	}

	out := make([]Comment, 0, min(limit, 1000))
	after := ""
	for len(out) < limit {
		size := min(c.opts.PageSize, limit-len(out))
		page, next, err := c.commentsPage(ctx, user, size, after)
		if err != nil {
			return nil, err
		}
		for _, cm := range page {
			if len(out) == limit {
				break
			}
			out = append(out, cm)
		}
		c.log.Debug().Str("user", user).Int("page", len(page)).Int("total", len(out)).Str("after", next).Msg("reddit comments page")
		if next == "" || len(page) == 0 {
			break
		}
		after = next
	}
	return out, nil
}

func (c *Client) commentsPage(ctx context.Context, user string, size int, after string) ([]Comment, string, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(size))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}
	path := "/user/" + url.PathEscape(user) + "/comments.json?" + q.Encode()

	resp, err := c.Do(ctx, path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("reddit close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, "", perr.Wrap(err, perr.ErrorCodeUnavailable, "reddit read body failed")
	}
	var l listing
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, "", perr.Wrap(err, perr.ErrorCodeSourceUnavailable, "reddit decode listing failed")
	}

	page := make([]Comment, 0, len(l.Data.Children))
	for _, t := range l.Data.Children {
		if t.Kind != "" && t.Kind != "t1" {
			continue
		}
		page = append(page, t.Data.comment())
	}
	return page, l.Data.After, nil
}
