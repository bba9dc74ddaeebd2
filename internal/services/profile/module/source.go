package module

import (
	"context"

	"sailormouth/internal/adapters/ingest/reddit"
	"sailormouth/internal/services/profile/domain"
)

// redditSource adapts the reddit client to domain.SourcePort, grouping comments by subreddit
type redditSource struct {
	c *reddit.Client
}

// NewRedditSource builds a SourcePort backed by a reddit client built from o
func NewRedditSource(o reddit.Options) domain.SourcePort {
	return redditSource{c: reddit.NewClient(o)}
}

func (s redditSource) Fetch(ctx context.Context, user string, limit int) ([]domain.Record, error) {
	cs, err := s.c.Comments(ctx, user, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, len(cs))
	for i, c := range cs {
		out[i] = domain.Record{
			ID:        c.ID,
			Body:      c.Body,
			Group:     c.Subreddit,
			CreatedAt: c.CreatedAt,
		}
	}
	return out, nil
}
