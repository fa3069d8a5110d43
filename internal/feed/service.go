package feed

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/gustavorods/2025-flink-startup-backend/internal/posts"
)

const (
	DefaultLimit = 10
	// MaxLimit caps client-supplied limits; it also bounds the per-chunk
	// row counts and the merge pre-allocation.
	MaxLimit = 100
)

// FolloweeResolver resolves the set of user ids a user follows.
type FolloweeResolver interface {
	ListFollowees(ctx context.Context, userID string) ([]string, error)
}

// PostLister is the slice of the post store the aggregator needs.
type PostLister interface {
	ListByAuthors(ctx context.Context, authorIDs []string, limit int) ([]posts.Post, error)
}

type Service interface {
	Generate(ctx context.Context, userID string, limit int) ([]posts.Post, error)
}

type service struct {
	follows FolloweeResolver
	posts   PostLister
}

func NewService(follows FolloweeResolver, postStore PostLister) Service {
	return &service{follows: follows, posts: postStore}
}

// Generate assembles the timeline: resolve the followee set, fan out one
// query per chunk of at most posts.MaxAuthorsPerQuery authors, then merge,
// re-sort newest-first and truncate to limit.
//
// Each chunk is limited to limit rows before the global merge, so a post
// outside its own chunk's top-limit is excluded even when it would make the
// global top-limit. Known limitation, acceptable while the followee count
// stays small.
func (s *service) Generate(ctx context.Context, userID string, limit int) ([]posts.Post, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	followees, err := s.follows.ListFollowees(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followees) == 0 {
		return []posts.Post{}, nil
	}

	chunks := chunkIDs(followees, posts.MaxAuthorsPerQuery)
	results := make([][]posts.Post, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, ids := range chunks {
		g.Go(func() error {
			batch, err := s.posts.ListByAuthors(gctx, ids, limit)
			if err != nil {
				return err
			}
			results[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]posts.Post, 0, len(chunks)*limit)
	for _, batch := range results {
		merged = append(merged, batch...)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func chunkIDs(ids []string, size int) [][]string {
	var out [][]string
	for i := 0; i < len(ids); i += size {
		end := i + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[i:end])
	}
	return out
}
