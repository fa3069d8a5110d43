package similarity

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gustavorods/2025-flink-startup-backend/internal/user"
)

// UserLister is the slice of the user store the recommender needs.
type UserLister interface {
	GetAll(ctx context.Context) ([]user.User, error)
}

type FolloweeResolver interface {
	ListFollowees(ctx context.Context, userID string) ([]string, error)
}

type Service interface {
	CompareInterests(ctx context.Context, userID string, subjectTags []string) ([]user.User, error)
}

type service struct {
	users   UserLister
	follows FolloweeResolver
}

func NewService(users UserLister, follows FolloweeResolver) Service {
	return &service{users: users, follows: follows}
}

// CompareInterests scans every user and keeps those sharing at least one tag
// with subjectTags, skipping the subject and anyone they already follow.
// Result order is the store's iteration order; overlap count does not rank.
//
// Full-table scan per call. Fine at current user counts; an inverted
// tag->users index is the way out if that stops being true.
func (s *service) CompareInterests(ctx context.Context, userID string, subjectTags []string) ([]user.User, error) {
	var (
		all       []user.User
		followees []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.users.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		followees, err = s.follows.ListFollowees(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	followed := make(map[string]struct{}, len(followees))
	for _, id := range followees {
		followed[id] = struct{}{}
	}
	tags := make(map[string]struct{}, len(subjectTags))
	for _, t := range subjectTags {
		tags[t] = struct{}{}
	}

	semelhantes := make([]user.User, 0)
	for _, candidate := range all {
		if candidate.ID == userID {
			continue
		}
		if _, ok := followed[candidate.ID]; ok {
			continue
		}
		for _, sport := range candidate.Esportes {
			if _, ok := tags[sport]; ok {
				semelhantes = append(semelhantes, candidate)
				break
			}
		}
	}
	return semelhantes, nil
}
