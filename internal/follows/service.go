package follows

import (
	"context"
	"errors"
	"time"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type Service interface {
	Follow(ctx context.Context, userID, followedID string) error
	ListFollowees(ctx context.Context, userID string) ([]string, error)
	ListFollowers(ctx context.Context, userID string) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) Follow(ctx context.Context, userID, followedID string) error {
	if userID == followedID {
		return ErrSelfFollow
	}
	return s.repo.CreateEdge(ctx, userID, followedID, time.Now())
}

func (s *service) ListFollowees(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListFollowees(ctx, userID)
}

func (s *service) ListFollowers(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListFollowers(ctx, userID)
}
