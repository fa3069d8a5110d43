package follows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	edges     map[string][]string
	lastAt    time.Time
	edgeCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{edges: map[string][]string{}}
}

func (f *fakeRepo) CreateEdge(_ context.Context, followerID, followeeID string, at time.Time) error {
	f.edgeCalls++
	f.lastAt = at
	f.edges[followerID] = append(f.edges[followerID], followeeID)
	return nil
}

func (f *fakeRepo) ListFollowees(_ context.Context, userID string) ([]string, error) {
	return f.edges[userID], nil
}

func (f *fakeRepo) ListFollowers(_ context.Context, userID string) ([]string, error) {
	var out []string
	for follower, followees := range f.edges {
		for _, followee := range followees {
			if followee == userID {
				out = append(out, follower)
			}
		}
	}
	return out, nil
}

func TestFollow(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	require.NoError(t, svc.Follow(context.Background(), "u1", "u2"))
	require.Equal(t, 1, repo.edgeCalls)
	require.WithinDuration(t, time.Now(), repo.lastAt, time.Second)

	got, err := svc.ListFollowees(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, got)
}

func TestFollowSelfRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	err := svc.Follow(context.Background(), "u1", "u1")
	require.ErrorIs(t, err, ErrSelfFollow)
	require.Zero(t, repo.edgeCalls)
}

func TestListFolloweesUnknownUserIsEmpty(t *testing.T) {
	svc := NewService(newFakeRepo())

	got, err := svc.ListFollowees(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, got)
}
