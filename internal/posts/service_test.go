package posts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type memRepo struct {
	created []Post
}

func (m *memRepo) Create(_ context.Context, p *Post) error {
	m.created = append(m.created, *p)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Post, error) {
	for _, p := range m.created {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) ListByAuthors(_ context.Context, authorIDs []string, limit int) ([]Post, error) {
	return nil, nil
}

type capturePublisher struct {
	keys     []string
	messages [][]byte
	err      error
}

func (c *capturePublisher) Publish(_ context.Context, key string, message []byte) error {
	if c.err != nil {
		return c.err
	}
	c.keys = append(c.keys, key)
	c.messages = append(c.messages, message)
	return nil
}

func TestCreateAssignsIDAndPublishes(t *testing.T) {
	repo := &memRepo{}
	pub := &capturePublisher{}
	svc := NewService(repo, pub)

	p, err := svc.Create(context.Background(), CreatePayload{
		UserID:      "u1",
		Description: "great match",
		Sports:      []string{"futebol"},
		Nome:        "Gustavo",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.False(t, p.CreatedAt.IsZero())

	require.Len(t, pub.keys, 1)
	require.Equal(t, "u1", pub.keys[0])
	var ev Post
	require.NoError(t, json.Unmarshal(pub.messages[0], &ev))
	require.Equal(t, p.ID, ev.ID)
}

func TestCreateKeepsPreassignedID(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, nil)

	p, err := svc.Create(context.Background(), CreatePayload{ID: "p-42", UserID: "u1"})
	require.NoError(t, err)
	require.Equal(t, "p-42", p.ID)
}

func TestCreateSurvivesPublishFailure(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &capturePublisher{err: errors.New("broker down")})

	p, err := svc.Create(context.Background(), CreatePayload{UserID: "u1"})
	require.NoError(t, err, "the post is persisted even when the event cannot be delivered")
	require.Len(t, repo.created, 1)
	require.Equal(t, p.ID, repo.created[0].ID)
}
