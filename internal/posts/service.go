package posts

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// EventPublisher pushes post-created events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, key string, message []byte) error
}

type CreatePayload struct {
	// ID may be pre-assigned when the object-store key needs it up front.
	ID          string
	UserID      string
	Image       string
	Description string
	Sports      []string
	Nome        string
	FotoPerfil  string
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
}

type service struct {
	repo     Repository
	producer EventPublisher
}

func NewService(repo Repository, producer EventPublisher) Service {
	return &service{repo: repo, producer: producer}
}

func (s *service) Create(ctx context.Context, payload CreatePayload) (*Post, error) {
	id := payload.ID
	if id == "" {
		id = uuid.NewString()
	}
	p := Post{
		ID:          id,
		UserID:      payload.UserID,
		Image:       payload.Image,
		Description: payload.Description,
		Sports:      payload.Sports,
		Nome:        payload.Nome,
		FotoPerfil:  payload.FotoPerfil,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	if s.producer != nil {
		b, _ := json.Marshal(p)
		if err := s.producer.Publish(ctx, p.UserID, b); err != nil {
			// the post is persisted; event delivery is best-effort
			log.Printf("posts: publish created event: %v", err)
		}
	}
	return &p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}
