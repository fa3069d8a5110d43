package media

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gustavorods/2025-flink-startup-backend/internal/posts"
	"github.com/gustavorods/2025-flink-startup-backend/internal/user"
)

// ObjectStore is the S3-compatible bucket the images land in.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	PublicURL(key string) string
}

type Service interface {
	UploadProfileImage(ctx context.Context, userID string, data []byte, contentType string) (string, error)
	CreatePost(ctx context.Context, userID, description string, sports []string, data []byte, contentType string) (*posts.Post, error)
}

type service struct {
	store ObjectStore
	users user.Repository
	posts posts.Service
}

func NewService(store ObjectStore, users user.Repository, postSvc posts.Service) Service {
	return &service{store: store, users: users, posts: postSvc}
}

func (s *service) UploadProfileImage(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("users/%s/profile.jpg", userID)
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return "", err
	}
	url := s.store.PublicURL(key)
	if err := s.users.UpdateProfileImage(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}

// CreatePost uploads the post image and writes the post document with the
// author's name and profile image snapshotted into it.
func (s *service) CreatePost(ctx context.Context, userID, description string, sports []string, data []byte, contentType string) (*posts.Post, error) {
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	postID := uuid.NewString()
	key := fmt.Sprintf("users/%s/posts/%s/image.jpg", userID, postID)
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return nil, err
	}

	return s.posts.Create(ctx, posts.CreatePayload{
		ID:          postID,
		UserID:      userID,
		Image:       s.store.PublicURL(key),
		Description: description,
		Sports:      sports,
		Nome:        author.Nome,
		FotoPerfil:  author.ProfileImageURL,
	})
}
