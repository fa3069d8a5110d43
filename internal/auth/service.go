package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gustavorods/2025-flink-startup-backend/internal/user"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type service struct {
	users user.Repository
}

func NewService(users user.Repository) Service {
	return &service{users: users}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	u := user.User{
		ID:           uuid.NewString(),
		Nome:         req.Nome,
		Sobrenome:    req.Sobrenome,
		Email:        req.Email,
		PasswordHash: string(hash),
		Username:     req.Username,
		Esportes:     req.Esportes,
		RedesSociais: req.RedesSociais,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return "", err
	}
	return u.ID, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return u.ID, nil
}
