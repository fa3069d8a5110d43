package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gustavorods/2025-flink-startup-backend/internal/user"
)

type memUserRepo struct {
	byID    map[string]user.User
	byEmail map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]user.User{}, byEmail: map[string]user.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *user.User) error {
	m.byID[u.ID] = *u
	m.byEmail[u.Email] = *u
	return nil
}

func (m *memUserRepo) GetAll(context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.byID))
	for _, u := range m.byID {
		u.PasswordHash = ""
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	u.PasswordHash = ""
	return &u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (m *memUserRepo) UpdateProfileImage(_ context.Context, id, url string) error {
	u, ok := m.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.ProfileImageURL = url
	m.byID[id] = u
	m.byEmail[u.Email] = u
	return nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	uid, err := svc.Register(context.Background(), RegisterRequest{
		Nome:     "Gustavo",
		Email:    "gustavo@email.com",
		Password: "senhaForte123",
		Username: "gusta17",
		Esportes: []string{"futebol", "natação"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	stored := repo.byEmail["gustavo@email.com"]
	require.NotEqual(t, "senhaForte123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senhaForte123")))
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	uid, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "123456",
	})
	require.NoError(t, err)

	got, err := svc.Login(context.Background(), "a@b.com", "123456")
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.com",
		Password: "123456",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newMemUserRepo())
	_, err := svc.Login(context.Background(), "nobody@b.com", "123456")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
