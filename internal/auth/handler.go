package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/httpx"
	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/jwt"
)

const tokenTTL = 24 * time.Hour

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[RegisterRequest](r)
	if err != nil {
		return fmt.Errorf("%w: %v", httpx.ErrBadRequest, err)
	}
	if body.Email == "" || body.Password == "" {
		return fmt.Errorf("%w: email and password are required", httpx.ErrBadRequest)
	}
	uid, err := h.svc.Register(r.Context(), body)
	if err != nil {
		return err
	}
	token, err := jwt.Issue(uid, tokenTTL)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, TokenResponse{Token: token}, http.StatusCreated)
	return nil
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[LoginRequest](r)
	if err != nil {
		return fmt.Errorf("%w: %v", httpx.ErrBadRequest, err)
	}
	uid, err := h.svc.Login(r.Context(), body.Email, body.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		return httpx.ErrUnauthorized
	}
	if err != nil {
		return err
	}
	token, err := jwt.Issue(uid, tokenTTL)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, TokenResponse{Token: token}, http.StatusOK)
	return nil
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	tok := httpx.BearerToken(r)
	if tok == "" {
		return httpx.ErrUnauthorized
	}
	uid, err := jwt.Parse(tok)
	if err != nil {
		return httpx.ErrUnauthorized
	}
	httpx.WriteJSON(w, map[string]string{"userId": uid}, http.StatusOK)
	return nil
}
