package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.svc.GetAllUsers(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, users, http.StatusOK)
	return nil
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("user_id")
	if id == "" {
		return fmt.Errorf("%w: missing user_id", httpx.ErrBadRequest)
	}
	u, err := h.svc.GetUserByID(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %s", httpx.ErrNotFound, id)
	}
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
