package similarity

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/httpx"
	"github.com/gustavorods/2025-flink-startup-backend/internal/user"
)

type Handler struct {
	svc   Service
	users user.Service
}

func NewHandler(s Service, users user.Service) *Handler {
	return &Handler{svc: s, users: users}
}

// CompareSports loads the subject to get their tag set, then delegates to the
// recommender. The subject's tags are passed in, not re-fetched downstream.
func (h *Handler) CompareSports(w http.ResponseWriter, r *http.Request) error {
	uid := r.PathValue("user_id")
	if uid == "" {
		return fmt.Errorf("%w: missing user_id", httpx.ErrBadRequest)
	}
	subject, err := h.users.GetUserByID(r.Context(), uid)
	if errors.Is(err, user.ErrNotFound) {
		return fmt.Errorf("%w: %s", httpx.ErrNotFound, uid)
	}
	if err != nil {
		return err
	}
	semelhantes, err := h.svc.CompareInterests(r.Context(), uid, subject.Esportes)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"semelhantes": semelhantes}, http.StatusOK)
	return nil
}
