package follows

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) CreateFollow(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[struct {
		UserID     string `json:"user_id"`
		FollowedID string `json:"followed_id"`
	}](r)
	if err != nil {
		return fmt.Errorf("%w: %v", httpx.ErrBadRequest, err)
	}
	if body.UserID == "" || body.FollowedID == "" {
		return fmt.Errorf("%w: user_id and followed_id are required", httpx.ErrBadRequest)
	}
	if err := h.svc.Follow(r.Context(), body.UserID, body.FollowedID); err != nil {
		if errors.Is(err, ErrSelfFollow) {
			return fmt.Errorf("%w: %v", httpx.ErrBadRequest, err)
		}
		return err
	}
	httpx.WriteJSON(w, map[string]string{"status": "followed"}, http.StatusOK)
	return nil
}

func (h *Handler) ListFollowing(w http.ResponseWriter, r *http.Request) error {
	uid := r.PathValue("user_id")
	if uid == "" {
		return fmt.Errorf("%w: missing user_id", httpx.ErrBadRequest)
	}
	ids, err := h.svc.ListFollowees(r.Context(), uid)
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	httpx.WriteJSON(w, map[string]any{"following": ids}, http.StatusOK)
	return nil
}
