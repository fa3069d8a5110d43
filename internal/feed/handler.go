package feed

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gustavorods/2025-flink-startup-backend/internal/posts"
	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/httpx"
)

type Handler struct {
	svc   Service
	posts posts.Service
}

func NewHandler(s Service, postSvc posts.Service) *Handler {
	return &Handler{svc: s, posts: postSvc}
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) error {
	uid := r.PathValue("user_id")
	if uid == "" {
		return fmt.Errorf("%w: missing user_id", httpx.ErrBadRequest)
	}
	limit := httpx.QueryInt(r, "limit", DefaultLimit)
	items, err := h.svc.Generate(r.Context(), uid, limit)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, items, http.StatusOK)
	return nil
}

func (h *Handler) GetPostImage(w http.ResponseWriter, r *http.Request) error {
	postID := r.PathValue("post_id")
	if postID == "" {
		return fmt.Errorf("%w: missing post_id", httpx.ErrBadRequest)
	}
	p, err := h.posts.GetByID(r.Context(), postID)
	if errors.Is(err, posts.ErrNotFound) {
		return fmt.Errorf("%w: %s", httpx.ErrNotFound, postID)
	}
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"imagem": p.Image}, http.StatusOK)
	return nil
}
