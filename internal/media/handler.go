package media

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/httpx"
	"github.com/gustavorods/2025-flink-startup-backend/internal/user"
)

const maxUploadBytes = 10 << 20

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func readImage(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "", fmt.Errorf("%w: %v", httpx.ErrBadRequest, err)
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", fmt.Errorf("%w: image file is required", httpx.ErrBadRequest)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	ct := header.Header.Get("Content-Type")
	if ct == "" {
		ct = "image/jpeg"
	}
	return data, ct, nil
}

func (h *Handler) UploadProfileImage(w http.ResponseWriter, r *http.Request) error {
	uid := r.PathValue("user_id")
	if uid == "" {
		return fmt.Errorf("%w: missing user_id", httpx.ErrBadRequest)
	}
	data, ct, err := readImage(r)
	if err != nil {
		return err
	}
	url, err := h.svc.UploadProfileImage(r.Context(), uid, data, ct)
	if errors.Is(err, user.ErrNotFound) {
		return fmt.Errorf("%w: %s", httpx.ErrNotFound, uid)
	}
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"profileImageUrl": url}, http.StatusOK)
	return nil
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) error {
	uid := r.PathValue("user_id")
	if uid == "" {
		return fmt.Errorf("%w: missing user_id", httpx.ErrBadRequest)
	}
	data, ct, err := readImage(r)
	if err != nil {
		return err
	}
	description := r.FormValue("description")
	var sports []string
	if s := r.FormValue("sports"); s != "" {
		for _, tag := range strings.Split(s, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				sports = append(sports, tag)
			}
		}
	}
	p, err := h.svc.CreatePost(r.Context(), uid, description, sports, data, ct)
	if errors.Is(err, user.ErrNotFound) {
		return fmt.Errorf("%w: %s", httpx.ErrNotFound, uid)
	}
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusCreated)
	return nil
}
