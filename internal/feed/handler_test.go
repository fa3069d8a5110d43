package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gustavorods/2025-flink-startup-backend/internal/posts"
	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/httpx"
)

type fakePostService struct {
	byID map[string]posts.Post
}

func (f *fakePostService) Create(_ context.Context, payload posts.CreatePayload) (*posts.Post, error) {
	p := posts.Post{ID: payload.ID, UserID: payload.UserID}
	f.byID[p.ID] = p
	return &p, nil
}

func (f *fakePostService) GetByID(_ context.Context, id string) (*posts.Post, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, posts.ErrNotFound
	}
	return &p, nil
}

func newTestMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /timeline/feed/{user_id}", httpx.Wrap(h.GetFeed))
	mux.Handle("GET /timeline/post/{post_id}/imagem", httpx.Wrap(h.GetPostImage))
	return mux
}

func TestGetFeedEndpoint(t *testing.T) {
	byAuthor := map[string][]posts.Post{
		"v1": {postAt("v1", 1)},
		"v2": {postAt("v2", 2)},
	}
	svc := NewService(
		&fakeResolver{followees: map[string][]string{"u": {"v1", "v2"}}},
		&fakePostStore{byAuthor: byAuthor},
	)
	mux := newTestMux(NewHandler(svc, &fakePostService{byID: map[string]posts.Post{}}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/timeline/feed/u?limit=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []posts.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	require.Equal(t, "v1-1", items[0].ID)
}

func TestGetFeedEmptyIsJSONArray(t *testing.T) {
	svc := NewService(&fakeResolver{followees: map[string][]string{}}, &fakePostStore{})
	mux := newTestMux(NewHandler(svc, &fakePostService{byID: map[string]posts.Post{}}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/timeline/feed/u", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestGetPostImage(t *testing.T) {
	postSvc := &fakePostService{byID: map[string]posts.Post{
		"p1": {ID: "p1", Image: "https://bucket/users/u/posts/p1/image.jpg"},
	}}
	svc := NewService(&fakeResolver{}, &fakePostStore{})
	mux := newTestMux(NewHandler(svc, postSvc))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/timeline/post/p1/imagem", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "image.jpg")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/timeline/post/ghost/imagem", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
