package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/jwt"
)

func TestWrapStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrNotFound, http.StatusNotFound},
		{ErrBadRequest, http.StatusBadRequest},
		{http.ErrHandlerTimeout, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		h := Wrap(func(http.ResponseWriter, *http.Request) error { return tc.err })
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, tc.want, rec.Code)

		var apiErr APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		require.Equal(t, tc.want, apiErr.Status)
	}
}

func TestAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := UserFromCtx(r)
		require.NoError(t, err)
		WriteJSON(w, map[string]string{"user": uid}, http.StatusOK)
	})

	tok, err := jwt.Issue("u42", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "u42")
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})

	rec := httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?limit=5&bad=x", nil)
	require.Equal(t, 5, QueryInt(r, "limit", 10))
	require.Equal(t, 10, QueryInt(r, "bad", 10))
	require.Equal(t, 10, QueryInt(r, "missing", 10))
}
