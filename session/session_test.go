package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_IssueAndValid(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Issue(ctx, "admin", time.Hour)
	require.NoError(t, err)
	assert.True(t, mr.Exists("session:"+token))

	ok, err := store.Valid(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Valid(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Hour)
	ok, err = store.Valid(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequire(t *testing.T) {
	store, _ := newTestStore(t)
	token, err := store.Issue(context.Background(), "admin", time.Hour)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	gated := Require(store, next)

	tests := []struct {
		name     string
		setup    func(*http.Request)
		wantCode int
	}{
		{name: "no token", setup: func(*http.Request) {}, wantCode: http.StatusUnauthorized},
		{name: "bearer token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, wantCode: http.StatusTeapot},
		{name: "cookie token", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: token}) }, wantCode: http.StatusTeapot},
		{name: "stale token", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, wantCode: http.StatusUnauthorized},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
			testCase.setup(req)
			rr := httptest.NewRecorder()
			gated.ServeHTTP(rr, req)
			assert.Equal(t, testCase.wantCode, rr.Code)
		})
	}
}

func TestRequire_NilValidatorPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	rr := httptest.NewRecorder()
	Require(nil, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
