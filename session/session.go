// Package session gates admin routes on sessions issued by the identity
// provider. A session is a Redis key "session:<token>" that expires on its own.
package session

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type Validator interface {
	Valid(ctx context.Context, token string) (bool, error)
}

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Key(token string) string {
	return keyPrefix + token
}

func (s *RedisStore) Valid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	n, err := s.Client.Exists(ctx, s.Key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Issue stores a fresh token for subject and returns it.
func (s *RedisStore) Issue(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := s.Client.Set(ctx, s.Key(token), subject, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.Client.Del(ctx, s.Key(token)).Err()
}

// TokenFromRequest reads a bearer token, falling back to the "session" cookie.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie("session"); err == nil {
		return c.Value
	}
	return ""
}

// Require wraps next so that only requests with a live session reach it.
// A nil validator disables the gate.
func Require(v Validator, next http.Handler) http.Handler {
	if v == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, err := v.Valid(r.Context(), TokenFromRequest(r))
		if err != nil {
			http.Error(w, "Session check failed", http.StatusServiceUnavailable)
			return
		}
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
