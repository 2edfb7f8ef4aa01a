package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"boum-cafe/menu-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const BoardKey = "menu:board"

type RedisBoardCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisBoardCache(client *redis.Client, ttl time.Duration) *RedisBoardCache {
	return &RedisBoardCache{Client: client, TTL: ttl}
}

func (c *RedisBoardCache) GetBoard(ctx context.Context) (*domain.Board, error) {
	raw, err := c.Client.Get(ctx, BoardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var board domain.Board
	if err := json.Unmarshal(raw, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *RedisBoardCache) SetBoard(ctx context.Context, board *domain.Board) error {
	payload, err := json.Marshal(board)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, BoardKey, payload, c.TTL).Err()
}

func (c *RedisBoardCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, BoardKey).Err()
}
