package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const firedKeyPrefix = "broadcast:fired:"

// RedisFiredGuard shares fired markers between broadcast-svc instances so a
// schedule plays once per minute even when several consoles are running.
type RedisFiredGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisFiredGuard(client *redis.Client, ttl time.Duration) *RedisFiredGuard {
	return &RedisFiredGuard{Client: client, TTL: ttl}
}

func (g *RedisFiredGuard) Key(id string, bucket time.Time) string {
	return firedKeyPrefix + id + ":" + bucket.UTC().Format("200601021504")
}

func (g *RedisFiredGuard) MarkFired(ctx context.Context, id string, bucket time.Time) (bool, error) {
	return g.Client.SetNX(ctx, g.Key(id, bucket), "1", g.TTL).Result()
}

func (g *RedisFiredGuard) Forget(ctx context.Context, id string) error {
	iter := g.Client.Scan(ctx, 0, firedKeyPrefix+id+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return g.Client.Del(ctx, keys...).Err()
}
