package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/luxtime/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) GetWatch(ctx context.Context, slug string) (*domain.Watch, error) {
	var w domain.Watch
	if err := r.get(ctx, watchKey(slug), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *RedisCache) SetWatch(ctx context.Context, slug string, w *domain.Watch) error {
	return r.set(ctx, watchKey(slug), w)
}

func (r *RedisCache) GetPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	if err := r.get(ctx, postKey(slug), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RedisCache) SetPost(ctx context.Context, slug string, p *domain.BlogPost) error {
	return r.set(ctx, postKey(slug), p)
}

func (r *RedisCache) get(ctx context.Context, key string, out any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal cached document failed: %w", err)
	}
	return nil
}

func (r *RedisCache) set(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document failed: %w", err)
	}

	// Jitter spreads expirations so seeded entries don't all lapse at once
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func watchKey(slug string) string {
	return "watch:" + slug
}

func postKey(slug string) string {
	return "post:" + slug
}
