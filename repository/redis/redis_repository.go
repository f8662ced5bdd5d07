package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisclient "github.com/getinmotion/telar-sub006/cmd/redis"
	"github.com/getinmotion/telar-sub006/model"
	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetFeaturedShops(ctx context.Context, limit int) ([]model.Shop, error)
	SetFeaturedShops(ctx context.Context, limit int, shops []model.Shop, ttl time.Duration) error
	InvalidateFeaturedShops(ctx context.Context) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores a key/value pair without expiration
func (r *redis) Set(ctx context.Context, key string, value interface{}) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, 0).Err()
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}

func featuredKey(limit int) string {
	return fmt.Sprintf("featured_shops:%d", limit)
}

// GetFeaturedShops returns the cached featured listing for a limit, or nil on miss.
func (r *redis) GetFeaturedShops(ctx context.Context, limit int) ([]model.Shop, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, featuredKey(limit)).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var shops []model.Shop
	if err := json.Unmarshal([]byte(val), &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// SetFeaturedShops caches a featured listing under its limit with TTL.
func (r *redis) SetFeaturedShops(ctx context.Context, limit int, shops []model.Shop, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(shops)
	if err != nil {
		return err
	}
	return client.Set(ctx, featuredKey(limit), body, ttl).Err()
}

// InvalidateFeaturedShops drops every cached featured listing. Called from the
// internal cache endpoint when shop or product moderation events arrive.
func (r *redis) InvalidateFeaturedShops(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	iter := client.Scan(ctx, 0, "featured_shops:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
