package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "wardrobe:weather:"

// RedisCache stores weather observations as JSON strings with a TTL
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(ctx context.Context, settings *config.RedisSettings) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.Addr, err)
	}

	return &RedisCache{client: client}, nil
}

// NewRedisCacheFromClient wraps an existing client
func NewRedisCacheFromClient(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func cacheKey(city string) string {
	return keyPrefix + weather.NormalizeCity(city)
}

// Get implements weather.Cache
func (c *RedisCache) Get(ctx context.Context, city string) (*weather.Observation, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(city)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read weather cache: %w", err)
	}

	var obs weather.Observation
	if err := json.Unmarshal(data, &obs); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached weather: %w", err)
	}
	return &obs, true, nil
}

// Set implements weather.Cache
func (c *RedisCache) Set(ctx context.Context, city string, obs *weather.Observation, ttl time.Duration) error {
	data, err := json.Marshal(obs)
	if err != nil {
		return fmt.Errorf("failed to encode weather: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(city), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write weather cache: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (c *RedisCache) Close() error {
	return c.client.Close()
}
