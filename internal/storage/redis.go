package storage

import (
	"context"
	"strconv"
	"time"

	"menuqr/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// --- tenant markers ---

func (c *RedisCache) MarkerKey(restaurantID string) string {
	return "restaurant:" + restaurantID
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// --- daily stats hashes ---

func (c *RedisCache) DailyKey(date, restaurantID string) string {
	return "stats:daily:" + date + ":" + restaurantID
}

// GetDaily returns nil on a cache miss.
func (c *RedisCache) GetDaily(ctx context.Context, key string) (*domain.DailyStats, error) {
	fields, err := c.Client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	total, _ := strconv.ParseFloat(fields["total_sales"], 64)
	count, _ := strconv.Atoi(fields["orders_count"])
	return &domain.DailyStats{TotalSales: total, OrdersCount: count}, nil
}

func (c *RedisCache) AddDaily(ctx context.Context, key string, total float64, delta int64) error {
	if err := c.Client.HIncrByFloat(ctx, key, "total_sales", total).Err(); err != nil {
		return err
	}
	if err := c.Client.HIncrBy(ctx, key, "orders_count", delta).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, 7*24*time.Hour).Err()
}
