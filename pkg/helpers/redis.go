package helpers

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// RedisTake reads a key and deletes it in one round trip.
// Returns ("", false, nil) when the key does not exist.
func RedisTake(ctx context.Context, rdb *redis.Client, key string) (string, bool, error) {
	v, err := rdb.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func RedisSet(ctx context.Context, rdb *redis.Client, key, value string, ttl time.Duration) error {
	return rdb.Set(ctx, key, value, ttl).Err()
}
