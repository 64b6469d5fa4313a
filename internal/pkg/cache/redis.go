package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"
	"github.com/printadmin/storformat/internal/domain"
)

const redisPrefix = "storformat:quote"

// Redis namespaces keys by a generation counter; Invalidate bumps the counter
// and stale generations expire through their TTL.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func generationKey() string {
	return redisPrefix + ":gen"
}

func (r *Redis) generation(ctx context.Context) (int64, error) {
	gen, err := r.rdb.Get(ctx, generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *Redis) key(ctx context.Context, key string) (string, error) {
	gen, err := r.generation(ctx)
	if err != nil {
		return "", fmt.Errorf("read quote generation: %w", err)
	}
	return fmt.Sprintf("%s:%d:%s", redisPrefix, gen, key), nil
}

func (r *Redis) Get(ctx context.Context, key string) (*domain.PriceResult, bool, error) {
	k, err := r.key(ctx, key)
	if err != nil {
		return nil, false, err
	}

	data, err := r.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", k, err)
	}

	var res domain.PriceResult
	if err := sonic.Unmarshal(data, &res); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached quote: %w", err)
	}
	return &res, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, res *domain.PriceResult) error {
	k, err := r.key(ctx, key)
	if err != nil {
		return err
	}

	data, err := sonic.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}

	if err := r.rdb.Set(ctx, k, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", k, err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.rdb.Incr(ctx, generationKey()).Err(); err != nil {
		return fmt.Errorf("bump quote generation: %w", err)
	}
	return nil
}
