package factcache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"numclass/internal/domain"
	"numclass/pkg/errcodes"
)

const redisKeyPrefix = "numclass:fact:"

// Store хранит только успешно полученные факты.
type Store interface {
	Get(ctx context.Context, abs uint64) (string, bool, error)
	Set(ctx context.Context, abs uint64, text string) error
}

type Memory struct {
	items *cache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		items: cache.New(ttl, 2*ttl),
	}
}

func (m *Memory) Get(_ context.Context, abs uint64) (string, bool, error) {
	v, ok := m.items.Get(strconv.FormatUint(abs, 10))
	if !ok {
		return "", false, nil
	}

	text, ok := v.(string)

	return text, ok, nil
}

func (m *Memory) Set(_ context.Context, abs uint64, text string) error {
	m.items.Set(strconv.FormatUint(abs, 10), text, cache.DefaultExpiration)

	return nil
}

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, abs uint64) (string, bool, error) {
	text, err := r.client.Get(ctx, redisKey(abs)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, domain.WrapError(err, errcodes.FactCacheFailed, "redis get")
	}

	return text, true, nil
}

func (r *Redis) Set(ctx context.Context, abs uint64, text string) error {
	if err := r.client.Set(ctx, redisKey(abs), text, r.ttl).Err(); err != nil {
		return domain.WrapError(err, errcodes.FactCacheFailed, "redis set")
	}

	return nil
}

func redisKey(abs uint64) string {
	return fmt.Sprintf("%s%d", redisKeyPrefix, abs)
}
