package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// cooldownKeyPrefix namespaces cooldown sentinels in Redis.
// Format: journal:cooldown:{symbol}
const cooldownKeyPrefix = "journal:cooldown:"

// RedisCooldownStore records last-notified sentinels in Redis with a TTL, so
// cooldowns survive process restarts.
type RedisCooldownStore struct {
	client *redis.Client
}

func NewRedisCooldownStore(client *redis.Client) *RedisCooldownStore {
	return &RedisCooldownStore{client: client}
}

func (s *RedisCooldownStore) Active(ctx context.Context, symbol string) (bool, error) {
	n, err := s.client.Exists(ctx, cooldownKeyPrefix+symbol).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisCooldownStore) Mark(ctx context.Context, symbol string, ttl time.Duration) error {
	return s.client.Set(ctx, cooldownKeyPrefix+symbol, time.Now().Unix(), ttl).Err()
}
