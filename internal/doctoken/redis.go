package doctoken

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "docs:token:"

// RedisStore shares tokens between instances. Keys carry a TTL so Sweep has nothing to do.
type RedisStore struct {
	rdb redis.UniversalClient
}

func NewRedisStore(rdb redis.UniversalClient) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, token string, entry Entry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl < time.Millisecond {
		return ErrTokenExpired
	}

	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry failed: %w", err)
	}

	return s.rdb.Set(ctx, redisKeyPrefix+token, value, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (Entry, bool, error) {
	value, err := s.rdb.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}

	var entry Entry
	if err := json.Unmarshal(value, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("unmarshal entry failed: %w", err)
	}

	return entry, true, nil
}

func (s *RedisStore) Sweep(context.Context, time.Time) error {
	return nil
}
