package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"schemesathi/internal/platform/redis"
	"schemesathi/pkg/platform/sentinel"
)

const keyPrefix = "profile:"

// RedisStore persists profiles as JSON values in Redis. Profiles have no
// expiry; a user's profile lives until they replace or delete it.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, record Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+record.UserID, payload, 0).Err(); err != nil {
		return fmt.Errorf("store profile: %w", sentinel.ErrUnavailable)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, userID string) (Record, error) {
	payload, err := s.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return Record{}, fmt.Errorf("profile for user %s: %w", userID, sentinel.ErrNotFound)
		}
		return Record{}, fmt.Errorf("load profile: %w", sentinel.ErrUnavailable)
	}

	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return Record{}, fmt.Errorf("decode profile: %w", err)
	}
	return record, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	deleted, err := s.client.Del(ctx, keyPrefix+userID).Result()
	if err != nil {
		return fmt.Errorf("delete profile: %w", sentinel.ErrUnavailable)
	}
	if deleted == 0 {
		return fmt.Errorf("profile for user %s: %w", userID, sentinel.ErrNotFound)
	}
	return nil
}
