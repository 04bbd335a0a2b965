package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "mcqdesk:draft:"

type redisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) DraftStore {
	return &redisDraftStore{client: client}
}

func (s *redisDraftStore) Save(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, draftKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set draft %s: %w", key, err)
	}
	return nil
}

func (s *redisDraftStore) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, draftKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get draft %s: %w", key, err)
	}
	return b, nil
}

func (s *redisDraftStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del draft %s: %w", key, err)
	}
	return nil
}
