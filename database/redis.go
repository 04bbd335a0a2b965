package database

import (
	"context"
	"time"

	"github.com/lshigami/mcqdesk/config"
	"github.com/lshigami/mcqdesk/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewDraftStore returns a Redis-backed store when REDIS_ADDR is set and an
// in-memory one otherwise. A Redis that does not answer PING at startup also
// falls back to memory so the builder keeps working.
func NewDraftStore(lc fx.Lifecycle, cfg *config.Config) repository.DraftStore {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR is not set. Drafts are kept in memory and lost on restart.")
		return repository.NewMemoryDraftStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis ping failed, falling back to in-memory drafts")
		_ = client.Close()
		return repository.NewMemoryDraftStore()
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis draft store connected")
	return repository.NewRedisDraftStore(client)
}
