package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 168*time.Hour, cfg.DraftTTL)
	assert.Equal(t, int64(1<<20), cfg.Import.MaxBytes)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("SERVER_PORT", "9000")
	v.Set("DRAFT_TTL", "30m")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("REDIS_DB", 2)
	cfg := fromViper(v)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.DraftTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestRedacted(t *testing.T) {
	cfg := Config{}
	cfg.Database.Password = "pw"
	cfg.Gemini.APIKey = "key"

	r := cfg.redacted()
	assert.Equal(t, "***", r.Database.Password)
	assert.Equal(t, "***", r.Gemini.APIKey)
	assert.Empty(t, r.Redis.Password)
	assert.Equal(t, "pw", cfg.Database.Password)
}
