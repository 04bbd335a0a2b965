package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Log      Log
	Database Database
	Redis    Redis
	Gemini   Gemini
	Import   Import
	DraftTTL time.Duration
}

type Server struct {
	Port    string
	GinMode string
}

type Log struct {
	Level  string
	Pretty bool
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Gemini struct {
	APIKey string
	Model  string
}

type Import struct {
	MaxBytes int64
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment only")
	}

	cfg := fromViper(v)
	log.Info().Interface("config", cfg.redacted()).Msg("Config loaded")
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DRAFT_TTL", "168h")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("MAX_IMPORT_BYTES", 1<<20)
}

func fromViper(v *viper.Viper) *Config {
	var cfg Config
	cfg.Server.Port = v.GetString("SERVER_PORT")
	cfg.Server.GinMode = v.GetString("GIN_MODE")
	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.Log.Pretty = v.GetBool("LOG_PRETTY")

	cfg.Database.Host = v.GetString("DATABASE_HOST")
	cfg.Database.Port = v.GetString("DATABASE_PORT")
	cfg.Database.User = v.GetString("DATABASE_USER")
	cfg.Database.Password = v.GetString("DATABASE_PASSWORD")
	cfg.Database.Name = v.GetString("DATABASE_NAME")
	cfg.Database.SSLMode = v.GetString("DATABASE_SSLMODE")

	cfg.Redis.Addr = v.GetString("REDIS_ADDR")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")

	cfg.Gemini.APIKey = v.GetString("GEMINI_API_KEY")
	cfg.Gemini.Model = v.GetString("GEMINI_MODEL")

	cfg.Import.MaxBytes = v.GetInt64("MAX_IMPORT_BYTES")
	cfg.DraftTTL = v.GetDuration("DRAFT_TTL")
	return &cfg
}

// redacted returns a copy safe to log.
func (c Config) redacted() Config {
	if c.Database.Password != "" {
		c.Database.Password = "***"
	}
	if c.Redis.Password != "" {
		c.Redis.Password = "***"
	}
	if c.Gemini.APIKey != "" {
		c.Gemini.APIKey = "***"
	}
	return c
}
