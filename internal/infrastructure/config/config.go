package config

import (
	"context"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const defaultAPIBase = "http://localhost:8080"

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// PublicAPIBaseURL is the backend base URL reachable from anywhere.
	// InternalAPIBaseURL, when set, is preferred for server-side fetches
	// (e.g. an in-cluster address the public URL does not resolve to).
	PublicAPIBaseURL   string `env:"API_BASE_URL"`
	InternalAPIBaseURL string `env:"INTERNAL_API_BASE_URL"`

	PageSize     int           `env:"JOBS_PAGE_SIZE, default=9"`
	JobsCacheTTL time.Duration `env:"JOBS_CACHE_TTL, default=30s"`
	SessionTTL   time.Duration `env:"SESSION_TTL,    default=720h"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// APIBaseURL resolves the backend base URL: the server-only override wins,
// then the public URL, then the local development default. Trailing slashes
// are stripped.
func (c *Config) APIBaseURL() string {
	base := c.InternalAPIBaseURL
	if base == "" {
		base = c.PublicAPIBaseURL
	}
	if base == "" {
		base = defaultAPIBase
	}
	return strings.TrimRight(base, "/")
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
