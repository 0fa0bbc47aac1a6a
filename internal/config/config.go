package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Roster source kinds.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"college-trivia"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Roster   Roster
	Postgres Postgres
	Redis    Redis
	Security Security
	Game     Game
}

// Roster configures where the player dataset comes from.
type Roster struct {
	Source       string        `env:"ROSTER_SOURCE" envDefault:"file"`
	Path         string        `env:"ROSTER_PATH" envDefault:"data/players.json"`
	URL          string        `env:"ROSTER_URL"`
	FetchTimeout time.Duration `env:"ROSTER_FETCH_TIMEOUT" envDefault:"10s"`
	CacheTTL     time.Duration `env:"ROSTER_CACHE_TTL" envDefault:"12h"`
}

// Postgres captures connection info for the curated players table. Only
// required when ROSTER_SOURCE=postgres.
type Postgres struct {
	Host     string `env:"PG_HOST"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
	Database string `env:"PG_DATABASE"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// Redis holds the roster snapshot cache configuration. An empty addr
// disables caching.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Security stores secrets for signing. An empty token secret disables
// session tokens and the WebSocket accepts anonymous connections.
type Security struct {
	TokenSecret string        `env:"SESSION_TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"24h"`
}

// Game groups gameplay defaults. The shares feed the difficulty-weighted
// sampler; they are tuned heuristics, not hard rules.
type Game struct {
	QuestionCount     int     `env:"DEFAULT_QUESTION_COUNT" envDefault:"5"`
	StandardEasyShare float64 `env:"STANDARD_EASY_SHARE" envDefault:"0.40"`
	HardMediumShare   float64 `env:"HARD_MEDIUM_SHARE" envDefault:"0.50"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *App) validate() error {
	switch c.Roster.Source {
	case SourceFile:
		if c.Roster.Path == "" {
			return fmt.Errorf("ROSTER_PATH required for file source")
		}
	case SourceHTTP:
		if c.Roster.URL == "" {
			return fmt.Errorf("ROSTER_URL required for http source")
		}
	case SourcePostgres:
		if c.Postgres.Host == "" || c.Postgres.User == "" || c.Postgres.Database == "" {
			return fmt.Errorf("PG_HOST, PG_USER and PG_DATABASE required for postgres source")
		}
	default:
		return fmt.Errorf("unknown roster source %q", c.Roster.Source)
	}
	return nil
}
