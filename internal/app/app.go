package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gridironquiz/college-trivia/internal/auth"
	"github.com/gridironquiz/college-trivia/internal/college"
	"github.com/gridironquiz/college-trivia/internal/config"
	"github.com/gridironquiz/college-trivia/internal/game"
	"github.com/gridironquiz/college-trivia/internal/logging"
	"github.com/gridironquiz/college-trivia/internal/roster"
	"github.com/gridironquiz/college-trivia/internal/server"
)

// Application aggregates shared infrastructure (dataset, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, the player dataset and the HTTP server.
// A dataset load failure is surfaced once and the server still comes up;
// game connections are then told the roster is unavailable instead of the
// whole process refusing to start.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	app := &Application{cfg: cfg, logger: logger}

	src, err := app.buildSource(ctx)
	if err != nil {
		return nil, err
	}

	var (
		r   *roster.Roster
		idx *college.Index
	)
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Roster.FetchTimeout)
	defer cancel()
	r, err = roster.Load(loadCtx, src)
	if err != nil {
		logger.Error().Err(err).Msg("roster load failed; serving without player data")
	} else {
		idx = college.NewIndex(r.Colleges())
		logger.Info().Int("players", r.Len()).Int("colleges", idx.Len()).Msg("roster loaded")
	}

	var tokens *auth.Manager
	if cfg.Security.TokenSecret != "" {
		tokens = auth.NewManager(auth.TokenConfig{
			Secret: []byte(cfg.Security.TokenSecret),
			TTL:    cfg.Security.TokenTTL,
			Issuer: cfg.Name,
		})
	} else {
		logger.Warn().Msg("session token secret not configured; websocket connections are anonymous")
	}

	gameOpts := game.Options{
		QuestionCount: cfg.Game.QuestionCount,
		Sampling: game.SamplingConfig{
			StandardEasyShare: cfg.Game.StandardEasyShare,
			HardMediumShare:   cfg.Game.HardMediumShare,
		},
	}

	wsHandler := game.NewWSHandler(r, idx, tokens, gameOpts, logger)
	httpHandler := game.NewHTTPHandler(idx, tokens, logger)

	app.http = server.NewHTTPServer(cfg, logger, httpHandler.HandleSearch, httpHandler.HandleToken, wsHandler.HandleWebSocket)
	return app, nil
}

func (a *Application) buildSource(ctx context.Context) (roster.Source, error) {
	var src roster.Source
	switch a.cfg.Roster.Source {
	case config.SourceFile:
		src = roster.NewFileSource(a.cfg.Roster.Path)
	case config.SourceHTTP:
		src = roster.NewHTTPSource(a.cfg.Roster.URL, nil, a.cfg.Roster.FetchTimeout)
	case config.SourcePostgres:
		connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
			a.cfg.Postgres.Host, a.cfg.Postgres.Port, a.cfg.Postgres.User, a.cfg.Postgres.Password, a.cfg.Postgres.Database, a.cfg.Postgres.SSLMode)
		pool, err := pgxpool.New(ctx, connString)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.pool = pool
		src = roster.NewPostgresSource(pool)
	default:
		return nil, fmt.Errorf("unknown roster source %q", a.cfg.Roster.Source)
	}

	if a.cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			DB:       a.cfg.Redis.DB,
			PoolSize: a.cfg.Redis.PoolSize,
		})
		src = roster.NewCachedSource(src, a.redis, a.cfg.Roster.CacheTTL, a.logger)
	}
	return src, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
