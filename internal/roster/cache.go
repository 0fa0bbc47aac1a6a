package roster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultSnapshotTTL = 12 * time.Hour
	snapshotKey        = "roster:snapshot"
)

// CachedSource wraps another source with a Redis read-through snapshot so
// restarts do not have to re-hit the upstream dataset. Only the dataset is
// cached; game state never touches Redis.
type CachedSource struct {
	inner  Source
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

var _ Source = (*CachedSource)(nil)

func NewCachedSource(inner Source, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CachedSource {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &CachedSource{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "roster_cache").Logger(),
	}
}

func (s *CachedSource) Fetch(ctx context.Context) ([]Player, error) {
	cached, err := s.lookup(ctx)
	switch {
	case err != nil:
		s.logger.Warn().Err(err).Msg("roster snapshot lookup failed")
	case cached != nil:
		s.logger.Debug().Int("players", len(cached)).Msg("roster served from snapshot")
		return cached, nil
	}

	players, err := s.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if storeErr := s.store(ctx, players); storeErr != nil {
		s.logger.Warn().Err(storeErr).Msg("roster snapshot store failed")
	}
	return players, nil
}

func (s *CachedSource) lookup(ctx context.Context) ([]Player, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var players []Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *CachedSource) store(ctx context.Context, players []Player) error {
	data, err := json.Marshal(players)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, data, s.ttl).Err()
}
