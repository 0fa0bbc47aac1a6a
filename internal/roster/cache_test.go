package roster

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	players []Player
	calls   int
}

var _ Source = (*staticSource)(nil)

func (s *staticSource) Fetch(context.Context) ([]Player, error) {
	s.calls++
	return s.players, nil
}

func TestCachedSourceFallsThroughWhenRedisUnreachable(t *testing.T) {
	// Nothing listens on port 1, so both the snapshot lookup and the store
	// fail. The upstream dataset must still come back, and neither failure
	// may pass silently.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	inner := &staticSource{players: []Player{
		{Name: "QB One", College: "Ohio State", DifficultyScore: 4},
	}}

	var logs bytes.Buffer
	src := NewCachedSource(inner, client, time.Hour, zerolog.New(&logs))

	players, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, inner.players, players)
	assert.Equal(t, 1, inner.calls)

	assert.Contains(t, logs.String(), "roster snapshot lookup failed")
	assert.Contains(t, logs.String(), "roster snapshot store failed")
}
