package game

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/gridironquiz/college-trivia/internal/roster"
)

// Mode selects the difficulty mix for a game.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeHard     Mode = "hard"
	ModeRandom   Mode = "random"
)

// SamplingConfig holds the difficulty-mix constants (defaults match the
// tuned gameplay ratios).
type SamplingConfig struct {
	// StandardEasyShare is the fraction of a standard game drawn from the
	// difficulty-4 bucket (rounded up); the rest comes from difficulty 3.
	StandardEasyShare float64
	// HardMediumShare is the fraction of a hard game drawn from the
	// difficulty-3 bucket (rounded up); the rest comes from difficulty 2.
	HardMediumShare float64
	// MaxFillAttempts bounds the duplicate-avoiding top-up loop when the
	// target buckets run dry. Past the cap duplicates are allowed so
	// selection always terminates, even on tiny rosters.
	MaxFillAttempts int
}

// DefaultSamplingConfig returns production defaults.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		StandardEasyShare: 0.40,
		HardMediumShare:   0.50,
		MaxFillAttempts:   1000,
	}
}

// Sampler draws weighted question sets from a roster. No seeding contract;
// any run may produce a different set.
type Sampler struct {
	config SamplingConfig
}

func NewSampler(config SamplingConfig) *Sampler {
	if config.MaxFillAttempts <= 0 {
		config.MaxFillAttempts = DefaultSamplingConfig().MaxFillAttempts
	}
	return &Sampler{config: config}
}

// Select returns exactly count players for the given mode when the roster
// has at least count distinct players. Duplicates appear only as a degraded
// fallback on rosters smaller than count.
func (s *Sampler) Select(r *roster.Roster, count int, mode Mode) []roster.Player {
	if r == nil || r.Len() == 0 || count <= 0 {
		return nil
	}

	players := r.Players()
	buckets := r.ByDifficulty()

	var pool []roster.Player
	switch mode {
	case ModeStandard:
		easy := int(math.Ceil(s.config.StandardEasyShare * float64(count)))
		pool = append(pool, drawWithoutReplacement(buckets[4], easy)...)
		pool = append(pool, drawWithoutReplacement(buckets[3], count-easy)...)
	case ModeHard:
		medium := int(math.Ceil(s.config.HardMediumShare * float64(count)))
		pool = append(pool, drawWithoutReplacement(buckets[3], medium)...)
		pool = append(pool, drawWithoutReplacement(buckets[2], count-medium)...)
	default:
		pool = drawWithoutReplacement(players, count)
	}

	pool = s.fill(pool, players, count)

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// fill tops up a short pool with uniform draws from the whole roster,
// skipping players already present. After MaxFillAttempts it stops avoiding
// duplicates, which only happens when the roster has fewer distinct players
// than requested.
func (s *Sampler) fill(pool, players []roster.Player, count int) []roster.Player {
	seen := make(map[uuid.UUID]struct{}, len(pool))
	for _, p := range pool {
		seen[p.ID] = struct{}{}
	}

	for attempts := 0; len(pool) < count && attempts < s.config.MaxFillAttempts; attempts++ {
		p := players[rand.IntN(len(players))]
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		pool = append(pool, p)
	}

	for len(pool) < count {
		pool = append(pool, players[rand.IntN(len(players))])
	}
	return pool
}

// drawWithoutReplacement picks a uniform random subset of size n, or the
// whole bucket when it is smaller than n.
func drawWithoutReplacement(bucket []roster.Player, n int) []roster.Player {
	if n <= 0 || len(bucket) == 0 {
		return nil
	}
	if n > len(bucket) {
		n = len(bucket)
	}
	shuffled := make([]roster.Player, len(bucket))
	copy(shuffled, bucket)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
