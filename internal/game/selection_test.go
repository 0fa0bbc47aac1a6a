package game

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gridironquiz/college-trivia/internal/roster"
)

func TestSelectReturnsExactCountForAllModes(t *testing.T) {
	r := testRoster(t, 10, 10, 10, 10)
	sampler := NewSampler(DefaultSamplingConfig())

	for _, mode := range []Mode{ModeStandard, ModeHard, ModeRandom, Mode("bogus")} {
		got := sampler.Select(r, 5, mode)
		assert.Len(t, got, 5, "mode %s", mode)
		assert.Equal(t, 5, distinctIDs(got), "mode %s returned duplicates", mode)
	}
}

func TestSelectStandardPrefersEasyBuckets(t *testing.T) {
	r := testRoster(t, 0, 0, 20, 20)
	sampler := NewSampler(DefaultSamplingConfig())

	got := sampler.Select(r, 5, ModeStandard)
	assert.Len(t, got, 5)

	easy, medium := 0, 0
	for _, p := range got {
		switch p.DifficultyScore {
		case 4:
			easy++
		case 3:
			medium++
		}
	}
	// 40% of 5 rounded up from the easy bucket, the rest from medium.
	assert.Equal(t, 2, easy)
	assert.Equal(t, 3, medium)
}

func TestSelectHardSplitsMediumAndHard(t *testing.T) {
	r := testRoster(t, 0, 20, 20, 0)
	sampler := NewSampler(DefaultSamplingConfig())

	got := sampler.Select(r, 5, ModeHard)
	assert.Len(t, got, 5)

	medium, hard := 0, 0
	for _, p := range got {
		switch p.DifficultyScore {
		case 3:
			medium++
		case 2:
			hard++
		}
	}
	assert.Equal(t, 3, medium)
	assert.Equal(t, 2, hard)
}

func TestSelectFillsFromRosterWhenBucketsRunDry(t *testing.T) {
	// Standard mode with an empty difficulty-4 bucket: the fallback fill
	// must top up from the whole roster without looping forever.
	r := testRoster(t, 5, 5, 5, 0)
	sampler := NewSampler(DefaultSamplingConfig())

	got := sampler.Select(r, 5, ModeStandard)
	assert.Len(t, got, 5)
	assert.Equal(t, 5, distinctIDs(got))
}

func TestSelectAllowsDuplicatesOnTinyRoster(t *testing.T) {
	r := testRoster(t, 0, 0, 2, 1)
	sampler := NewSampler(SamplingConfig{
		StandardEasyShare: 0.40,
		HardMediumShare:   0.50,
		MaxFillAttempts:   50,
	})

	got := sampler.Select(r, 5, ModeStandard)
	assert.Len(t, got, 5, "degraded fallback must still fill the question set")
}

func TestSelectEmptyRoster(t *testing.T) {
	sampler := NewSampler(DefaultSamplingConfig())
	assert.Empty(t, sampler.Select(nil, 5, ModeRandom))
}

// testRoster builds a roster with the given number of players per
// difficulty score (1 through 4).
func testRoster(t *testing.T, d1, d2, d3, d4 int) *roster.Roster {
	t.Helper()
	var players []roster.Player
	for score, n := range map[int]int{1: d1, 2: d2, 3: d3, 4: d4} {
		for i := 0; i < n; i++ {
			players = append(players, roster.Player{
				Name:            fmt.Sprintf("Player D%d-%d", score, i),
				College:         fmt.Sprintf("College %d", i%7),
				DifficultyScore: score,
			})
		}
	}
	r, err := roster.New(players)
	if err != nil {
		t.Fatalf("build test roster: %v", err)
	}
	return r
}

func distinctIDs(players []roster.Player) int {
	seen := make(map[uuid.UUID]struct{})
	for _, p := range players {
		seen[p.ID] = struct{}{}
	}
	return len(seen)
}
