package roster

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAssignsIdentities(t *testing.T) {
	r, err := New([]Player{
		{Name: "QB One", College: "Ohio State", DifficultyScore: 4},
		{Name: "WR Two", College: "Oklahoma", DifficultyScore: 3},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	for _, p := range r.Players() {
		assert.NotEqual(t, uuid.Nil, p.ID)
	}
	assert.NotEqual(t, r.Players()[0].ID, r.Players()[1].ID)
}

func TestNewRejectsMalformedRecords(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyRoster)

	_, err = New([]Player{{College: "Ohio State", DifficultyScore: 4}})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = New([]Player{{Name: "QB One", College: "Ohio State", DifficultyScore: 0}})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = New([]Player{{Name: "QB One", College: "Ohio State", DifficultyScore: 5}})
	assert.ErrorIs(t, err, ErrMalformed)

	var dataErr *DataError
	_, err = New([]Player{
		{Name: "QB One", College: "Ohio State", DifficultyScore: 4},
		{Name: "WR Two", College: "Oklahoma", DifficultyScore: 9},
	})
	assert.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 1, dataErr.Index)
}

func TestNewKeepsPlayersWithoutColleges(t *testing.T) {
	r, err := New([]Player{
		{Name: "QB One", College: "Ohio State", DifficultyScore: 4},
		{Name: "DT Two", College: "", DifficultyScore: 2},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"Ohio State"}, r.Colleges())
}

func TestCollegesDistinctSortedIdempotent(t *testing.T) {
	r, err := New([]Player{
		{Name: "A", College: "Oklahoma", DifficultyScore: 3},
		{Name: "B", College: "Miami (OH)", DifficultyScore: 3},
		{Name: "C", College: "Oklahoma", DifficultyScore: 2},
		{Name: "D", College: "Ohio State", DifficultyScore: 4},
	})
	assert.NoError(t, err)

	want := []string{"Miami (OH)", "Ohio State", "Oklahoma"}
	assert.Equal(t, want, r.Colleges())
	assert.Equal(t, want, r.Colleges(), "derivation must be re-runnable")
}

func TestByDifficultyPartitions(t *testing.T) {
	r, err := New([]Player{
		{Name: "A", College: "Oklahoma", DifficultyScore: 3},
		{Name: "B", College: "Ohio State", DifficultyScore: 4},
		{Name: "C", College: "Oregon", DifficultyScore: 3},
	})
	assert.NoError(t, err)

	buckets := r.ByDifficulty()
	assert.Len(t, buckets[3], 2)
	assert.Len(t, buckets[4], 1)
	assert.Empty(t, buckets[1])
}
