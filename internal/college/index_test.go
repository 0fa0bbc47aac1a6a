package college

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIndexDeduplicatesAndSorts(t *testing.T) {
	idx := NewIndex([]string{"Oklahoma", "Ohio State", "", "Ohio State", "Miami (OH)"})

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []string{"Miami (OH)", "Ohio State", "Oklahoma"}, idx.Names())
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	idx := NewIndex([]string{"Ohio State", "Oklahoma"})

	assert.Empty(t, idx.Search(""))
	assert.Empty(t, idx.Search("   "))
}

func TestSearchRanksPrefixBeforeSubstring(t *testing.T) {
	idx := NewIndex([]string{"Ohio State", "Miami (OH)", "Oklahoma"})

	got := idx.Search("oh")
	assert.Equal(t, []string{"Ohio State", "Miami (OH)"}, got)
}

func TestSearchMatchesNormalizedForms(t *testing.T) {
	idx := NewIndex([]string{"Ohio State", "Penn State", "Penn University"})

	// "ohio st" normalizes to "ohio state" and prefix-matches the entry.
	assert.Equal(t, []string{"Ohio State"}, idx.Search("Ohio St."))
	// "penn u" normalizes to "penn university".
	assert.Equal(t, []string{"Penn University"}, idx.Search("penn u"))
}

func TestSearchDeterministicOrder(t *testing.T) {
	idx := NewIndex([]string{"Oregon", "Oregon State", "Oklahoma", "Ohio State"})

	first := idx.Search("o")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, idx.Search("o"))
	}
	// All are prefix matches, so the order is the index's collation order.
	assert.Equal(t, []string{"Ohio State", "Oklahoma", "Oregon", "Oregon State"}, first)
}

func TestSearchNoMatches(t *testing.T) {
	idx := NewIndex([]string{"Ohio State", "Oklahoma"})

	assert.Empty(t, idx.Search("zzz"))
}
