package roster

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Roster is the full ordered set of players available for question
// selection. It is validated and assigned identities once at construction and
// read-only afterwards, so it can be shared across game sessions freely.
type Roster struct {
	players []Player
}

// New validates the raw player sequence and builds a roster. Every record
// needs a name and a difficulty score in range; a record may omit its college,
// in which case it stays in the roster but is excluded from the college index
// and can never match an answer.
func New(players []Player) (*Roster, error) {
	if len(players) == 0 {
		return nil, ErrEmptyRoster
	}

	validated := make([]Player, len(players))
	for i, p := range players {
		if p.Name == "" {
			return nil, &DataError{Index: i, Err: fmt.Errorf("%w: missing name", ErrMalformed)}
		}
		if p.DifficultyScore < DifficultyMin || p.DifficultyScore > DifficultyMax {
			return nil, &DataError{Index: i, Err: fmt.Errorf("%w: difficulty_score %d out of range", ErrMalformed, p.DifficultyScore)}
		}
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		validated[i] = p
	}

	return &Roster{players: validated}, nil
}

// Players returns the roster in load order. Callers must not mutate the
// returned slice.
func (r *Roster) Players() []Player {
	return r.players
}

// Len returns the number of players in the roster.
func (r *Roster) Len() int {
	return len(r.players)
}

// Colleges returns the distinct non-empty college names in the roster,
// lexicographically sorted. Derived data; safe to call repeatedly.
func (r *Roster) Colleges() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range r.players {
		if p.College == "" {
			continue
		}
		if _, ok := seen[p.College]; ok {
			continue
		}
		seen[p.College] = struct{}{}
		names = append(names, p.College)
	}
	sort.Strings(names)
	return names
}

// ByDifficulty partitions the roster into buckets keyed by difficulty score.
func (r *Roster) ByDifficulty() map[int][]Player {
	buckets := make(map[int][]Player)
	for _, p := range r.players {
		buckets[p.DifficultyScore] = append(buckets[p.DifficultyScore], p)
	}
	return buckets
}
