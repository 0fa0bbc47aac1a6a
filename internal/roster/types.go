package roster

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Difficulty scores run 1-4; higher means the player is more famous and the
// question is easier.
const (
	DifficultyMin = 1
	DifficultyMax = 4
)

var (
	// ErrMalformed indicates the raw dataset was not a well-formed sequence
	// of player records.
	ErrMalformed = errors.New("malformed player data")

	// ErrEmptyRoster indicates the dataset contained no usable players.
	ErrEmptyRoster = errors.New("empty roster")
)

// Player is a single quizzable record from the dataset. Loaded once at
// startup and never mutated afterwards.
type Player struct {
	ID              uuid.UUID `json:"-"`
	Name            string    `json:"name"`
	College         string    `json:"college"`
	Position        string    `json:"position,omitempty"`
	Team            string    `json:"team,omitempty"`
	DifficultyScore int       `json:"difficulty_score"`
}

// DataError reports which record in the dataset failed validation.
type DataError struct {
	Index int
	Err   error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("player record %d: %v", e.Index, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// LoadError wraps a dataset fetch or validation failure. It is surfaced once
// during initialization; there is no retry path.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load roster from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
