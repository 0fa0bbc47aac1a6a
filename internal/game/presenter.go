package game

import (
	"github.com/gridironquiz/college-trivia/internal/roster"
)

// ResultType classifies the outcome reported for a question slot.
type ResultType string

const (
	ResultCorrect  ResultType = "correct"
	ResultWrong    ResultType = "wrong"
	ResultRevealed ResultType = "revealed"
)

// Result is the per-question outcome delivered to the presentation layer.
type Result struct {
	Message string     `json:"message"`
	Type    ResultType `json:"type"`
}

// Presenter is the presentation collaborator the engine notifies. The engine
// never renders anything itself; a WebSocket client, a test recorder, or a
// no-op all satisfy this interface.
type Presenter interface {
	// Lifecycle notifications during initialization.
	ShowLoading()
	ShowReady()
	ShowError(message string)

	// GameStarted fires once per StartGame before any question is shown.
	GameStarted(total int)

	// ShowQuestion delivers one active question, in order.
	ShowQuestion(p roster.Player, index int)

	// UpdateScore fires after game start and after every answer or reveal.
	UpdateScore(score, total int)

	// PlayerInput pulls the user's current raw guess for a question slot.
	PlayerInput(index int) string

	// ShowResult reports the outcome for a question slot.
	ShowResult(index int, res Result)
}

// NopPresenter satisfies Presenter with no-ops, for callers that only want
// the engine's return values.
type NopPresenter struct{}

func (NopPresenter) ShowLoading()                    {}
func (NopPresenter) ShowReady()                      {}
func (NopPresenter) ShowError(string)                {}
func (NopPresenter) GameStarted(int)                 {}
func (NopPresenter) ShowQuestion(roster.Player, int) {}
func (NopPresenter) UpdateScore(int, int)            {}
func (NopPresenter) PlayerInput(int) string          { return "" }
func (NopPresenter) ShowResult(int, Result)          {}

var _ Presenter = NopPresenter{}
