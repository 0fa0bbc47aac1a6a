package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gridironquiz/college-trivia/internal/college"
	"github.com/gridironquiz/college-trivia/internal/roster"
)

var (
	// ErrNoSession is returned when an answer operation arrives before any
	// game has been started.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidIndex is returned when an answer operation addresses a slot
	// outside the active question set. The presentation layer is expected to
	// only send valid indices; this is a fail-fast contract guard.
	ErrInvalidIndex = errors.New("question index out of range")
)

const promptEmptyGuess = "Enter a guess first."

// Options configures an engine instance.
type Options struct {
	QuestionCount int
	Sampling      SamplingConfig
}

// Session is the mutable state of one playthrough. It is created by
// StartGame and replaced wholesale by the next one.
type Session struct {
	ID        uuid.UUID
	Mode      Mode
	Score     int
	Questions []roster.Player

	// scored tracks which slots already earned their point. Re-answering is
	// allowed, but a slot can only ever contribute once, which keeps the
	// score bounded by the question count.
	scored []bool
}

// Engine drives one player's quiz: it owns the session state and notifies
// the injected presenter of every observable change. Engines are
// goroutine-confined; the shared roster and index are immutable.
type Engine struct {
	roster    *roster.Roster
	index     *college.Index
	sampler   *Sampler
	presenter Presenter
	logger    zerolog.Logger

	questionCount int
	mode          Mode
	session       *Session
}

// NewEngine builds an engine over a loaded roster and college index. Both
// may be nil when the initial dataset load failed; every operation then
// degrades to an empty result instead of crashing.
func NewEngine(r *roster.Roster, idx *college.Index, presenter Presenter, opts Options, logger zerolog.Logger) *Engine {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	if opts.QuestionCount <= 0 {
		opts.QuestionCount = 5
	}
	return &Engine{
		roster:        r,
		index:         idx,
		sampler:       NewSampler(opts.Sampling),
		presenter:     presenter,
		logger:        logger.With().Str("component", "engine").Logger(),
		questionCount: opts.QuestionCount,
		mode:          ModeRandom,
	}
}

// Ready reports whether the dataset loaded and games can be played.
func (e *Engine) Ready() bool {
	return e.roster != nil && e.roster.Len() > 0
}

// SetMode updates the difficulty mode. It takes effect on the next
// StartGame and never disturbs an in-progress session.
func (e *Engine) SetMode(mode Mode) {
	e.mode = mode
}

// Mode returns the currently configured difficulty mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// StartGame discards any previous session, selects a fresh question set and
// walks the presenter through it: one notification per question, in order,
// then the zeroed score.
func (e *Engine) StartGame() *Session {
	questions := e.sampler.Select(e.roster, e.questionCount, e.mode)
	e.session = &Session{
		ID:        uuid.New(),
		Mode:      e.mode,
		Questions: questions,
		scored:    make([]bool, len(questions)),
	}

	e.logger.Info().
		Str("session_id", e.session.ID.String()).
		Str("mode", string(e.mode)).
		Int("questions", len(questions)).
		Msg("game started")

	e.presenter.GameStarted(len(questions))
	for i, q := range questions {
		e.presenter.ShowQuestion(q, i)
	}
	e.presenter.UpdateScore(0, len(questions))
	return e.session
}

// SubmitAnswer grades the guess for one question slot. The raw guess is
// pulled from the presenter; a blank guess reports a corrective prompt
// without touching the score. The updated score is always re-notified.
func (e *Engine) SubmitAnswer(index int) error {
	q, err := e.question(index)
	if err != nil {
		return err
	}

	guess := strings.TrimSpace(e.presenter.PlayerInput(index))
	switch {
	case guess == "":
		e.presenter.ShowResult(index, Result{Message: promptEmptyGuess, Type: ResultWrong})
	case q.College != "" && college.Match(guess, q.College):
		if !e.session.scored[index] {
			e.session.scored[index] = true
			e.session.Score++
		}
		e.presenter.ShowResult(index, Result{Message: "Correct!", Type: ResultCorrect})
	case q.College == "":
		e.presenter.ShowResult(index, Result{
			Message: fmt.Sprintf("Wrong. No college on record for %s.", q.Name),
			Type:    ResultWrong,
		})
	default:
		e.presenter.ShowResult(index, Result{
			Message: fmt.Sprintf("Wrong. %s went to %s.", q.Name, q.College),
			Type:    ResultWrong,
		})
	}

	e.presenter.UpdateScore(e.session.Score, len(e.session.Questions))
	return nil
}

// RevealAnswer reports the correct college for a slot without grading
// anything. The score is re-notified unchanged.
func (e *Engine) RevealAnswer(index int) error {
	q, err := e.question(index)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("%s went to %s.", q.Name, q.College)
	if q.College == "" {
		message = fmt.Sprintf("No college on record for %s.", q.Name)
	}
	e.presenter.ShowResult(index, Result{Message: message, Type: ResultRevealed})
	e.presenter.UpdateScore(e.session.Score, len(e.session.Questions))
	return nil
}

// SearchColleges runs search-as-you-type over the college index.
func (e *Engine) SearchColleges(query string) []string {
	if e.index == nil {
		return nil
	}
	return e.index.Search(query)
}

// Session returns the active session, or nil when idle.
func (e *Engine) Session() *Session {
	return e.session
}

func (e *Engine) question(index int) (roster.Player, error) {
	if e.session == nil {
		return roster.Player{}, ErrNoSession
	}
	if index < 0 || index >= len(e.session.Questions) {
		return roster.Player{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return e.session.Questions[index], nil
}
