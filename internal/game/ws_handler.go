package game

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/gridironquiz/college-trivia/internal/auth"
	"github.com/gridironquiz/college-trivia/internal/college"
	"github.com/gridironquiz/college-trivia/internal/roster"
	"github.com/gridironquiz/college-trivia/internal/server"
	httperrors "github.com/gridironquiz/college-trivia/pkg/http/errors"
)

// WSHandler serves one quiz engine per WebSocket connection. The roster and
// index are shared immutable state; everything mutable lives inside the
// per-connection engine, so commands are serialized by the read loop.
type WSHandler struct {
	roster *roster.Roster
	index  *college.Index
	tokens *auth.Manager
	opts   Options
	logger zerolog.Logger
}

// NewWSHandler constructs the WebSocket handler. roster and index may be nil
// when the dataset load failed; connections then get an error notification
// instead of a ready one. tokens may be nil to allow anonymous connections.
func NewWSHandler(r *roster.Roster, idx *college.Index, tokens *auth.Manager, opts Options, logger zerolog.Logger) *WSHandler {
	return &WSHandler{
		roster: r,
		index:  idx,
		tokens: tokens,
		opts:   opts,
		logger: logger.With().Str("component", "game_ws").Logger(),
	}
}

// HandleWebSocket upgrades the connection and runs the game loop until the
// client disconnects.
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientID := uuid.New()
	if token := r.URL.Query().Get("token"); token != "" && h.tokens != nil {
		claims, err := h.tokens.Verify(token)
		if err != nil {
			h.logger.Warn().Err(err).Msg("websocket token rejected")
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid token")
			return
		}
		clientID = claims.ClientID
	}

	conn, err := server.WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	logger := h.logger.With().Str("client_id", clientID.String()).Logger()
	presenter := newWSPresenter(conn, logger)
	engine := NewEngine(h.roster, h.index, presenter, h.opts, logger)

	presenter.ShowLoading()
	if engine.Ready() {
		presenter.ShowReady()
	} else {
		presenter.ShowError("player data unavailable")
	}

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}
		h.dispatch(engine, presenter, cmd, logger)
	}
}

func (h *WSHandler) dispatch(engine *Engine, presenter *wsPresenter, cmd Command, logger zerolog.Logger) {
	switch cmd.Type {
	case CmdStart:
		engine.StartGame()

	case CmdSetMode:
		var payload SetModePayload
		if err := json.Unmarshal(cmd.Payload, &payload); err != nil {
			presenter.sendError(httperrors.ErrCodeInvalidPayload, "malformed set_mode payload")
			return
		}
		engine.SetMode(Mode(payload.Mode))

	case CmdSubmit:
		var payload SubmitPayload
		if err := json.Unmarshal(cmd.Payload, &payload); err != nil {
			presenter.sendError(httperrors.ErrCodeInvalidPayload, "malformed submit payload")
			return
		}
		presenter.setInput(payload.Index, payload.Guess)
		if err := engine.SubmitAnswer(payload.Index); err != nil {
			logger.Warn().Err(err).Int("index", payload.Index).Msg("submit rejected")
			presenter.sendError(httperrors.ErrCodeInvalidQuestionIndex, err.Error())
		}

	case CmdReveal:
		var payload RevealPayload
		if err := json.Unmarshal(cmd.Payload, &payload); err != nil {
			presenter.sendError(httperrors.ErrCodeInvalidPayload, "malformed reveal payload")
			return
		}
		if err := engine.RevealAnswer(payload.Index); err != nil {
			logger.Warn().Err(err).Int("index", payload.Index).Msg("reveal rejected")
			presenter.sendError(httperrors.ErrCodeInvalidQuestionIndex, err.Error())
		}

	case CmdSearch:
		var payload SearchPayload
		if err := json.Unmarshal(cmd.Payload, &payload); err != nil {
			presenter.sendError(httperrors.ErrCodeInvalidPayload, "malformed search payload")
			return
		}
		colleges := engine.SearchColleges(payload.Query)
		presenter.send(Event{Type: EventSearchResults, Payload: SearchResultsPayload{
			Query:    payload.Query,
			Colleges: colleges,
		}})

	default:
		presenter.sendError(httperrors.ErrCodeUnknownMessageType, "unknown command type: "+cmd.Type)
	}
}

// wsPresenter adapts the Presenter hook set onto a WebSocket connection.
// Guesses arrive inside submit commands; setInput stages them so the
// engine's pull-style PlayerInput hook finds them.
type wsPresenter struct {
	conn   *websocket.Conn
	logger zerolog.Logger
	inputs map[int]string
}

var _ Presenter = (*wsPresenter)(nil)

func newWSPresenter(conn *websocket.Conn, logger zerolog.Logger) *wsPresenter {
	return &wsPresenter{
		conn:   conn,
		logger: logger,
		inputs: make(map[int]string),
	}
}

func (p *wsPresenter) send(evt Event) {
	if err := p.conn.WriteJSON(evt); err != nil {
		p.logger.Warn().Err(err).Str("event", evt.Type).Msg("websocket write failed")
	}
}

func (p *wsPresenter) sendError(code, message string) {
	p.send(Event{Type: EventError, Payload: ErrorPayload{Code: code, Message: message}})
}

func (p *wsPresenter) setInput(index int, guess string) {
	p.inputs[index] = guess
}

func (p *wsPresenter) ShowLoading() {
	p.send(Event{Type: EventLoading})
}

func (p *wsPresenter) ShowReady() {
	p.send(Event{Type: EventReady})
}

func (p *wsPresenter) ShowError(message string) {
	p.sendError(httperrors.ErrCodeRosterUnavailable, message)
}

func (p *wsPresenter) GameStarted(total int) {
	p.inputs = make(map[int]string)
	p.send(Event{Type: EventGameStarted, Payload: GameStartedPayload{Total: total}})
}

func (p *wsPresenter) ShowQuestion(player roster.Player, index int) {
	p.send(Event{Type: EventQuestion, Payload: QuestionPayload{
		Index:    index,
		Name:     player.Name,
		Position: player.Position,
		Team:     player.Team,
	}})
}

func (p *wsPresenter) UpdateScore(score, total int) {
	p.send(Event{Type: EventScore, Payload: ScorePayload{Score: score, Total: total}})
}

func (p *wsPresenter) PlayerInput(index int) string {
	return p.inputs[index]
}

func (p *wsPresenter) ShowResult(index int, res Result) {
	p.send(Event{Type: EventResult, Payload: ResultPayload{
		Index:   index,
		Message: res.Message,
		Type:    string(res.Type),
	}})
}
