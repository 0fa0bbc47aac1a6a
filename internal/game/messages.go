package game

import "encoding/json"

// Client command types.
const (
	CmdStart   = "start"
	CmdSetMode = "set_mode"
	CmdSubmit  = "submit"
	CmdReveal  = "reveal"
	CmdSearch  = "search"
)

// Server event types.
const (
	EventLoading       = "loading"
	EventReady         = "ready"
	EventError         = "error"
	EventGameStarted   = "game_started"
	EventQuestion      = "question"
	EventScore         = "score"
	EventResult        = "result"
	EventSearchResults = "search_results"
)

// Command is the inbound WebSocket envelope.
type Command struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Event is the outbound WebSocket envelope.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type SetModePayload struct {
	Mode string `json:"mode"`
}

type SubmitPayload struct {
	Index int    `json:"index"`
	Guess string `json:"guess"`
}

type RevealPayload struct {
	Index int `json:"index"`
}

type SearchPayload struct {
	Query string `json:"query"`
}

type GameStartedPayload struct {
	Total int `json:"total"`
}

// QuestionPayload describes one question slot. The college is deliberately
// absent; it only travels back inside a result message.
type QuestionPayload struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Team     string `json:"team,omitempty"`
}

type ScorePayload struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

type ResultPayload struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type SearchResultsPayload struct {
	Query    string   `json:"query"`
	Colleges []string `json:"colleges"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
