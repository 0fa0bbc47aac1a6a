package game

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gridironquiz/college-trivia/internal/auth"
	"github.com/gridironquiz/college-trivia/internal/college"
	"github.com/gridironquiz/college-trivia/internal/logging"
	httperrors "github.com/gridironquiz/college-trivia/pkg/http/errors"
)

// HTTPHandler exposes the REST mirror of college search plus anonymous
// session token issuance.
type HTTPHandler struct {
	index  *college.Index
	tokens *auth.Manager
	logger zerolog.Logger
}

// NewHTTPHandler constructs the REST handler. index may be nil when the
// dataset load failed; tokens may be nil when token auth is disabled.
func NewHTTPHandler(idx *college.Index, tokens *auth.Manager, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		index:  idx,
		tokens: tokens,
		logger: logger.With().Str("component", "game_http").Logger(),
	}
}

// HandleSearch responds with ranked college matches for an autocomplete
// query. Route: GET /v1/colleges/search?q=oh
func (h *HTTPHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.index == nil {
		httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeRosterUnavailable, "player data unavailable")
		return
	}

	query := r.URL.Query().Get("q")
	colleges := h.index.Search(query)
	if colleges == nil {
		colleges = []string{}
	}
	reqLogger := logging.FromContext(r.Context())
	reqLogger.Debug().Str("query", query).Int("matches", len(colleges)).Msg("college search")

	writeJSON(w, SearchResultsPayload{Query: query, Colleges: colleges})
}

// HandleToken issues an anonymous client token so a browser can resume its
// WebSocket with a stable identity. Route: POST /v1/session/token
func (h *HTTPHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.tokens == nil {
		httperrors.RespondError(w, http.StatusNotImplemented, httperrors.ErrCodeFeatureNotAvailable, "session tokens disabled")
		return
	}

	token, clientID, err := h.tokens.Issue()
	if err != nil {
		h.logger.Error().Err(err).Msg("token issue failed")
		httperrors.RespondInternalError(w, "failed to issue token")
		return
	}

	writeJSON(w, map[string]string{
		"token":     token,
		"client_id": clientID.String(),
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
