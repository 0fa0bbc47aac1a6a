package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gridironquiz/college-trivia/internal/config"
	"github.com/gridironquiz/college-trivia/internal/logging"
)

// WSUpgrader handles WebSocket upgrades (configure CORS/security as needed).
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict origins once the game is served from a fixed host
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewHTTPServer wires base routes (health, metrics) plus the game surface.
// Any handler may be nil while its feature is disabled.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, searchHandler, tokenHandler, gameWSHandler http.HandlerFunc) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	if searchHandler != nil {
		mux.HandleFunc("/v1/colleges/search", searchHandler)
	}
	if tokenHandler != nil {
		mux.HandleFunc("/v1/session/token", tokenHandler)
	}

	if gameWSHandler != nil {
		mux.HandleFunc("/ws/game", gameWSHandler)
	} else {
		mux.HandleFunc("/ws/game", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "game handler not integrated", http.StatusNotImplemented)
		})
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: requestLogger(mux, logger),
	}
}

// requestLogger makes the app logger reachable from every request context.
func requestLogger(next http.Handler, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), logger)))
	})
}
