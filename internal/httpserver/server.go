// apps/wordlebot/internal/httpserver/server.go
//
// HTTP server exposing a game as a feedback oracle.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess (bearer token when a secret is set).
//
// Notes:
//   - Answers come from the shared dictionary: fixed (testing), daily, or random.
//   - Guess replies follow game.Result: G/Y/R feedback, WIN, or FAIL with the answer.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/daily"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/game"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/oracle"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/store"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

// Config carries the server's dependencies and knobs.
type Config struct {
	Dict      *words.Dictionary
	Secret    string // HS256 secret; empty disables auth
	DailySalt string
	MaxTries  int // default budget for new games
}

// Server bundles router, session store and config.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   Config
	now   func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg Config) *Server {
	if cfg.MaxTries <= 0 {
		cfg.MaxTries = game.DefaultMaxTries
	}
	if cfg.Dict == nil {
		cfg.Dict = words.Default()
	}
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordlebot-oracle","endpoints":["/health","POST /game/new","POST /game/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.cfg.Dict.Len(), "games": s.store.Len()})
	})

	// --- game ---
	s.r.Group(func(r chi.Router) {
		r.Use(s.requireToken())
		r.Post("/game/new", s.handleNewGame)
		r.Post("/game/guess", s.handleGuess)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one access log line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("dur", time.Since(start)).
			Msg("http")
	})
}

// ------------------------------ GAME ---------------------------------------

// handleNewGame creates an in-memory game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req oracle.NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	answer := req.Answer
	switch {
	case answer != "":
	case req.Daily:
		answer = daily.Answer(s.cfg.Dict, s.now(), s.cfg.DailySalt)
	default:
		answer = s.cfg.Dict.Random()
	}
	maxTries := req.MaxTries
	if maxTries <= 0 {
		maxTries = s.cfg.MaxTries
	}

	g, err := game.New(answer, maxTries)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Bool("daily", req.Daily).Int("maxTries", g.MaxTries).Msg("game started")
	_ = json.NewEncoder(w).Encode(oracle.NewGameResponse{GameID: g.ID, MaxTries: g.MaxTries})
}

// handleGuess scores a guess against a stored game. Finished games are
// evicted, so later guesses for them get 404.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req oracle.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	res, err := g.Guess(req.Guess)
	switch {
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if state := g.State(); state != game.StatusPlaying {
		log.Info().Str("gameId", g.ID).Str("status", string(state)).Int("tries", g.Tries).Msg("game finished")
		if err := s.store.Delete(r.Context(), g.ID); err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("evict game")
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeError writes a JSON error body with status code.
func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(oracle.ErrorResponse{Error: msg})
}
