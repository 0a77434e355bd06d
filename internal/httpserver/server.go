// internal/httpserver/server.go
//
// HTTP server wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Self-play endpoint: POST /solve.
//   - Assist endpoints (session token): mounted under /assist.
//   - Run history endpoints: mounted under /history.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - History is optional; without it /solve still works and /history/* answers 503.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	mrand "math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Config carries the settings the server reads at startup.
type Config struct {
	ClientOrigin string        // CORS origin; defaults to http://localhost:5173
	JWTSecret    string        // HS256 key for assist tokens
	TokenTTL     time.Duration // assist token lifetime; defaults to 24h
	DailySalt    string        // salt for mode=daily secrets
}

// Server bundles router, dictionary, session store and optional run history.
type Server struct {
	r        *chi.Mux
	cfg      Config
	dict     *words.Dictionary
	sessions store.Store
	history  *history.Store

	mu sync.Mutex // serialises updates to assist sessions
}

// New constructs a Server, installs middleware, and registers routes.
// hist may be nil.
func New(cfg Config, dict *words.Dictionary, sessions store.Store, hist *history.Store) *Server {
	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = "http://localhost:5173"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev_secret_change_me"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	s := &Server{r: chi.NewRouter(), cfg: cfg, dict: dict, sessions: sessions, history: hist}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve","POST /assist/new","POST /assist/feedback","/history/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.dict.Len()})
	})

	s.r.Post("/solve", s.handleSolve)
	s.mountAssist(s.r)
	s.mountHistory(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
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

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SOLVE --------------------------------------

// solveReq/Res payloads for POST /solve.
type solveReq struct {
	Secret     string `json:"secret"`     // optional fixed secret
	Mode       string `json:"mode"`       // "random" (default) | "daily"
	Seed       *int64 `json:"seed"`       // optional seed for random secrets
	FirstGuess string `json:"firstGuess"` // optional forced opening guess
}

type roundRes struct {
	Guess string `json:"guess"`
	Code  string `json:"code"`
}

type solveRes struct {
	GameID string     `json:"gameId"`
	Secret string     `json:"secret"`
	Solved bool       `json:"solved"`
	Rounds []roundRes `json:"rounds"`
}

// handleSolve plays a full self-play game and records it when history is configured.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
			return
		}
	}

	secret, mode, err := s.pickSecret(req)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	var opts solver.Options
	if req.FirstGuess != "" {
		fg, err := game.ParseWord(req.FirstGuess)
		if err != nil {
			http.Error(w, `{"error":"invalid_first_guess"}`, http.StatusBadRequest)
			return
		}
		opts.FirstGuess = &fg
	}

	started := time.Now()
	res, err := solver.Solve(r.Context(), s.dict.Words(), secret, opts)
	if err != nil {
		log.Error().Err(err).Str("secret", secret.String()).Msg("solve")
		status := http.StatusInternalServerError
		if errors.Is(err, solver.ErrNoCandidate) {
			status = http.StatusConflict
		}
		http.Error(w, `{"error":"solve_failed"}`, status)
		return
	}

	if s.history != nil {
		run := history.NewRun(res.GameID, secret, mode, res.Rounds, started)
		if err := s.history.InsertRun(r.Context(), run); err != nil {
			log.Warn().Err(err).Str("gameId", res.GameID).Msg("insert run")
		}
	}

	out := solveRes{GameID: res.GameID, Secret: secret.String(), Solved: true, Rounds: toRounds(res.Rounds)}
	_ = json.NewEncoder(w).Encode(out)
}

// pickSecret resolves the secret for a solve request and names the mode used.
func (s *Server) pickSecret(req solveReq) (game.Word, string, error) {
	if req.Secret != "" {
		w, err := game.ParseWord(req.Secret)
		if err != nil {
			return game.Word{}, "", errors.New("invalid_secret")
		}
		if !s.dict.Contains(w) {
			return game.Word{}, "", errors.New("unknown_secret")
		}
		return w, "fixed", nil
	}
	switch strings.ToLower(req.Mode) {
	case "daily":
		return daily.Secret(s.dict, time.Now(), s.cfg.DailySalt), "daily", nil
	case "", "random":
		seed := time.Now().UnixNano()
		if req.Seed != nil {
			seed = *req.Seed
		}
		return s.dict.Random(mrand.New(mrand.NewSource(seed))), "random", nil
	default:
		return game.Word{}, "", errors.New("invalid_mode")
	}
}

func toRounds(rs []game.Round) []roundRes {
	out := make([]roundRes, len(rs))
	for i, r := range rs {
		out[i] = roundRes{Guess: r.Guess.String(), Code: r.Code.String()}
	}
	return out
}

// ------------------------------- small util --------------------------------

// genID creates a 22‑char URL‑safe, crypto‑random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
