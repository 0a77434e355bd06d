// internal/httpserver/routes_assist.go
//
// HTTP routes for assist mode: the client plays a game somewhere else, relays
// each round's feedback here, and gets the next suggested guess back.
//   - POST /assist/new      → open a session, returns token + first guess
//   - POST /assist/feedback → apply one (guess, code) pair, returns next guess
//
// Each session is bound to an HS256 token carrying its ID; feedback requests
// must present it as "Authorization: Bearer <token>".
// Sessions live in the in-memory store and are dropped once solved.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// mountAssist registers all /assist routes.
func (s *Server) mountAssist(r chi.Router) {
	r.Route("/assist", func(r chi.Router) {
		r.Post("/new", s.handleAssistNew)
		r.With(s.requireSession()).Post("/feedback", s.handleAssistFeedback)
	})
}

// -----------------------------------------------------------------------------
// /assist/new

type assistNewRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	Guess     string `json:"guess"`
	Remaining int    `json:"remaining"`
}

// handleAssistNew opens a session and suggests the opening guess.
func (s *Server) handleAssistNew(w http.ResponseWriter, r *http.Request) {
	sess := solver.NewSession(genID())
	guess, err := sess.Suggest(s.dict.Words())
	if err != nil {
		http.Error(w, `{"error":"no_candidate"}`, http.StatusConflict)
		return
	}
	tok, err := s.signSession(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(assistNewRes{
		SessionID: sess.ID,
		Token:     tok,
		Guess:     guess.String(),
		Remaining: s.dict.Len(),
	})
}

// -----------------------------------------------------------------------------
// /assist/feedback

type feedbackReq struct {
	SessionID string `json:"sessionId"` // optional; must match the token when set
	Guess     string `json:"guess"`
	Code      string `json:"code"` // five of G/Y/X
}

type feedbackRes struct {
	Solved    bool             `json:"solved"`
	Guess     string           `json:"guess,omitempty"`
	Remaining int              `json:"remaining"`
	Rounds    int              `json:"rounds"`
	Model     *solver.Snapshot `json:"model,omitempty"`
}

// handleAssistFeedback validates external feedback at the boundary, folds it
// into the session model and suggests the next guess.
func (s *Server) handleAssistFeedback(w http.ResponseWriter, r *http.Request) {
	sid, _ := r.Context().Value(ctxSessionKey{}).(string)

	var p feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if p.SessionID != "" && p.SessionID != sid {
		http.Error(w, `{"error":"session_mismatch"}`, http.StatusForbidden)
		return
	}
	guess, err := game.ParseWord(p.Guess)
	if err != nil {
		http.Error(w, `{"error":"invalid_guess"}`, http.StatusBadRequest)
		return
	}
	code, err := game.ParseCode(p.Code)
	if err != nil {
		http.Error(w, `{"error":"bad_feedback"}`, http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.Get(r.Context(), sid)
	if err != nil {
		http.Error(w, `{"error":"no_session"}`, http.StatusNotFound)
		return
	}

	s.mu.Lock()
	sess.Apply(guess, code)
	res := feedbackRes{Rounds: len(sess.Rounds)}
	var next game.Word
	if code.Solved() {
		res.Solved = true
	} else {
		next, err = sess.Suggest(s.dict.Words())
		res.Remaining = solver.Count(s.dict.Words(), sess.Model)
		snap := sess.Model.Snapshot()
		res.Model = &snap
	}
	s.mu.Unlock()

	if res.Solved {
		_ = s.sessions.Delete(r.Context(), sid)
		_ = json.NewEncoder(w).Encode(res)
		return
	}
	if err != nil {
		// The relayed feedback contradicts every word we know; this state
		// cannot recover.
		_ = s.sessions.Delete(r.Context(), sid)
		http.Error(w, `{"error":"no_candidate"}`, http.StatusConflict)
		return
	}
	res.Guess = next.String()
	_ = json.NewEncoder(w).Encode(res)
}

// ---------------------------- session tokens -------------------------------

// ctxSessionKey is the context key type for the authenticated session ID.
type ctxSessionKey struct{}

// signSession creates an HS256 JWT carrying the session ID.
func (s *Server) signSession(id string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": now.Add(s.cfg.TokenTTL).Unix(),
		"iat": now.Unix(),
	})
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

// parseSession verifies a token and returns its session ID.
func (s *Server) parseSession(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("invalid token")
	}
	return sid, nil
}

// requireSession enforces a valid session token and injects its ID into the
// request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearer(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			sid, err := s.parseSession(tokenStr)
			if err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
