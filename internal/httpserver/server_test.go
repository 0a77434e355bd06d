package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/history"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.Read(strings.NewReader("crane slate trace brace grace"), true)
	require.NoError(t, err)
	return d
}

func newTestServer(t *testing.T, withHistory bool) *Server {
	t.Helper()
	var hist *history.Store
	if withHistory {
		db, err := history.Open(filepath.Join(t.TempDir(), "runs.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		require.NoError(t, history.Migrate(db))
		hist = history.NewStore(db)
	}
	return New(Config{JWTSecret: "test-secret"}, testDict(t), store.NewMemoryStore(), hist)
}

func do(t *testing.T, s *Server, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestSolveFixedSecret(t *testing.T) {
	s := newTestServer(t, true)
	rec := do(t, s, http.MethodPost, "/solve", `{"secret":"TRACE","firstGuess":"crane"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res solveRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Solved)
	assert.Equal(t, "trace", res.Secret)
	assert.Equal(t, []roundRes{{"crane", "YGGXG"}, {"trace", "GGGGG"}}, res.Rounds)

	rec = do(t, s, http.MethodGet, "/history/stats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"runs":1,"avgRounds":2,"maxRounds":2}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/history/recent", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []history.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "fixed", runs[0].Mode)
	assert.Equal(t, res.GameID, runs[0].ID)
}

func TestSolveSeededRandomIsReproducible(t *testing.T) {
	s := newTestServer(t, false)
	var a, b solveRes
	require.NoError(t, json.Unmarshal(do(t, s, http.MethodPost, "/solve", `{"seed":7}`, "").Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(do(t, s, http.MethodPost, "/solve", `{"seed":7}`, "").Body.Bytes(), &b))
	assert.Equal(t, a.Secret, b.Secret)
	assert.Equal(t, a.Rounds, b.Rounds)
	assert.True(t, a.Solved)
}

func TestSolveRejectsBadInput(t *testing.T) {
	s := newTestServer(t, false)
	for body, want := range map[string]string{
		`{"secret":"tr4ce"}`:       "invalid_secret",
		`{"secret":"zebra"}`:       "unknown_secret",
		`{"mode":"weekly"}`:        "invalid_mode",
		`{"firstGuess":"toolong"}`: "invalid_first_guess",
		`{`:                        "bad_json",
	} {
		rec := do(t, s, http.MethodPost, "/solve", body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), want, body)
	}
}

func TestHistoryDisabled(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodGet, "/history/stats", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAssistFlow(t *testing.T) {
	s := newTestServer(t, false)
	secret := game.MustWord("grace")

	rec := do(t, s, http.MethodPost, "/assist/new", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var open assistNewRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &open))
	assert.Equal(t, "crane", open.Guess)
	assert.NotEmpty(t, open.Token)

	guess := open.Guess
	for round := 0; round < 5; round++ {
		code := game.Score(game.MustWord(guess), secret).String()
		body := `{"guess":"` + guess + `","code":"` + code + `"}`
		rec = do(t, s, http.MethodPost, "/assist/feedback", body, open.Token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var fb feedbackRes
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fb))
		if fb.Solved {
			assert.Equal(t, "grace", guess)
			return
		}
		require.NotNil(t, fb.Model)
		assert.Positive(t, fb.Remaining)
		guess = fb.Guess
	}
	t.Fatal("assist session did not converge")
}

func TestAssistFeedbackValidation(t *testing.T) {
	s := newTestServer(t, false)

	rec := do(t, s, http.MethodPost, "/assist/feedback", `{"guess":"crane","code":"XXXXX"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodPost, "/assist/feedback", `{"guess":"crane","code":"XXXXX"}`, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var open assistNewRes
	require.NoError(t, json.Unmarshal(do(t, s, http.MethodPost, "/assist/new", "", "").Body.Bytes(), &open))

	rec = do(t, s, http.MethodPost, "/assist/feedback", `{"guess":"crane","code":"XXBXX"}`, open.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad_feedback")

	rec = do(t, s, http.MethodPost, "/assist/feedback", `{"guess":"cra","code":"XXXXX"}`, open.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_guess")

	rec = do(t, s, http.MethodPost, "/assist/feedback", `{"sessionId":"other","guess":"crane","code":"XXXXX"}`, open.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Every dictionary word contains A or E, so this leaves nothing.
	rec = do(t, s, http.MethodPost, "/assist/feedback", `{"guess":"crane","code":"XXXXX"}`, open.Token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_candidate")

	rec = do(t, s, http.MethodPost, "/assist/feedback", `{"guess":"crane","code":"XXXXX"}`, open.Token)
	assert.Equal(t, http.StatusNotFound, rec.Code, "session is dropped after no_candidate")
}

func TestAssistTokenFromOtherSecretRejected(t *testing.T) {
	a := newTestServer(t, false)
	b := New(Config{JWTSecret: "different"}, testDict(t), store.NewMemoryStore(), nil)

	var open assistNewRes
	require.NoError(t, json.Unmarshal(do(t, a, http.MethodPost, "/assist/new", "", "").Body.Bytes(), &open))
	rec := do(t, b, http.MethodPost, "/assist/feedback", `{"guess":"crane","code":"XXXXX"}`, open.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
