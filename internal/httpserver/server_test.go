package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/game"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/oracle"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/solver"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/store"
	"github.com/robalobadob/wordle/apps/wordlebot/internal/words"
)

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(store.NewMemoryStore(), cfg).Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGameFlow(t *testing.T) {
	ts := newTestServer(t, Config{MaxTries: 2})

	resp := postJSON(t, ts.URL+"/game/new", oracle.NewGameRequest{Answer: "robot"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ng oracle.NewGameResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ng))
	require.NotEmpty(t, ng.GameID)
	assert.Equal(t, 2, ng.MaxTries)

	guess := func(word string) (int, game.Result) {
		resp := postJSON(t, ts.URL+"/game/guess", oracle.GuessRequest{GameID: ng.GameID, Guess: word})
		var res game.Result
		_ = json.NewDecoder(resp.Body).Decode(&res)
		return resp.StatusCode, res
	}

	code, res := guess("ERROR")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, game.Result{Status: game.StatusPlaying, Feedback: "RYRGR", Answer: game.AnswerUnknown}, res)

	code, _ = guess("ER")
	assert.Equal(t, http.StatusBadRequest, code)

	code, res = guess("CRANE")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, game.StatusPlaying, res.Status)

	code, res = guess("CRANE")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, game.Result{Status: game.StatusExceeded, Feedback: "FAIL", Answer: "ROBOT"}, res)

	code, _ = guess("ROBOT")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestFinishedGamesAreEvicted(t *testing.T) {
	st := store.NewMemoryStore()
	ts := httptest.NewServer(New(st, Config{MaxTries: 1}).Router())
	t.Cleanup(ts.Close)

	newGame := func() string {
		resp := postJSON(t, ts.URL+"/game/new", oracle.NewGameRequest{Answer: "robot"})
		var ng oracle.NewGameResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&ng))
		return ng.GameID
	}

	won, lost := newGame(), newGame()
	assert.Equal(t, 2, st.Len())

	resp := postJSON(t, ts.URL+"/game/guess", oracle.GuessRequest{GameID: won, Guess: "ROBOT"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, st.Len())

	resp = postJSON(t, ts.URL+"/game/guess", oracle.GuessRequest{GameID: lost, Guess: "CRANE"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, st.Len(), "one try left after the first miss")

	resp = postJSON(t, ts.URL+"/game/guess", oracle.GuessRequest{GameID: lost, Guess: "CRANE"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res game.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, game.StatusExceeded, res.Status)
	assert.Equal(t, 0, st.Len())
}

func TestGuessUnknownGame(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp := postJSON(t, ts.URL+"/game/guess", oracle.GuessRequest{GameID: "missing", Guess: "CRANE"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewGameRejectsBadAnswer(t *testing.T) {
	ts := newTestServer(t, Config{})
	resp := postJSON(t, ts.URL+"/game/new", oracle.NewGameRequest{Answer: "toolong"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDailyGameUsesDictionary(t *testing.T) {
	dict := words.New([]string{"RETRY"})
	ts := newTestServer(t, Config{Dict: dict, DailySalt: "s"})

	o, err := oracle.NewHTTP(context.Background(), ts.URL, oracle.NewGameRequest{Daily: true})
	require.NoError(t, err)
	res, err := o.Submit(context.Background(), "RETRY")
	require.NoError(t, err)
	assert.Equal(t, game.StatusWon, res.Status)
}

func TestRequiresTokenWhenSecretSet(t *testing.T) {
	ts := newTestServer(t, Config{Secret: "s3cret"})

	resp := postJSON(t, ts.URL+"/game/new", oracle.NewGameRequest{Answer: "RETRY"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, err := oracle.NewHTTP(context.Background(), ts.URL, oracle.NewGameRequest{Answer: "RETRY"}, oracle.WithSecret("wrong"))
	assert.ErrorIs(t, err, oracle.ErrStatus)

	o, err := oracle.NewHTTP(context.Background(), ts.URL, oracle.NewGameRequest{Answer: "RETRY"}, oracle.WithSecret("s3cret"))
	require.NoError(t, err)
	res, err := o.Submit(context.Background(), "CRANE")
	require.NoError(t, err)
	assert.Equal(t, "RYRRY", res.Feedback)

	// Health stays public.
	hr, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer hr.Body.Close()
	assert.Equal(t, http.StatusOK, hr.StatusCode)
}

func TestSolverAgainstRemoteOracle(t *testing.T) {
	dict := words.Default()
	ts := newTestServer(t, Config{Dict: dict, Secret: "k", MaxTries: dict.Len()})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	o, err := oracle.NewHTTP(ctx, ts.URL, oracle.NewGameRequest{Answer: "PIANO"}, oracle.WithSecret("k"))
	require.NoError(t, err)
	assert.Equal(t, dict.Len(), o.MaxTries())

	nop := zerolog.Nop()
	s := solver.New(dict, o, solver.Options{MaxTries: o.MaxTries(), Seed: 1, Logger: &nop})
	st, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, solver.StatusWon, st)
	assert.Equal(t, "PIANO", s.RevealedAnswer())
}
