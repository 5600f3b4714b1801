// apps/wordlebot/internal/oracle/http.go
//
// Client for the oracle HTTP server.
//   - NewHTTP starts a game with POST /game/new.
//   - Submit posts each guess to POST /game/guess.
//   - When a secret is configured, every request carries an HS256 bearer token.

package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/game"
)

// TokenSubject identifies the solver in issued tokens.
const TokenSubject = "wordlebot"

// ErrStatus is returned for non-2xx replies.
var ErrStatus = errors.New("oracle: unexpected status")

// HTTP is a remote oracle bound to one game.
type HTTP struct {
	base     string
	client   *http.Client
	secret   string
	gameID   string
	maxTries int
}

// HTTPOption customizes an HTTP oracle.
type HTTPOption func(*HTTP)

// WithClient replaces the default http.Client.
func WithClient(c *http.Client) HTTPOption { return func(h *HTTP) { h.client = c } }

// WithSecret enables bearer tokens signed with secret.
func WithSecret(secret string) HTTPOption { return func(h *HTTP) { h.secret = secret } }

// NewHTTP creates a game on the server at baseURL.
func NewHTTP(ctx context.Context, baseURL string, req NewGameRequest, opts ...HTTPOption) (*HTTP, error) {
	h := &HTTP{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(h)
	}
	var res NewGameResponse
	if err := h.post(ctx, "/game/new", req, &res); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	h.gameID, h.maxTries = res.GameID, res.MaxTries
	return h, nil
}

// GameID returns the server-side game identifier.
func (h *HTTP) GameID() string { return h.gameID }

// MaxTries returns the try budget the server granted.
func (h *HTTP) MaxTries() int { return h.maxTries }

// Submit posts guess and decodes the server's Result.
func (h *HTTP) Submit(ctx context.Context, guess string) (game.Result, error) {
	var res game.Result
	if err := h.post(ctx, "/game/guess", GuessRequest{GameID: h.gameID, Guess: guess}, &res); err != nil {
		return game.Result{}, fmt.Errorf("guess %s: %w", guess, err)
	}
	return res, nil
}

func (h *HTTP) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.base+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.secret != "" {
		tok, err := SignToken(h.secret, time.Hour)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, e.Error)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SignToken issues an HS256 token for the solver valid for ttl.
func SignToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   TokenSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return t.SignedString([]byte(secret))
}
