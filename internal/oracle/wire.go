package oracle

// Request/response payloads shared by the oracle server and the HTTP client.

// NewGameRequest is the body of POST /game/new.
type NewGameRequest struct {
	Answer   string `json:"answer,omitempty"`   // fixed answer (testing)
	Daily    bool   `json:"daily,omitempty"`    // use the date-seeded answer
	MaxTries int    `json:"maxTries,omitempty"` // 0 = server default
}

// NewGameResponse is returned by POST /game/new.
type NewGameResponse struct {
	GameID   string `json:"gameId"`
	MaxTries int    `json:"maxTries"`
}

// GuessRequest is the body of POST /game/guess.
type GuessRequest struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
