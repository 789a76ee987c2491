package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
)

// Message is one command or response on the socket: an action name plus an
// action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries both request fields (session id, cell, step, theme) and
// response fields (view, replay list, error). Cell and Step are pointers so
// that the valid zero values survive the trip.
type Payload struct {
	SessionID string        `json:"session_id,omitempty"`
	Cell      *int          `json:"cell,omitempty"`
	Step      *int          `json:"step,omitempty"`
	Theme     string        `json:"theme,omitempty"`
	View      *game.View    `json:"view,omitempty"`
	Replay    []ReplayEntry `json:"replay,omitempty"`
	Error     string        `json:"error,omitempty"`
}
