package entity

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/game"
)

// Session binds one game engine instance to one client session. Every
// connection drives its own session; sessions never share state.
type Session struct {
	ID   string     `json:"id"`
	Game *game.Game `json:"game"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:   id,
		Game: game.New(),
	}
}
