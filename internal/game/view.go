package game

// View is the read model handed to the presentation layer. It is re-derived
// on every call instead of cached, so it can never go stale.
type View struct {
	Board    Board  `json:"board"`
	Turn     Mark   `json:"turn,omitempty"`
	Status   string `json:"status"`
	Winner   Mark   `json:"winner,omitempty"`
	Line     []int  `json:"line,omitempty"`
	Step     int    `json:"step"`
	LastStep int    `json:"last_step"`
}

// View reports the board at the cursor together with the derived turn and
// outcome. It never mutates the game.
func (that *Game) View() View {
	board := that.Board()

	view := View{
		Board:    board,
		Step:     that.Cursor,
		LastStep: len(that.History) - 1,
	}

	outcome := Evaluate(board)
	view.Status = outcome.Status

	switch outcome.Status {
	case StatusWon:
		view.Winner = outcome.Winner
		view.Line = []int{outcome.Line[0], outcome.Line[1], outcome.Line[2]}
	case StatusOngoing:
		view.Turn = that.Turn()
	}

	return view
}
