package game

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

type Mark string

const (
	PlayerX = Mark("X")
	PlayerO = Mark("O")
	Empty   = Mark("")
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// WinLines - the 8 winning triples: rows, then columns, then diagonals.
// The scan order is fixed so the reported winning line is deterministic.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a full snapshot of the 3x3 grid, indexed 0-8 row-major.
type Board [9]Mark

// Outcome is the terminal-state evaluation of a single board.
type Outcome struct {
	Status string
	Winner Mark
	Line   [3]int
}

// Game keeps every board from game start to the latest played move, plus a
// cursor into that history. Undo, redo and time-travel only move the cursor;
// playing a move from an earlier position discards the boards past it.
type Game struct {
	History []Board `json:"history"`
	Cursor  int     `json:"cursor"`
}

func New() *Game {
	return &Game{
		History: []Board{{}},
		Cursor:  0,
	}
}

// Board returns the board the cursor points at.
func (that *Game) Board() Board {
	return that.History[that.Cursor]
}

// Turn returns the mark that moves next: X on even cursors, O on odd ones.
func (that *Game) Turn() Mark {
	if that.Cursor%2 == 0 {
		return PlayerX
	}
	return PlayerO
}

// Play places the current mover's mark on the given cell.
//
// It is a no-op when the cell index is outside the board, the cell is already
// occupied, or the board at the cursor is terminal. A legal move truncates
// any redoable boards past the cursor before appending the new one.
func (that *Game) Play(cell int) {
	board := that.Board()

	if cell < 0 || cell >= len(board) {
		return
	}

	if board[cell] != Empty {
		return
	}

	if Evaluate(board).Status != StatusOngoing {
		return
	}

	board[cell] = that.Turn()

	that.History = append(that.History[:that.Cursor+1], board)
	that.Cursor = len(that.History) - 1
}

// JumpTo moves the cursor to the given history step without touching the
// boards themselves. A step outside [0, len(history)-1] is rejected.
func (that *Game) JumpTo(step int) error {
	if step < 0 || step >= len(that.History) {
		return apperror.ErrStepOutOfRange
	}

	that.Cursor = step

	return nil
}

// Undo steps the cursor back by one; no-op at the initial board.
func (that *Game) Undo() {
	if that.Cursor > 0 {
		that.Cursor--
	}
}

// Redo steps the cursor forward by one; no-op at the latest board.
func (that *Game) Redo() {
	if that.Cursor < len(that.History)-1 {
		that.Cursor++
	}
}

// Reset replaces the whole state with a fresh one. Always succeeds.
func (that *Game) Reset() {
	that.History = []Board{{}}
	that.Cursor = 0
}

// Evaluate checks the board against the 8 win lines in their fixed order and
// reports the first full one; a full board with no line is a draw.
func Evaluate(board Board) Outcome {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return Outcome{Status: StatusWon, Winner: a, Line: line}
		}
	}

	for _, cell := range board {
		if cell == Empty {
			return Outcome{Status: StatusOngoing}
		}
	}

	return Outcome{Status: StatusDraw}
}
