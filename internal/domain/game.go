package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidPosition = errors.New("position is outside the 3x3 board")

type Mark byte

const (
	None = Mark(' ')
	X    = Mark('X')
	O    = Mark('O')
)

func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

func (m Mark) String() string {
	return string(rune(m))
}

const boardSide = 3

// Position is always a valid board coordinate: the only way to obtain one
// is NewPosition, which rejects anything outside the 3x3 grid.
type Position struct {
	Row uint8 `json:"row"`
	Col uint8 `json:"col"`
}

func NewPosition(row, col int) (Position, error) {
	if row < 0 || row >= boardSide || col < 0 || col >= boardSide {
		return Position{}, errors.WithMessagef(ErrInvalidPosition, "row %d col %d", row, col)
	}
	return Position{Row: uint8(row), Col: uint8(col)}, nil
}

func (p Position) index() int {
	return int(p.Row)*boardSide + int(p.Col)
}

type Board [9]Mark

func NewBoard() Board {
	var b Board
	for i := range b {
		b[i] = None
	}
	return b
}

func (b Board) At(p Position) Mark {
	return b[p.index()]
}

// Set returns a copy of the board with the cell at p replaced.
func (b Board) Set(p Position, mark Mark) Board {
	b[p.index()] = mark
	return b
}

func (b Board) isFull() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

type Result byte

const (
	InProgress = Result(iota)
	XWins
	OWins
	Draw
)

var winLines = [8][3]uint8{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (b Board) hasWinLine(mark Mark) bool {
	for _, line := range winLines {
		won := true
		for _, idx := range line {
			if b[idx] != mark {
				won = false
				break
			}
		}
		if won {
			return true
		}
	}
	return false
}

// GameState is an immutable snapshot: transitions take it by value and
// return a new one.
type GameState struct {
	Next  Mark  `json:"next"`
	Board Board `json:"board"`
}

func NewGameState() GameState {
	return GameState{
		Next:  X,
		Board: NewBoard(),
	}
}

// Result is recomputed from the board on every call, never stored.
// X lines are scanned before O lines, so a board holding a complete line
// for both players (unreachable under legal play) resolves to XWins.
func (s GameState) Result() Result {
	if s.Board.hasWinLine(X) {
		return XWins
	}
	if s.Board.hasWinLine(O) {
		return OWins
	}
	if s.Board.isFull() {
		return Draw
	}
	return InProgress
}

func (s GameState) CanPlay(p Position) bool {
	return s.Board.At(p) == None && s.Result() == InProgress
}

func (s GameState) StatusMessage() string {
	switch s.Result() {
	case XWins:
		return "X wins!"
	case OWins:
		return "O wins!"
	case Draw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("%s's turn", s.Next)
	}
}

// Playable reports CanPlay for every cell in board order, so the
// presentation layer can decide which cells stay interactive.
func (s GameState) Playable() [9]bool {
	var playable [9]bool
	if s.Result() != InProgress {
		return playable
	}
	for i, cell := range s.Board {
		playable[i] = cell == None
	}
	return playable
}
