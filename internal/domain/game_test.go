package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t *testing.T, row, col int) Position {
	t.Helper()
	pos, err := NewPosition(row, col)
	require.NoError(t, err)
	return pos
}

func TestNewGameState(t *testing.T) {
	state := NewGameState()

	require.Equal(t, X, state.Next)
	for _, cell := range state.Board {
		require.Equal(t, None, cell)
	}
	require.Equal(t, InProgress, state.Result())
	require.Equal(t, "X's turn", state.StatusMessage())
}

func TestNewPosition(t *testing.T) {
	for _, tc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
		_, err := NewPosition(tc[0], tc[1])
		require.ErrorIs(t, err, ErrInvalidPosition, "expected error for %v", tc)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			pos, err := NewPosition(row, col)
			require.NoError(t, err)
			assert.Equal(t, uint8(row), pos.Row)
			assert.Equal(t, uint8(col), pos.Col)
		}
	}
}

func TestMarkOther(t *testing.T) {
	require.Equal(t, O, X.Other())
	require.Equal(t, X, O.Other())
}

func TestResultWinLines(t *testing.T) {
	lines := [8][3][2]int{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
	for _, mark := range []Mark{X, O} {
		for _, line := range lines {
			state := NewGameState()
			for _, cell := range line {
				state.Board = state.Board.Set(mustPosition(t, cell[0], cell[1]), mark)
			}
			expected := XWins
			if mark == O {
				expected = OWins
			}
			require.Equal(t, expected, state.Result(), "line %v mark %s", line, mark)
		}
	}
}

func TestResultTieBreakFavorsX(t *testing.T) {
	// Not reachable under alternating play, but the scan order must still
	// resolve a double win in X's favor.
	state := NewGameState()
	for col := 0; col < 3; col++ {
		state.Board = state.Board.Set(mustPosition(t, 0, col), X)
		state.Board = state.Board.Set(mustPosition(t, 2, col), O)
	}
	require.Equal(t, XWins, state.Result())
	require.Equal(t, "X wins!", state.StatusMessage())
}

func TestResultDrawOnlyOnFullBoard(t *testing.T) {
	// X O X
	// X O O
	// O X X
	state := NewGameState()
	state.Board = Board{X, O, X, X, O, O, O, X, X}

	require.Equal(t, Draw, state.Result())
	require.Equal(t, "It's a draw!", state.StatusMessage())

	// Any empty cell flips the same layout back to InProgress.
	partial := state
	partial.Board = partial.Board.Set(mustPosition(t, 2, 2), None)
	require.Equal(t, InProgress, partial.Result())
}

func TestResultIsIdempotent(t *testing.T) {
	state := NewGameState()
	state.Board = state.Board.Set(mustPosition(t, 1, 1), X)

	require.Equal(t, state.Result(), state.Result())
	require.Equal(t, state.StatusMessage(), state.StatusMessage())
}

func TestCanPlay(t *testing.T) {
	state := NewGameState()
	pos := mustPosition(t, 1, 1)
	require.True(t, state.CanPlay(pos))

	state.Board = state.Board.Set(pos, X)
	require.False(t, state.CanPlay(pos))
	require.True(t, state.CanPlay(mustPosition(t, 0, 0)))

	// Once the game is over no cell is playable, empty or not.
	for col := 0; col < 3; col++ {
		state.Board = state.Board.Set(mustPosition(t, 0, col), O)
	}
	require.Equal(t, OWins, state.Result())
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			assert.False(t, state.CanPlay(mustPosition(t, row, col)))
		}
	}
}

func TestPlayable(t *testing.T) {
	state := NewGameState()
	state.Board = state.Board.Set(mustPosition(t, 0, 0), X)

	playable := state.Playable()
	require.False(t, playable[0])
	for i := 1; i < 9; i++ {
		require.True(t, playable[i])
	}

	for col := 0; col < 3; col++ {
		state.Board = state.Board.Set(mustPosition(t, 1, col), X)
	}
	require.Equal(t, XWins, state.Result())
	require.Equal(t, [9]bool{}, state.Playable())
}
