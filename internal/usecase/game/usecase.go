package game

import (
	"github.com/pkg/errors"
	"github.com/seliv-dev/tic-tac-toe/internal/domain"
)

// GameOverHandler receives the final status message when a move ends the
// game. The handler is the engine's only side effect; it is injected so
// the presentation layer decides what "showing the result" means.
type GameOverHandler func(message string)

type Engine struct {
	onGameOver GameOverHandler
}

func New(onGameOver GameOverHandler) Engine {
	return Engine{
		onGameOver: onGameOver,
	}
}

func (e Engine) NewGame() domain.GameState {
	return domain.NewGameState()
}

// Apply places state.Next at pos and hands the turn to the other mark.
// Illegal moves are rejected explicitly instead of overwriting the cell:
// the caller is still expected to gate with CanPlay, but the engine no
// longer trusts it to. If the move ends the game, the injected handler
// is called exactly once with the final status message before Apply
// returns.
func (e Engine) Apply(state domain.GameState, pos domain.Position) (domain.GameState, error) {
	if state.Result() != domain.InProgress {
		return state, ErrGameFinished
	}
	if state.Board.At(pos) != domain.None {
		return state, errors.WithMessagef(ErrCellOccupied, "row %d col %d", pos.Row, pos.Col)
	}
	next := domain.GameState{
		Next:  state.Next.Other(),
		Board: state.Board.Set(pos, state.Next),
	}
	if next.Result() != domain.InProgress && e.onGameOver != nil {
		e.onGameOver(next.StatusMessage())
	}
	return next, nil
}

// Restart discards all history. It never fires the game-over handler.
func (e Engine) Restart(_ domain.GameState) domain.GameState {
	return domain.NewGameState()
}
