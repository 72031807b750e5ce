package session

import (
	"context"

	"github.com/pkg/errors"
	"github.com/seliv-dev/tic-tac-toe/internal/domain"
	"github.com/seliv-dev/tic-tac-toe/internal/usecase/game"
	"github.com/seliv-dev/tic-tac-toe/pkg/utils"
	"go.uber.org/zap"
)

type useCase struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) useCase {
	return useCase{
		logger: logger,
	}
}

// Run drives one client's game until the connection goes away. Messages
// are processed strictly one at a time; every transition is answered with
// a full board snapshot. The final state is returned so the hub can offer
// the same game again on reconnect.
func (u useCase) Run(ctx context.Context, client domain.Client, state domain.GameState) (domain.GameState, error) {
	eng := game.New(func(message string) {
		err := client.WriteMessage(domain.Message{
			Type:    domain.GameOver,
			Payload: domain.GameOverPayload{Message: message},
		})
		if err != nil {
			u.logger.Warn("send game over message", zap.Error(err))
		}
	})
	if err := sendSnapshot(client, domain.StartSession, state); err != nil {
		return state, errors.WithMessage(err, "send start session message")
	}
	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		msg, err := client.ReadMessage()
		switch {
		case errors.Is(err, domain.ErrConnectionClosed):
			return state, nil
		case err != nil:
			return state, errors.WithMessage(err, "read message from client")
		}
		switch msg.Type {
		case domain.PlayMove:
			state, err = u.handlePlay(client, eng, state, msg.Payload)
			if err != nil {
				return state, errors.WithMessage(err, "handle play message")
			}
		case domain.RestartGame:
			state = eng.Restart(state)
			if err := sendSnapshot(client, domain.BoardUpdate, state); err != nil {
				return state, errors.WithMessage(err, "send board update")
			}
		default:
			u.logger.Warn("ignoring message",
				zap.String("client", client.Uuid()),
				zap.Any("message", msg))
		}
	}
}

// handlePlay applies one move. A malformed or illegal move never changes
// the state: the client is answered with a fresh snapshot and may try
// again, mirroring how a well-behaved presentation layer would have
// consulted the playable mask before sending.
func (u useCase) handlePlay(client domain.Client, eng game.Engine,
	state domain.GameState, payload any) (domain.GameState, error) {
	move, err := utils.DecodePayload[domain.PlayPayload](payload)
	if err != nil {
		u.logger.Warn("malformed play payload", zap.String("client", client.Uuid()), zap.Error(err))
		return state, sendSnapshot(client, domain.BoardUpdate, state)
	}
	pos, err := domain.NewPosition(move.Row, move.Col)
	if err != nil {
		u.logger.Warn("invalid position", zap.String("client", client.Uuid()), zap.Error(err))
		return state, sendSnapshot(client, domain.BoardUpdate, state)
	}
	if !state.CanPlay(pos) {
		u.logger.Warn("illegal move",
			zap.String("client", client.Uuid()),
			zap.Int("row", move.Row),
			zap.Int("col", move.Col))
		return state, sendSnapshot(client, domain.BoardUpdate, state)
	}
	next, err := eng.Apply(state, pos)
	if err != nil {
		return state, errors.WithMessage(err, "apply move")
	}
	return next, sendSnapshot(client, domain.BoardUpdate, next)
}

func sendSnapshot(client domain.Client, msgType domain.MessageType, state domain.GameState) error {
	err := client.WriteMessage(domain.Message{
		Type:    msgType,
		Payload: domain.NewSnapshotPayload(state),
	})
	if err != nil {
		return errors.WithMessage(err, "send message to client")
	}
	return nil
}
