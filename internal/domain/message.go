package domain

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrUnexpectedType   = errors.New("unexpected message type")
)

const (
	ClientUuidHeader = "X-Client-Key"
)

type MessageType byte

const (
	StartSession = MessageType(iota)
	PlayMove
	RestartGame
	BoardUpdate
	GameOver
)

type Message struct {
	Type    MessageType
	Payload any
}

// PlayPayload is the single inbound user intent besides RestartGame:
// "place the current mark at (row, col)".
type PlayPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SnapshotPayload carries everything the presentation layer needs to
// redraw after a transition: the full board, whose turn it is, the
// status line and which cells are still interactive.
type SnapshotPayload struct {
	Board    Board   `json:"board"`
	Next     Mark    `json:"next"`
	Status   string  `json:"status"`
	Playable [9]bool `json:"playable"`
}

func NewSnapshotPayload(state GameState) SnapshotPayload {
	return SnapshotPayload{
		Board:    state.Board,
		Next:     state.Next,
		Status:   state.StatusMessage(),
		Playable: state.Playable(),
	}
}

type GameOverPayload struct {
	Message string `json:"message"`
}

type Client interface {
	WriteMessage(msg Message) error
	ReadMessage() (Message, error)
	Uuid() string
}

type SessionUseCase interface {
	Run(ctx context.Context, client Client, state GameState) (GameState, error)
}

type HubUseCase interface {
	Handle(ctx context.Context, client Client) error
	GamesStarted() int64
}
