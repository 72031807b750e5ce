package game

import (
	"github.com/pkg/errors"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
)
