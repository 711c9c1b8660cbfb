package ludo

import "errors"

var (
	ErrNotEnoughPlayers = errors.New("not enough players")
	// ErrNoRoomForMorePlayers is returned when more than four names are given.
	ErrNoRoomForMorePlayers = errors.New("no room for more players")
	ErrInvalidDice          = errors.New("invalid dice value")
	ErrGameFinished         = errors.New("game finished")
)
