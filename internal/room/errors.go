package room

import "errors"

// All manager failures are expected, caller-facing outcomes. The transport
// layer maps them to notifications or client-error statuses; none are fatal.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrGameAlreadyStarted  = errors.New("game already started")
	ErrRoomFull            = errors.New("room is full")
	ErrNameTaken           = errors.New("player name already taken")
	ErrNotCreator          = errors.New("only the room creator can start the game")
	ErrNotEnoughPlayers    = errors.New("at least 2 players required to start the game")
	ErrGameNotInProgress   = errors.New("game not in progress")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrNumberNotOnBoard    = errors.New("number not on your board")
	ErrNumberAlreadyCalled = errors.New("number already called")
	ErrInvalidMove         = errors.New("invalid move")
)
