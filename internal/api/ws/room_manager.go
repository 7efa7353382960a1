package ws

import "bingo-arena/internal/room"

// GameManager is the slice of the room manager the hub drives. *room.Manager
// satisfies it; tests can substitute their own.
type GameManager interface {
	CreateRoom(roomName, playerName string) (room.RoomSnapshot, room.PlayerState)
	JoinRoom(roomID, playerName string) (room.RoomSnapshot, room.PlayerState, error)
	LeaveRoom(playerID string) (room.LeaveResult, bool)
	StartGame(roomID, playerID string) error
	MakeMove(roomID, playerID string, cellNumber int) (room.MoveResult, error)
	ResetGame(roomID string) error
	RoomState(roomID string) (room.RoomSnapshot, map[string]room.PlayerState, bool)
	UpdatePlayerSession(playerID, sessionID string) bool
	CleanupBySession(sessionID string) (room.LeaveResult, bool)
}
