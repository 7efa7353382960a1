package http

// CreateRoomRequest represents the payload for POST /api/game/rooms.
type CreateRoomRequest struct {
	RoomName   string `json:"roomName" binding:"required,min=2,max=50"`
	PlayerName string `json:"playerName" binding:"required,min=2,max=30"`
}

// JoinRoomRequest represents the payload for POST /api/game/rooms/join.
type JoinRoomRequest struct {
	RoomID     string `json:"roomId" binding:"required"`
	PlayerName string `json:"playerName" binding:"required,min=2,max=30"`
}
