package http

import (
	"bingo-arena/internal/api/ws"
	"bingo-arena/internal/room"

	"github.com/gin-gonic/gin"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for live room updates
	r.GET("/ws", hub.HandleWS)

	api := r.Group("/api/game")
	{
		api.POST("/rooms", CreateRoomHandler(rm))
		api.POST("/rooms/join", JoinRoomHandler(rm))
		api.GET("/rooms", ListRoomsHandler(rm))
		api.GET("/rooms/:roomId", GetRoomHandler(rm))
		api.GET("/health", HealthHandler())
	}

	return r
}
