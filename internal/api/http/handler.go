package http

import (
	"errors"
	"net/http"
	"time"

	"bingo-arena/internal/room"

	"github.com/gin-gonic/gin"
)

// @Summary Create new room
// @Description Create a new room with the caller as creator and sole member
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Room and player names"
// @Success 200 {object} map[string]interface{}
// @Router /api/game/rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		snap, player := rm.CreateRoom(req.RoomName, req.PlayerName)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"roomId":   snap.ID,
				"playerId": player.ID,
				"room":     snap,
				"player":   player.PlayerSnapshot,
			},
		})
	}
}

// @Summary Join an existing room
// @Description Join a waiting room by id; the join slot becomes the turn slot
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room id and player name"
// @Success 200 {object} map[string]interface{}
// @Router /api/game/rooms/join [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		snap, player, err := rm.JoinRoom(req.RoomID, req.PlayerName)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"roomId":   snap.ID,
				"playerId": player.ID,
				"room":     snap,
				"player":   player.PlayerSnapshot,
			},
		})
	}
}

// @Summary Get a room
// @Description Public room snapshot; board contents are never exposed here
// @Tags Room
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/game/rooms/{roomId} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, ok := rm.GetRoom(c.Param("roomId"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": room.ErrRoomNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"room": snap}})
	}
}

// @Summary List all rooms
// @Tags Room
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/game/rooms [get]
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"rooms": rm.GetAllRooms()},
		})
	}
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/game/health [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Bingo game server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func statusFor(err error) int {
	if errors.Is(err, room.ErrRoomNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
