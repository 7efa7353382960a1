package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"bingo-arena/internal/config"
	"bingo-arena/internal/engine"
	"bingo-arena/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client is one websocket connection with its connection-scoped identity.
type client struct {
	conn      *websocket.Conn
	sessionID string
	playerID  string
	roomID    string
}

// Hub fans room events out to every connection associated with a room and
// translates client actions into manager operations.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*client]struct{}
	manager GameManager
	cfg     *config.Config
}

func NewHub(manager GameManager, cfg *config.Config) *Hub {
	return &Hub{
		rooms:   make(map[string]map[*client]struct{}),
		manager: manager,
		cfg:     cfg,
	}
}

type envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	cl := &client{conn: conn, sessionID: uuid.NewString()}
	log.Printf("client connected: %s", cl.sessionID)

	defer func() {
		h.disconnect(cl)
		_ = conn.Close()
	}()

	for {
		var msg envelope
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		h.dispatch(cl, msg)
	}
}

func (h *Hub) dispatch(cl *client, msg envelope) {
	switch msg.Action {
	case "create_room":
		h.handleCreateRoom(cl, msg.Data)
	case "join_room":
		h.handleJoinRoom(cl, msg.Data)
	case "leave_room":
		h.handleLeaveRoom(cl)
	case "start_game":
		h.handleStartGame(cl)
	case "make_move":
		h.handleMakeMove(cl, msg.Data)
	case "reset_game":
		h.handleResetGame(cl)
	default:
		log.Printf("unknown action: %s", msg.Action)
	}
}

func (h *Hub) handleCreateRoom(cl *client, data json.RawMessage) {
	var req struct {
		RoomName   string `json:"roomName"`
		PlayerName string `json:"playerName"`
	}
	if err := json.Unmarshal(data, &req); err != nil ||
		!h.validName(req.RoomName, h.cfg.RoomNameMin, h.cfg.RoomNameMax) ||
		!h.validName(req.PlayerName, h.cfg.PlayerNameMin, h.cfg.PlayerNameMax) {
		h.send(cl, "room_created", gin.H{"success": false, "error": "invalid room or player name"})
		return
	}

	snap, player := h.manager.CreateRoom(req.RoomName, req.PlayerName)
	h.manager.UpdatePlayerSession(player.ID, cl.sessionID)
	h.register(cl, player.ID, snap.ID)

	h.send(cl, "room_created", gin.H{"success": true, "room": snap, "player": player})
}

func (h *Hub) handleJoinRoom(cl *client, data json.RawMessage) {
	var req struct {
		RoomID     string `json:"roomId"`
		PlayerName string `json:"playerName"`
	}
	if err := json.Unmarshal(data, &req); err != nil || req.RoomID == "" ||
		!h.validName(req.PlayerName, h.cfg.PlayerNameMin, h.cfg.PlayerNameMax) {
		h.send(cl, "room_joined", gin.H{"success": false, "error": "invalid join request"})
		return
	}

	snap, player, err := h.manager.JoinRoom(req.RoomID, req.PlayerName)
	if err != nil {
		h.send(cl, "room_joined", gin.H{"success": false, "error": err.Error()})
		return
	}
	h.manager.UpdatePlayerSession(player.ID, cl.sessionID)
	h.register(cl, player.ID, snap.ID)

	h.send(cl, "room_joined", gin.H{"success": true, "room": snap, "player": player})
	h.broadcastExcept(snap.ID, cl, "player_joined", gin.H{
		"player":  player.PlayerSnapshot,
		"message": player.Name + " joined the room",
	})
	h.emitRoomUpdate(snap.ID)
}

func (h *Hub) handleLeaveRoom(cl *client) {
	if cl.playerID == "" {
		return
	}
	roomID := cl.roomID
	res, ok := h.manager.LeaveRoom(cl.playerID)
	h.unregister(cl)

	h.send(cl, "room_left", gin.H{"success": ok})
	if ok && !res.RoomClosed {
		h.Broadcast(roomID, "player_left", gin.H{
			"playerId": res.PlayerID,
			"message":  "A player has left the room",
		})
		h.emitRoomUpdate(roomID)
	}
}

func (h *Hub) handleStartGame(cl *client) {
	if cl.playerID == "" || cl.roomID == "" {
		h.send(cl, "game_start_failed", gin.H{"error": "not in a room"})
		return
	}
	if err := h.manager.StartGame(cl.roomID, cl.playerID); err != nil {
		h.send(cl, "game_start_failed", gin.H{"error": err.Error()})
		return
	}
	h.Broadcast(cl.roomID, "game_started", gin.H{"message": "Game has started!"})
	h.emitRoomUpdate(cl.roomID)
}

func (h *Hub) handleMakeMove(cl *client, data json.RawMessage) {
	if cl.playerID == "" || cl.roomID == "" {
		h.send(cl, "move_failed", gin.H{"error": "not in a room"})
		return
	}
	var req struct {
		CellNumber int `json:"cellNumber"`
	}
	if err := json.Unmarshal(data, &req); err != nil ||
		req.CellNumber < 1 || req.CellNumber > engine.BoardSize {
		h.send(cl, "move_failed", gin.H{"error": room.ErrInvalidMove.Error()})
		return
	}

	res, err := h.manager.MakeMove(cl.roomID, cl.playerID, req.CellNumber)
	if err != nil {
		h.send(cl, "move_failed", gin.H{"error": err.Error()})
		return
	}

	h.send(cl, "move_success", gin.H{
		"cellNumber":    res.CellNumber,
		"bingoAchieved": res.BingoAchieved,
	})
	h.Broadcast(cl.roomID, "player_move", gin.H{
		"playerId":     cl.playerID,
		"cellNumber":   res.CellNumber,
		"nextPlayerId": res.NextPlayerID,
	})
	if res.BingoAchieved {
		h.Broadcast(cl.roomID, "bingo_achieved", gin.H{"playerId": cl.playerID})
	}
	if res.Finished {
		h.Broadcast(cl.roomID, "game_finished", gin.H{"gameResult": res.GameResult})
	}
	h.emitRoomUpdate(cl.roomID)
}

func (h *Hub) handleResetGame(cl *client) {
	if cl.roomID == "" {
		return
	}
	if err := h.manager.ResetGame(cl.roomID); err != nil {
		h.send(cl, "error", gin.H{"error": err.Error()})
		return
	}
	h.Broadcast(cl.roomID, "game_reset", gin.H{"message": "New game ready"})
	h.emitRoomUpdate(cl.roomID)
}

func (h *Hub) disconnect(cl *client) {
	h.unregister(cl)
	res, ok := h.manager.CleanupBySession(cl.sessionID)
	if ok && !res.RoomClosed {
		h.Broadcast(res.RoomID, "player_left", gin.H{
			"playerId": res.PlayerID,
			"message":  "A player has left the game",
		})
		h.emitRoomUpdate(res.RoomID)
	}
	log.Printf("client disconnected: %s", cl.sessionID)
}

// emitRoomUpdate sends each connected member the public room state plus
// their own private board view.
func (h *Hub) emitRoomUpdate(roomID string) {
	snap, states, ok := h.manager.RoomState(roomID)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.rooms[roomID] {
		payload := gin.H{"room": snap}
		if me, ok := states[cl.playerID]; ok {
			payload["me"] = me
		}
		h.write(cl, "room_update", payload)
	}
}

// Broadcast sends one event to every connection in a room.
func (h *Hub) Broadcast(roomID, action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.rooms[roomID] {
		h.write(cl, action, data)
	}
}

func (h *Hub) broadcastExcept(roomID string, skip *client, action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.rooms[roomID] {
		if cl != skip {
			h.write(cl, action, data)
		}
	}
}

func (h *Hub) send(cl *client, action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.write(cl, action, data)
}

func (h *Hub) write(cl *client, action string, data interface{}) {
	if err := cl.conn.WriteJSON(gin.H{"action": action, "data": data}); err != nil {
		log.Printf("failed to send %s to %s: %v", action, cl.sessionID, err)
	}
}

func (h *Hub) register(cl *client, playerID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cl.playerID = playerID
	cl.roomID = roomID
	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*client]struct{})
	}
	h.rooms[roomID][cl] = struct{}{}
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cl.roomID != "" {
		delete(h.rooms[cl.roomID], cl)
		if len(h.rooms[cl.roomID]) == 0 {
			delete(h.rooms, cl.roomID)
		}
	}
	cl.playerID = ""
	cl.roomID = ""
}

func (h *Hub) validName(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}
