package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "bingo-arena/internal/api/http"
	"bingo-arena/internal/api/ws"
	"bingo-arena/internal/config"
	"bingo-arena/internal/room"
	"bingo-arena/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.Load()
	rm := room.NewManager(store.NewMemoryStore(), cfg)
	return httpapi.NewRouter(rm, ws.NewHub(rm, cfg))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateRoomEndpoint(t *testing.T) {
	r := newRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/api/game/rooms", gin.H{
		"roomName":   "Game1",
		"playerName": "Alice",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["roomId"])
	assert.NotEmpty(t, data["playerId"])

	// Board contents never appear in HTTP responses.
	player := data["player"].(map[string]interface{})
	assert.NotContains(t, player, "board")
}

func TestCreateRoomRejectsShortNames(t *testing.T) {
	r := newRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/api/game/rooms", gin.H{
		"roomName":   "G",
		"playerName": "Alice",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestJoinRoomEndpoint(t *testing.T) {
	r := newRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/game/rooms", gin.H{
		"roomName":   "Game1",
		"playerName": "Alice",
	})
	roomID := created["data"].(map[string]interface{})["roomId"].(string)

	w, resp := doJSON(t, r, http.MethodPost, "/api/game/rooms/join", gin.H{
		"roomId":     roomID,
		"playerName": "Bob",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/game/rooms/join", gin.H{
		"roomId":     "no-such-room",
		"playerName": "Carol",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, room.ErrRoomNotFound.Error(), resp["error"])
}

func TestGetRoomEndpoints(t *testing.T) {
	r := newRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/game/rooms", gin.H{
		"roomName":   "Game1",
		"playerName": "Alice",
	})
	roomID := created["data"].(map[string]interface{})["roomId"].(string)

	w, resp := doJSON(t, r, http.MethodGet, "/api/game/rooms/"+roomID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := resp["data"].(map[string]interface{})["room"].(map[string]interface{})
	assert.Equal(t, "Game1", got["name"])
	assert.Equal(t, "waiting", got["gameState"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/game/rooms/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/api/game/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms := resp["data"].(map[string]interface{})["rooms"].([]interface{})
	assert.Len(t, rooms, 1)
}

func TestHealthEndpoint(t *testing.T) {
	r := newRouter()

	w, resp := doJSON(t, r, http.MethodGet, "/api/game/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["timestamp"])
}
