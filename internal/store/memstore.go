package store

import (
	"sync"

	"bingo-arena/internal/room"
)

// MemoryStore keeps the room table and the player->room reverse index in
// process memory. State does not survive a restart.
type MemoryStore struct {
	mu         sync.RWMutex
	rooms      map[string]*room.Room
	playerRoom map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:      map[string]*room.Room{},
		playerRoom: map[string]string{},
	}
}

func (m *MemoryStore) GetRoom(id string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

func (m *MemoryStore) SaveRoom(r *room.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.ID] = r
}

func (m *MemoryStore) DeleteRoom(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, id)
}

func (m *MemoryStore) Rooms() []*room.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out
}

func (m *MemoryStore) RoomIDForPlayer(playerID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.playerRoom[playerID]
	return id, ok
}

func (m *MemoryStore) IndexPlayer(playerID, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playerRoom[playerID] = roomID
}

func (m *MemoryStore) UnindexPlayer(playerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.playerRoom, playerID)
}
