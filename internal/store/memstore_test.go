package store_test

import (
	"testing"

	"bingo-arena/internal/room"
	"bingo-arena/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRooms(t *testing.T) {
	mem := store.NewMemoryStore()

	_, ok := mem.GetRoom("r1")
	assert.False(t, ok)
	assert.Empty(t, mem.Rooms())

	mem.SaveRoom(&room.Room{ID: "r1", Name: "Game1"})
	mem.SaveRoom(&room.Room{ID: "r2", Name: "Game2"})

	r, ok := mem.GetRoom("r1")
	require.True(t, ok)
	assert.Equal(t, "Game1", r.Name)
	assert.Len(t, mem.Rooms(), 2)

	mem.DeleteRoom("r1")
	_, ok = mem.GetRoom("r1")
	assert.False(t, ok)
	assert.Len(t, mem.Rooms(), 1)
}

func TestMemoryStorePlayerIndex(t *testing.T) {
	mem := store.NewMemoryStore()

	_, ok := mem.RoomIDForPlayer("p1")
	assert.False(t, ok)

	mem.IndexPlayer("p1", "r1")
	id, ok := mem.RoomIDForPlayer("p1")
	require.True(t, ok)
	assert.Equal(t, "r1", id)

	mem.UnindexPlayer("p1")
	_, ok = mem.RoomIDForPlayer("p1")
	assert.False(t, ok)

	// Unindexing an unknown player is a no-op.
	mem.UnindexPlayer("p2")
}
