package room

import (
	"sort"
	"time"
)

type GameState string

const (
	StateWaiting    GameState = "waiting"
	StateInProgress GameState = "in_progress"
	StateFinished   GameState = "finished"
)

type Player struct {
	ID         string
	Name       string
	SessionID  string
	Ready      bool
	Board      []int
	Marked     map[int]bool
	BingoCount int
}

// Room holds the authoritative state of one game session. Players is kept
// in join order; the turn sequence is exactly that order.
type Room struct {
	ID         string
	Name       string
	CreatorID  string
	Players    []*Player
	State      GameState
	TurnIdx    int
	Started    bool
	MaxPlayers int
	CreatedAt  time.Time
	Winner     *Player
}

func (r *Room) playerByID(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) playerIndex(id string) int {
	for i, p := range r.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Store owns the room table and the player->room reverse index. The
// Manager serializes all access; implementations guard only their own maps.
type Store interface {
	GetRoom(id string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(id string)
	Rooms() []*Room
	RoomIDForPlayer(playerID string) (string, bool)
	IndexPlayer(playerID, roomID string)
	UnindexPlayer(playerID string)
}

// PlayerSnapshot is the public view of a player. Board contents are not
// included; other players never learn a board they do not own.
type PlayerSnapshot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Ready      bool   `json:"ready"`
	BingoCount int    `json:"bingoCount"`
}

// PlayerState is the private view sent only to the player it belongs to.
type PlayerState struct {
	PlayerSnapshot
	Board  []int `json:"board"`
	Marked []int `json:"markedNumbers"`
}

type RoomSnapshot struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	CreatorID   string           `json:"creatorId"`
	State       GameState        `json:"gameState"`
	Started     bool             `json:"gameStarted"`
	TurnIdx     int              `json:"currentPlayerIndex"`
	MaxPlayers  int              `json:"maxPlayers"`
	PlayerCount int              `json:"playerCount"`
	Players     []PlayerSnapshot `json:"players"`
	Winner      *PlayerSnapshot  `json:"winner,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type GameResult struct {
	WinnerID   string `json:"winnerId"`
	WinnerName string `json:"winnerName"`
	TotalMoves int    `json:"totalMoves"`
	DurationMs int64  `json:"gameDuration"`
}

// MoveResult reports the outcome of a successful move.
type MoveResult struct {
	CellNumber    int         `json:"cellNumber"`
	BingoAchieved bool        `json:"bingoAchieved"`
	NextPlayerID  string      `json:"nextPlayerId,omitempty"`
	Finished      bool        `json:"finished"`
	GameResult    *GameResult `json:"gameResult,omitempty"`
}

// LeaveResult reports what happened to the room a player left.
type LeaveResult struct {
	RoomID       string `json:"roomId"`
	PlayerID     string `json:"playerId"`
	RoomClosed   bool   `json:"roomClosed"`
	NewCreatorID string `json:"newCreatorId,omitempty"`
}

func (p *Player) snapshot() PlayerSnapshot {
	return PlayerSnapshot{
		ID:         p.ID,
		Name:       p.Name,
		Ready:      p.Ready,
		BingoCount: p.BingoCount,
	}
}

func (p *Player) state() PlayerState {
	marked := make([]int, 0, len(p.Marked))
	for n := range p.Marked {
		marked = append(marked, n)
	}
	sort.Ints(marked)
	board := make([]int, len(p.Board))
	copy(board, p.Board)
	return PlayerState{
		PlayerSnapshot: p.snapshot(),
		Board:          board,
		Marked:         marked,
	}
}

func (r *Room) snapshot() RoomSnapshot {
	players := make([]PlayerSnapshot, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, p.snapshot())
	}
	snap := RoomSnapshot{
		ID:          r.ID,
		Name:        r.Name,
		CreatorID:   r.CreatorID,
		State:       r.State,
		Started:     r.Started,
		TurnIdx:     r.TurnIdx,
		MaxPlayers:  r.MaxPlayers,
		PlayerCount: len(r.Players),
		Players:     players,
		CreatedAt:   r.CreatedAt,
	}
	if r.Winner != nil {
		w := r.Winner.snapshot()
		snap.Winner = &w
	}
	return snap
}
