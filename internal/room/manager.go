package room

import (
	"log"
	"sync"
	"time"

	"bingo-arena/internal/config"
	"bingo-arena/internal/engine"

	"github.com/google/uuid"
)

// Manager exposes every game operation as an atomic transition over the
// room table. One mutex serializes all operations; nothing blocks on I/O
// while holding it, so a global scope is enough at this scale.
type Manager struct {
	mu    sync.Mutex
	store Store
	cfg   *config.Config
}

func NewManager(s Store, cfg *config.Config) *Manager {
	return &Manager{store: s, cfg: cfg}
}

func newPlayer(name string) *Player {
	return &Player{
		ID:     uuid.NewString(),
		Name:   name,
		Board:  engine.GenerateBoard(),
		Marked: make(map[int]bool),
	}
}

// CreateRoom allocates a fresh room with the creator as its sole member.
func (m *Manager) CreateRoom(roomName, creatorName string) (RoomSnapshot, PlayerState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := newPlayer(creatorName)
	r := &Room{
		ID:         uuid.NewString(),
		Name:       roomName,
		CreatorID:  p.ID,
		Players:    []*Player{p},
		State:      StateWaiting,
		TurnIdx:    0,
		MaxPlayers: m.cfg.MaxPlayers,
		CreatedAt:  time.Now(),
	}
	m.store.SaveRoom(r)
	m.store.IndexPlayer(p.ID, r.ID)

	log.Printf("room %s created by %s", r.ID, creatorName)
	return r.snapshot(), p.state()
}

// JoinRoom appends a new player to the room's join order, which becomes
// that player's turn slot.
func (m *Manager) JoinRoom(roomID, playerName string) (RoomSnapshot, PlayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return RoomSnapshot{}, PlayerState{}, ErrRoomNotFound
	}
	if r.State != StateWaiting {
		return RoomSnapshot{}, PlayerState{}, ErrGameAlreadyStarted
	}
	if len(r.Players) >= r.MaxPlayers {
		return RoomSnapshot{}, PlayerState{}, ErrRoomFull
	}
	for _, p := range r.Players {
		if p.Name == playerName {
			return RoomSnapshot{}, PlayerState{}, ErrNameTaken
		}
	}

	p := newPlayer(playerName)
	r.Players = append(r.Players, p)
	m.store.IndexPlayer(p.ID, r.ID)

	log.Printf("player %s joined room %s", playerName, r.ID)
	return r.snapshot(), p.state(), nil
}

// LeaveRoom removes a player from their room. An unindexed player id is a
// no-op (ok=false), never an error, so disconnect cleanup and explicit
// leave are safe to race. If the room empties it is torn down; if the
// creator leaves with members remaining, ownership passes to the
// earliest-joined member.
func (m *Manager) LeaveRoom(playerID string) (LeaveResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leaveLocked(playerID)
}

func (m *Manager) leaveLocked(playerID string) (LeaveResult, bool) {
	roomID, ok := m.store.RoomIDForPlayer(playerID)
	if !ok {
		return LeaveResult{}, false
	}
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		m.store.UnindexPlayer(playerID)
		return LeaveResult{}, false
	}

	idx := r.playerIndex(playerID)
	if idx < 0 {
		m.store.UnindexPlayer(playerID)
		return LeaveResult{}, false
	}

	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	m.store.UnindexPlayer(playerID)

	res := LeaveResult{RoomID: roomID, PlayerID: playerID}

	if len(r.Players) == 0 {
		m.store.DeleteRoom(roomID)
		res.RoomClosed = true
		log.Printf("room %s deleted", roomID)
		return res, true
	}

	// Re-normalize the turn pointer against the shrunken join order.
	if idx < r.TurnIdx {
		r.TurnIdx--
	}
	if r.TurnIdx >= len(r.Players) {
		r.TurnIdx = 0
	}

	if r.CreatorID == playerID {
		r.CreatorID = r.Players[0].ID
		res.NewCreatorID = r.CreatorID
		log.Printf("room %s creator left, ownership moved to %s", roomID, r.CreatorID)
	}
	return res, true
}

// StartGame moves a waiting room into play. Only the creator may start,
// and only with enough players.
func (m *Manager) StartGame(roomID, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	if r.CreatorID != playerID {
		return ErrNotCreator
	}
	if len(r.Players) < m.cfg.MinPlayers {
		return ErrNotEnoughPlayers
	}
	if r.Started {
		return ErrGameAlreadyStarted
	}

	r.Started = true
	r.State = StateInProgress
	r.TurnIdx = 0
	log.Printf("game started in room %s", roomID)
	return nil
}

// MakeMove applies one called number. The call propagates: every player
// whose board contains the number gets it marked and their line count
// recomputed. The first player in join order to reach the winning line
// count takes the game; simultaneous completions by later players are not
// ranked (known tie-break simplification).
func (m *Manager) MakeMove(roomID, playerID string, cellNumber int) (MoveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return MoveResult{}, ErrRoomNotFound
	}
	if !r.Started || r.State != StateInProgress {
		return MoveResult{}, ErrGameNotInProgress
	}
	actor := r.playerByID(playerID)
	if actor == nil {
		return MoveResult{}, ErrPlayerNotFound
	}
	if r.Players[r.TurnIdx].ID != playerID {
		return MoveResult{}, ErrNotYourTurn
	}
	if !onBoard(actor.Board, cellNumber) {
		return MoveResult{}, ErrNumberNotOnBoard
	}
	if actor.Marked[cellNumber] {
		return MoveResult{}, ErrNumberAlreadyCalled
	}

	res := MoveResult{CellNumber: cellNumber}
	var winner *Player
	for _, p := range r.Players {
		if !onBoard(p.Board, cellNumber) {
			continue
		}
		p.Marked[cellNumber] = true
		bingo := engine.CheckForBingo(p.Marked, p.Board)
		if bingo.TotalLines > p.BingoCount {
			p.BingoCount = bingo.TotalLines
			res.BingoAchieved = true
		}
		if p.BingoCount >= engine.LinesToWin && winner == nil {
			winner = p
		}
	}

	if winner != nil {
		r.State = StateFinished
		r.Winner = winner
		res.Finished = true
		res.GameResult = &GameResult{
			WinnerID:   winner.ID,
			WinnerName: winner.Name,
			TotalMoves: len(winner.Marked),
			DurationMs: time.Since(r.CreatedAt).Milliseconds(),
		}
		log.Printf("game won by %s in room %s", winner.Name, roomID)
		return res, nil
	}

	r.TurnIdx = (r.TurnIdx + 1) % len(r.Players)
	res.NextPlayerID = r.Players[r.TurnIdx].ID
	return res, nil
}

func onBoard(board []int, n int) bool {
	for _, v := range board {
		if v == n {
			return true
		}
	}
	return false
}

// ResetGame re-arms a room for a new game: fresh boards, cleared marks and
// line counts, state back to waiting. Room and player identities survive.
func (m *Manager) ResetGame(roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}

	for _, p := range r.Players {
		p.Board = engine.GenerateBoard()
		p.Marked = make(map[int]bool)
		p.BingoCount = 0
		p.Ready = false
	}
	r.Started = false
	r.State = StateWaiting
	r.TurnIdx = 0
	r.Winner = nil
	log.Printf("game reset in room %s", roomID)
	return nil
}

// GetRoom returns the public snapshot of one room.
func (m *Manager) GetRoom(roomID string) (RoomSnapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return RoomSnapshot{}, false
	}
	return r.snapshot(), true
}

// GetAllRooms returns public snapshots of every active room.
func (m *Manager) GetAllRooms() []RoomSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms := m.store.Rooms()
	out := make([]RoomSnapshot, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.snapshot())
	}
	return out
}

// RoomState returns the public snapshot plus each member's private state,
// keyed by player id, for per-recipient fan-out.
func (m *Manager) RoomState(roomID string) (RoomSnapshot, map[string]PlayerState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return RoomSnapshot{}, nil, false
	}
	states := make(map[string]PlayerState, len(r.Players))
	for _, p := range r.Players {
		states[p.ID] = p.state()
	}
	return r.snapshot(), states, true
}

// UpdatePlayerSession binds a player to their current transport session,
// called on every (re)connect.
func (m *Manager) UpdatePlayerSession(playerID, sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	roomID, ok := m.store.RoomIDForPlayer(playerID)
	if !ok {
		return false
	}
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return false
	}
	p := r.playerByID(playerID)
	if p == nil {
		return false
	}
	p.SessionID = sessionID
	return true
}

// CleanupBySession scans all rooms for the player bound to a dropped
// session and removes them. Linear in total players, which is fine at the
// expected scale.
func (m *Manager) CleanupBySession(sessionID string) (LeaveResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.store.Rooms() {
		for _, p := range r.Players {
			if p.SessionID == sessionID {
				return m.leaveLocked(p.ID)
			}
		}
	}
	return LeaveResult{}, false
}
