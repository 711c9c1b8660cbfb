// room/room.go
package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wfunc/ludo/board"
	"github.com/wfunc/ludo/broadcast"
	"github.com/wfunc/ludo/ludo"
)

// Room owns one game. The engine is single threaded, so every call goes
// through the room's mutex.
type Room struct {
	ID        string
	Name      string
	CreatedAt time.Time

	engine      *ludo.Engine
	broadcaster Broadcaster
	monitor     Monitor
	mutex       sync.Mutex
}

// NewRoom creates a room around a new game for players.
func NewRoom(id, name string, players []string, opts ...ludo.Option) (*Room, error) {
	e, err := ludo.New(players, opts...)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", name, err)
	}
	return &Room{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
		engine:    e,
	}, nil
}

// Roll throws the die and applies it for the current player.
func (r *Room) Roll() (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	defer r.observe("roll", time.Now())

	dice, err := r.engine.ThrowDice()
	if err != nil {
		return 0, err
	}
	return dice, r.engine.ApplyRoll(dice)
}

// ApplyRoll applies a value rolled outside the room.
func (r *Room) ApplyRoll(dice int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	defer r.observe("roll", time.Now())

	return r.engine.ApplyRoll(dice)
}

func (r *Room) Move(player board.Color, from, to int) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	defer r.observe("move", time.Now())

	return r.engine.MovePiece(player, from, to)
}

func (r *Room) CanMove(player board.Color, from, to int) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.engine.CanMove(player, from, to)
}

func (r *Room) Snapshot() ludo.Snapshot {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.engine.Snapshot()
}

// With runs fn with exclusive access to the engine. fn must not call back
// into the room.
func (r *Room) With(fn func(e *ludo.Engine)) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	fn(r.engine)
}

// Sync broadcasts a full snapshot of the game.
func (r *Room) Sync() error {
	if r.broadcaster == nil {
		return nil
	}
	return r.broadcaster.BroadcastToRoom(r.ID, broadcast.MsgTypeGameSync, r.Snapshot())
}

func (r *Room) observe(action string, start time.Time) {
	if r.monitor != nil {
		r.monitor.ObserveAction(action, time.Since(start))
	}
}

// --- room manager ---

type Manager struct {
	rooms       map[string]*Room
	broadcaster Broadcaster
	monitor     Monitor
	mutex       sync.RWMutex
}

type ManagerOption func(*Manager)

func WithBroadcaster(b Broadcaster) ManagerOption {
	return func(m *Manager) { m.broadcaster = b }
}

func WithMonitor(mon Monitor) ManagerOption {
	return func(m *Manager) { m.monitor = mon }
}

func NewRoomManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		rooms: make(map[string]*Room),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateRoom starts a new game under a fresh id.
func (m *Manager) CreateRoom(name string, players []string, opts ...ludo.Option) (*Room, error) {
	room, err := NewRoom(uuid.NewString(), name, players, opts...)
	if err != nil {
		return nil, err
	}
	room.broadcaster = m.broadcaster
	room.monitor = m.monitor

	m.mutex.Lock()
	m.rooms[room.ID] = room
	count := len(m.rooms)
	m.mutex.Unlock()

	m.reportRooms(count)
	return room, nil
}

// RemoveRoom forgets the room and drops its broadcast hub.
func (m *Manager) RemoveRoom(id string) {
	m.mutex.Lock()
	delete(m.rooms, id)
	count := len(m.rooms)
	m.mutex.Unlock()

	if m.broadcaster != nil {
		m.broadcaster.RemoveHub(id)
	}
	m.reportRooms(count)
}

func (m *Manager) GetRoom(id string) (*Room, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	room, exists := m.rooms[id]
	return room, exists
}

func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.rooms)
}

func (m *Manager) reportRooms(count int) {
	if m.monitor != nil {
		m.monitor.SetActiveRooms(count)
	}
}
