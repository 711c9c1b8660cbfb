// broadcast/broadcast.go
package broadcast

import (
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/wfunc/ludo/logger"
	"github.com/wfunc/ludo/ludo"
)

var (
	ErrRoomNotFound = errors.New("room not found")
)

// Sink receives every message published to a hub.
type Sink interface {
	Send(msg Message) error
}

type SinkFunc func(msg Message) error

func (f SinkFunc) Send(msg Message) error { return f(msg) }

// WriterSink writes one JSON document per line.
type WriterSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{enc: json.NewEncoder(w)}
}

func (s *WriterSink) Send(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(msg)
}

// Hub fans the events of one room out to its sinks. It implements
// ludo.Listener.
type Hub struct {
	roomID string
	sinks  []Sink
	mutex  sync.RWMutex
}

func NewHub(roomID string) *Hub {
	return &Hub{roomID: roomID}
}

func (h *Hub) RoomID() string {
	return h.roomID
}

func (h *Hub) AddSink(s Sink) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.sinks = append(h.sinks, s)
}

// Attach subscribes the hub to every event of e.
func (h *Hub) Attach(e *ludo.Engine) {
	e.AddListener(h)
}

// Publish delivers msg to every sink. A failing sink does not stop delivery
// to the others; the joined errors are returned.
func (h *Hub) Publish(msgType uint16, payload interface{}) error {
	msg := NewMessage(h.roomID, msgType, payload)

	h.mutex.RLock()
	sinks := make([]Sink, len(h.sinks))
	copy(sinks, h.sinks)
	h.mutex.RUnlock()

	var errs []error
	for _, s := range sinks {
		if err := s.Send(msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *Hub) publish(msgType uint16, payload interface{}) {
	if err := h.Publish(msgType, payload); err != nil {
		logger.Log.Warnw("broadcast failed", "room", h.roomID, "type", MsgName(msgType), "error", err)
	}
}

func (h *Hub) DiceThrown(ev ludo.DiceEvent) {
	h.publish(MsgTypeDiceThrown, dicePayload(ev))
}

func (h *Hub) MovesChecked(ev ludo.MovesCheckedEvent) {
	h.publish(MsgTypeMovesChecked, movesPayload(ev))
}

func (h *Hub) PieceMoved(ev ludo.PieceEvent) {
	h.publish(MsgTypePieceMoved, piecePayload(ev))
}

func (h *Hub) PlayerStateChanged(ev ludo.PlayerEvent) {
	if ev.State == ludo.Won {
		h.publish(MsgTypeGameEnd, playerPayload(ev))
		return
	}
	h.publish(MsgTypePlayerState, playerPayload(ev))
}

// RoomBroadcaster keeps one hub per room.
type RoomBroadcaster struct {
	hubs  map[string]*Hub
	sinks []Sink
	mutex sync.RWMutex
}

// NewRoomBroadcaster creates a broadcaster whose hubs all start with sinks.
func NewRoomBroadcaster(sinks ...Sink) *RoomBroadcaster {
	return &RoomBroadcaster{
		hubs:  make(map[string]*Hub),
		sinks: sinks,
	}
}

// Hub returns the hub of roomID, creating it on first use.
func (b *RoomBroadcaster) Hub(roomID string) *Hub {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if h, ok := b.hubs[roomID]; ok {
		return h
	}
	h := NewHub(roomID)
	for _, s := range b.sinks {
		h.AddSink(s)
	}
	b.hubs[roomID] = h
	return h
}

func (b *RoomBroadcaster) RemoveHub(roomID string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	delete(b.hubs, roomID)
}

func (b *RoomBroadcaster) BroadcastToRoom(roomID string, msgType uint16, payload interface{}) error {
	b.mutex.RLock()
	h, exists := b.hubs[roomID]
	b.mutex.RUnlock()
	if !exists {
		return ErrRoomNotFound
	}
	return h.Publish(msgType, payload)
}

func (b *RoomBroadcaster) BroadcastToAll(msgType uint16, payload interface{}) error {
	b.mutex.RLock()
	hubs := make([]*Hub, 0, len(b.hubs))
	for _, h := range b.hubs {
		hubs = append(hubs, h)
	}
	b.mutex.RUnlock()

	var errs []error
	for _, h := range hubs {
		if err := h.Publish(msgType, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
