package room

import "time"

// Broadcaster delivers a message to everyone following a room.
type Broadcaster interface {
	BroadcastToRoom(roomID string, msgType uint16, payload interface{}) error
	RemoveHub(roomID string)
}

// Monitor receives room level metrics.
type Monitor interface {
	SetActiveRooms(count int)
	ObserveAction(action string, duration time.Duration)
}
