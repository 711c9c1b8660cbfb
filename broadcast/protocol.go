package broadcast

import (
	"github.com/wfunc/ludo/board"
	"github.com/wfunc/ludo/ludo"
)

const (
	MsgTypeDiceThrown   = 201
	MsgTypeMovesChecked = 202
	MsgTypePieceMoved   = 203
	MsgTypeRoomState    = 301
	MsgTypePlayerState  = 302
	MsgTypeGameSync     = 304
	MsgTypeGameEnd      = 305
)

var msgNames = map[uint16]string{
	MsgTypeDiceThrown:   "dice_thrown",
	MsgTypeMovesChecked: "moves_checked",
	MsgTypePieceMoved:   "piece_moved",
	MsgTypeRoomState:    "room_state",
	MsgTypePlayerState:  "player_state",
	MsgTypeGameSync:     "game_sync",
	MsgTypeGameEnd:      "game_end",
}

// MsgName returns the wire name of a message type.
func MsgName(msgType uint16) string {
	if name, ok := msgNames[msgType]; ok {
		return name
	}
	return "unknown"
}

// Message is one journal entry.
type Message struct {
	Type    uint16      `json:"type"`
	Name    string      `json:"name"`
	Room    string      `json:"room"`
	Payload interface{} `json:"payload,omitempty"`
}

func NewMessage(roomID string, msgType uint16, payload interface{}) Message {
	return Message{Type: msgType, Name: MsgName(msgType), Room: roomID, Payload: payload}
}

type DicePayload struct {
	Player board.Color `json:"player"`
	Dice   int         `json:"dice"`
}

type MovesPayload struct {
	Player  board.Color `json:"player"`
	Movable []int       `json:"movable"`
}

type PiecePayload struct {
	Player   board.Color `json:"player"`
	Piece    int         `json:"piece"`
	From     int         `json:"from"`
	To       int         `json:"to"`
	Captured bool        `json:"captured,omitempty"`
}

type PlayerPayload struct {
	Player board.Color `json:"player"`
	State  string      `json:"state"`
}

func dicePayload(ev ludo.DiceEvent) DicePayload {
	return DicePayload{Player: ev.Player, Dice: ev.Dice}
}

func movesPayload(ev ludo.MovesCheckedEvent) MovesPayload {
	p := MovesPayload{Player: ev.Player, Movable: []int{}}
	for piece, ok := range ev.Movable {
		if ok {
			p.Movable = append(p.Movable, piece)
		}
	}
	return p
}

func piecePayload(ev ludo.PieceEvent) PiecePayload {
	return PiecePayload{Player: ev.Player, Piece: ev.Piece, From: ev.From, To: ev.To, Captured: ev.Captured()}
}

func playerPayload(ev ludo.PlayerEvent) PlayerPayload {
	return PlayerPayload{Player: ev.Player, State: ev.State.String()}
}
