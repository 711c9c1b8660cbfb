package ludo

import "github.com/wfunc/ludo/board"

// PieceSnapshot is one piece in a Snapshot.
type PieceSnapshot struct {
	Piece  int `json:"piece"`
	Local  int `json:"local"`
	Global int `json:"global"`
}

// PlayerSnapshot is one registered player in a Snapshot.
type PlayerSnapshot struct {
	Color  board.Color     `json:"color"`
	Name   string          `json:"name"`
	Active bool            `json:"active"`
	Pieces []PieceSnapshot `json:"pieces"`
}

// Snapshot is a serializable, read-only view of the game.
type Snapshot struct {
	Players       []PlayerSnapshot `json:"players"`
	CurrentPlayer board.Color      `json:"currentPlayer"`
	Attempt       int              `json:"attempt"`
	ExtraThrow    bool             `json:"extraThrow"`
	Dice          int              `json:"dice"`
	Winner        board.Color      `json:"winner"`
	Status        Status           `json:"status"`
	Phase         Phase            `json:"phase"`
}

// Snapshot copies the current game state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Players:       make([]PlayerSnapshot, 0, e.players),
		CurrentPlayer: e.turn.Player,
		Attempt:       e.turn.Attempt,
		ExtraThrow:    e.turn.ExtraThrow,
		Dice:          e.turn.Dice,
		Winner:        e.winner,
		Status:        e.Status(),
		Phase:         e.Phase(),
	}
	for p := 0; p < e.players; p++ {
		c := board.Color(p)
		ps := PlayerSnapshot{
			Color:  c,
			Name:   e.names[p],
			Active: e.active[p],
			Pieces: make([]PieceSnapshot, 0, board.PiecesPerPlayer),
		}
		for piece, local := range e.position[p] {
			global, _ := board.LocalToGlobal(c, local)
			ps.Pieces = append(ps.Pieces, PieceSnapshot{Piece: piece, Local: local, Global: global})
		}
		s.Players = append(s.Players, ps)
	}
	return s
}
