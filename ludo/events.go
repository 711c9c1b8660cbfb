package ludo

import "github.com/wfunc/ludo/board"

// DiceEvent is emitted once for every applied roll.
type DiceEvent struct {
	Player board.Color
	Dice   int
}

// MovesCheckedEvent tells which of the player's pieces can use the roll.
type MovesCheckedEvent struct {
	Player  board.Color
	Movable [board.PiecesPerPlayer]bool
}

// PieceEvent is emitted for every relocation, including captured pieces
// sent home.
type PieceEvent struct {
	Player board.Color
	Piece  int
	From   int
	To     int
}

// Captured reports whether the event sends a piece on the board back home.
func (e PieceEvent) Captured() bool {
	return e.To == board.Home && e.From != board.Home
}

// PlayerState is the state reported in a PlayerEvent.
type PlayerState int

const (
	Waiting PlayerState = iota
	Playing
	Won
)

func (s PlayerState) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Playing:
		return "playing"
	case Won:
		return "won"
	}
	return "unknown"
}

// PlayerEvent is emitted on turn handoff and when a player wins.
type PlayerEvent struct {
	Player board.Color
	State  PlayerState
}

type DiceListener interface {
	DiceThrown(DiceEvent)
	MovesChecked(MovesCheckedEvent)
}

type PieceListener interface {
	PieceMoved(PieceEvent)
}

type PlayerListener interface {
	PlayerStateChanged(PlayerEvent)
}

// DiceListenerFuncs adapts two functions to a DiceListener. Nil fields are skipped.
type DiceListenerFuncs struct {
	Thrown  func(DiceEvent)
	Checked func(MovesCheckedEvent)
}

func (f DiceListenerFuncs) DiceThrown(ev DiceEvent) {
	if f.Thrown != nil {
		f.Thrown(ev)
	}
}

func (f DiceListenerFuncs) MovesChecked(ev MovesCheckedEvent) {
	if f.Checked != nil {
		f.Checked(ev)
	}
}

type PieceListenerFunc func(PieceEvent)

func (f PieceListenerFunc) PieceMoved(ev PieceEvent) { f(ev) }

type PlayerListenerFunc func(PlayerEvent)

func (f PlayerListenerFunc) PlayerStateChanged(ev PlayerEvent) { f(ev) }

// listeners holds the three observer registries. Delivery is synchronous
// and in registration order.
type listeners struct {
	dice   []DiceListener
	piece  []PieceListener
	player []PlayerListener
}

func (l *listeners) diceThrown(ev DiceEvent) {
	for _, dl := range l.dice {
		dl.DiceThrown(ev)
	}
}

func (l *listeners) movesChecked(ev MovesCheckedEvent) {
	for _, dl := range l.dice {
		dl.MovesChecked(ev)
	}
}

func (l *listeners) pieceMoved(ev PieceEvent) {
	for _, pl := range l.piece {
		pl.PieceMoved(ev)
	}
}

func (l *listeners) playerStateChanged(ev PlayerEvent) {
	for _, pl := range l.player {
		pl.PlayerStateChanged(ev)
	}
}

// AddDiceListener subscribes dl to roll outcomes and movability checks.
func (e *Engine) AddDiceListener(dl DiceListener) {
	e.listeners.dice = append(e.listeners.dice, dl)
}

// AddPieceListener subscribes pl to piece relocations.
func (e *Engine) AddPieceListener(pl PieceListener) {
	e.listeners.piece = append(e.listeners.piece, pl)
}

// AddPlayerListener subscribes pl to turn handoffs and the win.
func (e *Engine) AddPlayerListener(pl PlayerListener) {
	e.listeners.player = append(e.listeners.player, pl)
}

// Listener is anything that observes all three event categories.
type Listener interface {
	DiceListener
	PieceListener
	PlayerListener
}

// AddListener subscribes l to every event category.
func (e *Engine) AddListener(l Listener) {
	e.AddDiceListener(l)
	e.AddPieceListener(l)
	e.AddPlayerListener(l)
}
