// Package ludo is the rules engine for four-player Ludo: turn and dice
// handling, move validation, captures and the win, with synchronous
// observer notification.
//
// An Engine is not safe for concurrent use. Every call, including the
// observers it notifies, runs to completion before returning.
package ludo

import (
	crand "crypto/rand"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/wfunc/ludo/board"
)

// Engine owns the whole game state.
type Engine struct {
	names    [board.Players]string
	active   [board.Players]bool
	players  int
	position [board.Players][board.PiecesPerPlayer]int
	fields   [board.Cells]Field
	turn     Turn
	winner   board.Color

	status    *machine[Status]
	phase     *machine[Phase]
	listeners listeners
	logger    *zap.Logger
	random    io.Reader
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRandom sets the source ThrowDice reads from. The default is crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(e *Engine) {
		if r != nil {
			e.random = r
		}
	}
}

// New creates a game for the given names. Empty names are vacant seats;
// the remaining names take the seats from Red onwards in order.
func New(names []string, opts ...Option) (*Engine, error) {
	e := &Engine{
		turn:   newTurn(),
		winner: board.NoColor,
		logger: zap.NewNop(),
		random: crand.Reader,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, name := range names {
		if name == "" {
			continue
		}
		if e.players == board.Players {
			return nil, ErrNoRoomForMorePlayers
		}
		e.names[e.players] = name
		e.active[e.players] = true
		e.players++
	}
	if e.players < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughPlayers, e.players)
	}

	for i := range e.fields {
		e.fields[i] = newField()
	}
	for p := 0; p < e.players; p++ {
		c := board.Color(p)
		for piece := 0; piece < board.PiecesPerPlayer; piece++ {
			e.position[p][piece] = board.Home
			e.fields[board.YardCell(c)].add(c, piece)
		}
	}

	e.status = newMachine(StatusCreated, statusTransitions, func(s Status) {
		e.logger.Debug("game status", zap.String("status", string(s)))
	})
	e.phase = newMachine(PhaseAwaitingRoll, phaseTransitions, nil)
	e.setStatus(StatusInitiated)

	e.logger.Info("game created", zap.Strings("players", e.names[:e.players]))
	return e, nil
}

// Players returns the number of registered players, active or not.
func (e *Engine) Players() int {
	return e.players
}

// ActivePlayers returns the number of players still taking turns.
func (e *Engine) ActivePlayers() int {
	n := 0
	for _, active := range e.active {
		if active {
			n++
		}
	}
	return n
}

func (e *Engine) registered(c board.Color) bool {
	return c.Valid() && int(c) < e.players
}

// PlayerName returns the stored name of c, or "" for a vacant seat.
func (e *Engine) PlayerName(c board.Color) string {
	if !c.Valid() {
		return ""
	}
	return e.names[c]
}

// PlayerActive reports whether c takes part in turn rotation.
func (e *Engine) PlayerActive(c board.Color) bool {
	return c.Valid() && e.active[c]
}

// LocalPosition returns the local position of a piece, 0 for unknown pieces.
func (e *Engine) LocalPosition(c board.Color, piece int) int {
	if !c.Valid() || piece < 0 || piece >= board.PiecesPerPlayer {
		return board.Home
	}
	return e.position[c][piece]
}

// GlobalFromLocal converts a local position of c to a global cell.
func (e *Engine) GlobalFromLocal(c board.Color, local int) (int, bool) {
	return board.LocalToGlobal(c, local)
}

// LocalFromGlobal converts a global cell to c's local position.
func (e *Engine) LocalFromGlobal(c board.Color, global int) (int, bool) {
	return board.GlobalToLocal(c, global)
}

// Fields returns a copy of the occupancy of every global cell.
func (e *Engine) Fields() [board.Cells]Field {
	return e.fields
}

// Field returns the occupancy of one global cell.
func (e *Engine) Field(global int) Field {
	if global < 0 || global >= board.Cells {
		return newField()
	}
	return e.fields[global]
}

func (e *Engine) CurrentPlayer() board.Color { return e.turn.Player }

// Attempt is -1 on a normal turn and 0-2 during an attempt sequence.
func (e *Engine) Attempt() int { return e.turn.Attempt }

func (e *Engine) ExtraThrow() bool { return e.turn.ExtraThrow }

// Dice returns the last applied roll, 0 before the first.
func (e *Engine) Dice() int { return e.turn.Dice }

// Turn returns a copy of the current turn state.
func (e *Engine) Turn() Turn { return e.turn }

// Winner returns the winning player once the game is finished.
func (e *Engine) Winner() (board.Color, bool) {
	return e.winner, e.winner != board.NoColor
}

func (e *Engine) Status() Status { return e.status.current() }

func (e *Engine) Phase() Phase { return e.phase.current() }
