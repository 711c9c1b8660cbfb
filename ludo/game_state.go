package ludo

import (
	"go.uber.org/zap"

	"github.com/wfunc/ludo/state"
)

// Status is the coarse lifecycle of a game. It only moves forward.
type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusInitiated Status = "INITIATED"
	StatusStarted   Status = "STARTED"
	StatusFinished  Status = "FINISHED"
)

// Phase is where the current turn stands.
type Phase string

const (
	PhaseAwaitingRoll Phase = "awaiting-roll"
	PhaseRollApplied  Phase = "roll-applied"
	PhaseAwaitingMove Phase = "awaiting-move"
	PhaseTurnOver     Phase = "turn-over"
	PhaseFinished     Phase = "finished"
)

var statusTransitions = map[Status][]Status{
	StatusCreated:   {StatusInitiated},
	StatusInitiated: {StatusStarted, StatusFinished},
	StatusStarted:   {StatusFinished},
	StatusFinished:  nil,
}

// Moves may be requested outside awaiting-move and rolls applied while a
// move is pending; the engine leaves that contract to the caller.
var phaseTransitions = map[Phase][]Phase{
	PhaseAwaitingRoll: {PhaseRollApplied, PhaseTurnOver, PhaseFinished},
	PhaseRollApplied:  {PhaseAwaitingMove, PhaseAwaitingRoll, PhaseTurnOver},
	PhaseAwaitingMove: {PhaseAwaitingRoll, PhaseRollApplied, PhaseTurnOver, PhaseFinished},
	PhaseTurnOver:     {PhaseAwaitingRoll},
	PhaseFinished:     nil,
}

// machine is a state.BaseStateMachine over string-typed state names.
type machine[T ~string] struct {
	sm     *state.BaseStateMachine
	states map[T]*state.Hooked
}

func newMachine[T ~string](initial T, edges map[T][]T, onEnter func(T)) *machine[T] {
	m := &machine[T]{states: make(map[T]*state.Hooked, len(edges))}
	for id := range edges {
		id := id
		m.states[id] = state.NewHooked(string(id), func() {
			if onEnter != nil {
				onEnter(id)
			}
		}, nil)
	}
	m.sm = state.NewBaseStateMachine(m.states[initial])
	for from, targets := range edges {
		for _, to := range targets {
			// Both ends are registered above, AddTransition cannot fail.
			_ = m.sm.AddTransition(m.states[from], m.states[to], nil)
		}
	}
	return m
}

func (m *machine[T]) current() T {
	return T(m.sm.GetCurrentState().GetID())
}

func (m *machine[T]) change(to T) error {
	return m.sm.ChangeState(m.states[to])
}

func (e *Engine) setStatus(to Status) {
	if err := e.status.change(to); err != nil {
		e.logger.Warn("status transition rejected",
			zap.String("from", string(e.status.current())),
			zap.String("to", string(to)),
			zap.Error(err),
		)
	}
}

func (e *Engine) setPhase(to Phase) {
	if err := e.phase.change(to); err != nil {
		e.logger.Warn("phase transition rejected",
			zap.String("from", string(e.phase.current())),
			zap.String("to", string(to)),
			zap.Error(err),
		)
	}
}
