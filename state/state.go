package state

import (
	"errors"
	"sync"
)

// StateMachine moves between registered states.
type StateMachine interface {
	ChangeState(state State) error
	GetCurrentState() State
	AddTransition(from State, to State, condition func() bool) error
}

// State is a node of a StateMachine.
type State interface {
	OnEnter()
	OnExit()
	GetID() string
}

var (
	// ErrTransitionNotAllowed is returned when a state transition is not allowed.
	ErrTransitionNotAllowed = errors.New("state transition not allowed")
	ErrNilState             = errors.New("nil state")
)

// BaseStateMachine only follows transitions added with AddTransition.
// Changing to the current state is a no-op.
type BaseStateMachine struct {
	currentState State
	transitions  map[string]map[string]func() bool // fromState -> toState -> condition
	mutex        sync.RWMutex
}

func NewBaseStateMachine(initialState State) *BaseStateMachine {
	machine := &BaseStateMachine{
		currentState: initialState,
		transitions:  make(map[string]map[string]func() bool),
	}
	initialState.OnEnter()
	return machine
}

func (sm *BaseStateMachine) ChangeState(newState State) error {
	if newState == nil {
		return ErrNilState
	}

	sm.mutex.Lock()
	current := sm.currentState
	if current.GetID() == newState.GetID() {
		sm.mutex.Unlock()
		return nil
	}
	if !sm.allowed(current.GetID(), newState.GetID()) {
		sm.mutex.Unlock()
		return ErrTransitionNotAllowed
	}
	sm.currentState = newState
	sm.mutex.Unlock()

	// Hooks run outside the lock so they may read the machine.
	current.OnExit()
	newState.OnEnter()
	return nil
}

func (sm *BaseStateMachine) allowed(fromID, toID string) bool {
	conditions, exists := sm.transitions[fromID]
	if !exists {
		return false
	}
	condition, exists := conditions[toID]
	if !exists {
		return false
	}
	return condition == nil || condition()
}

// CanChange reports whether ChangeState(to) would currently succeed.
func (sm *BaseStateMachine) CanChange(to State) bool {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	if sm.currentState.GetID() == to.GetID() {
		return true
	}
	return sm.allowed(sm.currentState.GetID(), to.GetID())
}

func (sm *BaseStateMachine) GetCurrentState() State {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.currentState
}

// AddTransition registers from -> to. A nil condition always allows it.
func (sm *BaseStateMachine) AddTransition(from State, to State, condition func() bool) error {
	if from == nil || to == nil {
		return ErrNilState
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	fromID := from.GetID()
	toID := to.GetID()

	if _, exists := sm.transitions[fromID]; !exists {
		sm.transitions[fromID] = make(map[string]func() bool)
	}

	sm.transitions[fromID][toID] = condition
	return nil
}

// Base is a State with no-op hooks, meant for embedding.
type Base struct {
	ID string
}

func (s *Base) GetID() string {
	return s.ID
}

func (s *Base) OnEnter() {}

func (s *Base) OnExit() {}

// Hooked is a State whose hooks are plain functions.
type Hooked struct {
	Base
	Enter func()
	Exit  func()
}

// NewHooked returns a state that calls enter and exit, either of which may be nil.
func NewHooked(id string, enter, exit func()) *Hooked {
	return &Hooked{Base: Base{ID: id}, Enter: enter, Exit: exit}
}

func (s *Hooked) OnEnter() {
	if s.Enter != nil {
		s.Enter()
	}
}

func (s *Hooked) OnExit() {
	if s.Exit != nil {
		s.Exit()
	}
}
