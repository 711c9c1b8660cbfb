package ludo

import "github.com/wfunc/ludo/board"

const (
	noAttempt   = -1
	lastAttempt = 2
)

// Turn is the per-turn state: whose turn it is, the attempt sequence, the
// bonus throw and the last roll. The controller replaces it as a whole on
// every transition.
type Turn struct {
	Player     board.Color
	Attempt    int
	ExtraThrow bool
	Dice       int
}

func newTurn() Turn {
	return Turn{Player: board.Red, Attempt: noAttempt}
}

// Attempting reports whether an attempt sequence is running.
func (t Turn) Attempting() bool {
	return t.Attempt > noAttempt
}

// beginAttempts starts an attempt sequence. A bonus left over from the six
// that took the last piece into the goal is dropped with it.
func (t Turn) beginAttempts() Turn {
	if !t.Attempting() {
		t.Attempt = 0
		t.ExtraThrow = false
	}
	return t
}

type attemptOutcome int

const (
	attemptRetry attemptOutcome = iota
	attemptEntered
	attemptExhausted
)

// afterAttempt consumes one roll of the attempt sequence.
func (t Turn) afterAttempt() (Turn, attemptOutcome) {
	six := t.Dice == board.RollToEnter
	if t.Attempt < lastAttempt {
		if six {
			t.Attempt = noAttempt
			return t, attemptEntered
		}
		t.Attempt++
		return t, attemptRetry
	}
	t.Attempt = noAttempt
	if six {
		return t, attemptEntered
	}
	return t, attemptExhausted
}

// withBonus recomputes the extra throw for a move starting at from. Only a
// six counts, and entering from home never earns one.
func (t Turn) withBonus(from int) Turn {
	if t.Dice == board.RollToEnter {
		t.ExtraThrow = from != board.Home
	}
	return t
}

func (t Turn) handoff(next board.Color) Turn {
	t.Player = next
	t.Attempt = noAttempt
	t.ExtraThrow = false
	return t
}
