package ludo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wfunc/ludo/board"
)

// ApplyRoll applies a rolled value to the current player. Depending on the
// turn it starts or advances the attempt sequence, evaluates which pieces
// can move, or hands the turn to the next player.
func (e *Engine) ApplyRoll(dice int) error {
	if dice < 1 || dice > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidDice, dice)
	}
	if e.Status() == StatusFinished {
		return ErrGameFinished
	}

	player := e.turn.Player
	e.turn.Dice = dice
	e.setStatus(StatusStarted)
	e.setPhase(PhaseRollApplied)

	if e.allHomeOrGoal(player) && !e.turn.Attempting() {
		e.turn = e.turn.beginAttempts()
	}

	e.listeners.diceThrown(DiceEvent{Player: player, Dice: dice})

	switch {
	case e.turn.Attempting():
		var outcome attemptOutcome
		e.turn, outcome = e.turn.afterAttempt()
		switch outcome {
		case attemptEntered:
			e.setPhase(PhaseAwaitingMove)
		case attemptRetry:
			e.setPhase(PhaseAwaitingRoll)
		case attemptExhausted:
			e.nextPlayer()
		}
	case e.turn.ExtraThrow:
		e.turn.ExtraThrow = false
		e.checkMoves(player, dice)
	default:
		e.checkMoves(player, dice)
	}
	return nil
}

// ThrowDice rolls a die without applying it.
func (e *Engine) ThrowDice() (int, error) {
	return RollDie(e.random)
}

func (e *Engine) allHomeOrGoal(c board.Color) bool {
	for _, local := range e.position[c] {
		if local != board.Home && local != board.Goal {
			return false
		}
	}
	return true
}

// checkMoves tries every piece of player against dice. With no movable
// piece the turn passes on, otherwise observers get the movability vector.
func (e *Engine) checkMoves(player board.Color, dice int) {
	var movable [board.PiecesPerPlayer]bool
	anyMovable := false
	for piece, local := range e.position[player] {
		switch local {
		case board.Home:
			movable[piece] = dice == board.RollToEnter
		case board.Goal:
			movable[piece] = false
		default:
			movable[piece] = e.CanMove(player, local, local+dice)
		}
		anyMovable = anyMovable || movable[piece]
	}

	if !anyMovable {
		e.logger.Debug("no movable pieces",
			zap.Stringer("player", player),
			zap.Int("dice", dice),
		)
		e.nextPlayer()
		return
	}
	e.setPhase(PhaseAwaitingMove)
	e.listeners.movesChecked(MovesCheckedEvent{Player: player, Movable: movable})
}

// nextPlayer is the only place the current player changes.
func (e *Engine) nextPlayer() {
	outgoing := e.turn.Player
	e.setPhase(PhaseTurnOver)
	e.listeners.playerStateChanged(PlayerEvent{Player: outgoing, State: Waiting})

	next := outgoing
	for i := 0; i < e.players; i++ {
		next = board.Color((int(next) + 1) % e.players)
		if e.active[next] {
			break
		}
	}
	e.turn = e.turn.handoff(next)
	e.setPhase(PhaseAwaitingRoll)

	e.logger.Debug("turn handed over",
		zap.Stringer("from", outgoing),
		zap.Stringer("to", next),
	)
	e.listeners.playerStateChanged(PlayerEvent{Player: next, State: Playing})
}
