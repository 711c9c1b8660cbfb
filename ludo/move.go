package ludo

import (
	"go.uber.org/zap"

	"github.com/wfunc/ludo/board"
)

type moveMode int

const (
	probe moveMode = iota
	commit
)

// MovePiece moves the piece of player standing on local position from to
// local position to, if the move is legal. An illegal move forfeits the
// turn. Entering a piece from home is MovePiece(p, 0, 1).
func (e *Engine) MovePiece(player board.Color, from, to int) bool {
	return e.movePiece(player, from, to, commit)
}

// CanMove reports whether MovePiece would succeed, without moving anything
// or forfeiting the turn. Like MovePiece it recomputes the extra throw for
// the current roll.
func (e *Engine) CanMove(player board.Color, from, to int) bool {
	return e.movePiece(player, from, to, probe)
}

func (e *Engine) movePiece(player board.Color, from, to int, mode moveMode) bool {
	if e.Status() == StatusFinished {
		return false
	}
	origin, piece, ok := e.origin(player, from)
	if !ok || to <= from {
		e.logger.Warn("malformed move request",
			zap.Stringer("player", player),
			zap.Int("from", from),
			zap.Int("to", to),
		)
		return false
	}

	e.turn = e.turn.withBonus(from)

	if to > board.Goal {
		return e.reject(mode, player, from, to, "overshoot")
	}
	target, _ := board.LocalToGlobal(player, to)

	// The destination itself counts: nobody lands on a blockade either.
	for step := from + 1; step <= to; step++ {
		cell, _ := board.LocalToGlobal(player, step)
		if f := e.fields[cell]; f.Count() > 1 && f.color != player {
			return e.reject(mode, player, from, to, "blockade")
		}
	}

	dest := e.fields[target]
	switch {
	case dest.Count() == 1 && dest.color != player:
		opponent := dest.color
		if owner, safe := board.SafeCellOwner(target); safe && owner == opponent {
			return e.reject(mode, player, from, to, "protected square")
		}
		if mode == commit {
			victim := dest.first()
			e.relocate(opponent, victim, target, board.YardCell(opponent))
			e.relocate(player, piece, origin, target)
			e.logger.Info("piece captured",
				zap.Stringer("player", player),
				zap.Stringer("opponent", opponent),
				zap.Int("piece", victim),
				zap.Int("cell", target),
			)
			e.endMove()
		}
		return true

	case to == board.Goal && e.fields[board.GoalCell(player)].Count() == board.PiecesPerPlayer-1:
		if mode == commit {
			e.relocate(player, piece, origin, target)
			e.win(player)
		}
		return true

	default:
		if mode == commit {
			e.relocate(player, piece, origin, target)
			e.endMove()
		}
		return true
	}
}

// origin finds the global cell and the piece of player standing on local
// position from.
func (e *Engine) origin(player board.Color, from int) (int, int, bool) {
	if !e.registered(player) || from < board.Home || from >= board.Goal {
		return 0, 0, false
	}
	cell, ok := board.LocalToGlobal(player, from)
	if !ok {
		return 0, 0, false
	}
	f := e.fields[cell]
	if f.color != player {
		return 0, 0, false
	}
	// Local 1 and 53 share a cell, so match on the stored position too.
	for piece, local := range e.position[player] {
		if local == from && f.Has(piece) {
			return cell, piece, true
		}
	}
	return 0, 0, false
}

// reject reports an illegal move. Committing one forfeits the turn.
func (e *Engine) reject(mode moveMode, player board.Color, from, to int, reason string) bool {
	if mode == commit {
		e.logger.Info("illegal move forfeits turn",
			zap.Stringer("player", player),
			zap.Int("from", from),
			zap.Int("to", to),
			zap.String("reason", reason),
		)
		e.nextPlayer()
	}
	return false
}

func (e *Engine) endMove() {
	if e.turn.ExtraThrow {
		e.setPhase(PhaseAwaitingRoll)
		return
	}
	e.nextPlayer()
}

func (e *Engine) win(player board.Color) {
	e.winner = player
	e.setStatus(StatusFinished)
	e.setPhase(PhaseFinished)
	e.logger.Info("game won",
		zap.Stringer("player", player),
		zap.String("name", e.names[player]),
	)
	e.listeners.playerStateChanged(PlayerEvent{Player: player, State: Won})
}

// relocate moves one piece between global cells, stores its new local
// position and notifies piece listeners.
func (e *Engine) relocate(player board.Color, piece, from, to int) {
	prior := e.position[player][piece]

	e.fields[from].remove(piece)
	e.fields[to].add(player, piece)

	dir := board.AlongRing
	if board.IsYard(from) {
		dir = board.FromHome
	}
	local, _ := board.Resolve(player, to, dir)
	e.position[player][piece] = local

	e.listeners.pieceMoved(PieceEvent{Player: player, Piece: piece, From: prior, To: local})
}
