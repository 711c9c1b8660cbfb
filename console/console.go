// Package console plays a game on a text terminal. It reads one command per
// line and renders engine events as localized text.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/wfunc/ludo/board"
	"github.com/wfunc/ludo/logger"
	"github.com/wfunc/ludo/ludo"
	"github.com/wfunc/ludo/room"
)

// Console implements ludo.Listener.
type Console struct {
	room    *room.Room
	in      io.Reader
	out     io.Writer
	printer *message.Printer

	// engine is only touched from listener callbacks, which already run
	// under the room's lock.
	engine  *ludo.Engine
	movable [board.PiecesPerPlayer]bool
}

func New(r *room.Room, in io.Reader, out io.Writer, locale string) *Console {
	c := &Console{
		room:    r,
		in:      in,
		out:     out,
		printer: Printer(locale),
	}
	r.With(func(e *ludo.Engine) {
		c.engine = e
		e.AddListener(c)
	})
	return c
}

// Run processes commands until quit, end of input or the end of the game.
func (c *Console) Run() error {
	c.say(msgHelp)
	s := c.room.Snapshot()
	current := s.Players[s.CurrentPlayer]
	c.say(msgToPlay, c.displayName(current.Name, current.Active))

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		c.handle(fields)
		if c.room.Snapshot().Status == ludo.StatusFinished {
			return nil
		}
	}
	return scanner.Err()
}

func (c *Console) handle(fields []string) {
	switch fields[0] {
	case "roll":
		c.roll(fields[1:])
	case "move":
		c.move(fields[1:])
	case "state":
		c.printState()
	case "help":
		c.say(msgHelp)
	default:
		c.say(msgUnknown, fields[0])
	}
}

func (c *Console) roll(args []string) {
	var err error
	if len(args) == 0 {
		_, err = c.room.Roll()
	} else {
		dice, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			c.say(msgInvalidDice, args[0])
			return
		}
		err = c.room.ApplyRoll(dice)
	}

	switch {
	case err == nil:
	case errors.Is(err, ludo.ErrInvalidDice):
		c.say(msgInvalidDice, args[0])
	case errors.Is(err, ludo.ErrGameFinished):
		c.say(msgGameOver)
	default:
		logger.Log.Errorw("roll failed", "room", c.room.ID, "error", err)
		c.say(msgRollFailed, err)
	}
}

// move asks the engine to move a piece of the current player by the last
// roll. Only pieces flagged movable are ever requested.
func (c *Console) move(args []string) {
	if len(args) != 1 {
		c.say(msgNoPiece, strings.Join(args, " "))
		return
	}
	piece, err := strconv.Atoi(args[0])
	if err != nil || piece < 0 || piece >= board.PiecesPerPlayer {
		c.say(msgNoPiece, args[0])
		return
	}

	s := c.room.Snapshot()
	if s.Phase != ludo.PhaseAwaitingMove {
		c.say(msgRollFirst)
		return
	}
	from := s.Players[s.CurrentPlayer].Pieces[piece].Local
	if !c.canRequest(piece, from, s.Dice) {
		c.say(msgCannotMove, piece)
		return
	}

	to := from + s.Dice
	if from == board.Home {
		to = board.Entry
	}
	c.room.Move(s.CurrentPlayer, from, to)
}

// canRequest mirrors the movability event. After a six ends an attempt
// sequence there is no event, and only pieces at home may enter.
func (c *Console) canRequest(piece, from, dice int) bool {
	for _, ok := range c.movable {
		if ok {
			return c.movable[piece]
		}
	}
	return from == board.Home && dice == board.RollToEnter
}

func (c *Console) printState() {
	s := c.room.Snapshot()
	for _, p := range s.Players {
		locals := make([]string, len(p.Pieces))
		for i, piece := range p.Pieces {
			locals[i] = strconv.Itoa(piece.Local)
		}
		c.say(msgPieces, c.displayName(p.Name, p.Active), strings.Join(locals, " "))
	}
	if s.Status == ludo.StatusFinished {
		c.say(msgGameOver)
		return
	}
	c.say(msgTurn, c.displayName(s.Players[s.CurrentPlayer].Name, s.Players[s.CurrentPlayer].Active), s.Dice)
}

func (c *Console) name(player board.Color) string {
	return c.displayName(c.engine.PlayerName(player), c.engine.PlayerActive(player))
}

func (c *Console) displayName(name string, active bool) string {
	if active {
		return name
	}
	return c.printer.Sprintf(msgInactive, name)
}

func (c *Console) say(key message.Reference, args ...interface{}) {
	c.printer.Fprintf(c.out, key, args...)
	fmt.Fprintln(c.out)
}

func (c *Console) DiceThrown(ev ludo.DiceEvent) {
	c.movable = [board.PiecesPerPlayer]bool{}
	c.say(msgRolled, c.name(ev.Player), ev.Dice)
}

func (c *Console) MovesChecked(ev ludo.MovesCheckedEvent) {
	c.movable = ev.Movable
	var pieces []string
	for piece, ok := range ev.Movable {
		if ok {
			pieces = append(pieces, strconv.Itoa(piece))
		}
	}
	c.say(msgMovable, strings.Join(pieces, ", "))
}

func (c *Console) PieceMoved(ev ludo.PieceEvent) {
	if ev.Captured() {
		c.say(msgSentHome, c.name(ev.Player), ev.Piece)
		return
	}
	c.say(msgMoved, c.name(ev.Player), ev.Piece, ev.From, ev.To)
}

func (c *Console) PlayerStateChanged(ev ludo.PlayerEvent) {
	switch ev.State {
	case ludo.Playing:
		c.movable = [board.PiecesPerPlayer]bool{}
		c.say(msgToPlay, c.name(ev.Player))
	case ludo.Won:
		c.say(msgWon, c.name(ev.Player))
	}
}
