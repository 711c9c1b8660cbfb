package ludo

import (
	"testing"

	"github.com/wfunc/ludo/board"
)

func newGame(t *testing.T, names ...string) *Engine {
	t.Helper()
	e, err := New(names)
	if err != nil {
		t.Fatalf("New(%v): %v", names, err)
	}
	return e
}

// place puts a piece straight onto a local position without events.
func place(t *testing.T, e *Engine, c board.Color, piece, local int) {
	t.Helper()
	from, _ := board.LocalToGlobal(c, e.position[c][piece])
	to, ok := board.LocalToGlobal(c, local)
	if !ok {
		t.Fatalf("invalid local %d for %v", local, c)
	}
	e.fields[from].remove(piece)
	e.fields[to].add(c, piece)
	e.position[c][piece] = local
}

func countPieces(e *Engine, c board.Color) int {
	n := 0
	for _, f := range e.fields {
		if f.Color() == c {
			n += f.Count()
		}
	}
	return n
}

func assertConservation(t *testing.T, e *Engine) {
	t.Helper()
	for p := 0; p < e.Players(); p++ {
		c := board.Color(p)
		if got := countPieces(e, c); got != board.PiecesPerPlayer {
			t.Fatalf("Expected %d %v pieces on the board, got %d", board.PiecesPerPlayer, c, got)
		}
		for piece, local := range e.position[c] {
			global, _ := board.LocalToGlobal(c, local)
			if !e.fields[global].Has(piece) || e.fields[global].Color() != c {
				t.Fatalf("%v piece %d at local %d is missing from cell %d", c, piece, local, global)
			}
		}
	}
	for global, f := range e.fields {
		if (f.Count() == 0) != (f.Color() == board.NoColor) {
			t.Fatalf("cell %d has %d pieces but color %v", global, f.Count(), f.Color())
		}
	}
}

// recorder captures every event in arrival order.
type recorder struct {
	dice    []DiceEvent
	checked []MovesCheckedEvent
	pieces  []PieceEvent
	players []PlayerEvent
	order   []string
}

func (r *recorder) DiceThrown(ev DiceEvent) {
	r.dice = append(r.dice, ev)
	r.order = append(r.order, "dice")
}

func (r *recorder) MovesChecked(ev MovesCheckedEvent) {
	r.checked = append(r.checked, ev)
	r.order = append(r.order, "checked")
}

func (r *recorder) PieceMoved(ev PieceEvent) {
	r.pieces = append(r.pieces, ev)
	r.order = append(r.order, "piece")
}

func (r *recorder) PlayerStateChanged(ev PlayerEvent) {
	r.players = append(r.players, ev)
	r.order = append(r.order, "player:"+ev.State.String())
}

func (r *recorder) count(state PlayerState) int {
	n := 0
	for _, ev := range r.players {
		if ev.State == state {
			n++
		}
	}
	return n
}

func record(e *Engine) *recorder {
	r := &recorder{}
	e.AddListener(r)
	return r
}

func mustRoll(t *testing.T, e *Engine, dice int) {
	t.Helper()
	if err := e.ApplyRoll(dice); err != nil {
		t.Fatalf("ApplyRoll(%d): %v", dice, err)
	}
}
