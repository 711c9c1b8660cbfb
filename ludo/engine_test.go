package ludo

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/wfunc/ludo/board"
)

func TestNew_NotEnoughPlayers(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"none", nil},
		{"one", []string{"Red"}},
		{"one among vacant seats", []string{"", "Blue", "", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.names)
			if !errors.Is(err, ErrNotEnoughPlayers) {
				t.Fatalf("Expected ErrNotEnoughPlayers, got %v", err)
			}
			if e != nil {
				t.Error("Expected no engine on failure")
			}
		})
	}
}

func TestNew_NoRoomForMorePlayers(t *testing.T) {
	_, err := New([]string{"a", "b", "c", "d", "e"})
	if !errors.Is(err, ErrNoRoomForMorePlayers) {
		t.Fatalf("Expected ErrNoRoomForMorePlayers, got %v", err)
	}
}

func TestNew_CompactsVacantSeats(t *testing.T) {
	e := newGame(t, "", "Anna", "", "Bjorn")

	if e.Players() != 2 {
		t.Fatalf("Expected 2 players, got %d", e.Players())
	}
	if e.PlayerName(board.Red) != "Anna" || e.PlayerName(board.Blue) != "Bjorn" {
		t.Errorf("Expected Anna and Bjorn in the first seats, got %q and %q",
			e.PlayerName(board.Red), e.PlayerName(board.Blue))
	}
	if e.PlayerName(board.Yellow) != "" || e.PlayerActive(board.Yellow) {
		t.Error("Expected yellow seat to stay vacant")
	}
	if e.ActivePlayers() != 2 {
		t.Errorf("Expected 2 active players, got %d", e.ActivePlayers())
	}
}

func TestNew_InitialState(t *testing.T) {
	e := newGame(t, "Red", "Blue", "Yellow")

	if e.Status() != StatusInitiated {
		t.Errorf("Expected status %s, got %s", StatusInitiated, e.Status())
	}
	if e.Phase() != PhaseAwaitingRoll {
		t.Errorf("Expected phase %s, got %s", PhaseAwaitingRoll, e.Phase())
	}
	if e.CurrentPlayer() != board.Red {
		t.Errorf("Expected red to start, got %v", e.CurrentPlayer())
	}
	if e.Attempt() != -1 || e.ExtraThrow() || e.Dice() != 0 {
		t.Errorf("Expected a fresh turn, got %+v", e.Turn())
	}
	if _, ok := e.Winner(); ok {
		t.Error("Expected no winner")
	}

	for p := board.Red; p <= board.Yellow; p++ {
		for piece := 0; piece < board.PiecesPerPlayer; piece++ {
			if e.LocalPosition(p, piece) != board.Home {
				t.Errorf("Expected %v piece %d at home", p, piece)
			}
		}
		yard := e.Field(board.YardCell(p))
		if yard.Count() != board.PiecesPerPlayer || yard.Color() != p {
			t.Errorf("Expected 4 %v pieces in the yard, got %d of %v", p, yard.Count(), yard.Color())
		}
	}
	if e.Field(board.YardCell(board.Green)).Count() != 0 {
		t.Error("Expected the vacant seat's yard to be empty")
	}
	assertConservation(t, e)
}

func TestFieldsIsACopy(t *testing.T) {
	e := newGame(t, "Red", "Blue")
	fields := e.Fields()
	fields[0].remove(0)

	if e.Field(0).Count() != board.PiecesPerPlayer {
		t.Error("Mutating the returned table should not touch the engine")
	}
}

func TestQueriesOutOfRange(t *testing.T) {
	e := newGame(t, "Red", "Blue")

	if e.LocalPosition(board.NoColor, 0) != board.Home || e.LocalPosition(board.Red, 9) != board.Home {
		t.Error("Expected unknown pieces to report home")
	}
	if f := e.Field(-1); f.Count() != 0 || f.Color() != board.NoColor {
		t.Error("Expected an empty field outside the board")
	}
	if g, ok := e.GlobalFromLocal(board.Blue, 1); !ok || g != 29 {
		t.Errorf("Expected blue local 1 at 29, got %d (%v)", g, ok)
	}
	if l, ok := e.LocalFromGlobal(board.Blue, 16); !ok || l != 40 {
		t.Errorf("Expected global 16 at blue local 40, got %d (%v)", l, ok)
	}
}

func TestSnapshot(t *testing.T) {
	e := newGame(t, "Red", "Blue")
	place(t, e, board.Blue, 2, 5)

	s := e.Snapshot()
	if len(s.Players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(s.Players))
	}
	piece := s.Players[1].Pieces[2]
	if piece.Local != 5 || piece.Global != 33 {
		t.Errorf("Expected blue piece 2 at local 5 / global 33, got %+v", piece)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	for _, want := range []string{`"currentPlayer":"red"`, `"winner":"none"`, `"status":"INITIATED"`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("Expected %s in %s", want, data)
		}
	}
}

func TestRollDie(t *testing.T) {
	e, err := New([]string{"Red", "Blue"}, WithRandom(bytes.NewReader(bytes.Repeat([]byte{0x01, 0xff, 0x42, 0x07}, 64))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 32; i++ {
		d, err := e.ThrowDice()
		if err != nil {
			t.Fatalf("ThrowDice: %v", err)
		}
		if d < 1 || d > 6 {
			t.Fatalf("Expected a value in [1,6], got %d", d)
		}
	}

	if _, err := RollDie(bytes.NewReader(nil)); err == nil {
		t.Error("Expected an error from an exhausted reader")
	}
}
