package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wfunc/ludo/room"
)

func play(t *testing.T, locale string, players []string, input string) string {
	t.Helper()
	r, err := room.NewRoom("console", "Console", players)
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	var out bytes.Buffer
	c := New(r, strings.NewReader(input), &out, locale)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func assertLines(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, line := range want {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("Expected line %q in output:\n%s", line, out)
		}
	}
}

func TestConsole_EnterAndState(t *testing.T) {
	out := play(t, "en", []string{"Anna", "Bjorn"}, "roll 6\nmove 0\nstate\nroll 9\nmove 2\ndance\nquit\n")

	assertLines(t, out,
		"Anna to play",
		"Anna rolled 6",
		"Anna moved piece 0 from 0 to 1",
		"Bjorn to play",
		"Anna: 1 0 0 0",
		"Bjorn: 0 0 0 0",
		"Turn: Bjorn, dice 6",
		"Invalid dice value 9",
		"Roll the die first",
		`Unknown command "dance", type help`,
	)
}

func TestConsole_OnlyMovablePiecesAreRequested(t *testing.T) {
	input := strings.Join([]string{
		"roll 6", "move 0", // Anna enters
		"roll 1", "roll 1", "roll 1", // Bjorn misses three times
		"roll 3", "move 1", "move 0",
		"quit",
	}, "\n")
	out := play(t, "en", []string{"Anna", "Bjorn"}, input)

	assertLines(t, out,
		"Movable pieces: 0",
		"Piece 1 cannot move",
		"Anna moved piece 0 from 1 to 4",
	)
	if strings.Contains(out, "moved piece 1") {
		t.Errorf("Expected piece 1 to stay home:\n%s", out)
	}
}

func TestDisplayNameMarksInactivePlayers(t *testing.T) {
	c := &Console{printer: Printer("en")}
	if got := c.displayName("Anna", false); got != "Inactive: Anna" {
		t.Errorf("Expected %q, got %q", "Inactive: Anna", got)
	}
	if got := c.displayName("Anna", true); got != "Anna" {
		t.Errorf("Expected %q, got %q", "Anna", got)
	}

	nb := &Console{printer: Printer("nb")}
	if got := nb.displayName("Anna", false); got != "Inaktiv: Anna" {
		t.Errorf("Expected %q, got %q", "Inaktiv: Anna", got)
	}
}

func TestConsole_Norwegian(t *testing.T) {
	out := play(t, "nb", []string{"Anna", "Bjorn"}, "roll 2\nhelp\n")

	assertLines(t, out,
		"Anna sin tur",
		"Anna kastet 2",
		"Kommandoer: roll, roll <1-6>, move <0-3>, state, help, quit",
	)
}

func TestPrinterFallsBackToEnglish(t *testing.T) {
	for _, locale := range []string{"", "de", "not a tag"} {
		if got := Printer(locale).Sprintf(msgWon, "Anna"); got != "Anna has won!" {
			t.Errorf("locale %q: expected English, got %q", locale, got)
		}
	}
}
