package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("nb"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Printer returns a printer for the closest supported locale, English when
// locale is empty or unknown.
func Printer(locale string) *message.Printer {
	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, conf := tagMatcher.Match(parsed)
		if conf != language.No {
			tag = supportedTags[idx]
		}
	}
	return message.NewPrinter(tag)
}

const (
	msgRolled      = "%s rolled %d"
	msgMovable     = "Movable pieces: %s"
	msgMoved       = "%s moved piece %d from %d to %d"
	msgSentHome    = "%s lost piece %d, it goes back home"
	msgToPlay      = "%s to play"
	msgWon         = "%s has won!"
	msgInactive    = "Inactive: %s"
	msgUnknown     = "Unknown command %q, type help"
	msgCannotMove  = "Piece %d cannot move"
	msgNoPiece     = "There is no piece %s"
	msgRollFirst   = "Roll the die first"
	msgInvalidDice = "Invalid dice value %s"
	msgGameOver    = "The game is over"
	msgPieces      = "%s: %s"
	msgTurn        = "Turn: %s, dice %d"
	msgHelp        = "Commands: roll, roll <1-6>, move <0-3>, state, help, quit"
	msgRollFailed  = "Could not roll: %v"
)

func init() {
	en := language.English
	message.SetString(en, msgRolled, "%s rolled %d")
	message.SetString(en, msgMovable, "Movable pieces: %s")
	message.SetString(en, msgMoved, "%s moved piece %d from %d to %d")
	message.SetString(en, msgSentHome, "%s lost piece %d, it goes back home")
	message.SetString(en, msgToPlay, "%s to play")
	message.SetString(en, msgWon, "%s has won!")
	message.SetString(en, msgInactive, "Inactive: %s")
	message.SetString(en, msgUnknown, "Unknown command %q, type help")
	message.SetString(en, msgCannotMove, "Piece %d cannot move")
	message.SetString(en, msgNoPiece, "There is no piece %s")
	message.SetString(en, msgRollFirst, "Roll the die first")
	message.SetString(en, msgInvalidDice, "Invalid dice value %s")
	message.SetString(en, msgGameOver, "The game is over")
	message.SetString(en, msgPieces, "%s: %s")
	message.SetString(en, msgTurn, "Turn: %s, dice %d")
	message.SetString(en, msgHelp, "Commands: roll, roll <1-6>, move <0-3>, state, help, quit")
	message.SetString(en, msgRollFailed, "Could not roll: %v")

	nb := language.MustParse("nb")
	message.SetString(nb, msgRolled, "%s kastet %d")
	message.SetString(nb, msgMovable, "Brikker som kan flyttes: %s")
	message.SetString(nb, msgMoved, "%s flyttet brikke %d fra %d til %d")
	message.SetString(nb, msgSentHome, "%s mistet brikke %d, den går tilbake hjem")
	message.SetString(nb, msgToPlay, "%s sin tur")
	message.SetString(nb, msgWon, "%s har vunnet!")
	message.SetString(nb, msgInactive, "Inaktiv: %s")
	message.SetString(nb, msgUnknown, "Ukjent kommando %q, skriv help")
	message.SetString(nb, msgCannotMove, "Brikke %d kan ikke flyttes")
	message.SetString(nb, msgNoPiece, "Det finnes ingen brikke %s")
	message.SetString(nb, msgRollFirst, "Kast terningen først")
	message.SetString(nb, msgInvalidDice, "Ugyldig terningverdi %s")
	message.SetString(nb, msgGameOver, "Spillet er over")
	message.SetString(nb, msgPieces, "%s: %s")
	message.SetString(nb, msgTurn, "Tur: %s, terning %d")
	message.SetString(nb, msgHelp, "Kommandoer: roll, roll <1-6>, move <0-3>, state, help, quit")
	message.SetString(nb, msgRollFailed, "Kunne ikke kaste: %v")
}
