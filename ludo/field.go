package ludo

import "github.com/wfunc/ludo/board"

// Field is one global cell. It holds up to four pieces, all of one color,
// indexed by piece number.
type Field struct {
	pieces [board.PiecesPerPlayer]bool
	color  board.Color
}

func newField() Field {
	return Field{color: board.NoColor}
}

// Count returns the number of pieces on the field.
func (f Field) Count() int {
	n := 0
	for _, present := range f.pieces {
		if present {
			n++
		}
	}
	return n
}

// Color returns the owner of the pieces, or board.NoColor when vacant.
func (f Field) Color() board.Color {
	return f.color
}

// Has reports whether piece sits on the field.
func (f Field) Has(piece int) bool {
	return piece >= 0 && piece < board.PiecesPerPlayer && f.pieces[piece]
}

// Pieces lists the piece numbers on the field in ascending order.
func (f Field) Pieces() []int {
	var out []int
	for i, present := range f.pieces {
		if present {
			out = append(out, i)
		}
	}
	return out
}

// first returns the lowest piece number on the field, or -1.
func (f Field) first() int {
	for i, present := range f.pieces {
		if present {
			return i
		}
	}
	return -1
}

func (f *Field) add(c board.Color, piece int) {
	f.pieces[piece] = true
	f.color = c
}

func (f *Field) remove(piece int) {
	f.pieces[piece] = false
	if f.Count() == 0 {
		f.color = board.NoColor
	}
}
