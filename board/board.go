// Package board maps each player's path-relative track positions onto the
// shared 92-cell Ludo board and back.
package board

// Color identifies a player by seat. Red always starts.
type Color int

const (
	NoColor Color = iota - 1
	Red
	Blue
	Yellow
	Green
)

const (
	Players         = 4
	PiecesPerPlayer = 4
	Cells           = 92

	// Local positions.
	Home         = 0
	Entry        = 1
	RingComplete = 53
	LaneStart    = 54
	Goal         = 59

	// Global layout.
	RingStart = 16
	RingSize  = 52
	LaneBase  = 68
	LaneSize  = 6

	RollToEnter = 6
	seatOffset  = 13
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	}
	return "none"
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Valid reports whether c is one of the four seats.
func (c Color) Valid() bool {
	return c >= Red && c <= Green
}

// Direction tells Resolve how a piece arrived at a cell. It only matters for
// the player's own entry square, which is both local 1 and local 53.
type Direction int

const (
	FromHome Direction = iota
	AlongRing
)

// YardCell is the global cell holding the player's pieces that have not entered.
func YardCell(c Color) int {
	return int(c) * PiecesPerPlayer
}

// SafeCell is the player's entry square on the ring.
func SafeCell(c Color) int {
	return RingStart + seatOffset*int(c)
}

// GoalCell is the last cell of the player's private lane.
func GoalCell(c Color) int {
	return LaneBase + LaneSize*int(c) + LaneSize - 1
}

// SafeCellOwner returns the player whose entry square is global, if any.
func SafeCellOwner(global int) (Color, bool) {
	if global < RingStart || global >= RingStart+RingSize {
		return NoColor, false
	}
	off := global - RingStart
	if off%seatOffset != 0 {
		return NoColor, false
	}
	return Color(off / seatOffset), true
}

// IsYard reports whether global lies in any player's home yard.
func IsYard(global int) bool {
	return global >= 0 && global < RingStart
}

// LocalToGlobal converts a local position in [0,59] to its global cell.
func LocalToGlobal(c Color, local int) (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	switch {
	case local == Home:
		return YardCell(c), true
	case local >= Entry && local < RingComplete:
		return RingStart + (seatOffset*int(c)+local-Entry)%RingSize, true
	case local == RingComplete:
		return SafeCell(c), true
	case local >= LaneStart && local <= Goal:
		return LaneBase + LaneSize*int(c) + local - LaneStart, true
	}
	return 0, false
}

// GlobalToLocal converts a global cell to the player's local position. The
// player's entry square resolves to Entry; use Resolve when the piece got
// there by completing the ring.
func GlobalToLocal(c Color, global int) (int, bool) {
	return Resolve(c, global, FromHome)
}

// Resolve converts global to a local position for c, using dir to pick
// between Entry and RingComplete on the player's own entry square. It
// returns false for cells that are not on the player's path.
func Resolve(c Color, global int, dir Direction) (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	switch {
	case global >= YardCell(c) && global < YardCell(c)+PiecesPerPlayer:
		return Home, true
	case global >= RingStart && global < RingStart+RingSize:
		local := ((global-RingStart-seatOffset*int(c))%RingSize+RingSize)%RingSize + Entry
		if local == Entry && dir == AlongRing {
			return RingComplete, true
		}
		return local, true
	case global >= LaneBase+LaneSize*int(c) && global <= GoalCell(c):
		return LaneStart + global - LaneBase - LaneSize*int(c), true
	}
	return 0, false
}
