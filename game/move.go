package game

import "fmt"

// Direction is the change in cell index for one step. Cells are numbered
// row*4 + col with row 0 at the bottom.
type Direction int

const (
	North     Direction = 4
	NorthEast Direction = 5
	East      Direction = 1
	SouthEast Direction = -3
	South     Direction = -4
	SouthWest Direction = -5
	West      Direction = -1
	NorthWest Direction = 3
)

// Directions in move generation order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func (d Direction) delta() (row, col int) {
	switch d {
	case North:
		return 1, 0
	case NorthEast:
		return 1, 1
	case East:
		return 0, 1
	case SouthEast:
		return -1, 1
	case South:
		return -1, 0
	case SouthWest:
		return -1, -1
	case West:
		return 0, -1
	case NorthWest:
		return 1, -1
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "?"
	}
}

// Step returns the cell reached after n steps from cell in direction d, and
// false if that leaves the board.
func Step(cell int, d Direction, n int) (int, bool) {
	dr, dc := d.delta()
	row := cell/Side + dr*n
	col := cell%Side + dc*n
	if row < 0 || row >= Side || col < 0 || col >= Side {
		return -1, false
	}
	return row*Side + col, true
}

// Move is a full Shobu turn: a passive move on one of the mover's home boards
// followed by the same direction and length on a board of the other colour.
type Move struct {
	PassiveBoard int
	PassiveStone int
	ActiveBoard  int
	ActiveStone  int
	Direction    Direction
	Length       int
}

func (m Move) String() string {
	return fmt.Sprintf("p%d:%d a%d:%d %s%d", m.PassiveBoard, m.PassiveStone, m.ActiveBoard, m.ActiveStone, m.Direction, m.Length)
}
