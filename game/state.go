package game

import (
	"math/bits"
	"strings"
)

// SubBoard holds one occupancy bitmask per player, bit i set when cell i is
// taken.
type SubBoard [2]uint16

// State is a value: copying it copies the whole position.
type State struct {
	Boards  [Boards]SubBoard
	ToMove  Player
	Utility int // 1 when white has won, -1 when black has won
	Ply     int
}

// NewInitialState puts every player's four stones on their back rank of every
// board. White moves first.
func NewInitialState() State {
	var s State
	for b := 0; b < Boards; b++ {
		s.Boards[b][White] = 0x000F
		s.Boards[b][Black] = 0xF000
	}
	s.ToMove = White
	return s
}

func (s State) Has(board, cell int, p Player) bool {
	return s.Boards[board][p]&(1<<cell) != 0
}

func (s State) Occupied(board, cell int) bool {
	return (s.Boards[board][White]|s.Boards[board][Black])&(1<<cell) != 0
}

func (s State) Count(board int, p Player) int {
	return bits.OnesCount16(s.Boards[board][p])
}

// Stones returns the cells occupied by p on board in ascending order.
func (s State) Stones(board int, p Player) []int {
	mask := s.Boards[board][p]
	stones := make([]int, 0, bits.OnesCount16(mask))
	for mask != 0 {
		cell := bits.TrailingZeros16(mask)
		stones = append(stones, cell)
		mask &= mask - 1
	}
	return stones
}

func (s *State) place(board, cell int, p Player) {
	s.Boards[board][p] |= 1 << cell
}

func (s *State) remove(board, cell int, p Player) {
	s.Boards[board][p] &^= 1 << cell
}

// Put is used to set up positions by hand.
func (s *State) Put(board int, p Player, cells ...int) {
	for _, cell := range cells {
		s.place(board, cell, p)
	}
}

// Winner returns the player that has won and false while nobody has.
func (s State) Winner() (Player, bool) {
	switch {
	case s.Utility > 0:
		return White, true
	case s.Utility < 0:
		return Black, true
	default:
		return White, false
	}
}

// String draws the four boards, black's home boards on top, one row of text
// per board row.
func (s State) String() string {
	var sb strings.Builder
	for _, pair := range [2][2]int{{2, 3}, {0, 1}} {
		for row := Side - 1; row >= 0; row-- {
			for i, board := range pair {
				if i > 0 {
					sb.WriteString(" | ")
				}
				for col := 0; col < Side; col++ {
					cell := row*Side + col
					switch {
					case s.Has(board, cell, White):
						sb.WriteByte('w')
					case s.Has(board, cell, Black):
						sb.WriteByte('b')
					default:
						sb.WriteByte('.')
					}
				}
			}
			sb.WriteByte('\n')
		}
		if pair[0] == 2 {
			sb.WriteString("---------------\n")
		}
	}
	return sb.String()
}
