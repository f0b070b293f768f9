package searcher

import (
	"shobu/game"

	"golang.org/x/exp/rand"
)

// Zobrist holds one random key per (board, cell, player). The table is fixed
// once built.
type Zobrist struct {
	keys [game.Boards][game.Cells][2]uint64
}

func NewZobrist(rng *rand.Rand) *Zobrist {
	z := &Zobrist{}
	for b := 0; b < game.Boards; b++ {
		for c := 0; c < game.Cells; c++ {
			for p := 0; p < 2; p++ {
				// A zero key would make a stone invisible to the hash
				k := rng.Uint64()
				for k == 0 {
					k = rng.Uint64()
				}
				z.keys[b][c][p] = k
			}
		}
	}
	return z
}

func (z *Zobrist) KeyFor(board, cell int, p game.Player) uint64 {
	return z.keys[board][cell][p]
}

// Hash XORs the keys of every occupied (board, cell, player).
func (z *Zobrist) Hash(s game.State) uint64 {
	var h uint64
	for b := 0; b < game.Boards; b++ {
		for p := game.White; p <= game.Black; p++ {
			mask := s.Boards[b][p]
			for cell := 0; mask != 0; cell++ {
				if mask&1 != 0 {
					h ^= z.keys[b][cell][p]
				}
				mask >>= 1
			}
		}
	}
	return h
}

// IncrementalHash returns the hash of the state reached by playing m, given
// hash = Hash(s). Only the cells touched by m are toggled.
func (z *Zobrist) IncrementalHash(hash uint64, s game.State, m game.Move, mover game.Player) uint64 {
	opponent := mover.Opponent()
	if from, to, ok := game.Pushed(s, m, mover); ok {
		hash ^= z.keys[m.ActiveBoard][from][opponent]
		if to >= 0 {
			hash ^= z.keys[m.ActiveBoard][to][opponent]
		}
	}
	passiveDest, _ := game.Step(m.PassiveStone, m.Direction, m.Length)
	activeDest, _ := game.Step(m.ActiveStone, m.Direction, m.Length)
	hash ^= z.keys[m.PassiveBoard][m.PassiveStone][mover] ^ z.keys[m.PassiveBoard][passiveDest][mover]
	hash ^= z.keys[m.ActiveBoard][m.ActiveStone][mover] ^ z.keys[m.ActiveBoard][activeDest][mover]
	return hash
}
