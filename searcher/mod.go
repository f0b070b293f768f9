// Package searcher holds the two move-selection strategies: iterative
// deepening alpha-beta over a Zobrist-keyed memo, and UCT Monte-Carlo tree
// search. Both are single threaded and own all of their state.
package searcher

import (
	"math"
	"time"

	"shobu/game"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

const (
	StrategyAlphaBeta = "alphabeta"
	StrategyMCTS      = "mcts"
)

const WIN = 1.0
const LOSS = 0.0

// Searcher picks a move for the player to move in state. remaining is the
// time left on the player's clock.
type Searcher interface {
	Play(state game.State, remaining time.Duration) game.Move
}

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}

// newRand seeds a generator, drawing the seed from the OS when none is given.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return rand.New(rand.NewSource(seed))
}
