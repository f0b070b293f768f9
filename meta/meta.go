// meta/meta.go
package meta

// MaxDepth is the deepest iteration of the alpha-beta search.
const MaxDepth = 5

// OpeningRequests is the number of move requests answered from the opening
// table when one of its moves is legal.
const OpeningRequests = 2

// EarlyCaptureUntil is the first move request that no longer prefers an
// immediate capture.
const EarlyCaptureUntil = 3

// Iterations is the number of MCTS iterations per move.
const Iterations = 1000

// RolloutCap bounds the length of one random playout.
const RolloutCap = 500

// Exploration is c^2 in the UCB1 exploration term.
const Exploration = 2.0

// MaxPlies ends a game in a draw.
const MaxPlies = 300

// MemoCapacity of zero keeps every transposition entry for the agent's lifetime.
const MemoCapacity = 0
