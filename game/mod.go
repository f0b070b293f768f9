package game

// Rules is what a searcher needs to know about the game. Searchers only ever
// consume it; the standard implementation lives in standard.go.
type Rules interface {
	// LegalMoves returns the moves available to the player to move, in a
	// stable order for a given state
	LegalMoves(state State) []Move
	// Result returns the state reached by playing move. The input state is
	// left untouched.
	Result(state State, move Move) State
	IsTerminal(state State) bool
	// Utility is -1, 0 or 1 from player's perspective
	Utility(state State, player Player) float64
	ToMove(state State) Player
}

const (
	Boards = 4  // Sub-boards per game
	Side   = 4  // Rows and columns per sub-board
	Cells  = 16 // Cells per sub-board
)

type Player int

const (
	White Player = iota
	Black
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// HomeBoards are the two boards on a player's side of the rope. The passive
// part of a move must be played on one of them.
func HomeBoards(p Player) [2]int {
	if p == White {
		return [2]int{0, 1}
	}
	return [2]int{2, 3}
}

func IsHomeBoard(board int, p Player) bool {
	home := HomeBoards(p)
	return board == home[0] || board == home[1]
}

// Boards 0 and 2 are dark, 1 and 3 are light.
func IsDark(board int) bool {
	return board%2 == 0
}

// ActiveBoards lists the boards of the opposite colour to the passive board.
func ActiveBoards(passive int) [2]int {
	if IsDark(passive) {
		return [2]int{1, 3}
	}
	return [2]int{0, 2}
}
