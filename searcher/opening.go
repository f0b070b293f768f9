package searcher

import (
	"shobu/game"

	"github.com/samber/lo"
)

// Home corners are never used as the active stone of an early capture.
var corners = []int{0, 3, 12, 15}

// openingBook lists, in order of preference, the moves that step the outer
// back-rank stones diagonally towards the centre.
func openingBook(p game.Player) []game.Move {
	stones := [2]int{0, 3}
	directions := [2]game.Direction{game.NorthEast, game.NorthWest}
	if p == game.Black {
		stones = [2]int{12, 15}
		directions = [2]game.Direction{game.SouthEast, game.SouthWest}
	}

	book := make([]game.Move, 0, 8)
	for _, passive := range game.HomeBoards(p) {
		for _, active := range game.HomeBoards(p.Opponent()) {
			for k := range stones {
				book = append(book, game.Move{
					PassiveBoard: passive,
					PassiveStone: stones[k],
					ActiveBoard:  active,
					ActiveStone:  stones[k],
					Direction:    directions[k],
					Length:       1,
				})
			}
		}
	}
	return book
}

// openingMove returns the first book move found among the legal moves.
func openingMove(p game.Player, legal []game.Move) (game.Move, bool) {
	for _, m := range openingBook(p) {
		if lo.Contains(legal, m) {
			return m, true
		}
	}
	return game.Move{}, false
}

// earlyCapture returns the first legal move that captures with a stone that
// does not start on a home corner.
func earlyCapture(rules game.Rules, state game.State, p game.Player, legal []game.Move) (game.Move, bool) {
	opponent := p.Opponent()
	return lo.Find(legal, func(m game.Move) bool {
		if lo.Contains(corners, m.ActiveStone) {
			return false
		}
		next := rules.Result(state, m)
		return next.Count(m.ActiveBoard, opponent) < state.Count(m.ActiveBoard, opponent)
	})
}
