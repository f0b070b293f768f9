package heuristic

import (
	"shobu/game"

	"github.com/samber/lo"
)

var centre = []int{5, 6, 9, 10}

func onLeftOrRight(cell int) bool {
	col := cell % game.Side
	return col == 0 || col == game.Side-1
}

func onTopOrBottom(cell int) bool {
	row := cell / game.Side
	return row == 0 || row == game.Side-1
}

func interior(cell int) bool {
	return !onLeftOrRight(cell) && !onTopOrBottom(cell)
}

// flanks lists the pairs of opposite neighbours of cell along the row, the
// column and both diagonals. Diagonals only count for interior cells.
func flanks(cell int) [][2]int {
	pairs := make([][2]int, 0, 4)
	if !onLeftOrRight(cell) {
		pairs = append(pairs, [2]int{cell + 1, cell - 1})
	}
	if !onTopOrBottom(cell) {
		pairs = append(pairs, [2]int{cell + 4, cell - 4})
	}
	if interior(cell) {
		pairs = append(pairs, [2]int{cell + 3, cell - 3}, [2]int{cell + 5, cell - 5})
	}
	return pairs
}

// captured counts the opponent stones the move removed from its active board.
func (ev *Evaluator) captured(state game.State, prior *game.State, move game.Move) int {
	opponent := ev.player.Opponent()
	return prior.Count(move.ActiveBoard, opponent) - state.Count(move.ActiveBoard, opponent)
}

// materialByRegion rewards holding three or four stones on a board, more so
// on home boards, and penalises the opponent doing the same. Losing every
// stone of a board is 0, wiping out the opponent on one is 1.
func materialByRegion(ev *Evaluator, state game.State, _ *game.State, _ game.Move) float64 {
	opponent := ev.player.Opponent()
	score := 0.0
	for b := 0; b < game.Boards; b++ {
		own := state.Count(b, ev.player)
		theirs := state.Count(b, opponent)
		if own == 0 {
			return 0
		}
		if theirs == 0 {
			return 1
		}

		home := game.IsHomeBoard(b, ev.player)
		switch own {
		case 4:
			score += lo.Ternary(home, 40.0, 30.0)
		case 3:
			score += lo.Ternary(home, 30.0, 20.0)
		case 2:
			score += 5
		}

		switch theirs {
		case 4:
			score -= 45
		case 3:
			score -= 15
		case 2:
			score -= 5
		case 1:
			score += 10
		}
	}
	return score / 4 / 40
}

// nearTerminalMaterial compares how many boards each side holds with k stones,
// scarce boards weighing the most.
func nearTerminalMaterial(ev *Evaluator, state game.State, _ *game.State, _ game.Move) float64 {
	if state.Utility != 0 {
		if winner, _ := state.Winner(); winner == ev.player {
			return 1
		}
		return 0
	}

	var mine, theirs [5]float64
	for b := 0; b < game.Boards; b++ {
		mine[state.Count(b, ev.player)]++
		theirs[state.Count(b, ev.player.Opponent())]++
	}
	if mine[0] > 0 {
		return 0
	}
	if theirs[0] > 0 {
		return 1
	}
	return 0.5 +
		(theirs[1]-mine[1])*0.1 +
		(theirs[2]-mine[2])*0.03 +
		(theirs[3]-mine[3])*0.008 +
		(theirs[4]-mine[4])*0.002
}

func centralCells(ev *Evaluator, state game.State, _ *game.State, _ game.Move) float64 {
	score := 0
	for b := 0; b < game.Boards; b++ {
		for _, cell := range centre {
			if state.Has(b, cell, ev.player) {
				score++
			} else if state.Has(b, cell, ev.player.Opponent()) {
				score--
			}
		}
	}
	return float64(score) / 16
}

// sandwichPressure counts own stones with an opponent stone on both sides
// along some line.
func sandwichPressure(ev *Evaluator, state game.State, _ *game.State, _ game.Move) float64 {
	opponent := ev.player.Opponent()
	score := 0
	for b := 0; b < game.Boards; b++ {
		for _, cell := range state.Stones(b, ev.player) {
			for _, pair := range flanks(cell) {
				if state.Has(b, pair[0], opponent) && state.Has(b, pair[1], opponent) {
					score++
				}
			}
		}
	}
	return float64(score) / 16
}

func mobility(ev *Evaluator, state game.State, _ *game.State, _ game.Move) float64 {
	return float64(len(ev.rules.LegalMoves(state))) / 24
}

// netCaptures is the capture count of the move minus the replies that would
// take back one of our stones on the same board.
func netCaptures(ev *Evaluator, state game.State, prior *game.State, move game.Move) float64 {
	if prior == nil {
		return 0
	}
	score := ev.captured(state, prior, move)
	before := prior.Count(move.ActiveBoard, ev.player)
	for _, reply := range ev.rules.LegalMoves(state) {
		if reply.ActiveBoard != move.ActiveBoard {
			continue
		}
		after := ev.rules.Result(state, reply)
		if before-after.Count(move.ActiveBoard, ev.player) > 0 {
			score--
		}
	}
	return float64(score)
}

func captures(ev *Evaluator, state game.State, prior *game.State, move game.Move) float64 {
	if prior == nil {
		return 0
	}
	return float64(ev.captured(state, prior, move))
}

// captureSafety looks at the cell the active stone left after a single
// capture and counts the lines along which it is now closed in on both sides.
func captureSafety(ev *Evaluator, state game.State, prior *game.State, move game.Move) float64 {
	if prior == nil || ev.captured(state, prior, move) != 1 {
		return 0
	}
	score := 0
	for _, pair := range flanks(move.ActiveStone) {
		if state.Occupied(move.ActiveBoard, pair[0]) && state.Occupied(move.ActiveBoard, pair[1]) {
			score++
		}
	}
	return float64(score)
}

// weakestRegionCapture is 1 when the move captured on the board where the
// opponent is now thinnest.
func weakestRegionCapture(ev *Evaluator, state game.State, prior *game.State, move game.Move) float64 {
	if prior == nil || ev.captured(state, prior, move) <= 0 {
		return 0
	}
	opponent := ev.player.Opponent()
	weakest := 0
	for b := 1; b < game.Boards; b++ {
		if state.Count(b, opponent) < state.Count(weakest, opponent) {
			weakest = b
		}
	}
	return lo.Ternary(weakest == move.ActiveBoard, 1.0, 0.0)
}

// regionalThresholds rewards three-stone footholds on the opponent's home
// boards and thinning them out there, and flags the same on our own.
func regionalThresholds(ev *Evaluator, state game.State, _ *game.State, _ game.Move) float64 {
	opponent := ev.player.Opponent()
	score := 0
	for _, b := range game.HomeBoards(opponent) {
		if state.Count(b, ev.player) >= 3 {
			score++
		}
		if state.Count(b, opponent) < 3 {
			score++
		}
	}
	for _, b := range game.HomeBoards(ev.player) {
		if state.Count(b, opponent) == 3 {
			score++
		}
		if state.Count(b, ev.player) < 3 {
			score++
		}
	}
	return float64(score) / 8
}
