package game

// passiveLegal reports whether p's stone on cell can move length steps in d
// without leaving the board or touching any stone.
func passiveLegal(s State, board, cell int, d Direction, length int) bool {
	for step := 1; step <= length; step++ {
		next, ok := Step(cell, d, step)
		if !ok || s.Occupied(board, next) {
			return false
		}
	}
	return true
}

// activeLegal reports whether p's stone on cell can move length steps in d,
// pushing at most one opponent stone and never one of its own.
func activeLegal(s State, board, cell int, d Direction, length int, p Player) bool {
	dest, ok := Step(cell, d, length)
	if !ok {
		return false
	}
	pushed := 0
	for step := 1; step <= length; step++ {
		next, _ := Step(cell, d, step)
		if s.Has(board, next, p) {
			return false
		}
		if s.Has(board, next, p.Opponent()) {
			pushed++
		}
	}
	if pushed == 0 {
		return true
	}
	if pushed > 1 {
		return false
	}
	// The pushed stone lands just past the destination; it may fall off the
	// board but may not land on another stone.
	behind, ok := Step(dest, d, 1)
	return !ok || !s.Occupied(board, behind)
}

// Pushed finds the opponent stone moved by the active part of m. It returns
// the stone's cell, where it lands (-1 when pushed off the board) and false
// when the move pushes nothing.
func Pushed(s State, m Move, mover Player) (from, to int, ok bool) {
	opponent := mover.Opponent()
	for step := 1; step <= m.Length; step++ {
		cell, inside := Step(m.ActiveStone, m.Direction, step)
		if !inside {
			break
		}
		if s.Has(m.ActiveBoard, cell, opponent) {
			landing, onBoard := Step(m.ActiveStone, m.Direction, m.Length+1)
			if !onBoard {
				landing = -1
			}
			return cell, landing, true
		}
	}
	return -1, -1, false
}

// play applies m for mover without checking legality.
func play(s State, m Move, mover Player) State {
	next := s
	passiveDest, _ := Step(m.PassiveStone, m.Direction, m.Length)
	activeDest, _ := Step(m.ActiveStone, m.Direction, m.Length)

	if from, to, ok := Pushed(s, m, mover); ok {
		next.remove(m.ActiveBoard, from, mover.Opponent())
		if to >= 0 {
			next.place(m.ActiveBoard, to, mover.Opponent())
		}
	}
	next.remove(m.PassiveBoard, m.PassiveStone, mover)
	next.place(m.PassiveBoard, passiveDest, mover)
	next.remove(m.ActiveBoard, m.ActiveStone, mover)
	next.place(m.ActiveBoard, activeDest, mover)

	for b := 0; b < Boards; b++ {
		if next.Count(b, mover.Opponent()) == 0 {
			if mover == White {
				next.Utility = 1
			} else {
				next.Utility = -1
			}
			break
		}
	}
	next.ToMove = mover.Opponent()
	next.Ply++
	return next
}

// generate calls yield for every legal move of the player to move, in
// generation order, until yield returns false.
func generate(s State, yield func(Move) bool) {
	p := s.ToMove
	for _, passive := range HomeBoards(p) {
		for _, stone := range s.Stones(passive, p) {
			for _, d := range Directions {
				for length := 1; length <= 2; length++ {
					if !passiveLegal(s, passive, stone, d, length) {
						continue
					}
					for _, active := range ActiveBoards(passive) {
						for _, activeStone := range s.Stones(active, p) {
							if !activeLegal(s, active, activeStone, d, length, p) {
								continue
							}
							m := Move{
								PassiveBoard: passive,
								PassiveStone: stone,
								ActiveBoard:  active,
								ActiveStone:  activeStone,
								Direction:    d,
								Length:       length,
							}
							if !yield(m) {
								return
							}
						}
					}
				}
			}
		}
	}
}
