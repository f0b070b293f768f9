package game

import "shobu/meta"

type StandardOption func(r *StandardRules)

// WithMaxPlies ends the game in a draw once plies moves have been played.
// Zero or less disables the limit.
func WithMaxPlies(plies int) StandardOption {
	return func(r *StandardRules) {
		r.maxPlies = plies
	}
}

type StandardRules struct {
	maxPlies int
}

func NewStandardRules(options ...StandardOption) *StandardRules {
	r := &StandardRules{maxPlies: meta.MaxPlies}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *StandardRules) MaxPlies() int {
	return r.maxPlies
}

func (r *StandardRules) LegalMoves(s State) []Move {
	if s.Utility != 0 || r.capped(s) {
		return nil
	}
	moves := make([]Move, 0, 128)
	generate(s, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

func (r *StandardRules) Result(s State, m Move) State {
	return play(s, m, s.ToMove)
}

func (r *StandardRules) IsTerminal(s State) bool {
	return s.Utility != 0 || r.capped(s) || !hasMove(s)
}

func (r *StandardRules) Utility(s State, p Player) float64 {
	var u float64
	switch {
	case s.Utility != 0:
		u = float64(s.Utility)
	case r.capped(s):
		return 0
	case !hasMove(s):
		// A player who cannot move loses
		if s.ToMove == White {
			u = -1
		} else {
			u = 1
		}
	default:
		return 0
	}
	if p == Black {
		return -u
	}
	return u
}

func (r *StandardRules) ToMove(s State) Player {
	return s.ToMove
}

func (r *StandardRules) capped(s State) bool {
	return r.maxPlies > 0 && s.Ply >= r.maxPlies
}

func hasMove(s State) bool {
	found := false
	generate(s, func(Move) bool {
		found = true
		return false
	})
	return found
}
