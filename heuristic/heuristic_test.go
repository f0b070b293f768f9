package heuristic

import (
	"testing"

	"shobu/game"

	"github.com/stretchr/testify/require"
)

func board(white, black []int) game.SubBoard {
	var s game.State
	s.Put(0, game.White, white...)
	s.Put(0, game.Black, black...)
	return s.Boards[0]
}

func TestEvaluateTerminal(t *testing.T) {
	rules := game.NewStandardRules()
	s := game.NewInitialState()
	s.Boards[2][game.Black] = 0

	t.Run("a won position scores exactly 1", func(t *testing.T) {
		s.Utility = 1
		ev := New(game.White, rules, DefaultWeights)
		require.Equal(t, 1.0, ev.Evaluate(s, nil, game.Move{}))
	})

	t.Run("a lost position scores exactly 0", func(t *testing.T) {
		s.Utility = 1
		ev := New(game.Black, rules, DefaultWeights)
		require.Equal(t, 0.0, ev.Evaluate(s, nil, game.Move{}))
	})

	t.Run("black's win is seen from both sides", func(t *testing.T) {
		s.Utility = -1
		require.Equal(t, 1.0, New(game.Black, rules, DefaultWeights).Evaluate(s, nil, game.Move{}))
		require.Equal(t, 0.0, New(game.White, rules, DefaultWeights).Evaluate(s, nil, game.Move{}))
	})
}

func TestEvaluateIsWeightedSum(t *testing.T) {
	rules := game.NewStandardRules()
	s := game.NewInitialState()
	prior := s
	m := rules.LegalMoves(s)[0]
	s = rules.Result(s, m)

	for _, weights := range []Weights{DefaultWeights, {1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, {0, 0, 0, 0, 0, 0, 0, 0, 0, 2}} {
		ev := New(game.White, rules, weights)
		values := ev.Breakdown(s, &prior, m)
		expected := 0.0
		for i := range values {
			expected += weights[i] * values[i]
		}
		require.InDelta(t, expected, ev.Evaluate(s, &prior, m), 1e-12)
	}
}

func TestInitialFeatures(t *testing.T) {
	rules := game.NewStandardRules()
	s := game.NewInitialState()
	ev := New(game.White, rules, DefaultWeights)

	t.Run("full boards on both sides", func(t *testing.T) {
		require.InDelta(t, -0.25, materialByRegion(ev, s, nil, game.Move{}), 1e-12,
			"(2*40 + 2*30 - 4*45) / 160")
		require.InDelta(t, 0.5, nearTerminalMaterial(ev, s, nil, game.Move{}), 1e-12)
		require.InDelta(t, 0.25, regionalThresholds(ev, s, nil, game.Move{}), 1e-12,
			"both opponent home boards hold four of our stones")
	})

	t.Run("nobody holds the centre or is sandwiched", func(t *testing.T) {
		require.Equal(t, 0.0, centralCells(ev, s, nil, game.Move{}))
		require.Equal(t, 0.0, sandwichPressure(ev, s, nil, game.Move{}))
	})

	t.Run("move features are zero without a move", func(t *testing.T) {
		values := ev.Breakdown(s, nil, game.Move{})
		for i := 5; i < 9; i++ {
			require.Equal(t, 0.0, values[i], Names[i])
		}
	})

	t.Run("mobility counts legal moves", func(t *testing.T) {
		require.InDelta(t, float64(len(rules.LegalMoves(s)))/24, mobility(ev, s, nil, game.Move{}), 1e-12)
	})
}

func TestMaterialByRegion(t *testing.T) {
	rules := game.NewStandardRules()
	ev := New(game.White, rules, DefaultWeights)

	t.Run("opponent wiped out on a board scores 1", func(t *testing.T) {
		var s game.State
		s.Boards[0] = board([]int{0, 1, 2, 3}, []int{15})
		s.Boards[1] = board([]int{0}, []int{15})
		s.Boards[2] = board([]int{0}, nil)
		s.Boards[3] = board([]int{0}, []int{15})

		require.Equal(t, 1.0, materialByRegion(ev, s, nil, game.Move{}))
	})

	t.Run("own stones wiped out on a board scores 0", func(t *testing.T) {
		var s game.State
		s.Boards[0] = board([]int{0, 1, 2, 3}, []int{15})
		s.Boards[1] = board([]int{0}, []int{15})
		s.Boards[2] = board(nil, []int{15})
		s.Boards[3] = board([]int{0}, []int{15})

		require.Equal(t, 0.0, materialByRegion(ev, s, nil, game.Move{}))
	})
}

func TestSandwichAndCentre(t *testing.T) {
	rules := game.NewStandardRules()
	ev := New(game.White, rules, DefaultWeights)

	var s game.State
	s.Boards[0] = board([]int{5}, []int{4, 6, 1, 9})
	s.Boards[1] = board([]int{0}, []int{15})
	s.Boards[2] = board([]int{0}, []int{15})
	s.Boards[3] = board([]int{0}, []int{15})

	require.InDelta(t, 2.0/16, sandwichPressure(ev, s, nil, game.Move{}), 1e-12,
		"stone on 5 is flanked along its row and its column")
	require.InDelta(t, -1.0/16, centralCells(ev, s, nil, game.Move{}), 1e-12,
		"white holds 5, black holds 6 and 9")
}

func TestCaptureFeatures(t *testing.T) {
	rules := game.NewStandardRules()
	ev := New(game.White, rules, DefaultWeights)
	capture := game.Move{PassiveBoard: 0, PassiveStone: 0, ActiveBoard: 1, ActiveStone: 6, Direction: game.East, Length: 1}

	t.Run("a capture that can be answered on the same board", func(t *testing.T) {
		var prior game.State
		prior.Boards[0] = board([]int{0}, []int{12, 15})
		prior.Boards[1] = board([]int{6}, []int{5, 7, 15})
		prior.Boards[2] = board([]int{0}, []int{12, 15})
		prior.Boards[3] = board([]int{0}, []int{12, 15})
		require.Contains(t, rules.LegalMoves(prior), capture)
		s := rules.Result(prior, capture)

		require.Equal(t, 1.0, captures(ev, s, &prior, capture))
		require.Equal(t, 0.0, netCaptures(ev, s, &prior, capture),
			"black can push the stone on 7 off the board with 5 east 2")
		require.Equal(t, 1.0, captureSafety(ev, s, &prior, capture),
			"the vacated cell 6 sits between 5 and 7")
		require.Equal(t, 0.0, weakestRegionCapture(ev, s, &prior, capture),
			"every board is left with two black stones, board 0 comes first")
	})

	t.Run("a capture on the opponent's thinnest board", func(t *testing.T) {
		var prior game.State
		prior.Boards[0] = board([]int{0}, []int{12, 15})
		prior.Boards[1] = board([]int{6}, []int{7, 15})
		prior.Boards[2] = board([]int{0}, []int{12, 15})
		prior.Boards[3] = board([]int{0}, []int{12, 15})
		s := rules.Result(prior, capture)

		require.Equal(t, 1.0, weakestRegionCapture(ev, s, &prior, capture))
		require.Equal(t, 1.0, netCaptures(ev, s, &prior, capture))
	})

	t.Run("a quiet move scores no capture features", func(t *testing.T) {
		prior := game.NewInitialState()
		m := rules.LegalMoves(prior)[0]
		s := rules.Result(prior, m)

		require.Equal(t, 0.0, captures(ev, s, &prior, m))
		require.Equal(t, 0.0, captureSafety(ev, s, &prior, m))
		require.Equal(t, 0.0, weakestRegionCapture(ev, s, &prior, m))
	})
}

func TestCaptureSafety(t *testing.T) {
	rules := game.NewStandardRules()
	ev := New(game.White, rules, DefaultWeights)
	capture := game.Move{PassiveBoard: 0, PassiveStone: 0, ActiveBoard: 1, ActiveStone: 6, Direction: game.East, Length: 1}

	setup := func(white []int) game.State {
		var prior game.State
		prior.Boards[0] = board([]int{0}, []int{15})
		prior.Boards[1] = board(white, []int{7, 15})
		prior.Boards[2] = board([]int{0}, []int{15})
		prior.Boards[3] = board([]int{0}, []int{15})
		return prior
	}

	t.Run("own stones on both sides of the row count once", func(t *testing.T) {
		prior := setup([]int{5, 6})
		s := rules.Result(prior, capture)
		require.Equal(t, 1.0, captureSafety(ev, s, &prior, capture))
	})

	t.Run("a flanking diagonal adds one more", func(t *testing.T) {
		prior := setup([]int{3, 5, 6, 9})
		s := rules.Result(prior, capture)
		require.Equal(t, 2.0, captureSafety(ev, s, &prior, capture))
	})

	t.Run("both diagonals and the column add one each", func(t *testing.T) {
		prior := setup([]int{1, 6, 9, 11})
		prior.Boards[1][game.Black] = 0
		prior.Put(1, game.Black, 2, 3, 7, 10)
		s := rules.Result(prior, capture)
		// row: 5 is empty; column: 10 and 2; diagonals: 9/3 and 11/1
		require.Equal(t, 3.0, captureSafety(ev, s, &prior, capture))
	})
}
