package searcher

import (
	"math"
	"testing"

	"shobu/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestHash(t *testing.T) {
	z := NewZobrist(rand.New(rand.NewSource(7)))

	t.Run("equal states", func(t *testing.T) {
		a := game.NewInitialState()
		b := game.NewInitialState()
		require.Equal(t, z.Hash(a), z.Hash(b))
	})

	t.Run("ignoring the player to move", func(t *testing.T) {
		a := game.NewInitialState()
		b := a
		b.ToMove = game.Black
		require.Equal(t, z.Hash(a), z.Hash(b))
	})

	t.Run("moved stone", func(t *testing.T) {
		a := game.NewInitialState()
		b := game.NewInitialState()
		b.Boards[2][game.White] = 0
		b.Put(2, game.White, 0, 1, 2, 7)
		require.NotEqual(t, z.Hash(a), z.Hash(b))
	})

	t.Run("stone owner", func(t *testing.T) {
		var a, b game.State
		a.Put(1, game.White, 6)
		b.Put(1, game.Black, 6)
		require.NotEqual(t, z.Hash(a), z.Hash(b))
		require.Equal(t, z.KeyFor(1, 6, game.White), z.Hash(a))
	})

	t.Run("same seed same table", func(t *testing.T) {
		other := NewZobrist(rand.New(rand.NewSource(7)))
		require.Equal(t, z.Hash(game.NewInitialState()), other.Hash(game.NewInitialState()))
	})
}

func TestIncrementalHash(t *testing.T) {
	z := NewZobrist(rand.New(rand.NewSource(11)))
	rules := game.NewStandardRules(game.WithMaxPlies(120))
	rng := rand.New(rand.NewSource(3))

	captures := 0
	for g := 0; g < 20; g++ {
		s := game.NewInitialState()
		for !rules.IsTerminal(s) {
			moves := rules.LegalMoves(s)
			m := moves[rng.Intn(len(moves))]
			next := rules.Result(s, m)
			if _, to, ok := game.Pushed(s, m, s.ToMove); ok && to < 0 {
				captures++
			}

			require.Equal(t, z.Hash(next), z.IncrementalHash(z.Hash(s), s, m, s.ToMove),
				"move %s from\n%s", m, s)
			s = next
		}
	}
	require.Positive(t, captures, "random games should include captures")
}

// playouts returns every state of seeded random games, initial states included.
func playouts(rules game.Rules, games int, seed uint64) []game.State {
	rng := rand.New(rand.NewSource(seed))
	var states []game.State
	for g := 0; g < games; g++ {
		s := game.NewInitialState()
		states = append(states, s)
		for !rules.IsTerminal(s) {
			moves := rules.LegalMoves(s)
			s = rules.Result(s, moves[rng.Intn(len(moves))])
			states = append(states, s)
		}
	}
	return states
}

func TestHashCollisions(t *testing.T) {
	z := NewZobrist(rand.New(rand.NewSource(13)))
	rules := game.NewStandardRules(game.WithMaxPlies(120))
	states := playouts(rules, 200, 17)

	t.Run("distinct layouts over random games", func(t *testing.T) {
		seen := make(map[uint64][game.Boards]game.SubBoard)
		collisions := 0
		for _, s := range states {
			h := z.Hash(s)
			if boards, ok := seen[h]; ok {
				if boards != s.Boards {
					collisions++
				}
				continue
			}
			seen[h] = s.Boards
		}
		t.Logf("%d states, %d distinct hashes, %d collisions", len(states), len(seen), collisions)
		require.Greater(t, len(seen), 10000)
		require.Zero(t, collisions)
	})

	t.Run("memo and no memo agree within one iteration", func(t *testing.T) {
		// Deeper searches reuse shallower values by design, so only a single
		// iteration isolates what a colliding key could change.
		deviation := 0.0
		sampled := 0
		for i := 0; i < len(states); i += 97 {
			s := states[i]
			if rules.IsTerminal(s) {
				continue
			}
			memo := NewAlphaBeta(s.ToMove, rules, searchOnly(WithMaxDepth(1))...)
			plain := NewAlphaBeta(s.ToMove, rules, searchOnly(WithMaxDepth(1), WithTransposition(false))...)

			require.Equal(t, plain.Play(s, 0), memo.Play(s, 0))
			a, b := memo.DepthScores(), plain.DepthScores()
			require.Equal(t, len(b), len(a))
			for k := range a {
				deviation = max(deviation, math.Abs(a[k]-b[k]))
			}
			sampled++
		}
		t.Logf("%d positions, largest score deviation %g", sampled, deviation)
		require.Positive(t, sampled)
		require.LessOrEqual(t, deviation, 1e-12)
	})
}
