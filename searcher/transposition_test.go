package searcher

import (
	"testing"

	"shobu/game"

	"github.com/stretchr/testify/require"
)

func TestTransposition(t *testing.T) {
	t.Run("unbounded keeps every entry", func(t *testing.T) {
		memo := NewTransposition(0)
		for k := uint64(1); k <= 100; k++ {
			memo.Put(k, Entry{Score: float64(k)})
		}
		require.Equal(t, 100, memo.Len())
		e, ok := memo.Get(42)
		require.True(t, ok)
		require.Equal(t, 42.0, e.Score)
		require.False(t, e.HasMove)
	})

	t.Run("bounded evicts the least recently used entry", func(t *testing.T) {
		memo := NewTransposition(2)
		memo.Put(1, Entry{Score: 1})
		memo.Put(2, Entry{Score: 2})
		_, ok := memo.Get(1)
		require.True(t, ok)
		memo.Put(3, Entry{Score: 3})

		require.Equal(t, 2, memo.Len())
		_, ok = memo.Get(2)
		require.False(t, ok, "2 was the least recently used")
		_, ok = memo.Get(1)
		require.True(t, ok)
		_, ok = memo.Get(3)
		require.True(t, ok)
	})

	t.Run("overwriting a colliding key", func(t *testing.T) {
		memo := NewTransposition(0)
		m := game.Move{PassiveBoard: 0, ActiveBoard: 1, Direction: game.North, Length: 1}
		memo.Put(9, Entry{Score: 0.5})
		memo.Put(9, Entry{Score: 0.25, Move: m, HasMove: true})
		e, _ := memo.Get(9)
		require.Equal(t, Entry{Score: 0.25, Move: m, HasMove: true}, e)
		require.Equal(t, 1, memo.Len())
	})

	t.Run("clearing", func(t *testing.T) {
		for _, capacity := range []int{0, 8} {
			memo := NewTransposition(capacity)
			memo.Put(1, Entry{})
			memo.Clear()
			require.Zero(t, memo.Len())
		}
	})
}
