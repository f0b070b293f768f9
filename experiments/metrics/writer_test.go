package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	t.Run("one row per game after the header", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		records := []GameRecord{
			{ID: 1, GameMetric: GameMetric{White: "ab", Black: "mcts", Winner: "ab", Result: Win, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 31}},
			{ID: 2, GameMetric: GameMetric{White: "mcts", Black: "ab", Result: Draw, TotalMoves: 300}},
		}
		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "ab", "mcts", "1-0", "ab", "31", "2024-05-01T12:00:00Z", "2024-05-01T12:00:01Z", "1s"}, rows[1])
		require.Equal(t, "1/2-1/2", rows[2][3])
	})

	t.Run("search statistics for every move", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 0, Player: 0, Move: "m", SearchMetric: SearchMetric{Strategy: "alphabeta", Shortcut: ShortcutOpening}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 1, Move: "n", SearchMetric: SearchMetric{Strategy: "mcts", Episodes: 1000, FullPlayouts: 990}}},
		}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "opening", rows[1][5])
		require.Equal(t, "1000", rows[2][12])
		require.Equal(t, "990", rows[2][13])
	})

	t.Run("listing the agents", func(t *testing.T) {
		require.NoError(t, w.WriteAgents([]AgentRecord{{Name: "ab", Strategy: "alphabeta", Settings: "max_depth=5"}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "agents.csv"))
		require.Equal(t, [][]string{{"name", "strategy", "settings"}, {"ab", "alphabeta", "max_depth=5"}}, rows)
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("alphabeta")
	c.AddNode()
	c.AddNode()
	c.AddEvaluation()
	c.AddMemoHit()
	c.SetDepth(3)
	m := c.Complete(12)

	require.Equal(t, "alphabeta", m.Strategy)
	require.Equal(t, 2, m.Nodes)
	require.Equal(t, 1, m.Evaluations)
	require.Equal(t, 1, m.MemoHits)
	require.Equal(t, 3, m.Depth)
	require.Equal(t, 12, m.MemoSize)

	c.Start("mcts")
	require.Zero(t, c.Complete(0).Nodes, "a new request starts from zero")

	require.Zero(t, NewDummyCollector().Complete(5))
}
