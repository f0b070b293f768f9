package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"shobu/config"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append(args, "--log-level", "disabled"))
	err := root.Execute()
	return out.String(), err
}

func tinyConfigFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
agents:
  alphabeta:
    strategy: alphabeta
    max_depth: 1
  mcts:
    strategy: mcts
    iterations: 5
    rollout_cap: 5
max_plies: 12
seed: 3
`), 0o644))
	return path
}

func TestConfigCommand(t *testing.T) {
	t.Run("printing the defaults without a file", func(t *testing.T) {
		out, err := run(t, "config", "--config", filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)

		cfg, err := config.Parse([]byte(out))
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})

	t.Run("writing the defaults with --init", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shobu", "agents.yaml")
		_, err := run(t, "config", "--init", "--config", path)
		require.NoError(t, err)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})
}

func TestPlayCommand(t *testing.T) {
	out, err := run(t, "play", "--config", tinyConfigFile(t))
	require.NoError(t, err)
	require.Contains(t, out, "after")

	_, err = run(t, "play", "--config", tinyConfigFile(t), "--white", "nobody")
	require.ErrorIs(t, err, config.ErrUnknownAgent)
}

func TestArenaCommand(t *testing.T) {
	t.Run("odd number of agents", func(t *testing.T) {
		_, err := run(t, "arena", "alphabeta")
		require.Error(t, err)
	})

	t.Run("writing records", func(t *testing.T) {
		out := t.TempDir()
		_, err := run(t, "arena", "alphabeta", "mcts", "--games", "2", "--config", tinyConfigFile(t), "--out", out)
		require.NoError(t, err)

		entries, err := os.ReadDir(out)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		_, err = os.Stat(filepath.Join(out, entries[0].Name(), "game_records.csv"))
		require.NoError(t, err)
	})
}

func TestLogLevel(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"config", "--log-level", "loud"})
	require.Error(t, root.Execute())
}
