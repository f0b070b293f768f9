package searcher

import (
	"time"

	"shobu/experiments/metrics"
	"shobu/game"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// MCTS runs a fixed number of UCT iterations per request on a fresh tree.
type MCTS struct {
	player   game.Player
	rules    game.Rules
	settings settings
	logger   zerolog.Logger
	rng      *rand.Rand
	metrics  metrics.Collector
	tree     *Tree
	stats    metrics.SearchMetric
}

func NewMCTS(player game.Player, rules game.Rules, options ...Option) *MCTS {
	s := newSettings(options)
	if s.iterations <= 0 || s.rolloutCap <= 0 {
		panic("Must specify search iterations and a rollout cap")
	}
	return &MCTS{
		player:   player,
		rules:    rules,
		settings: s,
		logger:   s.logger.With().Str("strategy", StrategyMCTS).Stringer("player", player).Logger(),
		rng:      newRand(s.seed),
		metrics:  s.metrics,
	}
}

func (m *MCTS) Player() game.Player {
	return m.player
}

// Tree returns the tree built by the last request.
func (m *MCTS) Tree() *Tree {
	return m.tree
}

// Stats describes the last request. It is empty unless WithMetrics was given.
func (m *MCTS) Stats() metrics.SearchMetric {
	return m.stats
}

func (m *MCTS) Play(state game.State, remaining time.Duration) game.Move {
	m.metrics.Start(StrategyMCTS)

	m.tree = newTree(state)
	m.tree.expand(0, m.rules)
	if len(m.tree.nodes[0].children) == 0 {
		panic("No legal moves to choose from")
	}

	for i := 0; i < m.settings.iterations; i++ {
		leaf := m.selects(0)
		child := m.expand(leaf)
		result := m.simulate(m.tree.nodes[child].state)
		m.backup(child, result)
		m.metrics.AddEpisode()
	}
	m.stats = m.metrics.Complete(m.tree.Len())

	best, visits := m.mostVisited()
	m.logger.Debug().
		Stringer("move", best).
		Int("visits", visits).
		Int("nodes", m.tree.Len()).
		Msg("search complete")
	return best
}

func (m *MCTS) mostVisited() (game.Move, int) {
	root := m.tree.nodes[0]
	best := root.children[0]
	for _, c := range root.children[1:] {
		if m.tree.nodes[c].visits > m.tree.nodes[best].visits {
			best = c
		}
	}
	return m.tree.nodes[best].move, m.tree.nodes[best].visits
}

// selects descends by UCB1 until it reaches a terminal node or a node with a
// child whose own children are not yet materialised.
func (m *MCTS) selects(i int) int {
	t := m.tree
	if m.rules.IsTerminal(t.nodes[i].state) || len(t.nodes[i].children) == 0 {
		return i
	}

	current := i
	for {
		best := current
		bestScore := 0.0
		for k, c := range t.nodes[current].children {
			if !t.nodes[c].expanded {
				return current
			}
			if s := t.score(c, m.settings.exploration); k == 0 || s > bestScore {
				best, bestScore = c, s
			}
		}
		current = best
		if m.rules.IsTerminal(t.nodes[current].state) {
			return current
		}
	}
}

// expand returns the node a rollout starts from: a terminal child if there is
// one, otherwise a random unexpanded child after materialising its children.
func (m *MCTS) expand(i int) int {
	t := m.tree
	if m.rules.IsTerminal(t.nodes[i].state) {
		return i
	}
	t.expand(i, m.rules)

	var unexpanded []int
	for _, c := range t.nodes[i].children {
		if m.rules.IsTerminal(t.nodes[c].state) {
			return c
		}
		if !t.nodes[c].expanded {
			unexpanded = append(unexpanded, c)
		}
	}
	if len(unexpanded) == 0 {
		return i
	}

	child := unexpanded[m.rng.Intn(len(unexpanded))]
	t.expand(child, m.rules)
	return child
}

// simulate plays uniformly random moves and scores the final state for the
// engine's opponent.
func (m *MCTS) simulate(state game.State) float64 {
	opponent := m.player.Opponent()
	for ply := 0; ply < m.settings.rolloutCap; ply++ {
		if m.rules.IsTerminal(state) {
			m.metrics.AddFullPlayout()
			return m.rules.Utility(state, opponent)
		}
		moves := m.rules.LegalMoves(state)
		if len(moves) == 0 {
			return m.rules.Utility(state, opponent)
		}
		state = m.rules.Result(state, moves[m.rng.Intn(len(moves))])
	}
	return m.rules.Utility(state, opponent)
}

// backup credits a visit to every node on the path to the root, and a reward
// to those whose player to move is the winner.
func (m *MCTS) backup(i int, result float64) {
	winner := m.player.Opponent()
	if result > 0 {
		winner = m.player
	}
	for i != noParent {
		n := &m.tree.nodes[i]
		n.visits++
		if m.rules.ToMove(n.state) == winner {
			n.rewards += WIN
		}
		i = n.parent
	}
}
