// Package agent puts a configured searcher behind a name.
package agent

import (
	"fmt"
	"time"

	"shobu/config"
	"shobu/experiments/metrics"
	"shobu/game"
	"shobu/searcher"

	"github.com/rs/zerolog"
)

type Agent interface {
	// Play returns a legal move for the player to move in state
	Play(state game.State, remaining time.Duration) game.Move
	Name() string
}

// Measured agents report statistics about their last move.
type Measured interface {
	Stats() metrics.SearchMetric
}

type engine interface {
	searcher.Searcher
	Stats() metrics.SearchMetric
}

type searchAgent struct {
	name   string
	engine engine
}

func (a *searchAgent) Play(state game.State, remaining time.Duration) game.Move {
	return a.engine.Play(state, remaining)
}

func (a *searchAgent) Name() string {
	return a.name
}

func (a *searchAgent) Stats() metrics.SearchMetric {
	return a.engine.Stats()
}

// New builds the searcher described by cfg to play as player. A zero seed
// draws the searcher's randomness from the OS.
func New(name string, player game.Player, rules game.Rules, cfg config.Agent, seed uint64, logger zerolog.Logger) (Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build agent %s: %w", name, err)
	}

	options := Options(cfg)
	options = append(options,
		searcher.WithSeed(seed),
		searcher.WithLogger(logger.With().Str("agent", name).Logger()),
		searcher.WithMetrics(),
	)

	var e engine
	switch cfg.Strategy {
	case config.StrategyAlphaBeta:
		e = searcher.NewAlphaBeta(player, rules, options...)
	case config.StrategyMCTS:
		e = searcher.NewMCTS(player, rules, options...)
	default:
		return nil, fmt.Errorf("failed to build agent %s: %w: %q", name, config.ErrUnknownStrategy, cfg.Strategy)
	}
	return &searchAgent{name: name, engine: e}, nil
}

// Options translates an agent configuration into searcher options.
func Options(cfg config.Agent) []searcher.Option {
	options := []searcher.Option{
		searcher.WithMaxDepth(cfg.MaxDepth),
		searcher.WithMemoCapacity(cfg.MemoCapacity),
		searcher.WithWeights(cfg.HeuristicWeights()),
		searcher.WithTimeBudget(cfg.TimeBudget),
		searcher.WithIterations(cfg.Iterations),
		searcher.WithRolloutCap(cfg.RolloutCap),
		searcher.WithExploration(cfg.Exploration),
	}
	if cfg.OpeningRequests != nil {
		options = append(options, searcher.WithOpeningRequests(*cfg.OpeningRequests))
	}
	if cfg.EarlyCaptureUntil != nil {
		options = append(options, searcher.WithEarlyCaptureUntil(*cfg.EarlyCaptureUntil))
	}
	return options
}
