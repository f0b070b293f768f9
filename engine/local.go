package engine

import (
	"fmt"
	"time"

	"shobu/agent"
	"shobu/experiments/metrics"
	"shobu/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Option func(l *Local)

// WithClock gives each player d of thinking time for the whole game. Agents
// are told what is left but are not stopped when it runs out.
func WithClock(d time.Duration) Option {
	return func(l *Local) {
		l.remaining = [2]time.Duration{d, d}
	}
}

func WithInitialState(s game.State) Option {
	return func(l *Local) {
		l.state = s
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Local) {
		l.logger = logger
	}
}

// Local plays two in-process agents against each other.
type Local struct {
	rules     game.Rules
	agents    [2]agent.Agent
	state     game.State
	remaining [2]time.Duration
	logger    zerolog.Logger
}

func NewLocal(rules game.Rules, white, black agent.Agent, options ...Option) *Local {
	if white == nil || black == nil {
		panic("need an agent for each player")
	}
	l := &Local{
		rules:  rules,
		agents: [2]agent.Agent{white, black},
		state:  game.NewInitialState(),
		logger: log.Logger,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// State is the position reached so far.
func (l *Local) State() game.State {
	return l.state
}

func (l *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		White:     l.agents[game.White].Name(),
		Black:     l.agents[game.Black].Name(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	l.logger.Info().Msgf("%s (white) vs %s (black)", gameMetric.White, gameMetric.Black)

	step := 0
	for !l.rules.IsTerminal(l.state) && step < MaxMoves {
		player := l.rules.ToMove(l.state)
		current := l.agents[player]
		legal := l.rules.LegalMoves(l.state)

		start := time.Now()
		move := current.Play(l.state, l.remaining[player])
		l.remaining[player] -= time.Since(start)

		if !lo.Contains(legal, move) {
			return gameMetric, moveMetrics, fmt.Errorf("%w: %s played %s at step %d", ErrIllegalMove, current.Name(), move, step)
		}

		moveMetric := metrics.MoveMetric{Step: step, Player: int(player), Move: move.String()}
		if measured, ok := current.(agent.Measured); ok {
			moveMetric.SearchMetric = measured.Stats()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		l.state = l.rules.Result(l.state, move)
		step++
		l.logger.Debug().
			Int("step", step).
			Stringer("player", player).
			Stringer("move", move).
			Dur("remaining", l.remaining[player]).
			Msg("move played")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	switch u := l.rules.Utility(l.state, game.White); {
	case u > 0:
		gameMetric.Winner = gameMetric.White
		gameMetric.Result = metrics.Win
	case u < 0:
		gameMetric.Winner = gameMetric.Black
		gameMetric.Result = metrics.Loss
	}

	l.logger.Info().Msgf("%s after %d moves", gameMetric.Result, step)
	return gameMetric, moveMetrics, nil
}
