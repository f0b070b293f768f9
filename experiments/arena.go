// Package experiments plays configured agents against each other and records
// the outcome of every game and move.
package experiments

import (
	"context"
	"fmt"
	"sync/atomic"

	"shobu/agent"
	"shobu/config"
	"shobu/engine"
	"shobu/experiments/metrics"
	"shobu/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Pairing names two configured agents. The first one plays white in even
// numbered games.
type Pairing struct {
	First  string
	Second string
}

func (p Pairing) String() string {
	return p.First + " vs " + p.Second
}

// Standing is a pairing's score from the first agent's point of view.
type Standing struct {
	Pairing
	Wins   int
	Draws  int
	Losses int
}

func (s Standing) Games() int {
	return s.Wins + s.Draws + s.Losses
}

func (s Standing) Elo() (lower, mu, upper float64) {
	return Elo(s.Wins, s.Draws, s.Losses)
}

type Report struct {
	Standings []Standing
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
}

type Option func(a *Arena)

// WithGames sets the number of games per pairing.
func WithGames(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.games = n
		}
	}
}

// WithParallel bounds the number of games played at once.
func WithParallel(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.parallel = n
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(a *Arena) {
		a.logger = logger
	}
}

// WithProgress is called after every finished game.
func WithProgress(progress func(done, total int)) Option {
	return func(a *Arena) {
		a.progress = progress
	}
}

type Arena struct {
	cfg      config.Config
	rules    game.Rules
	games    int
	parallel int
	logger   zerolog.Logger
	progress func(done, total int)
}

func NewArena(cfg config.Config, options ...Option) *Arena {
	a := &Arena{
		cfg:      cfg,
		rules:    game.NewStandardRules(game.WithMaxPlies(cfg.MaxPlies)),
		games:    2,
		parallel: 1,
		logger:   log.Logger,
		progress: func(int, int) {},
	}
	for _, option := range options {
		option(a)
	}
	return a
}

type job struct {
	id      int
	pairing int
	white   string
	black   string
}

// Run plays every pairing, alternating colours between games. Each game owns
// its agents, so games never share a searcher.
func (a *Arena) Run(ctx context.Context, pairings []Pairing) (Report, error) {
	for _, p := range pairings {
		for _, name := range []string{p.First, p.Second} {
			if _, err := a.cfg.Agent(name); err != nil {
				return Report{}, err
			}
		}
	}

	jobs := make([]job, 0, len(pairings)*a.games)
	for pi, p := range pairings {
		for i := 0; i < a.games; i++ {
			white, black := p.First, p.Second
			if i%2 == 1 {
				white, black = black, white
			}
			jobs = append(jobs, job{id: len(jobs) + 1, pairing: pi, white: white, black: black})
		}
	}

	a.logger.Info().Msgf("starting %d games over %d pairings...", len(jobs), len(pairings))

	games := make([]metrics.GameMetric, len(jobs))
	moves := make([][]metrics.MoveMetric, len(jobs))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallel)
	for k, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gameMetric, moveMetrics, err := a.play(j)
			if err != nil {
				return fmt.Errorf("game %d: %w", j.id, err)
			}
			games[k], moves[k] = gameMetric, moveMetrics
			a.progress(int(done.Add(1)), len(jobs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Standings: lo.Map(pairings, func(p Pairing, _ int) Standing {
		return Standing{Pairing: p}
	})}
	for k, j := range jobs {
		report.Games = append(report.Games, metrics.GameRecord{ID: j.id, GameMetric: games[k]})
		for _, mm := range moves[k] {
			report.Moves = append(report.Moves, metrics.MoveRecord{Game: j.id, MoveMetric: mm})
		}

		standing := &report.Standings[j.pairing]
		result := games[k].Result
		if j.white != standing.First {
			result = -result
		}
		switch result {
		case metrics.Win:
			standing.Wins++
		case metrics.Draw:
			standing.Draws++
		case metrics.Loss:
			standing.Losses++
		}
	}

	a.logger.Info().Msgf("completed %d games", len(jobs))
	return report, nil
}

func (a *Arena) play(j job) (metrics.GameMetric, []metrics.MoveMetric, error) {
	logger := a.logger.With().Int("game", j.id).Logger()
	white, err := a.agent(j.white, game.White, a.seed(j, game.White), logger)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	black, err := a.agent(j.black, game.Black, a.seed(j, game.Black), logger)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	logger.Info().Msgf("starting game %d: %s (white) vs %s (black)...", j.id, j.white, j.black)
	e := engine.NewLocal(a.rules, white, black, engine.WithClock(a.cfg.Clock), engine.WithLogger(logger))
	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return gameMetric, moveMetrics, err
	}
	logger.Info().Msgf("completed game %d with result %s", j.id, gameMetric.Result)
	return gameMetric, moveMetrics, nil
}

func (a *Arena) agent(name string, player game.Player, seed uint64, logger zerolog.Logger) (agent.Agent, error) {
	cfg, err := a.cfg.Agent(name)
	if err != nil {
		return nil, err
	}
	return agent.New(name, player, a.rules, cfg, seed, logger)
}

// seed derives a distinct seed per game and player from the configured one.
// Zero stays zero so every searcher draws its own.
func (a *Arena) seed(j job, player game.Player) uint64 {
	if a.cfg.Seed == 0 {
		return 0
	}
	return a.cfg.Seed + uint64(2*j.id) + uint64(player)
}

// Agents lists the configuration of every agent named by the pairings.
func (a *Arena) Agents(pairings []Pairing) []metrics.AgentRecord {
	names := lo.Uniq(lo.FlatMap(pairings, func(p Pairing, _ int) []string {
		return []string{p.First, p.Second}
	}))
	return lo.FilterMap(names, func(name string, _ int) (metrics.AgentRecord, bool) {
		cfg, err := a.cfg.Agent(name)
		if err != nil {
			return metrics.AgentRecord{}, false
		}
		settings, err := yaml.Marshal(cfg)
		if err != nil {
			return metrics.AgentRecord{}, false
		}
		return metrics.AgentRecord{Name: name, Strategy: cfg.Strategy, Settings: string(settings)}, true
	})
}

// Save writes the report's records to a new timestamped folder under dir.
func (a *Arena) Save(dir string, pairings []Pairing, report Report) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgents(a.Agents(pairings)); err != nil {
		return "", fmt.Errorf("failed to store agents: %w", err)
	}
	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	return writer.Dir(), nil
}

// Summarize logs every standing with its elo estimate.
func (r Report) Summarize(logger zerolog.Logger) {
	for _, s := range r.Standings {
		lower, mu, upper := s.Elo()
		logger.Info().
			Str("pairing", s.String()).
			Int("wins", s.Wins).
			Int("draws", s.Draws).
			Int("losses", s.Losses).
			Msgf("elo %+.1f [%+.1f, %+.1f]", mu, lower, upper)
	}
}
