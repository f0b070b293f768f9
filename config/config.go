// Package config reads the agent definitions used by the command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"shobu/heuristic"
	"shobu/meta"
	"shobu/searcher"

	"github.com/adrg/xdg"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	StrategyAlphaBeta = searcher.StrategyAlphaBeta
	StrategyMCTS      = searcher.StrategyMCTS
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrUnknownAgent    = errors.New("unknown agent")
	ErrInvalid         = errors.New("invalid configuration")
)

// Path is where the configuration is looked up when no file is given.
var Path = filepath.Join(xdg.ConfigHome, "shobu", "agents.yaml")

// Agent configures one searcher. Zero values mean the default from meta.
type Agent struct {
	Strategy string `yaml:"strategy"`

	// Alpha-beta
	MaxDepth          int       `yaml:"max_depth,omitempty"`
	MemoCapacity      int       `yaml:"memo_capacity,omitempty"`
	OpeningRequests   *int      `yaml:"opening_requests,omitempty"`
	EarlyCaptureUntil *int      `yaml:"early_capture_until,omitempty"`
	Weights           []float64 `yaml:"weights,omitempty"`
	TimeBudget        float64   `yaml:"time_budget,omitempty"`

	// MCTS
	Iterations  int     `yaml:"iterations,omitempty"`
	RolloutCap  int     `yaml:"rollout_cap,omitempty"`
	Exploration float64 `yaml:"exploration,omitempty"`
}

type Config struct {
	Agents   map[string]Agent `yaml:"agents"`
	Seed     uint64           `yaml:"seed"`
	MaxPlies int              `yaml:"max_plies"`
	Clock    time.Duration    `yaml:"clock"` // Thinking time per player and game
}

func Default() Config {
	return Config{
		Agents: map[string]Agent{
			StrategyAlphaBeta: DefaultAlphaBeta(),
			StrategyMCTS:      DefaultMCTS(),
		},
		MaxPlies: meta.MaxPlies,
		Clock:    15 * time.Minute,
	}
}

func DefaultAlphaBeta() Agent {
	return Agent{
		Strategy:          StrategyAlphaBeta,
		MaxDepth:          meta.MaxDepth,
		MemoCapacity:      meta.MemoCapacity,
		OpeningRequests:   lo.ToPtr(meta.OpeningRequests),
		EarlyCaptureUntil: lo.ToPtr(meta.EarlyCaptureUntil),
		Weights:           append([]float64(nil), heuristic.DefaultWeights[:]...),
	}
}

func DefaultMCTS() Agent {
	return Agent{
		Strategy:    StrategyMCTS,
		Iterations:  meta.Iterations,
		RolloutCap:  meta.RolloutCap,
		Exploration: meta.Exploration,
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
// Agents named in the file replace the default agent of the same name.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	for name, a := range file.Agents {
		cfg.Agents[name] = a.withDefaults()
	}
	cfg.Seed = file.Seed
	if file.MaxPlies != 0 {
		cfg.MaxPlies = file.MaxPlies
	}
	if file.Clock != 0 {
		cfg.Clock = file.Clock
	}
	return cfg, cfg.Validate()
}

func (a Agent) withDefaults() Agent {
	var d Agent
	switch a.Strategy {
	case StrategyAlphaBeta:
		d = DefaultAlphaBeta()
	case StrategyMCTS:
		d = DefaultMCTS()
	default:
		return a
	}

	a.MaxDepth = lo.Ternary(a.MaxDepth == 0, d.MaxDepth, a.MaxDepth)
	a.Iterations = lo.Ternary(a.Iterations == 0, d.Iterations, a.Iterations)
	a.RolloutCap = lo.Ternary(a.RolloutCap == 0, d.RolloutCap, a.RolloutCap)
	a.Exploration = lo.Ternary(a.Exploration == 0, d.Exploration, a.Exploration)
	a.OpeningRequests = lo.Ternary(a.OpeningRequests == nil, d.OpeningRequests, a.OpeningRequests)
	a.EarlyCaptureUntil = lo.Ternary(a.EarlyCaptureUntil == nil, d.EarlyCaptureUntil, a.EarlyCaptureUntil)
	if a.Weights == nil {
		a.Weights = d.Weights
	}
	return a
}

func (c Config) Validate() error {
	if c.MaxPlies < 0 {
		return fmt.Errorf("%w: max_plies is negative", ErrInvalid)
	}
	if c.Clock < 0 {
		return fmt.Errorf("%w: clock is negative", ErrInvalid)
	}
	for _, name := range lo.Keys(c.Agents) {
		if err := c.Agents[name].Validate(); err != nil {
			return fmt.Errorf("agent %s: %w", name, err)
		}
	}
	return nil
}

func (a Agent) Validate() error {
	switch a.Strategy {
	case StrategyAlphaBeta:
		if a.MaxDepth < 1 {
			return fmt.Errorf("%w: max_depth must be at least 1", ErrInvalid)
		}
		if a.MemoCapacity < 0 {
			return fmt.Errorf("%w: memo_capacity is negative", ErrInvalid)
		}
		if a.Weights != nil && len(a.Weights) != heuristic.NumFeatures {
			return fmt.Errorf("%w: expected %d weights, got %d", ErrInvalid, heuristic.NumFeatures, len(a.Weights))
		}
		if a.TimeBudget < 0 || a.TimeBudget > 1 {
			return fmt.Errorf("%w: time_budget must be a fraction", ErrInvalid)
		}
	case StrategyMCTS:
		if a.Iterations < 1 {
			return fmt.Errorf("%w: iterations must be at least 1", ErrInvalid)
		}
		if a.RolloutCap < 1 {
			return fmt.Errorf("%w: rollout_cap must be at least 1", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, a.Strategy)
	}
	return nil
}

// Agent looks up an agent by name.
func (c Config) Agent(name string) (Agent, error) {
	a, ok := c.Agents[name]
	if !ok {
		return Agent{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownAgent, name, c.Names())
	}
	return a, nil
}

// Names lists the configured agents in a stable order.
func (c Config) Names() []string {
	names := lo.Keys(c.Agents)
	slices.Sort(names)
	return names
}

// HeuristicWeights returns the agent's weights, or the defaults when unset.
func (a Agent) HeuristicWeights() heuristic.Weights {
	if len(a.Weights) != heuristic.NumFeatures {
		return heuristic.DefaultWeights
	}
	var w heuristic.Weights
	copy(w[:], a.Weights)
	return w
}

func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path, creating its directory.
func (c Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
