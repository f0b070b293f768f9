package searcher

import (
	"shobu/experiments/metrics"
	"shobu/heuristic"
	"shobu/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Option configures either strategy. Options that do not apply to a strategy
// are ignored by it.
type Option func(s *settings)

type settings struct {
	seed    uint64
	logger  zerolog.Logger
	metrics metrics.Collector

	// Alpha-beta
	maxDepth          int
	memoCapacity      int
	openingRequests   int
	earlyCaptureUntil int
	weights           heuristic.Weights
	pruning           bool
	transposition     bool
	timeBudget        float64

	// MCTS
	iterations  int
	rolloutCap  int
	exploration float64
}

func defaultSettings() settings {
	return settings{
		logger:            log.Logger,
		metrics:           metrics.NewDummyCollector(),
		maxDepth:          meta.MaxDepth,
		memoCapacity:      meta.MemoCapacity,
		openingRequests:   meta.OpeningRequests,
		earlyCaptureUntil: meta.EarlyCaptureUntil,
		weights:           heuristic.DefaultWeights,
		pruning:           true,
		transposition:     true,
		iterations:        meta.Iterations,
		rolloutCap:        meta.RolloutCap,
		exploration:       meta.Exploration,
	}
}

func newSettings(options []Option) settings {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	return s
}

// WithSeed fixes the random source. Zero draws a seed from the OS.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithMemoCapacity bounds the memo to capacity entries, evicting the least
// recently used. Zero leaves it unbounded.
func WithMemoCapacity(capacity int) Option {
	return func(s *settings) {
		if capacity >= 0 {
			s.memoCapacity = capacity
		}
	}
}

// WithOpeningRequests sets how many requests may be answered from the opening
// table.
func WithOpeningRequests(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.openingRequests = n
		}
	}
}

// WithEarlyCaptureUntil sets the first request index that no longer grabs an
// early capture.
func WithEarlyCaptureUntil(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.earlyCaptureUntil = n
		}
	}
}

func WithWeights(weights heuristic.Weights) Option {
	return func(s *settings) {
		s.weights = weights
	}
}

// WithPruning(false) turns alpha-beta into plain minimax.
func WithPruning(enabled bool) Option {
	return func(s *settings) {
		s.pruning = enabled
	}
}

func WithTransposition(enabled bool) Option {
	return func(s *settings) {
		s.transposition = enabled
	}
}

// WithTimeBudget stops starting new depths once a fraction of the remaining
// clock time has been spent. Zero disables it.
func WithTimeBudget(fraction float64) Option {
	return func(s *settings) {
		if fraction >= 0 {
			s.timeBudget = fraction
		}
	}
}

func WithIterations(iterations int) Option {
	return func(s *settings) {
		if iterations > 0 {
			s.iterations = iterations
		}
	}
}

func WithRolloutCap(plies int) Option {
	return func(s *settings) {
		if plies > 0 {
			s.rolloutCap = plies
		}
	}
}

// WithExploration sets c² in the UCB1 exploration term. It must be positive.
func WithExploration(c2 float64) Option {
	return func(s *settings) {
		if c2 > 0 {
			s.exploration = c2
		}
	}
}
