package searcher

import (
	"math"
	"slices"
	"time"

	"shobu/experiments/metrics"
	"shobu/game"
	"shobu/heuristic"

	"github.com/rs/zerolog"
)

// AlphaBeta searches with iterative deepening alpha-beta. The memo and the
// request counter live as long as the engine, so one engine plays one side of
// one game.
type AlphaBeta struct {
	player    game.Player
	rules     game.Rules
	settings  settings
	logger    zerolog.Logger
	zobrist   *Zobrist
	memo      *Transposition
	evaluator *heuristic.Evaluator
	metrics   metrics.Collector
	requests  int
	maxDepth  int // Depth limit of the running iteration
	scores    []float64
	stats     metrics.SearchMetric
}

func NewAlphaBeta(player game.Player, rules game.Rules, options ...Option) *AlphaBeta {
	s := newSettings(options)
	if s.maxDepth < 1 {
		panic("Must search at least one ply deep")
	}
	if s.earlyCaptureUntil < s.openingRequests {
		s.earlyCaptureUntil = s.openingRequests
	}
	return &AlphaBeta{
		player:    player,
		rules:     rules,
		settings:  s,
		logger:    s.logger.With().Str("strategy", StrategyAlphaBeta).Stringer("player", player).Logger(),
		zobrist:   NewZobrist(newRand(s.seed)),
		memo:      NewTransposition(s.memoCapacity),
		evaluator: heuristic.New(player, rules, s.weights),
		metrics:   s.metrics,
	}
}

func (ab *AlphaBeta) Player() game.Player {
	return ab.player
}

// Stats describes the last request. It is empty unless WithMetrics was given.
func (ab *AlphaBeta) Stats() metrics.SearchMetric {
	return ab.stats
}

// DepthScores returns the best score held after each completed iteration of
// the last search.
func (ab *AlphaBeta) DepthScores() []float64 {
	return slices.Clone(ab.scores)
}

func (ab *AlphaBeta) Memo() *Transposition {
	return ab.memo
}

func (ab *AlphaBeta) Play(state game.State, remaining time.Duration) game.Move {
	ab.metrics.Start(StrategyAlphaBeta)
	defer func() {
		ab.stats = ab.metrics.Complete(ab.memo.Len())
	}()

	request := ab.requests
	ab.requests++
	ab.scores = ab.scores[:0]

	legal := ab.rules.LegalMoves(state)
	if len(legal) == 0 {
		panic("No legal moves to choose from")
	}

	if move, ok := ab.forced(state, legal); ok {
		ab.metrics.SetShortcut(metrics.ShortcutForced)
		ab.logger.Debug().Stringer("move", move).Msg("forced move")
		return move
	}

	if request < ab.settings.openingRequests {
		if move, ok := openingMove(ab.player, legal); ok {
			ab.metrics.SetShortcut(metrics.ShortcutOpening)
			ab.logger.Debug().Stringer("move", move).Int("request", request).Msg("opening move")
			return move
		}
	} else if request < ab.settings.earlyCaptureUntil {
		if move, ok := earlyCapture(ab.rules, state, ab.player, legal); ok {
			ab.metrics.SetShortcut(metrics.ShortcutCapture)
			ab.logger.Debug().Stringer("move", move).Int("request", request).Msg("early capture")
			return move
		}
	}

	return ab.deepen(state, remaining)
}

// forced finds a move that needs no search: the only legal one, or one that
// wins on the spot.
func (ab *AlphaBeta) forced(state game.State, legal []game.Move) (game.Move, bool) {
	if len(legal) == 1 {
		return legal[0], true
	}
	for _, m := range legal {
		if ab.rules.Utility(ab.rules.Result(state, m), ab.player) > 0 {
			return m, true
		}
	}
	return game.Move{}, false
}

func (ab *AlphaBeta) deepen(state game.State, remaining time.Duration) game.Move {
	start := time.Now()
	best := math.Inf(-1)
	var move game.Move
	found := false

	for depth := 1; depth <= ab.settings.maxDepth; depth++ {
		ab.maxDepth = depth
		score, m, ok := ab.maxValue(state, nil, game.Move{}, math.Inf(-1), math.Inf(1), 0)
		if ok && score > best {
			best = score
			move = m
			found = true
		}
		ab.scores = append(ab.scores, best)
		ab.metrics.SetDepth(depth)
		ab.logger.Debug().
			Int("depth", depth).
			Float64("score", score).
			Float64("best", best).
			Stringer("move", move).
			Dur("elapsed", time.Since(start)).
			Msg("deepening-iteratively")

		if ab.outOfTime(start, remaining) {
			break
		}
	}

	if !found {
		panic("Search ended without a candidate move")
	}
	return move
}

func (ab *AlphaBeta) outOfTime(start time.Time, remaining time.Duration) bool {
	if ab.settings.timeBudget <= 0 || remaining <= 0 {
		return false
	}
	return time.Since(start) > time.Duration(ab.settings.timeBudget*float64(remaining))
}

func (ab *AlphaBeta) cutoff(state game.State, depth int) bool {
	return depth == ab.maxDepth || ab.rules.IsTerminal(state)
}

// leaf scores a cutoff state. prior is nil at the root.
func (ab *AlphaBeta) leaf(state game.State, prior *game.State, move game.Move) float64 {
	ab.metrics.AddEvaluation()
	return ab.evaluator.Evaluate(state, prior, move)
}

// child returns the value of the state reached by m, from the memo when the
// position was seen before.
func (ab *AlphaBeta) child(state game.State, hash uint64, m game.Move, alpha, beta float64, depth int, next func(game.State, *game.State, game.Move, float64, float64, int) (float64, game.Move, bool)) float64 {
	if !ab.settings.transposition {
		v, _, _ := next(ab.rules.Result(state, m), &state, m, alpha, beta, depth+1)
		return v
	}

	key := ab.zobrist.IncrementalHash(hash, state, m, ab.rules.ToMove(state))
	if e, ok := ab.memo.Get(key); ok {
		ab.metrics.AddMemoHit()
		return e.Score
	}
	v, reply, hasReply := next(ab.rules.Result(state, m), &state, m, alpha, beta, depth+1)
	ab.memo.Put(key, Entry{Score: v, Move: reply, HasMove: hasReply})
	return v
}

func (ab *AlphaBeta) maxValue(state game.State, prior *game.State, move game.Move, alpha, beta float64, depth int) (float64, game.Move, bool) {
	ab.metrics.AddNode()
	if ab.cutoff(state, depth) {
		return ab.leaf(state, prior, move), game.Move{}, false
	}

	var hash uint64
	if ab.settings.transposition {
		hash = ab.zobrist.Hash(state)
	}

	v := math.Inf(-1)
	var best game.Move
	found := false
	for _, m := range ab.rules.LegalMoves(state) {
		v2 := ab.child(state, hash, m, alpha, beta, depth, ab.minValue)
		if v2 > v {
			v = v2
			best = m
			found = true
			alpha = math.Max(alpha, v)
		}
		if ab.settings.pruning && v >= beta {
			return v, best, found
		}
	}
	return v, best, found
}

func (ab *AlphaBeta) minValue(state game.State, prior *game.State, move game.Move, alpha, beta float64, depth int) (float64, game.Move, bool) {
	ab.metrics.AddNode()
	if ab.cutoff(state, depth) {
		return ab.leaf(state, prior, move), game.Move{}, false
	}

	var hash uint64
	if ab.settings.transposition {
		hash = ab.zobrist.Hash(state)
	}

	v := math.Inf(1)
	var best game.Move
	found := false
	for _, m := range ab.rules.LegalMoves(state) {
		v2 := ab.child(state, hash, m, alpha, beta, depth, ab.maxValue)
		if v2 < v {
			v = v2
			best = m
			found = true
			beta = math.Min(beta, v)
		}
		if ab.settings.pruning && v <= alpha {
			return v, best, found
		}
	}
	return v, best, found
}
