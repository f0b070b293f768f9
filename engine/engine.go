package engine

import (
	"errors"

	"shobu/experiments/metrics"
)

// MaxMoves bounds a game whose rules have no ply cap.
const MaxMoves = 10000

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game until it is over or MaxMoves moves were played
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
